package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/skiphire/internal/tui/themes"
	"github.com/Veraticus/skiphire/internal/tui/viewmodel"
)

// cardFrame is the horizontal space taken by a card's border and padding.
const cardFrame = 4

// RenderSkipCard renders card at the given outer width. A positive lines
// pads the body to that many lines so cards in a row line up.
func RenderSkipCard(card viewmodel.SkipCard, width, lines int, theme themes.Theme) string {
	inner := max(width-cardFrame, 1)

	text := theme.Normal
	if card.Disabled {
		text = theme.Faint
	}

	content := []string{
		theme.Badge.Render(card.Badge),
		theme.Bold.Inherit(text).Render(truncate(card.Title, inner)),
		text.Render(truncate(card.HirePeriod, inner)),
		"",
		theme.Price.Render(card.Total),
		theme.Faint.Width(inner).Render(card.PriceDetail),
	}
	for _, w := range card.Warnings {
		content = append(content, theme.StatusWarning.Render(truncate("⚠ "+w, inner)))
	}
	content = append(content, "", renderCardButton(card, theme))

	style := theme.Card
	switch {
	case card.Selected:
		style = theme.CardSelected
	case card.Focused:
		style = theme.CardFocused
	}

	body := lipgloss.JoinVertical(lipgloss.Left, content...)
	if lines > 0 {
		body = lipgloss.PlaceVertical(max(lines, lipgloss.Height(body)), lipgloss.Top, body)
	}
	return style.Width(width - 2).Render(body)
}

func renderCardButton(card viewmodel.SkipCard, theme themes.Theme) string {
	label := card.ButtonLabel
	if card.Focused {
		label = "▸ " + label
	}
	switch {
	case card.Selected:
		return theme.ButtonActive.Render(label)
	case card.Disabled:
		return theme.ButtonDisabled.Render(label)
	default:
		return theme.Button.Render(label)
	}
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return strings.TrimRight(string(runes), " ") + "…"
}
