package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/skiphire/internal/tui/themes"
	"github.com/Veraticus/skiphire/internal/tui/viewmodel"
)

// Action bar labels.
const (
	BackLabel     = "Back"
	ContinueLabel = "Continue"
	NoSelection   = "No skip selected"
)

// RenderActionBar renders the bottom bar with the selection summary on the
// left and the Back and Continue controls on the right.
func RenderActionBar(bar viewmodel.ActionBar, width int, theme themes.Theme) string {
	summary := theme.Faint.Render(NoSelection)
	if bar.HasSelection {
		summary = strings.Join([]string{
			theme.Bold.Render(bar.Summary.Title),
			theme.Price.Render(bar.Summary.Total),
			theme.Faint.Render(bar.Summary.HirePeriod),
		}, theme.Faint.Render(" · "))
	}

	back := theme.Button.Render("b " + BackLabel)
	cont := theme.ButtonDisabled.Render("c " + ContinueLabel)
	if bar.ContinueEnabled {
		cont = theme.ButtonActive.Render("c " + ContinueLabel + " →")
	}
	controls := back + " " + cont

	gap := width - lipgloss.Width(summary) - lipgloss.Width(controls)
	if gap < 1 {
		return theme.ActionBar.Width(width).Render(
			lipgloss.JoinVertical(lipgloss.Left, summary, controls),
		)
	}
	return theme.ActionBar.Width(width).Render(summary + strings.Repeat(" ", gap) + controls)
}
