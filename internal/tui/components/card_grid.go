package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/skiphire/internal/tui/themes"
	"github.com/Veraticus/skiphire/internal/tui/viewmodel"
)

const cardGap = 1

// GridColumns returns how many cards fit side by side in width cells.
func GridColumns(width int) int {
	switch {
	case width < 80:
		return 1
	case width < 120:
		return 2
	default:
		return 3
	}
}

// CardGridModel lays out skip cards in a scrollable grid and tracks which
// card has the cursor.
type CardGridModel struct {
	theme    themes.Theme
	cards    []viewmodel.SkipCard
	rowStart []int
	rowEnd   []int
	viewport viewport.Model
	cursor   int
	width    int
	height   int
}

// NewCardGridModel creates an empty grid.
func NewCardGridModel(theme themes.Theme) CardGridModel {
	return CardGridModel{
		theme:    theme,
		viewport: viewport.New(0, 0),
	}
}

// Resize sets the visible area of the grid.
func (m CardGridModel) Resize(width, height int) CardGridModel {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	return m.layout()
}

// SetCards replaces the cards, keeping the cursor in range.
func (m CardGridModel) SetCards(cards []viewmodel.SkipCard) CardGridModel {
	m.cards = cards
	m.cursor = min(max(m.cursor, 0), max(len(cards)-1, 0))
	return m.layout()
}

// Cursor is the index of the focused card.
func (m CardGridModel) Cursor() int {
	return m.cursor
}

// Columns is the current number of cards per row.
func (m CardGridModel) Columns() int {
	return GridColumns(m.width)
}

// MoveCursor moves the focus by dx cards within a row and dy rows.
func (m CardGridModel) MoveCursor(dx, dy int) CardGridModel {
	if len(m.cards) == 0 {
		return m
	}
	next := m.cursor + dx + dy*m.Columns()
	if next < 0 || next >= len(m.cards) {
		if dy != 0 {
			return m
		}
		next = min(max(next, 0), len(m.cards)-1)
	}
	m.cursor = next
	return m.ensureVisible()
}

// SetCursor focuses the card at index i.
func (m CardGridModel) SetCursor(i int) CardGridModel {
	if i < 0 || i >= len(m.cards) {
		return m
	}
	m.cursor = i
	return m.ensureVisible()
}

// YOffset is the current vertical scroll position.
func (m CardGridModel) YOffset() int {
	return m.viewport.YOffset
}

// View renders the visible part of the grid.
func (m CardGridModel) View() string {
	return m.viewport.View()
}

func (m CardGridModel) cardWidth() int {
	cols := m.Columns()
	return max((m.width-cardGap*(cols-1))/cols, cardFrame+1)
}

func (m CardGridModel) layout() CardGridModel {
	cols := m.Columns()
	width := m.cardWidth()

	m.rowStart = nil
	m.rowEnd = nil

	var rows []string
	line := 0
	for start := 0; start < len(m.cards); start += cols {
		end := min(start+cols, len(m.cards))
		row := m.cards[start:end]

		// pad every card to the tallest body in the row
		tallest := 0
		for _, card := range row {
			tallest = max(tallest, lipgloss.Height(RenderSkipCard(card, width, 0, m.theme))-2)
		}

		rendered := make([]string, 0, 2*len(row))
		for i, card := range row {
			if i > 0 {
				rendered = append(rendered, strings.Repeat(" ", cardGap))
			}
			rendered = append(rendered, RenderSkipCard(card, width, tallest, m.theme))
		}
		joined := lipgloss.JoinHorizontal(lipgloss.Top, rendered...)

		m.rowStart = append(m.rowStart, line)
		line += lipgloss.Height(joined)
		m.rowEnd = append(m.rowEnd, line)
		rows = append(rows, joined)
	}

	m.viewport.SetContent(strings.Join(rows, "\n"))
	return m.ensureVisible()
}

func (m CardGridModel) ensureVisible() CardGridModel {
	if len(m.rowStart) == 0 || m.viewport.Height <= 0 {
		return m
	}
	row := m.cursor / m.Columns()
	if row >= len(m.rowStart) {
		return m
	}

	top, bottom := m.rowStart[row], m.rowEnd[row]
	switch {
	case top < m.viewport.YOffset:
		m.viewport.SetYOffset(top)
	case bottom > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(bottom - m.viewport.Height)
	}
	return m
}
