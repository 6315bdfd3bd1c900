package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/skiphire/internal/gateway"
	"github.com/Veraticus/skiphire/internal/tui/components"
	"github.com/Veraticus/skiphire/internal/tui/viewmodel"
)

// Page text.
const (
	PageTitle    = "Choose Your Skip Size"
	PageSubtitle = "Select the skip size that best suits your needs"
	RetryLabel   = "Try Again"
)

// headerLines is stepper, blank, title, subtitle, blank.
const headerLines = 5

// resize lays the page out for a width x height terminal.
func (m Model) resize(width, height int) Model {
	m.width = width
	m.height = height
	m.help.Width = width
	m.stepper = m.stepper.Resize(width)
	m.grid = m.grid.Resize(width, m.contentHeight())
	return m
}

func (m Model) contentHeight() int {
	bar := lipgloss.Height(m.renderActionBar())
	helpLines := lipgloss.Height(m.help.View(m.keymap))
	return max(m.height-headerLines-bar-helpLines-1, 1)
}

func (m Model) render() string {
	header := lipgloss.JoinVertical(lipgloss.Left,
		m.stepper.View(),
		"",
		m.theme.Title.Render(PageTitle),
		m.theme.Subtitle.Render(PageSubtitle),
		"",
	)

	var body string
	switch s := m.state.(type) {
	case gateway.Loading:
		body = m.renderLoading()
	case gateway.Failed:
		body = m.renderFailed(s)
	case gateway.Loaded:
		body = m.grid.View()
	}
	body = lipgloss.NewStyle().Height(m.contentHeight()).MaxHeight(m.contentHeight()).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		body,
		"",
		m.renderActionBar(),
		m.help.View(m.keymap),
	)
}

// renderLoading renders the spinner above a grid of placeholder cards.
func (m Model) renderLoading() string {
	status := m.spinner.View() + " " + m.theme.Faint.Render("Loading skip options for "+m.config.Location.String()+"...")

	cols := components.GridColumns(m.width)
	width := max((m.width-(cols-1))/cols, 6)

	var rows []string
	for start := 0; start < components.SkeletonCount; start += cols {
		var cards []string
		for i := start; i < min(start+cols, components.SkeletonCount); i++ {
			if i > start {
				cards = append(cards, " ")
			}
			cards = append(cards, components.RenderSkeletonCard(width, m.pulse+i, m.theme))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	return lipgloss.JoinVertical(lipgloss.Left, append([]string{status, ""}, rows...)...)
}

// renderFailed renders the error message and the retry control.
func (m Model) renderFailed(s gateway.Failed) string {
	content := lipgloss.JoinVertical(lipgloss.Center,
		m.theme.StatusError.Render(s.Message),
		"",
		m.theme.ButtonActive.Render("r "+RetryLabel),
	)
	return lipgloss.Place(m.width, m.contentHeight(), lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderActionBar() string {
	return components.RenderActionBar(viewmodel.NewActionBar(m.selection), m.width, m.theme)
}
