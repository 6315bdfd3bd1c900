// Package tui implements the interactive select-skip page.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/skiphire/internal/booking"
	"github.com/Veraticus/skiphire/internal/common"
	"github.com/Veraticus/skiphire/internal/gateway"
	"github.com/Veraticus/skiphire/internal/model"
	"github.com/Veraticus/skiphire/internal/scroll"
	"github.com/Veraticus/skiphire/internal/tui/components"
	"github.com/Veraticus/skiphire/internal/tui/themes"
	"github.com/Veraticus/skiphire/internal/tui/viewmodel"
)

// Model holds the page state. It is the only owner of the fetch state and
// the selection.
type Model struct {
	state     gateway.FetchState
	theme     themes.Theme
	config    Config
	keymap    KeyMap
	help      help.Model
	spinner   spinner.Model
	stepper   components.StepperModel
	grid      components.CardGridModel
	selection booking.Selection
	options   []model.SkipOption
	width     int
	height    int
	pulse     int
	quitting  bool
}

// newModel creates a new model with the given configuration.
func newModel(cfg Config) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)

	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(cfg.Theme.Primary)
	h.Styles.FullKey = h.Styles.ShortKey

	m := Model{
		state:   gateway.Loading{},
		config:  cfg,
		theme:   cfg.Theme,
		keymap:  DefaultKeyMap(),
		help:    h,
		spinner: sp,
		stepper: components.NewStepperModel(cfg.Steps, cfg.Theme, cfg.scrollOptions()...),
		grid:    components.NewCardGridModel(cfg.Theme),
	}
	return m.resize(cfg.Width, cfg.Height)
}

// Init starts the first fetch.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, fetchOptions(m.config.Context, m.config.Fetcher))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height), nil

	case fetchResultMsg:
		return m.applyFetchState(msg.state), nil

	case spinner.TickMsg:
		if !m.isLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		m.pulse++
		return m, cmd

	case scroll.FrameMsg:
		var cmd tea.Cmd
		m.stepper, cmd = m.stepper.Update(msg)
		return m, cmd

	case scroll.SettledMsg:
		if msg.ID == m.stepper.ScrollID() {
			slog.Debug("Stepper scroll settled",
				"can_scroll_left", msg.State.CanScrollLeft,
				"can_scroll_right", msg.State.CanScrollRight)
		}
		return m, nil

	case navigateMsg:
		selected := ""
		if opt, ok := m.selection.Selected(); ok {
			selected = viewmodel.NewSkipCard(opt, m.selection, false).Title
		}
		logNavigation(msg, selected)
		return m, nil
	}

	return m, nil
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.render()
}

// FetchState is the current load state of the page.
func (m Model) FetchState() gateway.FetchState {
	return m.state
}

// Selection is the current selection.
func (m Model) Selection() booking.Selection {
	return m.selection
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m.resize(m.width, m.height), nil

	case key.Matches(msg, m.keymap.StepsLeft):
		var cmd tea.Cmd
		m.stepper, cmd = m.stepper.Scroll(scroll.Left)
		return m, cmd

	case key.Matches(msg, m.keymap.StepsRight):
		var cmd tea.Cmd
		m.stepper, cmd = m.stepper.Scroll(scroll.Right)
		return m, cmd

	case key.Matches(msg, m.keymap.Retry):
		return m.retry()

	case key.Matches(msg, m.keymap.Back):
		return m, navigate(navigateBack)

	case key.Matches(msg, m.keymap.Continue):
		if m.selection.IsEmpty() {
			return m, nil
		}
		return m, navigate(navigateContinue)
	}

	switch m.state.(type) {
	case gateway.Failed:
		if key.Matches(msg, m.keymap.Select) {
			return m.retry()
		}
	case gateway.Loaded:
		return m.handleGridKey(msg), nil
	}
	return m, nil
}

func (m Model) handleGridKey(msg tea.KeyMsg) Model {
	switch {
	case key.Matches(msg, m.keymap.Up):
		m.grid = m.grid.MoveCursor(0, -1)
	case key.Matches(msg, m.keymap.Down):
		m.grid = m.grid.MoveCursor(0, 1)
	case key.Matches(msg, m.keymap.Left):
		m.grid = m.grid.MoveCursor(-1, 0)
	case key.Matches(msg, m.keymap.Right):
		m.grid = m.grid.MoveCursor(1, 0)
	case key.Matches(msg, m.keymap.Select):
		cursor := m.grid.Cursor()
		if cursor < len(m.options) && !m.selection.Select(m.options[cursor]) {
			card := viewmodel.NewSkipCard(m.options[cursor], m.selection, true)
			common.LogDebug("Ignored selection of unavailable skip", common.Fields{
				"id":    card.ID,
				"label": card.AccessibleLabel,
			})
		}
	default:
		return m
	}
	return m.refreshCards()
}

// retry starts a new fetch. Earlier fetches still in flight are not
// cancelled; their results are applied when they arrive.
func (m Model) retry() (tea.Model, tea.Cmd) {
	m.state = gateway.Loading{}
	m.options = nil
	return m, tea.Batch(m.spinner.Tick, fetchOptions(m.config.Context, m.config.Fetcher))
}

func (m Model) applyFetchState(state gateway.FetchState) Model {
	m.state = state
	m.options = nil

	switch s := state.(type) {
	case gateway.Loaded:
		m.options = s.Options
		m.selection.Reconcile(s.Options)
	case gateway.Failed:
		slog.Debug("Skip options unavailable", "message", s.Message, "error", s.Err)
	}
	return m.refreshCards()
}

func (m Model) refreshCards() Model {
	cursor := min(m.grid.Cursor(), max(len(m.options)-1, 0))
	m.grid = m.grid.SetCards(viewmodel.NewSkipCards(m.options, m.selection, cursor))
	return m
}

func (m Model) isLoading() bool {
	_, ok := m.state.(gateway.Loading)
	return ok
}
