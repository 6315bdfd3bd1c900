// Package components provides reusable UI components for the TUI.
package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/Veraticus/skiphire/internal/model"
	"github.com/Veraticus/skiphire/internal/scroll"
	"github.com/Veraticus/skiphire/internal/tui/themes"
)

// Stepper arrows, shown only while there is more of the row to see.
const (
	ArrowLeft  = "‹"
	ArrowRight = "›"
)

const (
	stepSeparator = " ── "
	arrowGutter   = 2
)

// StepperModel renders the booking steps as one horizontally scrolling row.
type StepperModel struct {
	theme  themes.Theme
	row    string
	steps  []model.Step
	scroll scroll.Controller
	width  int
}

// NewStepperModel creates a stepper for steps.
func NewStepperModel(steps []model.Step, theme themes.Theme, opts ...scroll.Option) StepperModel {
	m := StepperModel{
		steps:  steps,
		theme:  theme,
		scroll: scroll.New(opts...),
	}
	m.row = m.renderRow()
	return m
}

// Resize fits the stepper into width cells and recomputes the arrows.
func (m StepperModel) Resize(width int) StepperModel {
	m.width = width
	m.scroll = m.scroll.SetSize(lipgloss.Width(m.row), m.viewportWidth())
	return m
}

// Scroll starts a smooth scroll of the row.
func (m StepperModel) Scroll(dir scroll.Direction) (StepperModel, tea.Cmd) {
	var cmd tea.Cmd
	m.scroll, cmd = m.scroll.Scroll(dir)
	return m, cmd
}

// Update advances a running scroll animation.
func (m StepperModel) Update(msg tea.Msg) (StepperModel, tea.Cmd) {
	var cmd tea.Cmd
	m.scroll, cmd = m.scroll.Update(msg)
	return m, cmd
}

// State reports which arrows are visible.
func (m StepperModel) State() scroll.State {
	return m.scroll.State()
}

// Offset is the current horizontal offset in cells.
func (m StepperModel) Offset() int {
	return m.scroll.Offset()
}

// ScrollID identifies this stepper's scroll messages.
func (m StepperModel) ScrollID() int {
	return m.scroll.ID()
}

// View renders the visible slice of the row with its arrows.
func (m StepperModel) View() string {
	if m.width <= 0 {
		return m.row
	}

	vw := m.viewportWidth()
	offset := m.scroll.Offset()
	visible := ansi.Cut(m.row, offset, offset+vw)
	if pad := vw - lipgloss.Width(visible); pad > 0 {
		visible += strings.Repeat(" ", pad)
	}

	state := m.scroll.State()
	left, right := "  ", "  "
	if state.CanScrollLeft {
		left = m.theme.Bold.Render(ArrowLeft) + " "
	}
	if state.CanScrollRight {
		right = " " + m.theme.Bold.Render(ArrowRight)
	}
	return left + visible + right
}

func (m StepperModel) viewportWidth() int {
	return max(m.width-2*arrowGutter, 0)
}

func (m StepperModel) renderRow() string {
	parts := make([]string, 0, len(m.steps))
	for _, step := range m.steps {
		parts = append(parts, m.renderStep(step))
	}
	return strings.Join(parts, m.theme.Faint.Render(stepSeparator))
}

func (m StepperModel) renderStep(step model.Step) string {
	text := step.Icon + " " + step.Label
	switch step.Status {
	case model.StepCompleted:
		return m.theme.StatusSuccess.Render(text)
	case model.StepActive:
		return m.theme.Price.Underline(true).Render(text)
	default:
		return m.theme.StatusPending.Render(text)
	}
}
