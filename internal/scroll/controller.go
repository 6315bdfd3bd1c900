// Package scroll decides when a horizontally scrollable strip can be
// scrolled further and animates programmatic scrolling of it.
package scroll

import (
	"math"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/harmonica"
	tea "github.com/charmbracelet/bubbletea"
)

// Direction is the way a Scroll request moves the strip.
type Direction int

const (
	// Left moves the visible window toward the start of the strip.
	Left Direction = iota
	// Right moves the visible window toward the end of the strip.
	Right
)

func (d Direction) String() string {
	if d == Left {
		return "left"
	}
	return "right"
}

const (
	// DefaultStep is how far one Scroll request moves the strip.
	DefaultStep = 200
	// DefaultSlack absorbs rounding at the right edge.
	DefaultSlack = 10

	fps              = 60
	angularFrequency = 8.0
	dampingRatio     = 1.0
	settleDistance   = 0.5
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// Metrics is the layout of the strip at one moment.
type Metrics struct {
	Offset        int
	ContentWidth  int
	ViewportWidth int
}

// State says which scroll affordances should be shown.
type State struct {
	CanScrollLeft  bool
	CanScrollRight bool
}

// Compute derives the affordances for a layout.
func Compute(m Metrics, slack int) State {
	overflow := m.ContentWidth > m.ViewportWidth
	return State{
		CanScrollLeft:  overflow && m.Offset > 0,
		CanScrollRight: overflow && m.Offset+m.ViewportWidth < m.ContentWidth-slack,
	}
}

// FrameMsg advances a running scroll animation.
type FrameMsg struct {
	id  int
	tag int
}

// SettledMsg is sent once a scroll animation has reached its target.
type SettledMsg struct {
	State State
	ID    int
}

// Controller tracks the offset of one strip and the affordances derived
// from it.
type Controller struct {
	spring        harmonica.Spring
	position      float64
	velocity      float64
	state         State
	id            int
	tag           int
	step          int
	slack         int
	target        int
	contentWidth  int
	viewportWidth int
	animating     bool
}

// Option configures a Controller.
type Option func(*Controller)

// WithStep sets how far one Scroll request moves the strip.
func WithStep(step int) Option {
	return func(c *Controller) {
		if step > 0 {
			c.step = step
		}
	}
}

// WithSlack sets the right-edge tolerance.
func WithSlack(slack int) Option {
	return func(c *Controller) {
		if slack >= 0 {
			c.slack = slack
		}
	}
}

// New creates a controller for an empty strip.
func New(opts ...Option) Controller {
	c := Controller{
		id:     nextID(),
		step:   DefaultStep,
		slack:  DefaultSlack,
		spring: harmonica.NewSpring(harmonica.FPS(fps), angularFrequency, dampingRatio),
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// ID identifies the controller in SettledMsg.
func (c Controller) ID() int {
	return c.id
}

// Offset is the current scroll position in whole units.
func (c Controller) Offset() int {
	return int(math.Round(c.position))
}

// Metrics reports the current layout.
func (c Controller) Metrics() Metrics {
	return Metrics{
		Offset:        c.Offset(),
		ContentWidth:  c.contentWidth,
		ViewportWidth: c.viewportWidth,
	}
}

// State returns the affordances from the last recompute.
func (c Controller) State() State {
	return c.state
}

// Animating reports whether a Scroll request is still in progress.
func (c Controller) Animating() bool {
	return c.animating
}

// Recompute refreshes the affordances from the current layout.
func (c Controller) Recompute() Controller {
	c.state = Compute(c.Metrics(), c.slack)
	return c
}

// SetSize applies a new content or viewport width, keeping the offset in range.
func (c Controller) SetSize(contentWidth, viewportWidth int) Controller {
	c.contentWidth = max(contentWidth, 0)
	c.viewportWidth = max(viewportWidth, 0)
	c.position = float64(c.clamp(c.Offset()))
	c.target = c.clamp(c.target)
	return c.Recompute()
}

// ScrollTo jumps to offset, cancelling any running animation.
func (c Controller) ScrollTo(offset int) Controller {
	c.animating = false
	c.tag++
	c.velocity = 0
	c.target = c.clamp(offset)
	c.position = float64(c.target)
	return c.Recompute()
}

// Scroll starts a smooth scroll by one step in dir. The returned command
// drives the animation; a SettledMsg follows once the target is reached.
func (c Controller) Scroll(dir Direction) (Controller, tea.Cmd) {
	delta := c.step
	if dir == Left {
		delta = -delta
	}
	c.target = c.clamp(c.Offset() + delta)
	c.tag++

	if float64(c.target) == c.position {
		c.animating = false
		c.velocity = 0
		c = c.Recompute()
		return c, c.settled()
	}

	c.animating = true
	return c, c.frame()
}

// Update advances the animation on its own frame messages.
func (c Controller) Update(msg tea.Msg) (Controller, tea.Cmd) {
	frame, ok := msg.(FrameMsg)
	if !ok || frame.id != c.id || frame.tag != c.tag || !c.animating {
		return c, nil
	}

	c.position, c.velocity = c.spring.Update(c.position, c.velocity, float64(c.target))
	if math.Abs(c.position-float64(c.target)) < settleDistance && math.Abs(c.velocity) < settleDistance {
		c.position = float64(c.target)
		c.velocity = 0
		c.animating = false
		c = c.Recompute()
		return c, c.settled()
	}

	c = c.Recompute()
	return c, c.frame()
}

func (c Controller) maxOffset() int {
	return max(c.contentWidth-c.viewportWidth, 0)
}

func (c Controller) clamp(offset int) int {
	return min(max(offset, 0), c.maxOffset())
}

func (c Controller) frame() tea.Cmd {
	id, tag := c.id, c.tag
	return tea.Tick(time.Second/fps, func(time.Time) tea.Msg {
		return FrameMsg{id: id, tag: tag}
	})
}

func (c Controller) settled() tea.Cmd {
	msg := SettledMsg{ID: c.id, State: c.state}
	return func() tea.Msg {
		return msg
	}
}
