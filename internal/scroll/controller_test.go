package scroll

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute(t *testing.T) {
	tests := []struct {
		name    string
		metrics Metrics
		want    State
	}{
		{
			name:    "at start with overflow",
			metrics: Metrics{Offset: 0, ContentWidth: 1000, ViewportWidth: 400},
			want:    State{CanScrollLeft: false, CanScrollRight: true},
		},
		{
			name:    "past the right edge",
			metrics: Metrics{Offset: 601, ContentWidth: 1000, ViewportWidth: 400},
			want:    State{CanScrollLeft: true, CanScrollRight: false},
		},
		{
			name:    "inside the slack",
			metrics: Metrics{Offset: 590, ContentWidth: 1000, ViewportWidth: 400},
			want:    State{CanScrollLeft: true, CanScrollRight: false},
		},
		{
			name:    "just before the slack",
			metrics: Metrics{Offset: 589, ContentWidth: 1000, ViewportWidth: 400},
			want:    State{CanScrollLeft: true, CanScrollRight: true},
		},
		{
			name:    "middle",
			metrics: Metrics{Offset: 200, ContentWidth: 1000, ViewportWidth: 400},
			want:    State{CanScrollLeft: true, CanScrollRight: true},
		},
		{
			name:    "content fits",
			metrics: Metrics{Offset: 0, ContentWidth: 400, ViewportWidth: 400},
			want:    State{},
		},
		{
			name:    "no overflow ignores stale offset",
			metrics: Metrics{Offset: 50, ContentWidth: 300, ViewportWidth: 400},
			want:    State{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compute(tt.metrics, DefaultSlack))
		})
	}
}

func TestNew_Defaults(t *testing.T) {
	c := New()

	assert.Equal(t, DefaultStep, c.step)
	assert.Equal(t, DefaultSlack, c.slack)
	assert.Equal(t, State{}, c.State())
	assert.NotEqual(t, c.ID(), New().ID())
}

func TestNew_Options(t *testing.T) {
	c := New(WithStep(24), WithSlack(1))
	assert.Equal(t, 24, c.step)
	assert.Equal(t, 1, c.slack)

	c = New(WithStep(0), WithSlack(-3))
	assert.Equal(t, DefaultStep, c.step)
	assert.Equal(t, DefaultSlack, c.slack)
}

func TestController_SetSize(t *testing.T) {
	c := New().SetSize(1000, 400)
	assert.Equal(t, State{CanScrollLeft: false, CanScrollRight: true}, c.State())

	c = c.ScrollTo(600)
	assert.Equal(t, State{CanScrollLeft: true, CanScrollRight: false}, c.State())

	// Widening the viewport pulls the offset back into range.
	c = c.SetSize(1000, 900)
	assert.Equal(t, 100, c.Offset())

	c = c.SetSize(1000, 1200)
	assert.Equal(t, 0, c.Offset())
	assert.Equal(t, State{}, c.State())
}

func TestController_ScrollToClamps(t *testing.T) {
	c := New().SetSize(1000, 400)

	assert.Equal(t, 600, c.ScrollTo(5000).Offset())
	assert.Equal(t, 0, c.ScrollTo(-20).Offset())
}

func runToSettle(t *testing.T, c Controller, cmd tea.Cmd) (Controller, SettledMsg) {
	t.Helper()
	require.NotNil(t, cmd)
	for i := 0; i < 10*fps; i++ {
		if !c.Animating() {
			msg, ok := cmd().(SettledMsg)
			require.True(t, ok, "expected settled message")
			return c, msg
		}
		c, cmd = c.Update(FrameMsg{id: c.id, tag: c.tag})
		require.NotNil(t, cmd)
	}
	t.Fatal("animation never settled")
	return c, SettledMsg{}
}

func TestController_ScrollRight(t *testing.T) {
	c := New().SetSize(1000, 400)

	c, cmd := c.Scroll(Right)
	require.True(t, c.Animating())

	c, settled := runToSettle(t, c, cmd)

	assert.Equal(t, 200, c.Offset())
	assert.Equal(t, c.ID(), settled.ID)
	assert.Equal(t, State{CanScrollLeft: true, CanScrollRight: true}, settled.State)
	assert.Equal(t, settled.State, c.State())
}

func TestController_ScrollToEnd(t *testing.T) {
	c := New().SetSize(1000, 400)

	for i := 0; i < 4; i++ {
		var cmd tea.Cmd
		c, cmd = c.Scroll(Right)
		c, _ = runToSettle(t, c, cmd)
	}

	assert.Equal(t, 600, c.Offset())
	assert.Equal(t, State{CanScrollLeft: true, CanScrollRight: false}, c.State())

	c, cmd := c.Scroll(Left)
	c, _ = runToSettle(t, c, cmd)
	assert.Equal(t, 400, c.Offset())
	assert.True(t, c.State().CanScrollRight)
}

func TestController_ScrollWithoutRoom(t *testing.T) {
	c := New().SetSize(1000, 400)

	c, cmd := c.Scroll(Left)

	assert.False(t, c.Animating())
	msg, ok := cmd().(SettledMsg)
	require.True(t, ok)
	assert.Equal(t, State{CanScrollLeft: false, CanScrollRight: true}, msg.State)
}

func TestController_RecomputesDuringAnimation(t *testing.T) {
	c := New().SetSize(1000, 400)
	c, _ = c.Scroll(Right)

	c, _ = c.Update(FrameMsg{id: c.id, tag: c.tag})

	assert.Greater(t, c.Offset(), 0)
	assert.True(t, c.State().CanScrollLeft)
}

func TestController_IgnoresForeignFrames(t *testing.T) {
	c := New().SetSize(1000, 400)
	c, _ = c.Scroll(Right)
	staleTag := c.tag

	// A jump cancels the animation; its pending frames must not move the strip.
	c = c.ScrollTo(100)
	c, cmd := c.Update(FrameMsg{id: c.id, tag: staleTag})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, c.Offset())

	other := New()
	c, cmd = c.Update(FrameMsg{id: other.id, tag: c.tag})
	assert.Nil(t, cmd)
	assert.Equal(t, 100, c.Offset())

	c, cmd = c.Update(tea.KeyMsg{})
	assert.Nil(t, cmd)
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "left", Left.String())
	assert.Equal(t, "right", Right.String())
}
