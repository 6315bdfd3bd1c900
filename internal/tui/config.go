package tui

import (
	"context"

	"github.com/Veraticus/skiphire/internal/gateway"
	"github.com/Veraticus/skiphire/internal/model"
	"github.com/Veraticus/skiphire/internal/scroll"
	"github.com/Veraticus/skiphire/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Context    context.Context
	Fetcher    gateway.Fetcher
	Theme      themes.Theme
	Location   model.Location
	Steps      []model.Step
	Width      int
	Height     int
	ScrollStep int
	EdgeSlack  int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Context:    context.Background(),
		Theme:      themes.Default,
		Location:   model.DefaultLocation,
		Steps:      model.BookingSteps(),
		Width:      80,
		Height:     24,
		ScrollStep: 24,
		EdgeSlack:  1,
	}
}

// WithFetcher sets where skip options come from.
func WithFetcher(f gateway.Fetcher) Option {
	return func(c *Config) {
		c.Fetcher = f
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithLocation sets the location shown under the title.
func WithLocation(loc model.Location) Option {
	return func(c *Config) {
		c.Location = loc
	}
}

// WithStepper configures how far the step row moves per key press and how
// close to the end it must be before the right arrow hides.
func WithStepper(step, edgeSlack int) Option {
	return func(c *Config) {
		c.ScrollStep = step
		c.EdgeSlack = edgeSlack
	}
}

// WithContext sets the context passed to every fetch.
func WithContext(ctx context.Context) Option {
	return func(c *Config) {
		if ctx != nil {
			c.Context = ctx
		}
	}
}

func (c Config) scrollOptions() []scroll.Option {
	return []scroll.Option{scroll.WithStep(c.ScrollStep), scroll.WithSlack(c.EdgeSlack)}
}
