package tui

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/skiphire/internal/model"
)

// ErrNoFetcher is returned by Run when no fetcher was configured.
var ErrNoFetcher = errors.New("tui: fetcher is required")

// Result is what the page held when the user left it.
type Result struct {
	Selected    model.SkipOption
	HasSelected bool
}

// Run shows the select-skip page until the user quits.
func Run(opts ...Option) (Result, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Fetcher == nil {
		return Result{}, ErrNoFetcher
	}

	p := tea.NewProgram(newModel(cfg),
		tea.WithAltScreen(),
		tea.WithContext(cfg.Context),
	)

	final, err := p.Run()
	if err != nil {
		return Result{}, fmt.Errorf("TUI error: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("TUI returned unexpected model %T", final)
	}

	var res Result
	res.Selected, res.HasSelected = m.Selection().Selected()
	return res, nil
}
