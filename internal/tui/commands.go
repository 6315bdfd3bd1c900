package tui

import (
	"context"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/skiphire/internal/gateway"
)

// fetchOptions runs one fetch in the background.
func fetchOptions(ctx context.Context, fetcher gateway.Fetcher) tea.Cmd {
	return func() tea.Msg {
		return fetchResultMsg{state: fetcher.Fetch(ctx)}
	}
}

// navigate reports a Back or Continue activation. Neither leaves the page.
func navigate(target navigation) tea.Cmd {
	return func() tea.Msg {
		return navigateMsg{target: target}
	}
}

func logNavigation(msg navigateMsg, selected string) {
	slog.Info("Navigation requested",
		"target", msg.target.String(),
		"selected", selected)
}
