package tui

import (
	"github.com/Veraticus/skiphire/internal/gateway"
)

// fetchResultMsg carries the outcome of one fetch. The page applies them in
// arrival order, so the last one to arrive wins.
type fetchResultMsg struct {
	state gateway.FetchState
}

// navigateMsg is emitted by the Back and Continue controls.
type navigateMsg struct {
	target navigation
}

type navigation int

const (
	navigateBack navigation = iota
	navigateContinue
)

func (n navigation) String() string {
	if n == navigateBack {
		return "back"
	}
	return "continue"
}
