package gateway

import (
	"github.com/Veraticus/skiphire/internal/common"
	"github.com/Veraticus/skiphire/internal/model"
)

// Messages shown to the user when no options can be displayed.
const (
	MsgNoOptions  = "No skip options available. Please try again."
	MsgLoadFailed = "Failed to load skip options. Please try again later."
)

// FetchState is the result of loading skip options. It is exactly one of
// Loading, Failed or Loaded and is replaced whole on every attempt.
type FetchState interface {
	fetchState()
}

// Loading means a request is in flight.
type Loading struct{}

// Failed means the attempt produced nothing to show.
type Failed struct {
	Err     error
	Message string
}

// Loaded holds a non-empty, ordered list of options.
type Loaded struct {
	Options []model.SkipOption
}

func (Loading) fetchState() {}
func (Failed) fetchState()  {}
func (Loaded) fetchState()  {}

// AsError wraps the cause together with the message meant for the user.
func (f Failed) AsError() error {
	return common.NewUserError(f.Message, f.Err)
}
