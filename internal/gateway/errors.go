package gateway

import (
	"errors"
	"fmt"
)

var (
	// ErrTransport marks a request that never produced a response.
	ErrTransport = errors.New("skip options request failed")
	// ErrMalformedBody marks a response body that is not a list of options.
	ErrMalformedBody = errors.New("skip options body is not a list")
	// ErrNoOptions marks an empty or absent list.
	ErrNoOptions = errors.New("no skip options returned")
)

// StatusError is returned when the endpoint answers with a non-success status.
type StatusError struct {
	Body       string
	StatusCode int
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("failed to fetch skip options: status %d", e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch skip options: status %d: %s", e.StatusCode, e.Body)
}
