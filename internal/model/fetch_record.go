package model

import "time"

// FetchOutcome classifies how a fetch attempt ended.
type FetchOutcome string

const (
	// OutcomeLoaded means a non-empty list of options was received.
	OutcomeLoaded FetchOutcome = "loaded"
	// OutcomeEmpty means the endpoint answered with no options.
	OutcomeEmpty FetchOutcome = "empty"
	// OutcomeTransport means the request never produced a response.
	OutcomeTransport FetchOutcome = "transport"
	// OutcomeMalformed means the body was not a list of options.
	OutcomeMalformed FetchOutcome = "malformed"
	// OutcomeStatus means the endpoint answered with a non-success status.
	OutcomeStatus FetchOutcome = "status"
	// OutcomeUnexpected covers every other failure.
	OutcomeUnexpected FetchOutcome = "unexpected"
)

// FetchRecord describes one attempt to load skip options. It never carries
// the options themselves.
type FetchRecord struct {
	StartedAt  time.Time
	ID         string
	Outcome    FetchOutcome
	Message    string
	Location   Location
	Duration   time.Duration
	StatusCode int
	ItemCount  int
}
