// Package gateway loads the skip options offered for a location from the
// remote booking API.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Veraticus/skiphire/internal/common"
	"github.com/Veraticus/skiphire/internal/model"
	"github.com/Veraticus/skiphire/internal/service"
	"github.com/google/uuid"
)

const (
	optionsPath     = "/api/skips/by-location"
	maxBodyBytes    = 4 << 20
	maxErrBodyBytes = 1024
)

// Fetcher loads skip options. Each call issues one request and returns a
// fresh FetchState.
type Fetcher interface {
	Fetch(ctx context.Context) FetchState
}

// Client fetches skip options for a single location over HTTP.
type Client struct {
	httpClient *http.Client
	recorder   service.FetchRecorder
	now        func() time.Time
	newID      func() string
	baseURL    string
	location   model.Location
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout sets the request timeout. It is applied to a copy of the HTTP
// client, so a client passed to WithHTTPClient is never modified.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
	}
}

// WithRecorder reports every attempt to r.
func WithRecorder(r service.FetchRecorder) Option {
	return func(c *Client) {
		c.recorder = r
	}
}

// WithClock overrides the time source used for fetch records.
func WithClock(now func() time.Time) Option {
	return func(c *Client) {
		c.now = now
	}
}

// New creates a client for the API rooted at baseURL.
func New(baseURL string, location model.Location, opts ...Option) (*Client, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: api base url: %v", common.ErrInvalidConfig, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("%w: api base url %q must be http or https", common.ErrInvalidConfig, baseURL)
	}
	if location.Postcode == "" || location.Area == "" {
		return nil, fmt.Errorf("%w: postcode and area are required", common.ErrMissingConfig)
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		location:   location,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.timeout > 0 {
		hc := *c.httpClient
		hc.Timeout = c.timeout
		c.httpClient = &hc
	}
	return c, nil
}

// Location returns the location options are requested for.
func (c *Client) Location() model.Location {
	return c.location
}

// Fetch runs one complete load. Transport failures and bodies that are not a
// list degrade to the "no options" message; a non-success status or any other
// failure yields the "failed to load" message.
func (c *Client) Fetch(ctx context.Context) FetchState {
	started := c.now()
	slog.Debug("Fetching skip options", "location", c.location.String())

	options, err := c.fetchOptions(ctx)
	state, record := c.classify(options, err)

	record.ID = c.newID()
	record.StartedAt = started
	record.Duration = c.now().Sub(started)
	record.Location = c.location
	c.record(ctx, record)

	return state
}

func (c *Client) classify(options []model.SkipOption, err error) (FetchState, model.FetchRecord) {
	var statusErr *StatusError
	switch {
	case errors.Is(err, ErrTransport):
		slog.Warn("Skip options unavailable", "error", err)
		return Failed{Message: MsgNoOptions, Err: err},
			model.FetchRecord{Outcome: model.OutcomeTransport, Message: MsgNoOptions}

	case errors.Is(err, ErrMalformedBody):
		slog.Warn("Skip options unavailable", "error", err)
		return Failed{Message: MsgNoOptions, Err: err},
			model.FetchRecord{Outcome: model.OutcomeMalformed, Message: MsgNoOptions}

	case errors.As(err, &statusErr):
		common.LogError(err, "Skip options request rejected", common.Fields{
			"status":   statusErr.StatusCode,
			"location": c.location.String(),
		})
		return Failed{Message: MsgLoadFailed, Err: err},
			model.FetchRecord{Outcome: model.OutcomeStatus, Message: MsgLoadFailed, StatusCode: statusErr.StatusCode}

	case err != nil:
		common.LogError(err, "Failed to load skip options", common.Fields{
			"location": c.location.String(),
		})
		return Failed{Message: MsgLoadFailed, Err: err},
			model.FetchRecord{Outcome: model.OutcomeUnexpected, Message: MsgLoadFailed}

	case len(options) == 0:
		slog.Info("No skip options offered", "location", c.location.String())
		return Failed{Message: MsgNoOptions, Err: ErrNoOptions},
			model.FetchRecord{Outcome: model.OutcomeEmpty, Message: MsgNoOptions, StatusCode: http.StatusOK}
	}

	slog.Info("Loaded skip options", "count", len(options), "location", c.location.String())
	return Loaded{Options: options},
		model.FetchRecord{Outcome: model.OutcomeLoaded, StatusCode: http.StatusOK, ItemCount: len(options)}
}

// fetchOptions performs the request. A nil slice with a nil error means the
// endpoint answered with an empty list or null.
func (c *Client) fetchOptions(ctx context.Context) ([]model.SkipOption, error) {
	req, err := c.newRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			slog.Debug("Failed to close response body", "error", closeErr)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBodyBytes))
		return nil, &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var options []model.SkipOption
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&options); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	for _, opt := range options {
		if err := opt.Validate(); err != nil {
			return nil, err
		}
	}
	return options, nil
}

func (c *Client) newRequest(ctx context.Context) (*http.Request, error) {
	u, err := url.Parse(c.baseURL + optionsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to build options url: %w", err)
	}
	q := u.Query()
	q.Set("postcode", c.location.Postcode)
	q.Set("area", c.location.Area)
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	return req, nil
}

func (c *Client) record(ctx context.Context, record model.FetchRecord) {
	if c.recorder == nil {
		return
	}
	// The attempt is recorded even when the caller's context is done.
	ctx = context.WithoutCancel(ctx)
	if err := c.recorder.RecordFetch(ctx, record); err != nil {
		slog.Warn("Failed to record fetch attempt", "id", record.ID, "error", err)
	}
}
