// Package service defines the interfaces shared between the fetch gateway,
// the page and the persistence layer.
package service

import (
	"context"

	"github.com/Veraticus/skiphire/internal/model"
)

// FetchRecorder receives one record per attempt to load skip options.
type FetchRecorder interface {
	RecordFetch(ctx context.Context, record model.FetchRecord) error
}

// FetchLog is the persistence contract for fetch attempts.
type FetchLog interface {
	FetchRecorder
	RecentFetches(ctx context.Context, limit int) ([]model.FetchRecord, error)
	Migrate(ctx context.Context) error
	Close() error
}
