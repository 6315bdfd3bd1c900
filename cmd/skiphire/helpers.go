package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Veraticus/skiphire/internal/common"
	"github.com/Veraticus/skiphire/internal/gateway"
	"github.com/Veraticus/skiphire/internal/service"
	"github.com/Veraticus/skiphire/internal/storage"
)

// openFetchLog opens and migrates the fetch-attempt database.
func (a *app) openFetchLog(ctx context.Context) (service.FetchLog, error) {
	if !a.cfg.StorageEnabled() {
		return nil, common.ErrStoreDisabled
	}

	store, err := storage.NewSQLiteStorage(a.cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return store, nil
}

// newFetcher builds the gateway. The fetch log is optional: when it cannot
// be opened the gateway runs without one. The returned cleanup closes it.
func (a *app) newFetcher(ctx context.Context) (*gateway.Client, func(), error) {
	opts := []gateway.Option{gateway.WithTimeout(a.cfg.APITimeout)}
	cleanup := func() {}

	fetchLog, err := a.openFetchLog(ctx)
	switch {
	case err == nil:
		opts = append(opts, gateway.WithRecorder(fetchLog))
		cleanup = func() {
			if cerr := fetchLog.Close(); cerr != nil {
				slog.Warn("Failed to close fetch log", "error", cerr)
			}
		}
	case !errors.Is(err, common.ErrStoreDisabled):
		slog.Warn("Fetch log unavailable, continuing without it", "error", err)
	}

	client, err := gateway.New(a.cfg.APIBaseURL, a.cfg.Location, opts...)
	if err != nil {
		cleanup()
		return nil, nil, err
	}
	return client, cleanup, nil
}
