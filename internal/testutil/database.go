// Package testutil provides test utilities shared across packages: an
// isolated fetch-log database and seeded fetch records.
package testutil

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/Veraticus/skiphire/internal/model"
	"github.com/Veraticus/skiphire/internal/service"
	"github.com/Veraticus/skiphire/internal/storage"
)

// TestDB represents a test database with associated test utilities.
type TestDB struct {
	Storage service.FetchLog
	t       *testing.T
}

// SetupTestDB creates a new in-memory fetch log, seeded with records.
// It automatically handles migrations and cleanup.
func SetupTestDB(t *testing.T, records ...model.FetchRecord) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	db := &TestDB{Storage: store, t: t}
	db.Seed(records...)
	return db
}

// Seed records fetch attempts or fails the test.
func (db *TestDB) Seed(records ...model.FetchRecord) {
	db.t.Helper()
	for _, r := range records {
		if err := db.Storage.RecordFetch(context.Background(), r); err != nil {
			db.t.Fatalf("failed to seed fetch record %q: %v", r.ID, err)
		}
	}
}

// FetchRecords builds n loaded attempts one minute apart, oldest first.
func FetchRecords(n int, start time.Time) []model.FetchRecord {
	records := make([]model.FetchRecord, n)
	for i := range records {
		records[i] = model.FetchRecord{
			ID:         fmt.Sprintf("attempt-%02d", i+1),
			StartedAt:  start.Add(time.Duration(i) * time.Minute),
			Outcome:    model.OutcomeLoaded,
			Location:   model.DefaultLocation,
			Duration:   180 * time.Millisecond,
			StatusCode: 200,
			ItemCount:  9,
		}
	}
	return records
}
