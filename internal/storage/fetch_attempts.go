package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/skiphire/internal/model"
)

// DefaultHistoryLimit bounds RecentFetches when no positive limit is given.
const DefaultHistoryLimit = 20

// RecordFetch stores one fetch attempt.
func (s *SQLiteStorage) RecordFetch(ctx context.Context, record model.FetchRecord) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateFetchRecord(record); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO fetch_attempts
			(id, postcode, area, started_at, duration_ms, outcome, status_code, item_count, message)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Location.Postcode,
		record.Location.Area,
		record.StartedAt.UTC(),
		record.Duration.Milliseconds(),
		string(record.Outcome),
		record.StatusCode,
		record.ItemCount,
		record.Message,
	)
	if err != nil {
		return fmt.Errorf("failed to record fetch attempt: %w", err)
	}
	return nil
}

// RecentFetches returns the latest attempts, newest first.
func (s *SQLiteStorage) RecentFetches(ctx context.Context, limit int) ([]model.FetchRecord, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, postcode, area, started_at, duration_ms, outcome, status_code, item_count, message
		FROM fetch_attempts
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query fetch attempts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []model.FetchRecord
	for rows.Next() {
		var (
			r          model.FetchRecord
			outcome    string
			durationMS int64
		)
		if err := rows.Scan(
			&r.ID,
			&r.Location.Postcode,
			&r.Location.Area,
			&r.StartedAt,
			&durationMS,
			&outcome,
			&r.StatusCode,
			&r.ItemCount,
			&r.Message,
		); err != nil {
			return nil, fmt.Errorf("failed to scan fetch attempt: %w", err)
		}
		r.Outcome = model.FetchOutcome(outcome)
		r.Duration = time.Duration(durationMS) * time.Millisecond
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read fetch attempts: %w", err)
	}
	return records, nil
}
