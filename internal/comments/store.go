package comments

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/rotoclone/rotoclone-zone/internal/db"
)

// Store caches comment counts in SQLite so entry pages render their
// trigger button label without blocking on the third-party service.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Count returns the cached comment count for a page path. Unknown
// paths count as 0, which renders the "Make a comment" label.
func (s *Store) Count(ctx context.Context, path string) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		"SELECT count FROM comment_counts WHERE path = ?", path).Scan(&count)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("reading comment count for %s: %w", path, err)
	}
	return count, nil
}

// SetCounts upserts a batch of counts in a single transaction.
func (s *Store) SetCounts(ctx context.Context, counts map[string]int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning count update: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO comment_counts (path, count, fetched_at)
		VALUES (?, ?, datetime('now'))
		ON CONFLICT(path) DO UPDATE SET
			count = excluded.count,
			fetched_at = excluded.fetched_at`)
	if err != nil {
		return fmt.Errorf("preparing count upsert: %w", err)
	}
	defer stmt.Close()

	for path, count := range counts {
		if count < 0 {
			return fmt.Errorf("negative count %d for %s", count, path)
		}
		if _, err := stmt.ExecContext(ctx, path, count); err != nil {
			return fmt.Errorf("upserting count for %s: %w", path, err)
		}
	}

	return tx.Commit()
}

// Refresh fetches fresh counts for the given paths and stores them.
// Fetch failures leave the cache untouched: stale labels beat missing
// pages, the widget is an enhancement.
func (s *Store) Refresh(ctx context.Context, client *CountClient, paths []string) error {
	counts, err := client.Counts(ctx, paths)
	if err != nil {
		log.Printf("comments: count refresh skipped: %v", err)
		return nil
	}
	return s.SetCounts(ctx, counts)
}
