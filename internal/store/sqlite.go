// Package store keeps an append-only archive of completed briefings in
// a local SQLite database. The two-slot state machine lives in the
// statefile; this archive is the deeper history behind it.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/nhle/daybrief/internal/model"
)

// BriefingStore implements the briefing archive using a local SQLite
// database.
type BriefingStore struct {
	db *sqlx.DB
}

// NewBriefingStore opens (or creates) a SQLite database at dbPath,
// enables WAL mode, and runs any pending schema migrations.
func NewBriefingStore(dbPath string) (*BriefingStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	// Enable WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &BriefingStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the underlying database connection.
func (s *BriefingStore) Close() error {
	return s.db.Close()
}

// runMigrations checks the current schema version and applies any
// outstanding migrations in order.
func (s *BriefingStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}

// Append records one completed briefing. A zero ID or CreatedAt is
// filled in.
func (s *BriefingStore) Append(ctx context.Context, rec model.BriefingRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	const query = `
		INSERT INTO briefings (id, text, outcome, created_at)
		VALUES (?, ?, ?, ?)`

	_, err := s.db.ExecContext(ctx, query,
		rec.ID, rec.Text, string(rec.Outcome), rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("inserting briefing %s: %w", rec.ID, err)
	}

	return nil
}

// Recent returns up to limit archived briefings, newest first.
func (s *BriefingStore) Recent(ctx context.Context, limit int) ([]model.BriefingRecord, error) {
	if limit < 1 {
		limit = 20
	}

	const query = `
		SELECT id, text, outcome, created_at
		FROM briefings
		ORDER BY created_at DESC, id DESC
		LIMIT ?`

	var recs []model.BriefingRecord
	if err := s.db.SelectContext(ctx, &recs, query, limit); err != nil {
		return nil, fmt.Errorf("listing briefings: %w", err)
	}

	return recs, nil
}

// Prune deletes archived briefings beyond the newest keep entries.
func (s *BriefingStore) Prune(ctx context.Context, keep int) error {
	if keep < 1 {
		return nil
	}

	const query = `
		DELETE FROM briefings
		WHERE id NOT IN (
			SELECT id FROM briefings
			ORDER BY created_at DESC, id DESC
			LIMIT ?
		)`

	if _, err := s.db.ExecContext(ctx, query, keep); err != nil {
		return fmt.Errorf("pruning briefings: %w", err)
	}

	return nil
}
