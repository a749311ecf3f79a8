package report

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const crashLogSchema = `
CREATE TABLE IF NOT EXISTS crash_log (
	id      TEXT PRIMARY KEY,
	at      TEXT NOT NULL,
	scope   TEXT NOT NULL DEFAULT '',
	mode    TEXT NOT NULL DEFAULT '',
	message TEXT NOT NULL DEFAULT '',
	stack   TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_crash_log_at ON crash_log(at);
`

// Store is a local sqlite crash log. It never ships anything anywhere; it
// exists so a failure survives the session that produced it.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if needed) the crash log at path.
func OpenStore(path string) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_busy_timeout=5000", path)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1) // sqlite
	db.SetConnMaxLifetime(0)
	if _, err := db.Exec(crashLogSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("crash log schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error { return s.db.Close() }

func (s *Store) Report(ctx context.Context, f Failure) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO crash_log (id, at, scope, mode, message, stack) VALUES (?, ?, ?, ?, ?, ?)`,
		f.ID, f.At.UTC().Format(time.RFC3339Nano), f.Scope, f.Mode, f.Message, f.Stack,
	)
	if err != nil {
		return fmt.Errorf("insert crash: %w", err)
	}
	return nil
}

// List returns the most recent failures, newest first.
func (s *Store) List(ctx context.Context, limit int) ([]Failure, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, at, scope, mode, message, stack FROM crash_log ORDER BY at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("list crashes: %w", err)
	}
	defer rows.Close()

	var out []Failure
	for rows.Next() {
		var f Failure
		var at string
		if err := rows.Scan(&f.ID, &at, &f.Scope, &f.Mode, &f.Message, &f.Stack); err != nil {
			return nil, fmt.Errorf("scan crash: %w", err)
		}
		if t, err := time.Parse(time.RFC3339Nano, at); err == nil {
			f.At = t
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// Prune removes failures recorded before cutoff and reports how many went.
func (s *Store) Prune(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM crash_log WHERE at < ?`, cutoff.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return 0, fmt.Errorf("prune crashes: %w", err)
	}
	return res.RowsAffected()
}
