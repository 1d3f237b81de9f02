// Package cache is a local SQLite store for processed thumbnails, keyed by
// the upstream image URL. It only ever holds derived data; losing it costs a
// re-fetch, nothing more.
package cache

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Open opens the cache database and configures pragmas.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			db.Close()
			return nil, fmt.Errorf("setting pragma %q: %w", p, err)
		}
	}

	return db, nil
}

const schema = `
CREATE TABLE IF NOT EXISTS thumbnails (
    src        TEXT PRIMARY KEY,
    data       BLOB NOT NULL,
    mime       TEXT NOT NULL,
    created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
`

// EnsureSchema creates the cache schema (idempotent).
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("creating cache schema: %w", err)
	}
	return nil
}

// Get returns the cached thumbnail for a source URL, or nil data on a miss.
func Get(ctx context.Context, db *sql.DB, src string) ([]byte, string, error) {
	var data []byte
	var mime string
	err := db.QueryRowContext(ctx,
		`SELECT data, mime FROM thumbnails WHERE src = ?`, src,
	).Scan(&data, &mime)
	if err == sql.ErrNoRows {
		return nil, "", nil
	}
	if err != nil {
		return nil, "", fmt.Errorf("reading cached thumbnail: %w", err)
	}
	return data, mime, nil
}

// Put stores a processed thumbnail, replacing any previous entry for the URL.
func Put(ctx context.Context, db *sql.DB, src string, data []byte, mime string) error {
	_, err := db.ExecContext(ctx,
		`INSERT INTO thumbnails (src, data, mime) VALUES (?, ?, ?)
		 ON CONFLICT(src) DO UPDATE SET data = excluded.data, mime = excluded.mime,
		   created_at = CURRENT_TIMESTAMP`,
		src, data, mime,
	)
	if err != nil {
		return fmt.Errorf("storing thumbnail: %w", err)
	}
	return nil
}

// Prune deletes entries older than the given age and reports how many went.
func Prune(ctx context.Context, db *sql.DB, age time.Duration) (int64, error) {
	// created_at is stored as CURRENT_TIMESTAMP text, so compare in the same shape.
	cutoff := time.Now().Add(-age).UTC().Format("2006-01-02 15:04:05")
	result, err := db.ExecContext(ctx,
		`DELETE FROM thumbnails WHERE created_at < ?`, cutoff,
	)
	if err != nil {
		return 0, fmt.Errorf("pruning thumbnails: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("counting pruned thumbnails: %w", err)
	}
	return n, nil
}
