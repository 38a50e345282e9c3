package cache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// ErrNotFound reports a cache miss.
var ErrNotFound = errors.New("cache: page not found")

// Page is one cached fetch result.
type Page struct {
	URL       string
	Status    int
	Body      []byte
	Depth     int
	FetchedAt time.Time
}

// Stats summarizes cache contents.
type Stats struct {
	Pages  int64
	Bytes  int64
	Oldest time.Time
	Newest time.Time
}

// Store manages page persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the page database under dir and applies
// the schema.
func Open(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("ensure cache directory: %w", err)
	}

	dbPath := filepath.Join(dir, "pages.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.ExecContext(context.Background(), schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	return &Store{db: db, path: dbPath}, nil
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put inserts or replaces the cached copy of page.URL.
func (s *Store) Put(ctx context.Context, page Page) error {
	fetchedAt := page.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO pages (url, status, body, depth, fetched_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(url) DO UPDATE SET
             status = excluded.status,
             body = excluded.body,
             depth = excluded.depth,
             fetched_at = excluded.fetched_at`,
		page.URL,
		page.Status,
		page.Body,
		page.Depth,
		fetchedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store page %q: %w", page.URL, err)
	}
	return nil
}

// Get returns the cached copy of url, or ErrNotFound on a miss.
func (s *Store) Get(ctx context.Context, url string) (*Page, error) {
	row := s.db.QueryRowContext(
		ctx,
		"SELECT url, status, body, depth, fetched_at FROM pages WHERE url = ?",
		url,
	)

	var page Page
	var fetchedAt string
	if err := row.Scan(&page.URL, &page.Status, &page.Body, &page.Depth, &fetchedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load page %q: %w", url, err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, fetchedAt)
	if err != nil {
		return nil, fmt.Errorf("parse fetched_at for %q: %w", url, err)
	}
	page.FetchedAt = parsed
	return &page, nil
}

// Stats reports row count, stored bytes, and fetch-time bounds.
func (s *Store) Stats(ctx context.Context) (Stats, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(1), COALESCE(SUM(LENGTH(body)), 0),
                COALESCE(MIN(fetched_at), ''), COALESCE(MAX(fetched_at), '')
         FROM pages`,
	)

	var stats Stats
	var oldest, newest string
	if err := row.Scan(&stats.Pages, &stats.Bytes, &oldest, &newest); err != nil {
		return Stats{}, fmt.Errorf("read cache stats: %w", err)
	}
	if oldest != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, oldest); err == nil {
			stats.Oldest = parsed
		}
	}
	if newest != "" {
		if parsed, err := time.Parse(time.RFC3339Nano, newest); err == nil {
			stats.Newest = parsed
		}
	}
	return stats, nil
}

// Clear removes every cached page.
func (s *Store) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM pages"); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	return nil
}
