// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Supported drivers
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	ErrMiss              = errors.New("cache miss")
	ErrUnsupportedDriver = errors.New("unsupported cache type")
)

// Entry is a cached upstream response body
type Entry struct {
	Path      string
	Body      []byte
	FetchedAt time.Time
	Fresh     bool
}

// Store keeps upstream responses keyed by request, with a freshness window
// checked at read time.
type Store struct {
	db     *sql.DB
	driver string
	now    func() time.Time
}

// Open connects to the cache database and creates its schema
func Open(driver, dsn string) (*Store, error) {
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, driver)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	// An in-memory SQLite database lives and dies with its connection
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
		db.SetConnMaxLifetime(0)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cache database ping failed: %w", err)
	}

	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return New(db, driver), nil
}

// New wraps an existing database that already has the schema
func New(db *sql.DB, driver string) *Store {
	return &Store{db: db, driver: driver, now: time.Now}
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Get returns the entry for key. Entry.Fresh reports whether it is younger
// than maxAge. Returns ErrMiss if nothing is stored.
func (s *Store) Get(ctx context.Context, key string, maxAge time.Duration) (Entry, error) {
	var entry Entry
	var body string
	var fetchedAt int64
	err := s.db.QueryRowContext(ctx, s.rebind(`
		SELECT path, body, fetched_at FROM response_cache WHERE cache_key = ?
	`), key).Scan(&entry.Path, &body, &fetchedAt)

	if err == sql.ErrNoRows {
		return Entry{}, ErrMiss
	}
	if err != nil {
		return Entry{}, fmt.Errorf("failed to read cache entry: %w", err)
	}

	entry.Body = []byte(body)
	entry.FetchedAt = time.UnixMilli(fetchedAt)
	entry.Fresh = s.now().Sub(entry.FetchedAt) < maxAge
	return entry, nil
}

// Put stores body under key, replacing any previous entry
func (s *Store) Put(ctx context.Context, key, path string, body []byte) error {
	_, err := s.db.ExecContext(ctx, s.rebind(`
		INSERT INTO response_cache (cache_key, path, body, fetched_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (cache_key) DO UPDATE SET
			path = EXCLUDED.path,
			body = EXCLUDED.body,
			fetched_at = EXCLUDED.fetched_at
	`), key, path, string(body), s.now().UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	return nil
}

// Purge drops every entry. Writes to upstream can change any list or
// search result, so invalidation is all-or-nothing.
func (s *Store) Purge(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM response_cache`)
	if err != nil {
		return 0, fmt.Errorf("failed to purge cache: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

// Len returns the number of stored entries
func (s *Store) Len(ctx context.Context) (int, error) {
	var n int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM response_cache`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count cache entries: %w", err)
	}
	return n, nil
}

// Key derives a fixed-length cache key from its parts
func Key(parts ...string) string {
	h := sha256.New()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// rebind turns ? placeholders into $n for PostgreSQL
func (s *Store) rebind(query string) string {
	if s.driver != DriverPostgres {
		return query
	}

	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
