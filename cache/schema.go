// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cache

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates the cache table.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// The DDL is shared by SQLite and PostgreSQL, so it sticks to portable types.
const schema = `
CREATE TABLE IF NOT EXISTS response_cache (
    cache_key TEXT PRIMARY KEY,
    path TEXT NOT NULL,
    body TEXT NOT NULL,
    fetched_at BIGINT NOT NULL
);
`
