// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cache stores upstream responses in SQLite or PostgreSQL.

# Opening a Store

Open connects and creates the schema:

	store, err := cache.Open(cache.DriverSQLite, "file:idolboard?mode=memory&cache=shared")
	if err != nil {
		log.Fatal(err)
	}
	defer store.Close()

CreateSchema is safe to call multiple times - it uses IF NOT EXISTS. An
in-memory SQLite store is limited to a single connection.

# Table

	response_cache
	  cache_key   TEXT PRIMARY KEY  - Key(method, path), sha256 hex
	  path        TEXT              - Request path, for debugging
	  body        TEXT              - Raw JSON response
	  fetched_at  BIGINT            - Unix milliseconds

# Freshness

Entries never expire on their own. Get takes the caller's maximum age and
reports Fresh; a stale entry is still returned so the caller can fall back to
it when the upstream is down. Purge empties the table after a write.
*/
package cache
