// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# CLI Flags

	-p          Server port (default 3318)
	-api        Upstream API base URL (required)
	-t          Cache type, sqlite or postgres (default sqlite)
	-d          Cache database URL
	-ttl        Cache revalidation window (default 60s)
	-locale     Fallback locale, ko or en (default ko)
	-page-size  Carousel page size (default 20)
	-interval   Carousel rotation interval (default 4s)
	-fade       Carousel fade duration (default 350ms)

# Environment Variables

Flags fall back to environment variables:

	PORT                → -p
	FASTAPI_URL         → -api
	CACHE_TYPE          → -t
	CACHE_URL           → -d
	CACHE_TTL           → -ttl
	DEFAULT_LOCALE      → -locale
	CAROUSEL_PAGE_SIZE  → -page-size
	CAROUSEL_INTERVAL   → -interval
	CAROUSEL_FADE       → -fade

CLI flags take precedence over environment variables. Durations use Go
syntax ("90s", "350ms").

# Validation

ParseFlags returns an error when:

  - FASTAPI_URL is missing
  - the cache type is not sqlite or postgres
  - postgres is selected without CACHE_URL
  - the default locale is not ko or en
  - a number or duration does not parse, or is negative

Without CACHE_URL the sqlite cache lives in memory.
*/
package cliparse
