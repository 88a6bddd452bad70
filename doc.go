// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the idolboard API server.

idolboard is a bilingual (Korean and English) front for a K-entertainment
content API. It serves locale-resolved views of news articles and the idol
directory, a photo gallery grouped by subject, and a rotating carousel of
artists and groups.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	FASTAPI_URL=http://localhost:8000 go run . serve

Or with flags:

	go run . serve -p 3318 -api http://localhost:8000

A .env file in the working directory is loaded first.

# Configuration

Required settings:

  - FASTAPI_URL (-api): Upstream content API base URL

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - CACHE_TYPE (-t): Response cache, sqlite or postgres (default: sqlite)
  - CACHE_URL (-d): Cache database URL (default: shared in-memory sqlite)
  - CACHE_TTL (-ttl): Revalidation window (default: 60s)
  - DEFAULT_LOCALE (-locale): Locale when Accept-Language matches nothing (default: ko)
  - CAROUSEL_PAGE_SIZE, CAROUSEL_INTERVAL, CAROUSEL_FADE: Carousel timing (20, 4s, 350ms)

# Previews

Two commands print what the gallery and carousel would show, as YAML:

	idolboard gallery --locale en --limit 50
	idolboard carousel --pages 5 --seed 42

# Architecture

  - carousel: Rotation engine and schedulers
  - gallery: Subject aggregation and lightbox navigation
  - directory: Gender and label filters, counts
  - views: Locale-resolved projections, article body rendering
  - locale: Supported locales and negotiation
  - upstream: Content API client
  - cache: sqlite/postgres response cache
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - cliparse: Configuration parsing
  - cmd: Cobra commands

See package documentation for each component.
*/
package main
