// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the idolboard API.

# Handler Types

Each handler is a struct holding the upstream client and whatever else it
renders with:

  - ContentHandler: locale negotiation, home page, article list and detail, search
  - DirectoryHandler: artist and group directory with filters, artist and group detail
  - GalleryHandler: subject-grouped photo gallery and the lightbox view
  - CarouselHandler: per-locale rotating carousel, as a snapshot or a live stream
  - AdminHandler: group status edits and article-to-entity mappings

Handlers are created via constructor functions:

	contentHandler := handlers.NewContentHandler(api, render, cfg)

# Locales

Every public route carries the locale as its first path segment. Unknown
locales answer 404. Text fields resolve to the locale's column; English
falls back to Korean when a translation is missing, except for the article
detail summary, which reports the gap instead.

# Upstream Failures

List fetches degrade: a failed upstream call is logged and the page is
served with an empty list in its place. Detail fetches do not: an upstream
404 is a 404, anything else is 502.

# Carousel

One engine per locale lives for the life of the handler. A request fetches
the current artists and groups and re-initializes the engine only when that
set changed, so rotation continues across requests:

	GET /api/{locale}/carousel         → GetCarousel (current page)
	GET /api/{locale}/carousel/stream  → Stream (server-sent "state" events)

A stream listener never blocks the engine; a client that falls far enough
behind misses intermediate states. Close disposes every engine and ends
open streams.

# Gallery

GetGallery aggregates up to 100 thumbnailed articles by subject. GetPhoto
opens one photo of the flattened sequence; an optional key parameter
(ArrowLeft, ArrowRight, Escape) is applied as a lightbox key press:

	GET /api/ko/gallery/photos/2?key=ArrowRight

# Admin

Admin routes have no authentication of their own. Writes go straight to
upstream and purge the response cache.
*/
package handlers
