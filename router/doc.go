// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the idolboard API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints, and a
cleanup func that stops the carousel engines:

	mux, cleanup := router.NewRouter(api, cfg)
	defer cleanup()

Options passed after cfg apply to every carousel engine, e.g. a manual
scheduler in tests. CORS is not applied here; wrap the mux with
middleware.CORS when serving.

# Endpoints

Health:

	GET /health
	GET /api/locale - Negotiated locale from Accept-Language

Browsing ({locale} is ko or en):

	GET /api/{locale}/home            - Latest articles and priority artists
	GET /api/{locale}/articles        - Article list (limit, offset, q)
	GET /api/{locale}/articles/{id}   - Article detail with related articles
	GET /api/{locale}/search          - Articles, artists and groups matching q

Directory:

	GET /api/{locale}/artists         - Artists and groups (filter)
	GET /api/{locale}/artists/{id}    - Artist detail
	GET /api/{locale}/groups/{id}     - Group detail

Gallery and carousel:

	GET /api/{locale}/gallery                 - Photos grouped by subject
	GET /api/{locale}/gallery/photos/{index}  - Lightbox view (key)
	GET /api/{locale}/carousel                - Current carousel page
	GET /api/{locale}/carousel/stream         - Carousel state as server-sent events

Admin:

	GET    /api/admin/groups         - Every group
	PATCH  /api/admin/groups/{id}    - Update status or bio
	GET    /api/admin/mappings       - Mappings (article_id, artist_id, group_id)
	POST   /api/admin/mappings       - Link an article to an artist and/or group
	DELETE /api/admin/mappings/{id}  - Remove a link

Every route except /health and / is wrapped with middleware.WithLogging.
*/
package router
