// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package upstream is the client for the content API that owns articles,
artists, groups and entity mappings.

# Usage

	store, _ := cache.Open(cache.DriverSQLite, cfg.CacheURL)
	api, err := upstream.New(cfg.APIBaseURL, upstream.WithCache(store, cfg.CacheTTL))

	articles, err := api.ListArticles(ctx, upstream.ArticleQuery{Limit: 12})
	group, err := api.GetGroup(ctx, 10)

Query parameters with zero values are left out. List limits default to 20
for articles and 50 for artists and groups.

# Caching

With a cache, GET responses younger than the TTL are served without a
request. Older entries are revalidated; if upstream then fails with a
network error or a 5xx, the stale copy is served instead. A TTL of zero
revalidates every read.

Writes (PATCH, POST, DELETE) go straight upstream and, when they succeed,
purge the whole cache. Mapping lists are never cached.

# Errors

Non-2xx responses return *StatusError:

	404 Not Found: {"detail":"Article not found"}

Use IsNotFound to tell missing records from outages.
*/
package upstream
