// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package gallery builds the subject-grouped photo gallery.

# Aggregation

Aggregate turns a flat list of ContentItems into SubjectGroups:

	groups := gallery.Aggregate(items)

Items missing an image URL or a subject name are dropped. Within a subject,
photos whose NormalizeURL keys collide are kept once (first seen wins), so
the same CDN image with different query parameters shows up once. Groups
are sorted by photo count, descending, with ties in first-seen order.

Grouping is by the exact display-name string. The gallery input carries no
artist identifier, so names are the only key available.

# Lightbox

Flatten and Offsets number photos across all groups the way the lightbox
pages through them. Navigator holds the open index and wraps at both ends:

	nav := gallery.NewNavigator(len(gallery.Flatten(groups)))
	nav.Open(offsets[2])
	nav.HandleKey("ArrowRight")
*/
package gallery
