// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package views turns upstream records into the locale-resolved shapes the API
serves.

Bilingual fields are resolved with locale.Resolve: Korean pages show Korean
values, English pages show English values and fall back to Korean. Hashtags
never fall back.

# Articles

A Renderer carries the clock used for relative ages ("2 days ago", "2일 전")
and the HTML policies applied to article bodies:

	r := views.NewRenderer(nil)
	card := r.ArticleCard(locale.English, article)
	detail := r.ArticleDetail(locale.Korean, article, related)

Bodies are sanitized with a UGC policy, then converted to Markdown. Plain
paragraphs come from the tag-stripped body split on blank lines.

# Core Projections

ArticleContentItem feeds the gallery pipeline; ArtistDisplayItem and
GroupDisplayItem feed the carousel.
*/
package views
