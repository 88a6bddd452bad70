// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the records exchanged with the upstream content API.

# Upstream Records

The upstream API returns bilingual records with paired *_ko / *_en fields:

  - Article: news article with titles, summaries, hashtags, thumbnail
  - Artist: solo artist profile, optionally with group memberships
  - Group: idol group profile, optionally with members
  - SearchResult: articles, artists and groups matching a query
  - EntityMapping: link between an article and an artist or group

Nullable columns are pointers. Use Deref to read them:

	title := models.Deref(article.TitleKo)

# Group Status

Groups carry an activity status, one of:

	ACTIVE → HIATUS → DISBANDED, or SOLO_ONLY

An empty status means "not set".

# Admin Requests

  - GroupUpdate: PATCH /public/groups/{id}
  - ArtistUpdate: PATCH /public/artists/{id}
  - MappingCreate: POST /public/entity-mappings

# Error Response

All API errors return:

	{
	  "error": "Bad Request",
	  "message": "Detailed error message"
	}
*/
package models
