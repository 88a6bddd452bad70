// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package views

import (
	"github.com/danielhkuo/idolboard/carousel"
	"github.com/danielhkuo/idolboard/gallery"
	"github.com/danielhkuo/idolboard/locale"
	"github.com/danielhkuo/idolboard/models"
)

// ArticleContentItem is the gallery candidate for an article: its subject is
// the resolved artist name and its image the thumbnail.
func ArticleContentItem(loc locale.Locale, a models.Article) gallery.ContentItem {
	return gallery.ContentItem{
		ID:          a.ID,
		SubjectName: locale.Resolve(loc, a.ArtistNameKo, a.ArtistNameEn),
		ImageURL:    models.Deref(a.ThumbnailURL),
		Title:       locale.Resolve(loc, a.TitleKo, a.TitleEn),
		SourceURL:   models.Deref(a.SourceURL),
	}
}

func ContentItems(loc locale.Locale, articles []models.Article) []gallery.ContentItem {
	items := make([]gallery.ContentItem, 0, len(articles))
	for _, a := range articles {
		items = append(items, ArticleContentItem(loc, a))
	}
	return items
}

func ArtistDisplayItem(loc locale.Locale, a models.Artist) carousel.DisplayItem {
	return carousel.DisplayItem{
		ID:       a.ID,
		Name:     locale.Resolve(loc, &a.NameKo, a.NameEn),
		ImageURL: models.Deref(a.PhotoURL),
		Kind:     carousel.Primary,
		Href:     ArtistHref(loc, a.ID),
	}
}

func GroupDisplayItem(loc locale.Locale, g models.Group) carousel.DisplayItem {
	return carousel.DisplayItem{
		ID:       g.ID,
		Name:     locale.Resolve(loc, &g.NameKo, g.NameEn),
		ImageURL: models.Deref(g.PhotoURL),
		Kind:     carousel.Secondary,
		Href:     GroupHref(loc, g.ID),
	}
}

// DisplayItems lists artists first, then groups
func DisplayItems(loc locale.Locale, artists []models.Artist, groups []models.Group) []carousel.DisplayItem {
	items := make([]carousel.DisplayItem, 0, len(artists)+len(groups))
	for _, a := range artists {
		items = append(items, ArtistDisplayItem(loc, a))
	}
	for _, g := range groups {
		items = append(items, GroupDisplayItem(loc, g))
	}
	return items
}
