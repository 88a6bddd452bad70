// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package upstream

import (
	"context"
	"fmt"
	"net/http"

	"github.com/danielhkuo/idolboard/models"
)

// Default page sizes
const (
	DefaultArticleLimit   = 20
	DefaultDirectoryLimit = 50
)

type ArticleQuery struct {
	Limit        int
	Offset       int
	ArtistID     int64
	GroupID      int64
	Language     string
	Q            string
	HasThumbnail bool
}

type ArtistQuery struct {
	Q              string
	Limit          int
	GlobalPriority int
}

type GroupQuery struct {
	Q     string
	Limit int
}

type Page struct {
	Limit  int
	Offset int
}

type MappingQuery struct {
	ArticleID int64
	ArtistID  int64
	GroupID   int64
}

// Articles

func (c *Client) ListArticles(ctx context.Context, q ArticleQuery) ([]models.Article, error) {
	qs := params{}.
		num("limit", orDefault(q.Limit, DefaultArticleLimit)).
		num("offset", int64(q.Offset)).
		num("artist_id", q.ArtistID).
		num("group_id", q.GroupID).
		str("language", q.Language).
		str("q", q.Q).
		flag("has_thumbnail", q.HasThumbnail)
	return get[[]models.Article](ctx, c, "/public/articles"+qs.encode())
}

func (c *Client) GetArticle(ctx context.Context, id int64) (models.Article, error) {
	return get[models.Article](ctx, c, fmt.Sprintf("/public/articles/%d", id))
}

// Artists

func (c *Client) ListArtists(ctx context.Context, q ArtistQuery) ([]models.Artist, error) {
	qs := params{}.
		str("q", q.Q).
		num("limit", orDefault(q.Limit, DefaultDirectoryLimit)).
		num("global_priority", int64(q.GlobalPriority))
	return get[[]models.Artist](ctx, c, "/public/artists"+qs.encode())
}

func (c *Client) GetArtist(ctx context.Context, id int64) (models.Artist, error) {
	return get[models.Artist](ctx, c, fmt.Sprintf("/public/artists/%d", id))
}

func (c *Client) ArtistArticles(ctx context.Context, id int64, p Page) ([]models.Article, error) {
	qs := params{}.
		num("limit", orDefault(p.Limit, DefaultArticleLimit)).
		num("offset", int64(p.Offset))
	return get[[]models.Article](ctx, c, fmt.Sprintf("/public/artists/%d/articles", id)+qs.encode())
}

// Groups

func (c *Client) ListGroups(ctx context.Context, q GroupQuery) ([]models.Group, error) {
	qs := params{}.
		str("q", q.Q).
		num("limit", orDefault(q.Limit, DefaultDirectoryLimit))
	return get[[]models.Group](ctx, c, "/public/groups"+qs.encode())
}

func (c *Client) GetGroup(ctx context.Context, id int64) (models.Group, error) {
	return get[models.Group](ctx, c, fmt.Sprintf("/public/groups/%d", id))
}

func (c *Client) GroupArticles(ctx context.Context, id int64, p Page) ([]models.Article, error) {
	qs := params{}.
		num("limit", orDefault(p.Limit, DefaultArticleLimit)).
		num("offset", int64(p.Offset))
	return get[[]models.Article](ctx, c, fmt.Sprintf("/public/groups/%d/articles", id)+qs.encode())
}

// Search

func (c *Client) Search(ctx context.Context, q string, limit int) (models.SearchResult, error) {
	qs := params{}.
		str("q", q).
		num("limit", orDefault(limit, DefaultArticleLimit))
	return get[models.SearchResult](ctx, c, "/public/search"+qs.encode())
}

// Admin

func (c *Client) UpdateGroup(ctx context.Context, id int64, u models.GroupUpdate) (models.Group, error) {
	return send[models.Group](ctx, c, http.MethodPatch, fmt.Sprintf("/public/groups/%d", id), u)
}

func (c *Client) UpdateArtist(ctx context.Context, id int64, u models.ArtistUpdate) (models.Artist, error) {
	return send[models.Artist](ctx, c, http.MethodPatch, fmt.Sprintf("/public/artists/%d", id), u)
}

// ListMappings is read straight from upstream; the editor must see its own writes.
func (c *Client) ListMappings(ctx context.Context, q MappingQuery) ([]models.EntityMapping, error) {
	qs := params{}.
		num("article_id", q.ArticleID).
		num("artist_id", q.ArtistID).
		num("group_id", q.GroupID)
	return getUncached[[]models.EntityMapping](ctx, c, "/public/entity-mappings"+qs.encode())
}

func (c *Client) DeleteMapping(ctx context.Context, id int64) (models.MappingDeleted, error) {
	return send[models.MappingDeleted](ctx, c, http.MethodDelete, fmt.Sprintf("/public/entity-mappings/%d", id), nil)
}

func (c *Client) CreateMapping(ctx context.Context, m models.MappingCreate) (models.MappingCreated, error) {
	return send[models.MappingCreated](ctx, c, http.MethodPost, "/public/entity-mappings", m)
}
