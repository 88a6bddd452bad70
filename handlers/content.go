// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"strings"
	"sync"

	"github.com/danielhkuo/idolboard/cliparse"
	"github.com/danielhkuo/idolboard/locale"
	"github.com/danielhkuo/idolboard/middleware"
	"github.com/danielhkuo/idolboard/models"
	"github.com/danielhkuo/idolboard/upstream"
	"github.com/danielhkuo/idolboard/views"
)

// Page sizes used by the browsing pages
const (
	homeArticleLimit = 12
	homeArtistLimit  = 12
	maxArticleLimit  = 100
	searchLimit      = 20
	relatedFetch     = 4
	relatedShown     = 3
)

type HomeResponse struct {
	Locale   locale.Locale       `json:"locale"`
	Articles []views.ArticleCard `json:"articles"`
	Artists  []views.ArtistCard  `json:"artists"`
}

type ArticleListResponse struct {
	Locale   locale.Locale       `json:"locale"`
	Query    string              `json:"q,omitempty"`
	Limit    int                 `json:"limit"`
	Offset   int                 `json:"offset"`
	Articles []views.ArticleCard `json:"articles"`
}

type SearchResponse struct {
	Locale   locale.Locale       `json:"locale"`
	Query    string              `json:"query"`
	Articles []views.ArticleCard `json:"articles"`
	Artists  []views.ArtistCard  `json:"artists"`
	Groups   []views.GroupCard   `json:"groups"`
}

type ContentHandler struct {
	api    *upstream.Client
	render *views.Renderer
	cfg    cliparse.Config
}

func NewContentHandler(api *upstream.Client, render *views.Renderer, cfg cliparse.Config) *ContentHandler {
	return &ContentHandler{api: api, render: render, cfg: cfg}
}

// GetLocale handles GET /api/locale
func (h *ContentHandler) GetLocale(w http.ResponseWriter, r *http.Request) {
	loc := locale.Negotiate(r.Header.Get("Accept-Language"), h.cfg.DefaultLocale)

	supported := make([]string, 0, len(locale.Supported))
	for _, l := range locale.Supported {
		supported = append(supported, l.String())
	}

	middleware.JSONResponse(w, http.StatusOK, models.LocaleResponse{
		Locale:    loc.String(),
		Supported: supported,
	})
}

// Home handles GET /api/{locale}/home
func (h *ContentHandler) Home(w http.ResponseWriter, r *http.Request) {
	loc, ok := pathLocale(w, r)
	if !ok {
		return
	}

	var articles []models.Article
	var artists []models.Artist

	// Each half degrades to empty on its own
	var wg sync.WaitGroup
	wg.Go(func() {
		var err error
		if articles, err = h.api.ListArticles(r.Context(), upstream.ArticleQuery{Limit: homeArticleLimit}); err != nil {
			degrade(r, "home articles", err)
		}
	})
	wg.Go(func() {
		var err error
		if artists, err = h.api.ListArtists(r.Context(), upstream.ArtistQuery{Limit: homeArtistLimit, GlobalPriority: 1}); err != nil {
			degrade(r, "home artists", err)
		}
	})
	wg.Wait()

	middleware.JSONResponse(w, http.StatusOK, HomeResponse{
		Locale:   loc,
		Articles: h.render.ArticleCards(loc, articles),
		Artists:  views.ArtistCards(loc, artists),
	})
}

// ListArticles handles GET /api/{locale}/articles
func (h *ContentHandler) ListArticles(w http.ResponseWriter, r *http.Request) {
	loc, ok := pathLocale(w, r)
	if !ok {
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	limit := queryInt(r, "limit", upstream.DefaultArticleLimit, maxArticleLimit)
	if limit == 0 {
		limit = upstream.DefaultArticleLimit
	}
	offset := queryInt(r, "offset", 0, 1<<20)

	articles, err := h.api.ListArticles(r.Context(), upstream.ArticleQuery{
		Limit:  limit,
		Offset: offset,
		Q:      q,
	})
	if err != nil {
		degrade(r, "articles", err)
	}

	middleware.JSONResponse(w, http.StatusOK, ArticleListResponse{
		Locale:   loc,
		Query:    q,
		Limit:    limit,
		Offset:   offset,
		Articles: h.render.ArticleCards(loc, articles),
	})
}

// GetArticle handles GET /api/{locale}/articles/{id}
func (h *ContentHandler) GetArticle(w http.ResponseWriter, r *http.Request) {
	loc, ok := pathLocale(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	article, err := h.api.GetArticle(r.Context(), id)
	if err != nil {
		upstreamError(w, r, err, "Article")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.render.ArticleDetail(loc, article, h.related(r, article)))
}

// related finds other articles about the same artist
func (h *ContentHandler) related(r *http.Request, article models.Article) []models.Article {
	name := models.Deref(article.ArtistNameKo)
	if name == "" {
		return nil
	}
	candidates, err := h.api.ListArticles(r.Context(), upstream.ArticleQuery{Q: name, Limit: relatedFetch})
	if err != nil {
		degrade(r, "related articles", err)
		return nil
	}
	return views.Related(article.ID, candidates, relatedShown)
}

// Search handles GET /api/{locale}/search
func (h *ContentHandler) Search(w http.ResponseWriter, r *http.Request) {
	loc, ok := pathLocale(w, r)
	if !ok {
		return
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	var res models.SearchResult
	if q != "" {
		var err error
		if res, err = h.api.Search(r.Context(), q, searchLimit); err != nil {
			degrade(r, "search", err)
		}
	}

	middleware.JSONResponse(w, http.StatusOK, SearchResponse{
		Locale:   loc,
		Query:    q,
		Articles: h.render.ArticleCards(loc, res.Articles),
		Artists:  views.ArtistCards(loc, res.Artists),
		Groups:   views.GroupCards(loc, res.Groups),
	})
}
