// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/danielhkuo/idolboard/directory"
	"github.com/danielhkuo/idolboard/locale"
	"github.com/danielhkuo/idolboard/middleware"
	"github.com/danielhkuo/idolboard/models"
	"github.com/danielhkuo/idolboard/upstream"
	"github.com/danielhkuo/idolboard/views"
)

// Directory page sizes
const (
	directoryArtistLimit = 100
	directoryGroupLimit  = 50
	detailArticleLimit   = 12
)

type DirectoryResponse struct {
	Locale  locale.Locale          `json:"locale"`
	Filter  string                 `json:"filter"`
	Counts  directory.Counts       `json:"counts"`
	Labels  []directory.LabelCount `json:"labels"`
	Groups  []views.GroupCard      `json:"groups"`
	Artists []views.ArtistCard     `json:"artists"`
}

type DirectoryHandler struct {
	api    *upstream.Client
	render *views.Renderer
}

func NewDirectoryHandler(api *upstream.Client, render *views.Renderer) *DirectoryHandler {
	return &DirectoryHandler{api: api, render: render}
}

// ListDirectory handles GET /api/{locale}/artists
func (h *DirectoryHandler) ListDirectory(w http.ResponseWriter, r *http.Request) {
	loc, ok := pathLocale(w, r)
	if !ok {
		return
	}

	artists, groups := h.fetchDirectory(r)
	res := directory.Apply(r.URL.Query().Get("filter"), artists, groups)

	middleware.JSONResponse(w, http.StatusOK, DirectoryResponse{
		Locale:  loc,
		Filter:  res.Filter,
		Counts:  directory.Count(artists, groups),
		Labels:  directory.Labels(groups),
		Groups:  views.GroupCards(loc, res.Groups),
		Artists: views.ArtistCards(loc, res.Artists),
	})
}

// fetchDirectory loads artists and groups in parallel; either may come back
// empty on failure
func (h *DirectoryHandler) fetchDirectory(r *http.Request) ([]models.Artist, []models.Group) {
	var artists []models.Artist
	var groups []models.Group

	var wg sync.WaitGroup
	wg.Go(func() {
		var err error
		if artists, err = h.api.ListArtists(r.Context(), upstream.ArtistQuery{Limit: directoryArtistLimit}); err != nil {
			degrade(r, "directory artists", err)
		}
	})
	wg.Go(func() {
		var err error
		if groups, err = h.api.ListGroups(r.Context(), upstream.GroupQuery{Limit: directoryGroupLimit}); err != nil {
			degrade(r, "directory groups", err)
		}
	})
	wg.Wait()

	return artists, groups
}

// GetArtist handles GET /api/{locale}/artists/{id}
func (h *DirectoryHandler) GetArtist(w http.ResponseWriter, r *http.Request) {
	loc, ok := pathLocale(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var artist models.Artist
	var articles []models.Article

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		artist, err = h.api.GetArtist(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		if articles, err = h.api.ArtistArticles(ctx, id, upstream.Page{Limit: detailArticleLimit}); err != nil {
			degrade(r, "artist articles", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		upstreamError(w, r, err, "Artist")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.render.ArtistDetail(loc, artist, articles))
}

// GetGroup handles GET /api/{locale}/groups/{id}
func (h *DirectoryHandler) GetGroup(w http.ResponseWriter, r *http.Request) {
	loc, ok := pathLocale(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var group models.Group
	var articles []models.Article

	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		group, err = h.api.GetGroup(ctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		if articles, err = h.api.GroupArticles(ctx, id, upstream.Page{Limit: detailArticleLimit}); err != nil {
			degrade(r, "group articles", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		upstreamError(w, r, err, "Group")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.render.GroupDetail(loc, group, articles))
}
