// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/danielhkuo/idolboard/gallery"
	"github.com/danielhkuo/idolboard/locale"
	"github.com/danielhkuo/idolboard/middleware"
	"github.com/danielhkuo/idolboard/upstream"
	"github.com/danielhkuo/idolboard/views"
)

// GalleryArticleLimit is how many thumbnailed articles feed the gallery
const GalleryArticleLimit = 100

type GallerySubject struct {
	SubjectName string                `json:"subject_name"`
	Offset      int                   `json:"offset"`
	Photos      []gallery.ContentItem `json:"photos"`
}

type GalleryResponse struct {
	Locale   locale.Locale    `json:"locale"`
	Total    int              `json:"total"`
	Subjects []GallerySubject `json:"subjects"`
}

type PhotoResponse struct {
	Open  bool           `json:"open"`
	Photo *gallery.Photo `json:"photo,omitempty"`
	Total int            `json:"total"`
	Prev  int            `json:"prev"`
	Next  int            `json:"next"`
}

type GalleryHandler struct {
	api *upstream.Client
}

func NewGalleryHandler(api *upstream.Client) *GalleryHandler {
	return &GalleryHandler{api: api}
}

// load fetches thumbnailed articles and aggregates them. A failed fetch is an
// empty gallery.
func (h *GalleryHandler) load(r *http.Request, loc locale.Locale) []gallery.SubjectGroup {
	articles, err := h.api.ListArticles(r.Context(), upstream.ArticleQuery{
		Limit:        GalleryArticleLimit,
		HasThumbnail: true,
	})
	if err != nil {
		degrade(r, "gallery articles", err)
	}
	return gallery.Aggregate(views.ContentItems(loc, articles))
}

// GetGallery handles GET /api/{locale}/gallery
func (h *GalleryHandler) GetGallery(w http.ResponseWriter, r *http.Request) {
	loc, ok := pathLocale(w, r)
	if !ok {
		return
	}

	groups := h.load(r, loc)
	offsets := gallery.Offsets(groups)

	resp := GalleryResponse{
		Locale:   loc,
		Subjects: make([]GallerySubject, 0, len(groups)),
	}
	for i, g := range groups {
		resp.Subjects = append(resp.Subjects, GallerySubject{
			SubjectName: g.SubjectName,
			Offset:      offsets[i],
			Photos:      g.Photos,
		})
		resp.Total += len(g.Photos)
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetPhoto handles GET /api/{locale}/gallery/photos/{index}. An optional
// ?key= applies a lightbox key press (ArrowLeft, ArrowRight, Escape) to the
// opened photo.
func (h *GalleryHandler) GetPhoto(w http.ResponseWriter, r *http.Request) {
	loc, ok := pathLocale(w, r)
	if !ok {
		return
	}
	index, err := strconv.Atoi(r.PathValue("index"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid index")
		return
	}

	photos := gallery.Flatten(h.load(r, loc))
	nav := gallery.NewNavigator(len(photos))

	if err := nav.Open(index); err != nil {
		if errors.Is(err, gallery.ErrIndexOutOfRange) {
			middleware.ErrorResponse(w, http.StatusNotFound, "Photo not found")
			return
		}
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if key := r.URL.Query().Get("key"); key != "" {
		if !nav.HandleKey(key) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Unsupported key")
			return
		}
	}

	resp := PhotoResponse{Total: len(photos), Prev: -1, Next: -1}
	if cur, open := nav.Current(); open {
		resp.Open = true
		resp.Photo = &photos[cur]
		resp.Prev, resp.Next = gallery.Neighbors(cur, len(photos))
	}

	middleware.JSONResponse(w, http.StatusOK, resp)
}
