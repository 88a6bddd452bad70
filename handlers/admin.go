// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/idolboard/middleware"
	"github.com/danielhkuo/idolboard/models"
	"github.com/danielhkuo/idolboard/upstream"
)

// adminGroupLimit covers every group on one editor page
const adminGroupLimit = 200

// manualConfidence is recorded for links an editor adds by hand
const manualConfidence = 1.0

var validStatuses = map[string]bool{
	"":                     true,
	models.StatusActive:    true,
	models.StatusHiatus:    true,
	models.StatusDisbanded: true,
	models.StatusSoloOnly:  true,
}

// AdminHandler edits group statuses and article mappings. It has no
// authentication of its own; deploy it behind one.
type AdminHandler struct {
	api *upstream.Client
}

func NewAdminHandler(api *upstream.Client) *AdminHandler {
	return &AdminHandler{api: api}
}

// ListGroups handles GET /api/admin/groups
func (h *AdminHandler) ListGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.api.ListGroups(r.Context(), upstream.GroupQuery{Limit: adminGroupLimit})
	if err != nil {
		degrade(r, "admin groups", err)
		groups = []models.Group{}
	}
	middleware.JSONResponse(w, http.StatusOK, groups)
}

// UpdateGroup handles PATCH /api/admin/groups/{id}
func (h *AdminHandler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	var req models.GroupUpdate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if req.ActivityStatus == nil && req.BioKo == nil && req.BioEn == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "nothing to update")
		return
	}
	if req.ActivityStatus != nil && !validStatuses[*req.ActivityStatus] {
		middleware.ErrorResponse(w, http.StatusBadRequest, "activity_status must be ACTIVE, HIATUS, DISBANDED, SOLO_ONLY or empty")
		return
	}

	group, err := h.api.UpdateGroup(r.Context(), id, req)
	if err != nil {
		upstreamError(w, r, err, "Group")
		return
	}

	slog.Info("group updated",
		"request_id", middleware.RequestID(r.Context()),
		"group_id", id,
		"activity_status", models.Deref(group.ActivityStatus),
	)

	middleware.JSONResponse(w, http.StatusOK, group)
}

// ListMappings handles GET /api/admin/mappings
func (h *AdminHandler) ListMappings(w http.ResponseWriter, r *http.Request) {
	var q upstream.MappingQuery
	var ok bool
	if q.ArticleID, ok = queryID(r, "article_id"); !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid article_id")
		return
	}
	if q.ArtistID, ok = queryID(r, "artist_id"); !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid artist_id")
		return
	}
	if q.GroupID, ok = queryID(r, "group_id"); !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid group_id")
		return
	}

	mappings, err := h.api.ListMappings(r.Context(), q)
	if err != nil {
		degrade(r, "mappings", err)
		mappings = []models.EntityMapping{}
	}
	middleware.JSONResponse(w, http.StatusOK, mappings)
}

// CreateMapping handles POST /api/admin/mappings
func (h *AdminHandler) CreateMapping(w http.ResponseWriter, r *http.Request) {
	var req models.MappingCreate
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	// Validate input
	if req.ArticleID <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "article_id is required")
		return
	}
	if req.ArtistID == nil && req.GroupID == nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "artist_id or group_id is required")
		return
	}
	if (req.ArtistID != nil && *req.ArtistID <= 0) || (req.GroupID != nil && *req.GroupID <= 0) {
		middleware.ErrorResponse(w, http.StatusBadRequest, "ids must be positive")
		return
	}
	if req.ConfidenceScore == nil {
		score := manualConfidence
		req.ConfidenceScore = &score
	}

	created, err := h.api.CreateMapping(r.Context(), req)
	if err != nil {
		upstreamError(w, r, err, "Article")
		return
	}

	slog.Info("mapping created",
		"request_id", middleware.RequestID(r.Context()),
		"article_id", req.ArticleID,
		"created", created.Created,
	)

	middleware.JSONResponse(w, http.StatusCreated, created)
}

// DeleteMapping handles DELETE /api/admin/mappings/{id}
func (h *AdminHandler) DeleteMapping(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r, "id")
	if !ok {
		return
	}

	deleted, err := h.api.DeleteMapping(r.Context(), id)
	if err != nil {
		upstreamError(w, r, err, "Mapping")
		return
	}

	slog.Info("mapping deleted",
		"request_id", middleware.RequestID(r.Context()),
		"mapping_id", id,
	)

	middleware.JSONResponse(w, http.StatusOK, deleted)
}
