// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/idolboard/locale"
	"github.com/danielhkuo/idolboard/middleware"
	"github.com/danielhkuo/idolboard/upstream"
)

// pathLocale reads {locale}, answering 404 for unsupported values
func pathLocale(w http.ResponseWriter, r *http.Request) (locale.Locale, bool) {
	loc, err := locale.Parse(r.PathValue("locale"))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusNotFound, "Unknown locale")
		return "", false
	}
	return loc, true
}

// pathID reads a positive integer path value
func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid "+name)
		return 0, false
	}
	return id, true
}

// queryInt reads an optional integer query value, clamped to [0, max]
func queryInt(r *http.Request, key string, def, max int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return def
	}
	return min(n, max)
}

// queryID reads an optional positive id; 0 means absent
func queryID(r *http.Request, key string) (int64, bool) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, true
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// upstreamError answers a failed detail fetch: 404 stays 404, anything else
// is a bad gateway
func upstreamError(w http.ResponseWriter, r *http.Request, err error, what string) {
	if upstream.IsNotFound(err) {
		middleware.ErrorResponse(w, http.StatusNotFound, what+" not found")
		return
	}
	slog.Error("upstream request failed",
		"request_id", middleware.RequestID(r.Context()),
		"what", what,
		"error", err,
	)
	middleware.ErrorResponse(w, http.StatusBadGateway, "Upstream unavailable")
}

// degrade logs a failed list fetch; callers continue with an empty list
func degrade(r *http.Request, what string, err error) {
	slog.Warn("list fetch failed, serving empty",
		"request_id", middleware.RequestID(r.Context()),
		"what", what,
		"error", err,
	)
}
