// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/danielhkuo/idolboard/carousel"
	"github.com/danielhkuo/idolboard/locale"
	"github.com/danielhkuo/idolboard/middleware"
	"github.com/danielhkuo/idolboard/models"
	"github.com/danielhkuo/idolboard/upstream"
	"github.com/danielhkuo/idolboard/views"
)

// streamHeartbeat keeps idle event streams open through proxies
const streamHeartbeat = 15 * time.Second

var errCarouselClosed = errors.New("carousel is shut down")

// streamBuffer is how many states a slow stream client may fall behind
// before updates are dropped
const streamBuffer = 8

type CarouselResponse struct {
	Locale locale.Locale `json:"locale"`
	carousel.State
}

type carouselSlot struct {
	engine      *carousel.Engine
	fingerprint string
}

// CarouselHandler owns one rotation engine per locale. An engine is
// re-initialized only when the set of artists and groups changes.
type CarouselHandler struct {
	api       *upstream.Client
	newEngine func() *carousel.Engine

	mu     sync.Mutex
	slots  map[locale.Locale]*carouselSlot
	closed bool
	done   chan struct{}
}

func NewCarouselHandler(api *upstream.Client, newEngine func() *carousel.Engine) *CarouselHandler {
	return &CarouselHandler{
		api:       api,
		newEngine: newEngine,
		slots:     make(map[locale.Locale]*carouselSlot),
		done:      make(chan struct{}),
	}
}

// fingerprint identifies an item list by kind and id, in order
func fingerprint(items []carousel.DisplayItem) string {
	var b strings.Builder
	for _, it := range items {
		fmt.Fprintf(&b, "%s:%d,", it.Kind, it.ID)
	}
	return b.String()
}

// items fetches the carousel pool. complete is false when either fetch failed.
func (h *CarouselHandler) items(r *http.Request, loc locale.Locale) (items []carousel.DisplayItem, complete bool) {
	var artists []models.Artist
	var groups []models.Group
	var artistErr, groupErr error

	var wg sync.WaitGroup
	wg.Go(func() {
		artists, artistErr = h.api.ListArtists(r.Context(), upstream.ArtistQuery{Limit: directoryArtistLimit})
	})
	wg.Go(func() {
		groups, groupErr = h.api.ListGroups(r.Context(), upstream.GroupQuery{Limit: directoryGroupLimit})
	})
	wg.Wait()

	if artistErr != nil {
		degrade(r, "carousel artists", artistErr)
	}
	if groupErr != nil {
		degrade(r, "carousel groups", groupErr)
	}
	return views.DisplayItems(loc, artists, groups), artistErr == nil && groupErr == nil
}

// engine returns the locale's engine, creating or re-initializing it when
// the fetched items differ from what it was built with. A partial fetch never
// replaces a running pool.
func (h *CarouselHandler) engine(r *http.Request, loc locale.Locale) (*carousel.Engine, error) {
	items, complete := h.items(r, loc)
	fp := fingerprint(items)

	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, errCarouselClosed
	}

	slot, ok := h.slots[loc]
	if !ok {
		slot = &carouselSlot{engine: h.newEngine()}
		slot.engine.Initialize(items)
		slot.fingerprint = fp
		h.slots[loc] = slot
		return slot.engine, nil
	}

	if complete && slot.fingerprint != fp {
		slog.Info("carousel pool changed",
			"request_id", middleware.RequestID(r.Context()),
			"locale", loc,
			"items", len(items),
		)
		slot.engine.Initialize(items)
		slot.fingerprint = fp
	}
	return slot.engine, nil
}

// GetCarousel handles GET /api/{locale}/carousel
func (h *CarouselHandler) GetCarousel(w http.ResponseWriter, r *http.Request) {
	loc, ok := pathLocale(w, r)
	if !ok {
		return
	}

	engine, err := h.engine(r, loc)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	middleware.JSONResponse(w, http.StatusOK, CarouselResponse{
		Locale: loc,
		State:  engine.Snapshot(),
	})
}

// Stream handles GET /api/{locale}/carousel/stream. It sends the current
// state, then every change, as server-sent "state" events.
func (h *CarouselHandler) Stream(w http.ResponseWriter, r *http.Request) {
	loc, ok := pathLocale(w, r)
	if !ok {
		return
	}

	flusher, ok := w.(http.Flusher)
	if !ok {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Streaming unsupported")
		return
	}

	engine, err := h.engine(r, loc)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, err.Error())
		return
	}

	updates := make(chan carousel.State, streamBuffer)
	unsubscribe := engine.Subscribe(func(s carousel.State) {
		// Listeners must not block the engine
		select {
		case updates <- s:
		default:
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)

	if err := writeEvent(w, loc, engine.Snapshot()); err != nil {
		return
	}
	flusher.Flush()

	heartbeat := time.NewTicker(streamHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-h.done:
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(w, ": keep-alive\n\n"); err != nil {
				return
			}
			flusher.Flush()
		case s := <-updates:
			if err := writeEvent(w, loc, s); err != nil {
				return
			}
			flusher.Flush()
		}
	}
}

func writeEvent(w http.ResponseWriter, loc locale.Locale, s carousel.State) error {
	data, err := json.Marshal(CarouselResponse{Locale: loc, State: s})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "event: state\ndata: %s\n\n", data)
	return err
}

// Close disposes every engine and ends open streams. Later requests get 503.
func (h *CarouselHandler) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return
	}
	h.closed = true
	close(h.done)
	for _, slot := range h.slots {
		slot.engine.Dispose()
	}
	clear(h.slots)
}
