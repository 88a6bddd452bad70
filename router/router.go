// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/idolboard/carousel"
	"github.com/danielhkuo/idolboard/cliparse"
	"github.com/danielhkuo/idolboard/handlers"
	"github.com/danielhkuo/idolboard/middleware"
	"github.com/danielhkuo/idolboard/upstream"
	"github.com/danielhkuo/idolboard/views"
)

// NewRouter wires every route. engineOpts apply to each per-locale carousel
// engine. The returned func disposes the engines and must be called on
// shutdown.
func NewRouter(api *upstream.Client, cfg cliparse.Config, engineOpts ...carousel.Option) (*http.ServeMux, func()) {
	mux := http.NewServeMux()

	render := views.NewRenderer(nil)

	// Initialize handlers
	contentHandler := handlers.NewContentHandler(api, render, cfg)
	directoryHandler := handlers.NewDirectoryHandler(api, render)
	galleryHandler := handlers.NewGalleryHandler(api)
	carouselHandler := handlers.NewCarouselHandler(api, func() *carousel.Engine {
		return carousel.New(cfg.Carousel(), engineOpts...)
	})
	adminHandler := handlers.NewAdminHandler(api)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	mux.HandleFunc("GET /api/locale", middleware.WithLogging(contentHandler.GetLocale))

	// Browsing (public, per locale)
	mux.HandleFunc("GET /api/{locale}/home", middleware.WithLogging(contentHandler.Home))
	mux.HandleFunc("GET /api/{locale}/articles", middleware.WithLogging(contentHandler.ListArticles))
	mux.HandleFunc("GET /api/{locale}/articles/{id}", middleware.WithLogging(contentHandler.GetArticle))
	mux.HandleFunc("GET /api/{locale}/search", middleware.WithLogging(contentHandler.Search))

	// Directory
	mux.HandleFunc("GET /api/{locale}/artists", middleware.WithLogging(directoryHandler.ListDirectory))
	mux.HandleFunc("GET /api/{locale}/artists/{id}", middleware.WithLogging(directoryHandler.GetArtist))
	mux.HandleFunc("GET /api/{locale}/groups/{id}", middleware.WithLogging(directoryHandler.GetGroup))

	// Gallery
	mux.HandleFunc("GET /api/{locale}/gallery", middleware.WithLogging(galleryHandler.GetGallery))
	mux.HandleFunc("GET /api/{locale}/gallery/photos/{index}", middleware.WithLogging(galleryHandler.GetPhoto))

	// Carousel
	mux.HandleFunc("GET /api/{locale}/carousel", middleware.WithLogging(carouselHandler.GetCarousel))
	mux.HandleFunc("GET /api/{locale}/carousel/stream", middleware.WithLogging(carouselHandler.Stream))

	// Admin (editor tools)
	mux.HandleFunc("GET /api/admin/groups", middleware.WithLogging(adminHandler.ListGroups))
	mux.HandleFunc("PATCH /api/admin/groups/{id}", middleware.WithLogging(adminHandler.UpdateGroup))
	mux.HandleFunc("GET /api/admin/mappings", middleware.WithLogging(adminHandler.ListMappings))
	mux.HandleFunc("POST /api/admin/mappings", middleware.WithLogging(adminHandler.CreateMapping))
	mux.HandleFunc("DELETE /api/admin/mappings/{id}", middleware.WithLogging(adminHandler.DeleteMapping))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("idolboard API v1"))
	})

	return mux, carouselHandler.Close
}
