// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/idolboard/cache"
	"github.com/danielhkuo/idolboard/cliparse"
	"github.com/danielhkuo/idolboard/middleware"
	"github.com/danielhkuo/idolboard/router"
	"github.com/danielhkuo/idolboard/upstream"
)

// shutdownTimeout bounds how long in-flight requests get on Ctrl+C
const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve [flags]",
		Short: "Start the API server",
		Long: `Starts the idolboard API server.

Flags:
  -p          port (PORT, default 3318)
  -api        upstream API base URL (FASTAPI_URL, required)
  -t          cache type, sqlite or postgres (CACHE_TYPE, default sqlite)
  -d          cache database URL (CACHE_URL)
  -ttl        cache revalidation window (CACHE_TTL, default 60s)
  -locale     fallback locale, ko or en (DEFAULT_LOCALE, default ko)
  -page-size  carousel page size (CAROUSEL_PAGE_SIZE, default 20)
  -interval   carousel rotation interval (CAROUSEL_INTERVAL, default 4s)
  -fade       carousel fade duration (CAROUSEL_FADE, default 350ms)`,
		Example: `  # Serve against a local upstream with an in-memory cache
  idolboard serve -api http://localhost:8000

  # Share the cache through postgres
  idolboard serve -api http://api:8000 -t postgres -d "postgres://idolboard@db/idolboard?sslmode=disable"`,
		// cliparse owns the flag set so the server keeps one source of truth
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cliparse.ParseFlags(args)
			if errors.Is(err, flag.ErrHelp) {
				return cmd.Help()
			}
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg)
		},
	}

	return cmd
}

func serve(ctx context.Context, cfg cliparse.Config) error {
	store, err := cache.Open(cfg.CacheType, cfg.CacheURL)
	if err != nil {
		return err
	}
	defer store.Close()
	slog.Info("Response cache ready", "type", cfg.CacheType, "ttl", cfg.CacheTTL.String())

	api, err := upstream.New(cfg.APIBaseURL, upstream.WithCache(store, cfg.CacheTTL))
	if err != nil {
		return err
	}

	mux, cleanup := router.NewRouter(api, cfg)

	addr := ":" + strconv.Itoa(cfg.Port)
	server := &http.Server{
		Addr:    addr,
		Handler: middleware.CORS(mux),
	}

	// Start server in goroutine
	serverErr := make(chan error, 1)
	go func() {
		slog.Info("Listening", "port", cfg.Port, "upstream", cfg.APIBaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	// Wait for context cancellation (Ctrl+C) or server error
	select {
	case <-ctx.Done():
		slog.Info("Shutting down server...")
		// Carousel streams never finish on their own
		cleanup()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
			return err
		}
		slog.Info("Server stopped")
		return nil
	case err := <-serverErr:
		cleanup()
		return err
	}
}
