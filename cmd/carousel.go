// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/idolboard/carousel"
	"github.com/danielhkuo/idolboard/locale"
	"github.com/danielhkuo/idolboard/models"
	"github.com/danielhkuo/idolboard/upstream"
	"github.com/danielhkuo/idolboard/views"
)

// Pool sizes match the carousel the server builds
const (
	carouselArtistLimit = 100
	carouselGroupLimit  = 50
)

type carouselTile struct {
	Name string `yaml:"name"`
	Kind string `yaml:"kind"`
	Href string `yaml:"href"`
}

type carouselPage struct {
	Page   int            `yaml:"page"`
	Cursor int            `yaml:"cursor"`
	Tiles  []carouselTile `yaml:"tiles"`
}

type carouselPreview struct {
	Locale   locale.Locale  `yaml:"locale"`
	PoolSize int            `yaml:"pool_size"`
	Rotating bool           `yaml:"rotating"`
	Pages    []carouselPage `yaml:"pages"`
}

func newCarouselCmd() *cobra.Command {
	var apiURL, loc string
	var pages, pageSize int
	var seed uint64

	cmd := &cobra.Command{
		Use:   "carousel",
		Short: "Print successive carousel pages as YAML",
		Long: `Fetches artists and groups from the upstream API, shuffles them into a
carousel pool and prints the pages the carousel would show, one rotation
at a time. Time is simulated; the command returns immediately.`,
		Example: `  # First three pages of the Korean carousel
  idolboard carousel --api http://localhost:8000

  # A full cycle of a small carousel, reproducibly
  idolboard carousel --page-size 5 --pages 10 --seed 42`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := locale.Parse(loc)
			if err != nil {
				return err
			}
			if pages <= 0 || pageSize <= 0 {
				return fmt.Errorf("--pages and --page-size must be positive")
			}

			api, err := newClient(apiURL)
			if err != nil {
				return err
			}

			var artists []models.Artist
			var groups []models.Group
			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() error {
				var err error
				artists, err = api.ListArtists(ctx, upstream.ArtistQuery{Limit: carouselArtistLimit})
				return err
			})
			g.Go(func() error {
				var err error
				groups, err = api.ListGroups(ctx, upstream.GroupQuery{Limit: carouselGroupLimit})
				return err
			})
			if err := g.Wait(); err != nil {
				return fmt.Errorf("failed to fetch carousel items: %w", err)
			}

			cfg := carousel.DefaultConfig()
			cfg.PageSize = pageSize

			sched := carousel.NewManualScheduler()
			opts := []carousel.Option{carousel.WithScheduler(sched)}
			if cmd.Flags().Changed("seed") {
				opts = append(opts, carousel.WithRand(rand.New(rand.NewPCG(seed, seed))))
			}
			engine := carousel.New(cfg, opts...)
			defer engine.Dispose()

			engine.Initialize(views.DisplayItems(l, artists, groups))

			first := engine.Snapshot()
			out := carouselPreview{
				Locale:   l,
				PoolSize: first.PoolSize,
				Rotating: first.Rotating,
			}
			for i := range pages {
				st := engine.Snapshot()
				out.Pages = append(out.Pages, previewPage(i+1, st))
				if !st.Rotating {
					break
				}
				// Settle just after the next fade completes
				sched.Advance(time.Duration(i+1)*cfg.Interval + cfg.Fade - sched.Now())
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "", "Upstream API base URL (default $FASTAPI_URL)")
	cmd.Flags().StringVarP(&loc, "locale", "l", string(locale.Korean), "Locale for names and links (ko or en)")
	cmd.Flags().IntVarP(&pages, "pages", "n", 3, "Number of pages to print")
	cmd.Flags().IntVar(&pageSize, "page-size", carousel.DefaultPageSize, "Items per page")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Shuffle seed (random when unset)")

	return cmd
}

func previewPage(n int, st carousel.State) carouselPage {
	p := carouselPage{Page: n, Cursor: st.Cursor, Tiles: make([]carouselTile, 0, len(st.Page))}
	for _, it := range st.Page {
		p.Tiles = append(p.Tiles, carouselTile{Name: it.Name, Kind: it.Kind.String(), Href: it.Href})
	}
	return p
}
