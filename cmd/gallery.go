// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/idolboard/gallery"
	"github.com/danielhkuo/idolboard/locale"
	"github.com/danielhkuo/idolboard/upstream"
	"github.com/danielhkuo/idolboard/views"
)

// galleryPreview is the YAML document the gallery command prints
type galleryPreview struct {
	Locale   locale.Locale          `yaml:"locale"`
	Articles int                    `yaml:"articles"`
	Photos   int                    `yaml:"photos"`
	Subjects []gallery.SubjectGroup `yaml:"subjects"`
}

func newGalleryCmd() *cobra.Command {
	var apiURL, loc string
	var limit int

	cmd := &cobra.Command{
		Use:   "gallery",
		Short: "Print the photo gallery as YAML",
		Long: `Fetches thumbnailed articles from the upstream API, groups them by subject
the way the gallery page does, and prints the result as YAML.`,
		Example: `  # Korean gallery from the 100 latest articles
  idolboard gallery --api http://localhost:8000

  # English subject names, smaller sample
  idolboard gallery --locale en --limit 20`,
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := locale.Parse(loc)
			if err != nil {
				return err
			}
			if limit <= 0 {
				return fmt.Errorf("--limit must be positive, got %d", limit)
			}

			api, err := newClient(apiURL)
			if err != nil {
				return err
			}

			articles, err := api.ListArticles(cmd.Context(), upstream.ArticleQuery{
				Limit:        limit,
				HasThumbnail: true,
			})
			if err != nil {
				return fmt.Errorf("failed to fetch articles: %w", err)
			}

			groups := gallery.Aggregate(views.ContentItems(l, articles))
			out := galleryPreview{
				Locale:   l,
				Articles: len(articles),
				Photos:   len(gallery.Flatten(groups)),
				Subjects: groups,
			}

			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			defer enc.Close()
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&apiURL, "api", "", "Upstream API base URL (default $FASTAPI_URL)")
	cmd.Flags().StringVarP(&loc, "locale", "l", string(locale.Korean), "Locale for subject names and titles (ko or en)")
	cmd.Flags().IntVarP(&limit, "limit", "n", 100, "Number of articles to aggregate")

	return cmd
}
