// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package cmd

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/danielhkuo/idolboard/upstream"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "idolboard",
		Short: "Bilingual K-entertainment news and idol directory server",
		Long: `idolboard serves Korean and English views of an upstream K-entertainment
content API: articles, the artist and group directory, the photo gallery and
the rotating idol carousel.

Configuration comes from flags, the environment, or a .env file in the
working directory.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newGalleryCmd())
	cmd.AddCommand(newCarouselCmd())

	return cmd
}

// newClient builds an uncached client for the preview commands.
// An empty apiURL falls back to FASTAPI_URL.
func newClient(apiURL string) (*upstream.Client, error) {
	if apiURL == "" {
		apiURL = os.Getenv("FASTAPI_URL")
	}
	return upstream.New(apiURL)
}
