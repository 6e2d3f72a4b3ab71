package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/haikapp/haik/internal/amenity"
	"github.com/haikapp/haik/internal/catalog"
	"github.com/haikapp/haik/internal/httpapi"
)

var (
	serveAddr       string
	serveCountsFile string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the recommendation API over HTTP",
	RunE:  runServe,
}

func setupServeFlags() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
	serveCmd.Flags().StringVar(&serveCountsFile, "counts", "", "amenity counts fixture YAML file")
}

func runServe(_ *cobra.Command, _ []string) error {
	addr := serveAddr
	if addr == "" {
		addr = cfg.Server.Addr
	}

	var searcher amenity.Searcher
	if serveCountsFile != "" {
		var err error
		searcher, err = amenity.LoadFixtureSearcher(serveCountsFile)
		if err != nil {
			return err
		}
	} else {
		searcher = amenity.NewFixtureSearcher(nil)
	}

	prices, err := loadPriceService()
	if err != nil {
		return err
	}

	server := httpapi.NewServer(
		catalog.Riyadh(),
		prices,
		searcher,
		amenity.FetcherConfig{
			RadiusMeters:  cfg.Fetch.RadiusMeters,
			ResultLimit:   cfg.Fetch.ResultLimit,
			MaxConcurrent: cfg.Fetch.MaxConcurrent,
			LookupTimeout: cfg.Fetch.LookupTimeout,
		},
		cfg.Recommend,
	)

	log.Info().Str("addr", addr).Msg("starting HTTP server")
	if err := server.Router().Run(addr); err != nil {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}
