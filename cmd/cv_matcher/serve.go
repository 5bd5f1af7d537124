package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonathan/cv-matcher/internal/config"
	"github.com/jonathan/cv-matcher/internal/embedding"
	"github.com/jonathan/cv-matcher/internal/extract"
	"github.com/jonathan/cv-matcher/internal/locations"
	"github.com/jonathan/cv-matcher/internal/match"
	"github.com/jonathan/cv-matcher/internal/server"
	"github.com/jonathan/cv-matcher/internal/upstream"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the job aggregation and CV matching endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if cfg.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	locs, err := locations.Load(cfg.LocationsFile)
	if err != nil {
		return fmt.Errorf("failed to load location catalog: %w", err)
	}

	client := upstream.NewHTTPClient(cfg.FetchTimeout)
	aggregator := upstream.NewAggregator(
		upstream.NewJooble(client, cfg.JoobleURL, cfg.JoobleAPIKey, locs, cfg.MaxJobs),
		upstream.NewJobindex(client, cfg.JobindexURL, cfg.MaxJobs),
		upstream.NewNav(client, cfg.NavURL, cfg.MaxJobs),
	)

	embedder, err := embedding.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.EmbeddingModel)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	defer func() { _ = embedder.Close() }()

	ranker := match.NewRanker(embedder, cfg.SimilarityThreshold)

	srv := server.New(server.Config{Port: cfg.Port}, aggregator, extract.FromUpload, ranker)
	return srv.Start()
}
