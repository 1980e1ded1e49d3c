package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/config"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/generation"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/logging"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/pdf"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/server"
	"github.com/brunnokenzokillaruna/careertrackpro-sub000/internal/store"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  "Start an HTTP server exposing generation, PDF download, and render-page endpoints.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("database_url is required (config file or DATABASE_URL)")
	}

	logger := logging.New(verbose || cfg.Verbose)

	st, err := store.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer st.Close()

	orchestrator := generation.NewOrchestrator(st, st, logger)

	srv, err := server.New(server.Config{Port: cfg.Port}, orchestrator, pdf.NewRenderer(), st, logger)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
