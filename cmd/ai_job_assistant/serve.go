package main

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/config"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/db"
	"github.com/ThalesF01/AI-Job-Application-Assistant/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the summarize, resume, cover letter and interview endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides PORT)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Port = servePort
	}

	ctx := cmd.Context()

	pipe, cleanup := buildPipeline(ctx, cfg)
	defer cleanup()

	store, err := connectStore(ctx, cfg.DatabaseURL)
	if err != nil {
		return err
	}

	srv := server.New(server.Config{
		Port:     cfg.Port,
		Pipeline: pipe,
		Store:    store,
	})
	return srv.Start()
}

// connectStore opens the application history store when DATABASE_URL is
// set. No URL means history stays disabled; a set but unreachable URL is a
// startup error rather than a silent degradation.
func connectStore(ctx context.Context, databaseURL string) (*db.Store, error) {
	if databaseURL == "" {
		log.Println("DATABASE_URL not set; application history disabled")
		return nil, nil
	}

	store, err := db.Connect(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := store.EnsureSchema(ctx); err != nil {
		store.Close()
		return nil, err
	}
	return store, nil
}
