package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/jonathan/structured-data-validator/internal/config"
	"github.com/jonathan/structured-data-validator/internal/server"
)

var (
	servePort int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long:  `Start an HTTP server that exposes the validator over REST endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func serverConfig(cfg config.Config, logger *slog.Logger) server.Config {
	return server.Config{
		Port:         cfg.Port,
		MaxBodyBytes: cfg.MaxBodyBytes,
		Options:      cfg.ToOptions(),
		Logger:       logger,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := currentConfig()
	if cmd.Flags().Changed("port") {
		cfg.Port = servePort
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(serverConfig(cfg, slog.Default()))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
