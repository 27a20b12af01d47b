// Package main provides the sdvalidate CLI for checking JSON-LD structured data.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/jonathan/structured-data-validator/internal/config"
)

var (
	configPath string
	logLevel   string

	// appConfig is resolved once per invocation from defaults, the config file and the environment.
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sdvalidate",
	Short: "Structured data (JSON-LD) validator",
	Long: "sdvalidate checks JSON-LD documents against the Schema.org types that search engines " +
		"recognize for rich results, reporting hard errors and advisory warnings.",
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML or JSON config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn or error")
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}
	appConfig = cfg

	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)
	return nil
}

// currentConfig returns a copy of the resolved config, or the defaults when no
// config was loaded.
func currentConfig() config.Config {
	if appConfig == nil {
		return config.Defaults()
	}
	return *appConfig
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
