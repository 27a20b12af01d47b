// Package config provides configuration loading and validation for the CLI and the HTTP server.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/jonathan/structured-data-validator/internal/diagnostics"
	"github.com/jonathan/structured-data-validator/internal/validation"
)

// Config represents settings that can be loaded from a YAML or JSON file and overridden
// from the environment. Check toggles are pointers so that an explicit false survives merging.
type Config struct {
	// Checks
	CheckHTTPURLs        *bool  `yaml:"check_http_urls,omitempty" json:"check_http_urls,omitempty"`
	CheckRecommended     *bool  `yaml:"check_recommended,omitempty" json:"check_recommended,omitempty"`
	GraphRecommended     *bool  `yaml:"graph_recommended,omitempty" json:"graph_recommended,omitempty"`
	FallbackUnknownTypes *bool  `yaml:"fallback_unknown_types,omitempty" json:"fallback_unknown_types,omitempty"`
	DocLinks             string `yaml:"doc_links,omitempty" json:"doc_links,omitempty" validate:"omitempty,oneof=html text none"`

	// Runtime
	Concurrency  int    `yaml:"concurrency,omitempty" json:"concurrency,omitempty" validate:"gte=0,lte=1024"`
	LogLevel     string `yaml:"log_level,omitempty" json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Format       string `yaml:"format,omitempty" json:"format,omitempty" validate:"omitempty,oneof=json text"`
	Port         int    `yaml:"port,omitempty" json:"port,omitempty" validate:"gte=0,lte=65535"`
	MaxBodyBytes int64  `yaml:"max_body_bytes,omitempty" json:"max_body_bytes,omitempty" validate:"gte=0"`
}

// Defaults returns the settings used when nothing is configured.
func Defaults() Config {
	return Config{
		CheckHTTPURLs:        Bool(true),
		CheckRecommended:     Bool(true),
		GraphRecommended:     Bool(false),
		FallbackUnknownTypes: Bool(false),
		DocLinks:             string(diagnostics.DocLinksHTML),
		LogLevel:             "info",
		Format:               "text",
		Port:                 8080,
		MaxBodyBytes:         1 << 20,
	}
}

// Bool returns a pointer to b.
func Bool(b bool) *bool {
	return &b
}

// LoadConfig loads configuration from a YAML file. JSON files are accepted too,
// since the YAML decoder reads JSON documents.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.CheckHTTPURLs == nil {
		result.CheckHTTPURLs = defaults.CheckHTTPURLs
	}
	if result.CheckRecommended == nil {
		result.CheckRecommended = defaults.CheckRecommended
	}
	if result.GraphRecommended == nil {
		result.GraphRecommended = defaults.GraphRecommended
	}
	if result.FallbackUnknownTypes == nil {
		result.FallbackUnknownTypes = defaults.FallbackUnknownTypes
	}

	if result.DocLinks == "" {
		result.DocLinks = defaults.DocLinks
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Format == "" {
		result.Format = defaults.Format
	}

	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxBodyBytes == 0 {
		result.MaxBodyBytes = defaults.MaxBodyBytes
	}

	return result
}

// SlogLevel maps LogLevel onto a slog level. Unknown values mean info.
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// ToOptions converts the check settings into validation options. Unset toggles
// take the library defaults.
func (c *Config) ToOptions() validation.Options {
	opts := validation.DefaultOptions()
	if c.CheckHTTPURLs != nil {
		opts.SkipHTTPURLCheck = !*c.CheckHTTPURLs
	}
	if c.CheckRecommended != nil {
		opts.SkipRecommendedCheck = !*c.CheckRecommended
	}
	if c.GraphRecommended != nil {
		opts.GraphItemsNeedRecommended = *c.GraphRecommended
	}
	if c.FallbackUnknownTypes != nil {
		opts.UseFallbackForUnknownTypes = *c.FallbackUnknownTypes
	}
	if c.DocLinks != "" {
		opts.DocLinks = diagnostics.DocLinkStyle(c.DocLinks)
	}
	opts.Concurrency = c.Concurrency
	return opts
}
