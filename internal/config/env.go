package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variables read by LoadFromEnv.
const (
	EnvCheckHTTP            = "SDV_CHECK_HTTP"
	EnvCheckRecommended     = "SDV_CHECK_RECOMMENDED"
	EnvGraphRecommended     = "SDV_GRAPH_RECOMMENDED"
	EnvFallbackUnknownTypes = "SDV_FALLBACK_UNKNOWN_TYPES"
	EnvDocLinks             = "SDV_DOC_LINKS"
	EnvConcurrency          = "SDV_CONCURRENCY"
	EnvLogLevel             = "SDV_LOG_LEVEL"
	EnvFormat               = "SDV_FORMAT"
	EnvPort                 = "SDV_PORT"
	EnvMaxBodyBytes         = "SDV_MAX_BODY_BYTES"
)

// LoadFromEnv returns a Config holding only the values set in the environment.
// Unparseable values are ignored.
func LoadFromEnv() *Config {
	return &Config{
		CheckHTTPURLs:        getEnvBool(EnvCheckHTTP),
		CheckRecommended:     getEnvBool(EnvCheckRecommended),
		GraphRecommended:     getEnvBool(EnvGraphRecommended),
		FallbackUnknownTypes: getEnvBool(EnvFallbackUnknownTypes),
		DocLinks:             strings.ToLower(getEnvString(EnvDocLinks, "")),
		Concurrency:          getEnvInt(EnvConcurrency, 0),
		LogLevel:             strings.ToLower(getEnvString(EnvLogLevel, "")),
		Format:               strings.ToLower(getEnvString(EnvFormat, "")),
		Port:                 getEnvInt(EnvPort, 0),
		MaxBodyBytes:         int64(getEnvInt(EnvMaxBodyBytes, 0)),
	}
}

// Load resolves the effective configuration: environment over file over defaults.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Defaults()

	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			return nil, err
		}
		cfg = fileCfg.MergeWithDefaults(cfg)
	}

	cfg = LoadFromEnv().MergeWithDefaults(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// getEnvString gets an environment variable as a string with a default value.
func getEnvString(key string, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return strings.TrimSpace(value)
	}
	return defaultValue
}

// getEnvInt gets an environment variable as an integer with a default value.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvBool gets an environment variable as a boolean, or nil when unset or invalid.
func getEnvBool(key string) *bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(strings.TrimSpace(value)); err == nil {
			return &boolValue
		}
	}
	return nil
}
