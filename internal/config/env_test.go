package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Setenv(EnvCheckHTTP, "false")
	t.Setenv(EnvGraphRecommended, "1")
	t.Setenv(EnvDocLinks, "TEXT")
	t.Setenv(EnvConcurrency, "8")
	t.Setenv(EnvPort, " 7070 ")
	t.Setenv(EnvCheckRecommended, "not-a-bool")

	cfg := LoadFromEnv()

	require.NotNil(t, cfg.CheckHTTPURLs)
	assert.False(t, *cfg.CheckHTTPURLs)
	require.NotNil(t, cfg.GraphRecommended)
	assert.True(t, *cfg.GraphRecommended)
	assert.Nil(t, cfg.CheckRecommended, "invalid booleans are ignored")
	assert.Equal(t, "text", cfg.DocLinks)
	assert.Equal(t, 8, cfg.Concurrency)
	assert.Equal(t, 7070, cfg.Port)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, "sdv.yaml", "doc_links: none\nport: 9090\ncheck_http_urls: false\n")
	t.Setenv(EnvPort, "7070")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.Port, "environment wins over file")
	assert.Equal(t, "none", cfg.DocLinks, "file wins over defaults")
	require.NotNil(t, cfg.CheckHTTPURLs)
	assert.False(t, *cfg.CheckHTTPURLs)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoad_NoFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Defaults().Port, cfg.Port)
}

func TestLoad_InvalidEnv(t *testing.T) {
	t.Setenv(EnvLogLevel, "loud")

	cfg, err := Load("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/sdv.yaml")
	assert.Error(t, err)
}
