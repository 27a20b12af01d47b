package main

import (
	"bytes"
	"io"
	"log/slog"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/structured-data-validator/internal/config"
	"github.com/jonathan/structured-data-validator/internal/registry"
	"github.com/jonathan/structured-data-validator/internal/schemas"
)

func TestListSchemas(t *testing.T) {
	var buf bytes.Buffer
	reg := registry.Default()

	require.NoError(t, listSchemas(&buf, reg))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, len(reg.Names()))
	assert.True(t, strings.HasPrefix(lines[0], reg.Names()[0]))
	assert.Contains(t, buf.String(), "https://developers.google.com/")
	assert.NotContains(t, buf.String(), "fallback")
}

func TestExportSchema(t *testing.T) {
	data, err := exportSchema(registry.Default(), registry.TypeFAQPage)
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.Equal(t, registry.TypeFAQPage, schema["title"])
	assert.True(t, bytes.HasSuffix(data, []byte("\n")))

	_, err = exportSchema(registry.Default(), "Recipe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestCheckDocument(t *testing.T) {
	reg := registry.Default()

	require.NoError(t, checkDocument(reg, registry.TypeOrganization, validOrg))

	err := checkDocument(reg, registry.TypeProduct, invalidDoc)
	require.Error(t, err)
	var verr *schemas.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.NotEmpty(t, verr.Errors)

	err = checkDocument(reg, "Recipe", validOrg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown type")
}

func TestVerifyOutput(t *testing.T) {
	tests := []struct {
		name    string
		content string
		batch   bool
		wantErr bool
	}{
		{"result", `{"errors":[],"warnings":[{"path":"root","message":"m"}]}`, false, false},
		{"result missing message", `{"errors":[{"path":"root"}],"warnings":[]}`, false, true},
		{"batch", `{"blocks":[{"index":0,"result":{"errors":[],"warnings":[]}}]}`, true, false},
		{"batch given as result", `{"blocks":[]}`, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeInput(t, "out.json", tt.content)
			err := verifyOutput(path, tt.batch)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.Error(t, verifyOutput(filepath.Join(t.TempDir(), "missing.json"), false))
}

func TestServerConfig(t *testing.T) {
	cfg := config.Defaults()
	cfg.Port = 9999
	cfg.CheckHTTPURLs = config.Bool(false)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sc := serverConfig(cfg, logger)

	assert.Equal(t, 9999, sc.Port)
	assert.Equal(t, cfg.MaxBodyBytes, sc.MaxBodyBytes)
	assert.True(t, sc.Options.SkipHTTPURLCheck)
	assert.False(t, sc.Options.SkipRecommendedCheck)
	assert.Same(t, logger, sc.Logger)
}
