package schemas

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const personSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["person"],
	"properties": {
		"person": {
			"type": "object",
			"required": ["name"],
			"properties": {
				"name": {"type": "string"}
			}
		}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)

	tests := []struct {
		name    string
		json    string
		wantErr bool
	}{
		{"valid", `{"person":{"name":"Ada"}}`, false},
		{"missing nested field", `{"person":{}}`, true},
		{"wrong type", `{"person":{"name":1}}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonPath := writeFile(t, dir, tt.name+".json", tt.json)
			err := ValidateJSON(schemaPath, jsonPath)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type")
			assert.Greater(t, len(validationErr.Errors), 0)
		})
	}
}

func TestValidateJSON_NonExistentFiles(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", personSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"person":{"name":"Ada"}}`)

	err := ValidateJSON(filepath.Join(dir, "nonexistent_schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "nonexistent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSON_MalformedSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "schema.json", `{ invalid json }`)

	err := ValidateJSONBytes(schemaPath, []byte(`{}`))
	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateJSONString(t *testing.T) {
	assert.NoError(t, ValidateJSONString(personSchema, `{"person":{"name":"test"}}`))

	err := ValidateJSONString(personSchema, `{"age": 30}`)
	require.Error(t, err)
	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	require.NotEmpty(t, validationErr.Errors)
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)

	err = ValidateJSONString(personSchema, `{"person": {}}`)
	require.Error(t, err)
	validationErr, ok = err.(*ValidationError)
	require.True(t, ok)
	assert.Equal(t, "person", validationErr.Errors[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "path", Message: "is required"},
			{Field: "line", Message: "must be an integer"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. path: is required")
	assert.Contains(t, errorMsg, "2. line: must be an integer")
}

func TestResolveSchemaPath(t *testing.T) {
	path := ResolveSchemaPath(ResultSchemaPath)
	require.NotEmpty(t, path, "result schema should be found from the package directory")
	assert.True(t, filepath.IsAbs(path))

	assert.Empty(t, ResolveSchemaPath("schemas/does_not_exist.schema.json"))
}

func TestValidateJSONBytes_ResultSchema(t *testing.T) {
	path := ResolveSchemaPath(ResultSchemaPath)
	require.NotEmpty(t, path)

	assert.NoError(t, ValidateJSONBytes(path, []byte(`{"errors":[],"warnings":[]}`)))
	assert.Error(t, ValidateJSONBytes(path, []byte(`{"errors":[{"path":"root"}],"warnings":[]}`)))
}
