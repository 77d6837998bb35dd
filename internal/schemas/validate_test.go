package schemas

import (
	"errors"
	"path/filepath"
	"testing"

	schemafiles "github.com/jonathan/resume-scorer/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSON_EmbeddedSchemas(t *testing.T) {
	tests := []struct {
		name      string
		schema    string
		jsonFile  string
		wantError bool
	}{
		{"valid job", schemafiles.JobRequirements, "valid_job.json", false},
		{"valid resume", schemafiles.ResumeContent, "valid_resume.json", false},
		{"job missing atsKeywords", schemafiles.JobRequirements, "missing_field.json", true},
		{"job wrong types", schemafiles.JobRequirements, "wrong_type.json", true},
		{"job document as resume", schemafiles.ResumeContent, "valid_job.json", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(tt.schema, filepath.Join("testdata", tt.jsonFile))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "expected ValidationError, got %T: %v", err, err)
			assert.Greater(t, len(validationErr.Errors), 0, "validation error should have at least one field error")
			assert.Equal(t, tt.jsonFile, validationErr.Document)
		})
	}
}

func TestValidateJSON_NonExistentJSON(t *testing.T) {
	err := ValidateJSON(schemafiles.JobRequirements, "testdata/nonexistent.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateDocument_UnknownSchema(t *testing.T) {
	err := ValidateDocument("nope.schema.json", "job", []byte(`{}`))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "nope.schema.json", loadErr.Path)
}

func TestValidateDocument_MalformedJSON(t *testing.T) {
	err := ValidateDocument(schemafiles.ResumeContent, "resume", []byte(`{ invalid json }`))
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "(root)", validationErr.Errors[0].Field)
	assert.Contains(t, validationErr.Errors[0].Message, "malformed JSON")
}

func TestValidateDocument_NotAnObject(t *testing.T) {
	err := ValidateDocument(schemafiles.JobRequirements, "job", []byte(`["Go"]`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job validation failed")
}

func TestValidateDocument_MinimalResume(t *testing.T) {
	assert.NoError(t, ValidateDocument(schemafiles.ResumeContent, "resume", []byte(`{"experience": []}`)))
}

func TestValidateJSONString_Valid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"name": "test"}`

	err := ValidateJSONString(schemaContent, jsonContent)
	assert.NoError(t, err)
}

func TestValidateJSONString_Invalid(t *testing.T) {
	schemaContent := `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"required": ["name"],
		"properties": {
			"name": {"type": "string"}
		}
	}`
	jsonContent := `{"age": 30}`

	err := ValidateJSONString(schemaContent, jsonContent)
	require.Error(t, err)

	validationErr, ok := err.(*ValidationError)
	require.True(t, ok)
	assert.Greater(t, len(validationErr.Errors), 0)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Errors: []FieldError{
			{Field: "name", Message: "is required"},
			{Field: "age", Message: "must be a number"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "name")
	assert.Contains(t, errorMsg, "age")
}
