package schemas

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonathan/cv-analyzer/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateJSON_SchemaFile(t *testing.T) {
	schemaPath := filepath.Join("testdata", "document_stats.schema.json")

	tests := []struct {
		name      string
		file      string
		wantField string
	}{
		{name: "valid", file: "stats_valid.json"},
		{name: "missing word count", file: "stats_missing_count.json", wantField: "(root)"},
		{name: "word count not a number", file: "stats_wrong_type.json", wantField: "word_count"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateJSON(schemaPath, filepath.Join("testdata", tt.file))
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %T: %v", err, err)
			require.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, tt.wantField, validationErr.Errors[0].Field)
		})
	}
}

func TestValidateJSON_MissingFiles(t *testing.T) {
	schemaPath := filepath.Join("testdata", "document_stats.schema.json")

	err := ValidateJSON(filepath.Join("testdata", "nope.schema.json"), filepath.Join("testdata", "stats_valid.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema file not found")

	err = ValidateJSON(schemaPath, filepath.Join("testdata", "nope.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JSON file not found")
}

func TestValidateJSON_MalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"filename": "cv.pdf",`), 0644))

	err := ValidateJSON(filepath.Join("testdata", "document_stats.schema.json"), path)
	var loadErr *SchemaLoadError
	assert.True(t, errors.As(err, &loadErr), "got %T: %v", err, err)
}

func TestValidate_JobRequirements(t *testing.T) {
	tests := []struct {
		name      string
		json      string
		wantError bool
	}{
		{
			name: "valid requirements",
			json: `{"required_skills": ["Python", "Django"], "preferred_skills": ["Docker"], "minimum_experience": 3}`,
		},
		{
			name: "empty object",
			json: `{}`,
		},
		{
			name:      "negative experience",
			json:      `{"minimum_experience": -1}`,
			wantError: true,
		},
		{
			name:      "skills given as a string",
			json:      `{"required_skills": "Python"}`,
			wantError: true,
		},
		{
			name:      "blank skill",
			json:      `{"required_skills": [""]}`,
			wantError: true,
		},
		{
			name:      "misspelled field",
			json:      `{"required_skill": ["Python"]}`,
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(schemas.JobRequirements, []byte(tt.json))
			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			var validationErr *ValidationError
			require.True(t, errors.As(err, &validationErr), "got %T: %v", err, err)
			assert.NotEmpty(t, validationErr.Errors)
			assert.Equal(t, schemas.JobRequirements, validationErr.Schema)
		})
	}
}

func TestValidate_ReferenceFiles(t *testing.T) {
	assert.NoError(t, Validate(schemas.ScoreDistribution, []byte(`{"scores": [12.5, 70, 99]}`)))
	assert.Error(t, Validate(schemas.ScoreDistribution, []byte(`{"scores": [101]}`)))

	assert.NoError(t, Validate(schemas.Institutions, []byte(`[{"name": "MIT", "rank": 1}]`)))
	assert.Error(t, Validate(schemas.Institutions, []byte(`[{"name": "MIT", "rank": 0}]`)))
}

func TestValidate_UnknownSchema(t *testing.T) {
	err := Validate("nope.schema.json", []byte(`{}`))

	var loadErr *SchemaLoadError
	require.True(t, errors.As(err, &loadErr))
	assert.Equal(t, "nope.schema.json", loadErr.Path)
}

func TestValidateFile_RawDocuments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "docs.json")
	require.NoError(t, os.WriteFile(path, []byte(`[{"filename": "a.pdf", "extracted_text": "hello", "word_count": 1}]`), 0644))

	assert.NoError(t, ValidateFile(schemas.RawDocuments, path))

	err := ValidateFile(schemas.RawDocuments, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString_NestedField(t *testing.T) {
	schemaContent := `{
		"type": "object",
		"properties": {
			"profile": {
				"type": "object",
				"required": ["technical_skills"],
				"properties": {"technical_skills": {"type": "array", "minItems": 1}}
			}
		}
	}`

	assert.NoError(t, ValidateJSONString(schemaContent, `{"profile": {"technical_skills": ["Go"]}}`))

	err := ValidateJSONString(schemaContent, `{"profile": {"technical_skills": []}}`)
	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, "profile.technical_skills", validationErr.Errors[0].Field)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Schema: schemas.AnalysisResult,
		Errors: []FieldError{
			{Field: "overall_score.score_grade", Message: "must be one of the grades"},
			{Field: "status", Message: "is required"},
		},
	}

	msg := err.Error()
	assert.Contains(t, msg, "validation against analysis_result.schema.json failed")
	assert.Contains(t, msg, "1. overall_score.score_grade")
	assert.Contains(t, msg, "2. status")
}
