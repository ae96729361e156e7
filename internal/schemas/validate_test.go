package schemas

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validCV = `{
	"profile": {"first_name": "Ana", "last_name": "Ruiz", "email": "ana@x.com"},
	"experience": [
		{"company": "Acme", "role": "Engineer", "start_date": "2021-01", "bullets": ["Shipped X"]}
	],
	"education": null,
	"skills": {"languages": ["Go"], "tools": null}
}`

func TestCVRecordSchema_IsValidJSON(t *testing.T) {
	var schema map[string]any
	require.NoError(t, json.Unmarshal([]byte(CVRecordSchema), &schema))
	assert.Equal(t, "object", schema["type"])
}

func TestValidateCV_Valid(t *testing.T) {
	assert.NoError(t, ValidateCV([]byte(validCV)))
}

func TestValidateCV_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		json    string
		message string
	}{
		{
			name:    "missing profile",
			json:    `{"experience": []}`,
			message: "profile",
		},
		{
			name:    "missing email",
			json:    `{"profile": {"first_name": "Ana", "last_name": "Ruiz"}}`,
			message: "email",
		},
		{
			name:    "malformed email",
			json:    `{"profile": {"first_name": "Ana", "last_name": "Ruiz", "email": "not-an-email"}}`,
			message: "email",
		},
		{
			name: "experience without bullets",
			json: `{"profile": {"first_name": "Ana", "last_name": "Ruiz", "email": "ana@x.com"},
				"experience": [{"company": "Acme", "role": "Engineer", "start_date": "2021-01", "bullets": []}]}`,
			message: "1",
		},
		{
			name: "experience start date in wrong format",
			json: `{"profile": {"first_name": "Ana", "last_name": "Ruiz", "email": "ana@x.com"},
				"experience": [{"company": "Acme", "role": "Engineer", "start_date": "Jan 2021", "bullets": ["x"]}]}`,
			message: "pattern",
		},
		{
			name: "experience start date null",
			json: `{"profile": {"first_name": "Ana", "last_name": "Ruiz", "email": "ana@x.com"},
				"experience": [{"company": "Acme", "role": "Engineer", "start_date": null, "bullets": ["x"]}]}`,
			message: "Invalid type",
		},
		{
			name: "end date string still checked against pattern",
			json: `{"profile": {"first_name": "Ana", "last_name": "Ruiz", "email": "ana@x.com"},
				"experience": [{"company": "Acme", "role": "Engineer", "start_date": "2021-01", "end_date": "2022", "bullets": ["x"]}]}`,
			message: "pattern",
		},
		{
			name:    "skills wrong type",
			json:    `{"profile": {"first_name": "Ana", "last_name": "Ruiz", "email": "ana@x.com"}, "skills": ["Go"]}`,
			message: "Invalid type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCV([]byte(tt.json))
			require.Error(t, err)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr, "should be ValidationError, got %T: %v", err, err)
			require.NotEmpty(t, validationErr.Errors)
			assert.Contains(t, validationErr.Error(), tt.message)
		})
	}
}

func TestValidateCV_EmptyOptionalDate(t *testing.T) {
	cv := `{"profile": {"first_name": "Ana", "last_name": "Ruiz", "email": "ana@x.com"},
		"education": [{"degree": "BSc", "institution": "Uni", "start_date": "", "end_date": "2014-06"}]}`
	assert.NoError(t, ValidateCV([]byte(cv)))
}

func TestValidateCV_NullOptionalFields(t *testing.T) {
	cv := `{"profile": {"first_name": "Ana", "last_name": "Ruiz", "email": "ana@x.com",
			"phone": null, "location": null, "linkedin": null, "summary": null},
		"education": [{"degree": "BSc", "institution": "Uni", "location": null, "start_date": null, "end_date": null}],
		"experience": [{"company": "Acme", "role": "Engineer", "location": null,
			"start_date": "2021-01", "end_date": null, "bullets": ["Shipped X"]}],
		"certifications": [{"name": "CKA", "issuer": "CNCF", "date": null, "credential_id": null, "url": null}],
		"projects": [{"name": "ledger", "impact": null, "technologies": null, "url": null}]}`
	assert.NoError(t, ValidateCV([]byte(cv)))
}

func TestValidateCV_MalformedJSON(t *testing.T) {
	err := ValidateCV([]byte("{ invalid json }"))
	require.Error(t, err)

	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateCVFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "cv.json")
	require.NoError(t, os.WriteFile(path, []byte(validCV), 0644))

	assert.NoError(t, ValidateCVFile(path))

	err := ValidateCVFile(filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read CV file")
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
			{Field: "profile", Message: "email is required"},
			{Field: "experience.0", Message: "start_date is required"},
		},
	}

	errorMsg := err.Error()
	assert.Contains(t, errorMsg, "validation failed")
	assert.Contains(t, errorMsg, "1. profile: email is required")
	assert.Contains(t, errorMsg, "2. experience.0")
}
