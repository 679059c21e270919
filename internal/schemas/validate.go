// Package schemas provides JSON Schema validation for structured LLM
// responses. Schemas are embedded in the binary so validation never depends
// on the working directory.
package schemas

import (
	_ "embed"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed regeneration_response.schema.json
var regenerationResponseSchema string

// ValidationError represents a schema validation error with field paths
type ValidationError struct {
	Errors []FieldError
}

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// SchemaLoadError represents errors loading or parsing the schema itself
type SchemaLoadError struct {
	Name    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Name, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Name, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

var (
	regenSchemaOnce sync.Once
	regenSchema     *gojsonschema.Schema
	regenSchemaErr  error
)

// compiledRegenerationSchema compiles the embedded schema once per process.
func compiledRegenerationSchema() (*gojsonschema.Schema, error) {
	regenSchemaOnce.Do(func() {
		loader := gojsonschema.NewStringLoader(regenerationResponseSchema)
		regenSchema, regenSchemaErr = gojsonschema.NewSchema(loader)
		if regenSchemaErr != nil {
			regenSchemaErr = &SchemaLoadError{
				Name:    "regeneration_response",
				Message: "embedded schema failed to compile",
				Cause:   regenSchemaErr,
			}
		}
	})
	return regenSchema, regenSchemaErr
}

// ValidateRegenerationResponse validates a raw JSON document against the
// regeneration response schema. Returns nil when valid, a *ValidationError
// listing the offending fields when invalid, and a *SchemaLoadError when the
// document cannot be processed at all.
func ValidateRegenerationResponse(document string) error {
	schema, err := compiledRegenerationSchema()
	if err != nil {
		return err
	}

	result, err := schema.Validate(gojsonschema.NewStringLoader(document))
	if err != nil {
		return &SchemaLoadError{
			Name:    "regeneration_response",
			Message: "document could not be parsed",
			Cause:   err,
		}
	}

	if result.Valid() {
		return nil
	}

	validationErr := &ValidationError{
		Errors: make([]FieldError, 0, len(result.Errors())),
	}

	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		validationErr.Errors = append(validationErr.Errors, FieldError{
			Field:   field,
			Message: desc.Description(),
		})
	}

	return validationErr
}
