// Package schemas provides JSON Schema validation for the parsed job
// descriptions, résumés and analyses the matcher emits.
package schemas

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// Schema files shipped in the repository, relative to its root
const (
	ParsedJDSchema = "schemas/parsed_jd.schema.json"
	ResumeSchema   = "schemas/resume.schema.json"
	AnalysisSchema = "schemas/analysis.schema.json"
)

// maxSearchDepth bounds how many parent directories ResolveSchemaPath climbs
const maxSearchDepth = 3

// compiled caches schemas by absolute path
var compiled sync.Map

// ResolveSchemaPath looks for relativePath in the working directory and then
// in up to maxSearchDepth parents, so commands and tests running from a
// package directory still find the repository's schema files. It returns the
// absolute path of the first hit, or "" when none exists.
func ResolveSchemaPath(relativePath string) string {
	candidate := relativePath
	for depth := 0; depth <= maxSearchDepth; depth++ {
		if absPath, err := filepath.Abs(candidate); err == nil {
			if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
				return absPath
			}
		}
		candidate = filepath.Join("..", candidate)
	}
	return ""
}

// ValidationError lists every schema violation found in a document
type ValidationError struct {
	Errors []FieldError
}

// FieldError is one violation, keyed by its JSON field path
type FieldError struct {
	Field   string
	Message string
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("validation failed:\n")
	for i, fe := range ve.Errors {
		fmt.Fprintf(&sb, "  %d. %s: %s\n", i+1, fe.Field, fe.Message)
	}
	return sb.String()
}

// SchemaLoadError means the schema itself could not be read or compiled
type SchemaLoadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *SchemaLoadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("failed to load schema %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("failed to load schema %s: %s", e.Path, e.Message)
}

func (e *SchemaLoadError) Unwrap() error {
	return e.Cause
}

// ValidateJSON validates a JSON file against a JSON Schema file
func ValidateJSON(schemaPath, jsonPath string) error {
	schema, err := loadSchemaFile(schemaPath)
	if err != nil {
		return err
	}

	jsonAbsPath, err := filepath.Abs(jsonPath)
	if err != nil {
		return fmt.Errorf("failed to resolve JSON path: %w", err)
	}
	data, err := os.ReadFile(jsonAbsPath)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("JSON file not found: %s", jsonAbsPath)
		}
		return fmt.Errorf("failed to read JSON file: %w", err)
	}

	return check(schema, gojsonschema.NewBytesLoader(data), jsonAbsPath)
}

// ValidateJSONString validates JSON string content against schema string content
func ValidateJSONString(schemaContent, jsonContent string) error {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaContent))
	if err != nil {
		return &SchemaLoadError{Path: "(string schema)", Message: "invalid schema", Cause: err}
	}
	return check(schema, gojsonschema.NewStringLoader(jsonContent), "(string document)")
}

// ValidateValue validates the JSON encoding of v against a schema file
func ValidateValue(schemaPath string, v any) error {
	schema, err := loadSchemaFile(schemaPath)
	if err != nil {
		return err
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to marshal value: %w", err)
	}

	return check(schema, gojsonschema.NewBytesLoader(data), "(value)")
}

func loadSchemaFile(schemaPath string) (*gojsonschema.Schema, error) {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve schema path: %w", err)
	}
	if cached, ok := compiled.Load(absPath); ok {
		return cached.(*gojsonschema.Schema), nil
	}
	if _, err := os.Stat(absPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("schema file not found: %s", absPath)
	}

	schema, err := gojsonschema.NewSchema(gojsonschema.NewReferenceLoader("file://" + absPath))
	if err != nil {
		return nil, &SchemaLoadError{Path: absPath, Message: "invalid schema", Cause: err}
	}
	compiled.Store(absPath, schema)
	return schema, nil
}

func check(schema *gojsonschema.Schema, document gojsonschema.JSONLoader, source string) error {
	result, err := schema.Validate(document)
	if err != nil {
		return fmt.Errorf("failed to read document %s: %w", source, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Errors: make([]FieldError, 0, len(result.Errors()))}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if field == "" {
			field = "(root)"
		}
		verr.Errors = append(verr.Errors, FieldError{Field: field, Message: desc.Description()})
	}
	return verr
}
