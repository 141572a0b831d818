package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrMalformedManifest indicates the manifest could not be parsed or is
	// missing a required field
	ErrMalformedManifest = errors.New("malformed manifest")

	// ErrMissingMetadata indicates a declared example has no metadata entry
	ErrMissingMetadata = errors.New("missing example metadata")

	// ErrMissingDocScrape indicates a declared example lacks the
	// doc-scrape-examples marker
	ErrMissingDocScrape = errors.New("missing doc-scrape-examples marker")

	// ErrTemplateNotFound indicates the named template is not in the parsed set
	ErrTemplateNotFound = errors.New("template not found")

	// ErrRenderFailed indicates template parsing or execution failed
	ErrRenderFailed = errors.New("render failed")

	// ErrWriteFailed indicates writing the rendered catalog failed
	ErrWriteFailed = errors.New("write failed")
)

// ExampleError represents a validation failure for a single declared example
type ExampleError struct {
	Name string
	Err  error
}

func (e *ExampleError) Error() string {
	return fmt.Sprintf("example %q: %v", e.Name, e.Err)
}

func (e *ExampleError) Unwrap() error {
	return e.Err
}

// NewExampleError creates a new ExampleError
func NewExampleError(name string, err error) *ExampleError {
	return &ExampleError{
		Name: name,
		Err:  err,
	}
}

// FieldError represents a missing required field in a manifest entry.
// Table names the manifest table, Key identifies the entry within it
// (empty for unkeyed entries), and Field names the offending field.
type FieldError struct {
	Table string
	Key   string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Key != "" {
		return fmt.Sprintf("%v: %s %q: required field %q", e.Err, e.Table, e.Key, e.Field)
	}
	return fmt.Sprintf("%v: %s: required field %q", e.Err, e.Table, e.Field)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

// NewFieldError creates a FieldError wrapping ErrMalformedManifest
func NewFieldError(table, key, field string) *FieldError {
	return &FieldError{
		Table: table,
		Key:   key,
		Field: field,
		Err:   ErrMalformedManifest,
	}
}

// TemplateError represents a failure involving a named template
type TemplateError struct {
	Template string
	Err      error
}

func (e *TemplateError) Error() string {
	return fmt.Sprintf("template %s: %v", e.Template, e.Err)
}

func (e *TemplateError) Unwrap() error {
	return e.Err
}

// NewTemplateError creates a new TemplateError
func NewTemplateError(template string, err error) *TemplateError {
	return &TemplateError{
		Template: template,
		Err:      err,
	}
}
