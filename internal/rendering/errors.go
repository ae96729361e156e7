// Package rendering turns a normalized CV record into HTML, PDF and DOCX artifacts.
package rendering

import "fmt"

// TemplateNotFoundError is returned when the named HTML template cannot be resolved.
type TemplateNotFoundError struct {
	Name  string
	Cause error
}

func (e *TemplateNotFoundError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template not found: %s: %v", e.Name, e.Cause)
	}
	return fmt.Sprintf("template not found: %s", e.Name)
}

func (e *TemplateNotFoundError) Unwrap() error {
	return e.Cause
}

// TemplateError represents an error parsing or executing an HTML template
type TemplateError struct {
	Message string
	Cause   error
}

func (e *TemplateError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("template error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("template error: %s", e.Message)
}

func (e *TemplateError) Unwrap() error {
	return e.Cause
}

// SerializationError is returned when a DOCX package cannot be written.
type SerializationError struct {
	Part  string
	Cause error
}

func (e *SerializationError) Error() string {
	if e.Part != "" {
		return fmt.Sprintf("serialization error: %s: %v", e.Part, e.Cause)
	}
	return fmt.Sprintf("serialization error: %v", e.Cause)
}

func (e *SerializationError) Unwrap() error {
	return e.Cause
}

// RasterizeError represents a failure converting HTML to PDF
type RasterizeError struct {
	Message string
	Cause   error
}

func (e *RasterizeError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("rasterize error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("rasterize error: %s", e.Message)
}

func (e *RasterizeError) Unwrap() error {
	return e.Cause
}
