//nolint:revive // types is a standard Go package name pattern
package types

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldError describes one missing or malformed input field
type FieldError struct {
	Field string
	Tag   string
}

// ValidationError is returned when a required CV field is absent or malformed.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s (%s)", f.Field, f.Tag))
	}
	return fmt.Sprintf("validation error: invalid fields: %s", strings.Join(parts, ", "))
}

var cvValidator = newCVValidator()

func newCVValidator() *validator.Validate {
	v := validator.New()
	// Report JSON field paths (profile.first_name) rather than Go names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the record for required fields using the validator.
// A nil error means every renderer can consume the record.
func (r *CVRecord) Validate() error {
	err := cvValidator.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	result := &ValidationError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		// Namespace is "CVRecord.profile.first_name"; drop the root type.
		field := fe.Namespace()
		if idx := strings.Index(field, "."); idx >= 0 {
			field = field[idx+1:]
		}
		result.Fields = append(result.Fields, FieldError{Field: field, Tag: fe.Tag()})
	}
	return result
}
