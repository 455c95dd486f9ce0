package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError describes the first failing rule of a single field.
type ValidationError struct {
	Field      string
	Kind       Kind
	Message    string
	MessageKey string
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is lets errors.Is match ErrValidationFailed.
func (ve ValidationErrors) Is(target error) bool {
	return target == ErrValidationFailed
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

func (ve ValidationErrors) Has(field string) bool {
	for _, err := range ve {
		if err.Field == field {
			return true
		}
	}
	return false
}

func (ve ValidationErrors) Get(field string) []string {
	var messages []string
	for _, err := range ve {
		if err.Field == field {
			messages = append(messages, err.Message)
		}
	}
	return messages
}

func (ve ValidationErrors) Fields() []string {
	var fields []string
	seen := make(map[string]bool)
	for _, err := range ve {
		if !seen[err.Field] {
			fields = append(fields, err.Field)
			seen[err.Field] = true
		}
	}
	return fields
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Map groups messages by field, the shape used by JSON error details.
func (ve ValidationErrors) Map() map[string][]string {
	if len(ve) == 0 {
		return nil
	}
	m := make(map[string][]string, len(ve))
	for _, err := range ve {
		m[err.Field] = append(m[err.Field], err.Message)
	}
	return m
}

// Field is one input of a multi-field validation.
type Field struct {
	// Name is the resource prefix of the field, e.g. "Password".
	Name string
	// Key names the field in ValidationErrors. Defaults to Name.
	Key     string
	Value   string
	Options []ValueOption
}

// ValidateFields validates every field independently (fail-fast within a
// field, all fields visited) and returns ValidationErrors, or nil when all pass.
func (v *Validator) ValidateFields(fields ...Field) error {
	var errs ValidationErrors

	for _, f := range fields {
		res := v.Validate(f.Name, f.Value, f.Options...)
		if res.OK {
			continue
		}
		key := f.Key
		if key == "" {
			key = f.Name
		}
		errs.Add(ValidationError{
			Field:      key,
			Kind:       res.Kind,
			Message:    res.Message,
			MessageKey: MessageKey(f.Name, res.Kind),
		})
	}

	if errs.IsEmpty() {
		return nil
	}
	return errs
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}

func IsValidationError(err error) bool {
	if err == nil {
		return false
	}

	var validationErr ValidationErrors
	return errors.As(err, &validationErr)
}
