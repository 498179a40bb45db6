package validator

import (
	"errors"
	"strings"
)

var (
	// ErrNilEntity is returned when Validate is called with a nil entity.
	ErrNilEntity = errors.New("validator: entity is nil")

	// ErrTypeMismatch is returned when a rule receives an entity of a foreign type.
	ErrTypeMismatch = errors.New("validator: entity type does not match rule target")

	// ErrNotStruct is returned when ValidateStruct receives anything but a struct or a non-nil pointer to one.
	ErrNotStruct = errors.New("validator: value is not a struct")

	// ErrUnknownTag is returned when a `validate` tag names an unregistered rule.
	ErrUnknownTag = errors.New("validator: unknown tag rule")
)

// FieldError describes a single failed tag rule.
type FieldError struct {
	Field   string   // Dotted path of the field, e.g. "Address.City"
	Key     string   // Message key, e.g. "validation.required"
	Message string   // English fallback text
	Params  []string // Tag rule parameters
}

// Error implements the error interface.
func (e FieldError) Error() string {
	return e.Field + ": " + e.Message
}

// FieldErrors collects every tag violation of a struct.
type FieldErrors []FieldError

// Error implements the error interface.
func (e FieldErrors) Error() string {
	msgs := make([]string, len(e))
	for i, fe := range e {
		msgs[i] = fe.Error()
	}
	return strings.Join(msgs, "; ")
}

// Fields returns the paths of the failed fields in validation order.
func (e FieldErrors) Fields() []string {
	fields := make([]string, len(e))
	for i, fe := range e {
		fields[i] = fe.Field
	}
	return fields
}

// Has reports whether field failed any rule.
func (e FieldErrors) Has(field string) bool {
	for _, fe := range e {
		if fe.Field == field {
			return true
		}
	}
	return false
}
