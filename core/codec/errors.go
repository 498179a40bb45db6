package codec

import (
	"errors"
	"fmt"
)

var (
	// ErrDeserialization is returned when a payload cannot be decoded into the target type.
	ErrDeserialization = errors.New("codec: deserialization failed")

	// ErrSerialization is returned when a model cannot be encoded.
	ErrSerialization = errors.New("codec: serialization failed")

	// ErrUnsupportedFormat is returned when no codec is registered for a format.
	ErrUnsupportedFormat = errors.New("codec: unsupported format")

	// ErrInvalidTarget is returned when the decode target is not a non-nil pointer.
	ErrInvalidTarget = errors.New("codec: decode target must be a non-nil pointer")
)

// DecodeError wraps the underlying parser failure of a decode call.
type DecodeError struct {
	Format Format
	Err    error
}

// Error implements the error interface.
func (e *DecodeError) Error() string {
	return fmt.Sprintf("codec: decode %s: %v", e.Format, e.Err)
}

// Unwrap returns the parser error.
func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Is makes every DecodeError match ErrDeserialization.
func (e *DecodeError) Is(target error) bool {
	return target == ErrDeserialization
}
