package codec

import (
	"fmt"
	"reflect"
)

// Codec converts models to and from one wire format.
type Codec interface {
	// Format returns the wire format handled by the codec.
	Format() Format

	// Encode serializes v into its wire representation.
	Encode(v any) (string, error)

	// Decode parses data into v, which must be a non-nil pointer.
	// Failures match ErrDeserialization.
	Decode(data string, v any) error
}

// Decode parses data into a fresh value of type T.
func Decode[T any](c Codec, data string) (T, error) {
	var v T
	if err := c.Decode(data, &v); err != nil {
		return v, err
	}
	return v, nil
}

func checkTarget(f Format, v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &DecodeError{Format: f, Err: fmt.Errorf("%w, got %T", ErrInvalidTarget, v)}
	}
	return nil
}
