package sanitizer

import (
	"context"
	"reflect"

	"github.com/dmitrymomot/apicore/core/strategy"
)

// unit sanitizes struct pointers in a strategy chain.
type unit struct{}

// Unit returns a chain unit applying SanitizeStruct to pointer-to-struct subjects.
// Other subjects are skipped.
func Unit() strategy.Strategy[any] {
	return unit{}
}

func (unit) Check(subject any, params ...any) strategy.Config[any] {
	rv := reflect.ValueOf(subject)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return strategy.Skip(subject)
	}
	return strategy.Applicable(subject, params...)
}

func (unit) Process(_ context.Context, subject any, _ strategy.Config[any]) (any, error) {
	return subject, SanitizeStruct(subject)
}
