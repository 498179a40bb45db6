package validator

import (
	"context"
	"fmt"
	"reflect"
)

// Rule validates entities of a single type.
type Rule interface {
	// Target returns the entity type the rule applies to. Pointer types are
	// normalized to their element type.
	Target() reflect.Type

	// Priority orders rules of the same target; lower runs first.
	Priority() int

	// Validate returns an error to reject the entity.
	Validate(ctx context.Context, entity any) error
}

// RuleFunc is a Rule built from a typed function.
type RuleFunc[T any] struct {
	priority int
	fn       func(context.Context, T) error
}

// NewRule creates a rule for entities of type T.
// T may be a value or pointer type; both values and pointers of the target are accepted.
func NewRule[T any](priority int, fn func(context.Context, T) error) *RuleFunc[T] {
	return &RuleFunc[T]{priority: priority, fn: fn}
}

// Target implements Rule.
func (r *RuleFunc[T]) Target() reflect.Type {
	return indirect(reflect.TypeFor[T]())
}

// Priority implements Rule.
func (r *RuleFunc[T]) Priority() int {
	return r.priority
}

// Validate implements Rule.
func (r *RuleFunc[T]) Validate(ctx context.Context, entity any) error {
	v, ok := as[T](entity)
	if !ok {
		return fmt.Errorf("%w: want %s, got %T", ErrTypeMismatch, reflect.TypeFor[T](), entity)
	}
	return r.fn(ctx, v)
}

// as converts entity to T, dereferencing or taking the address of the value as needed.
func as[T any](entity any) (T, bool) {
	var zero T
	if v, ok := entity.(T); ok {
		return v, true
	}

	rv := reflect.ValueOf(entity)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
		if v, ok := rv.Interface().(T); ok {
			return v, true
		}
	}

	target := reflect.TypeFor[T]()
	if rv.IsValid() && target.Kind() == reflect.Pointer && rv.Type() == target.Elem() {
		p := reflect.New(target.Elem())
		p.Elem().Set(rv)
		return p.Interface().(T), true
	}
	return zero, false
}

func indirect(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t
}
