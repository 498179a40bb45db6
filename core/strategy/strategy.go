package strategy

import (
	"context"
	"reflect"
)

// Strategy is a single unit of a chain.
type Strategy[T any] interface {
	// Check decides whether the unit applies to subject and how the chain continues.
	Check(subject T, params ...any) Config[T]

	// Process transforms the subject. It runs only when Check reported applicable.
	Process(ctx context.Context, subject T, cfg Config[T]) (T, error)
}

// Func adapts a pair of functions to Strategy.
// A nil CheckFn applies unconditionally; a nil ProcessFn returns the subject unchanged.
type Func[T any] struct {
	CheckFn   func(subject T, params ...any) Config[T]
	ProcessFn func(ctx context.Context, subject T, cfg Config[T]) (T, error)
}

// Check implements Strategy.
func (f Func[T]) Check(subject T, params ...any) Config[T] {
	if f.CheckFn == nil {
		return Applicable(subject, params...)
	}
	return f.CheckFn(subject, params...)
}

// Process implements Strategy.
func (f Func[T]) Process(ctx context.Context, subject T, cfg Config[T]) (T, error) {
	if f.ProcessFn == nil {
		return subject, nil
	}
	return f.ProcessFn(ctx, subject, cfg)
}

// Typed is implemented by units that adapt another value and want that value's type
// recorded in Statistic.Applied instead of their own.
type Typed interface {
	UnitType() reflect.Type
}
