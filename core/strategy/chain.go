package strategy

import (
	"context"
	"reflect"
	"slices"
)

// Statistic is the result of a chain run.
type Statistic[T any] struct {
	// Subject is the final, possibly transformed, subject.
	Subject T
	// Applied lists the concrete unit types that processed the subject, in order.
	Applied []reflect.Type
}

// AppliedNames returns the names of the applied unit types.
func (s Statistic[T]) AppliedNames() []string {
	names := make([]string, 0, len(s.Applied))
	for _, t := range s.Applied {
		names = append(names, typeName(t))
	}
	return names
}

// Chain executes units in registration order.
type Chain[T any] struct {
	units []Strategy[T]
}

// NewChain creates a chain from the given units. Nil units are ignored.
func NewChain[T any](units ...Strategy[T]) *Chain[T] {
	c := &Chain[T]{units: make([]Strategy[T], 0, len(units))}
	for _, u := range units {
		if u != nil {
			c.units = append(c.units, u)
		}
	}
	return c
}

// Len returns the number of units in the chain.
func (c *Chain[T]) Len() int {
	return len(c.units)
}

// Units returns a copy of the chain's units.
func (c *Chain[T]) Units() []Strategy[T] {
	return slices.Clone(c.units)
}

// Run applies the chain to subject. params are passed to every Check call.
func (c *Chain[T]) Run(ctx context.Context, subject T, params ...any) (Statistic[T], error) {
	stat := Statistic[T]{Subject: subject}

	for _, unit := range c.units {
		cfg := unit.Check(stat.Subject, params...)
		if !cfg.IsApplicable() {
			continue
		}

		next, err := unit.Process(ctx, stat.Subject, cfg)
		if err != nil {
			return stat, err
		}

		stat.Subject = next
		stat.Applied = append(stat.Applied, unitType(unit))

		if cfg.Terminates() {
			break
		}
	}

	return stat, nil
}

func unitType[T any](unit Strategy[T]) reflect.Type {
	if t, ok := unit.(Typed); ok {
		return t.UnitType()
	}
	return reflect.TypeOf(unit)
}

func typeName(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.Name()
	}
	return t.String()
}
