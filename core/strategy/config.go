package strategy

import "slices"

// Mode controls chain continuation after an applicable unit runs.
type Mode int

const (
	// ModeNormal continues with the next unit.
	ModeNormal Mode = iota
	// ModeTerminateAfter stops the chain after the current unit.
	ModeTerminateAfter
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeTerminateAfter:
		return "terminate_after"
	default:
		return "unknown"
	}
}

// Config is the decision produced by a unit's Check. It is immutable once built.
type Config[T any] struct {
	applicable bool
	subject    T
	mode       Mode
	params     []any
}

// NewConfig builds a Config from its parts.
func NewConfig[T any](applicable bool, subject T, mode Mode, params ...any) Config[T] {
	return Config[T]{
		applicable: applicable,
		subject:    subject,
		mode:       mode,
		params:     slices.Clone(params),
	}
}

// Applicable marks the subject for processing, continuing the chain afterwards.
func Applicable[T any](subject T, params ...any) Config[T] {
	return NewConfig(true, subject, ModeNormal, params...)
}

// Terminal marks the subject for processing and stops the chain afterwards.
func Terminal[T any](subject T, params ...any) Config[T] {
	return NewConfig(true, subject, ModeTerminateAfter, params...)
}

// Skip marks the unit as not applicable to the subject.
func Skip[T any](subject T) Config[T] {
	return NewConfig(false, subject, ModeNormal)
}

// IsApplicable reports whether the unit should process the subject.
func (c Config[T]) IsApplicable() bool {
	return c.applicable
}

// Subject returns the object under processing.
func (c Config[T]) Subject() T {
	return c.subject
}

// Mode returns the continuation mode.
func (c Config[T]) Mode() Mode {
	return c.mode
}

// Terminates reports whether the chain stops after this unit.
func (c Config[T]) Terminates() bool {
	return c.mode == ModeTerminateAfter
}

// Params returns a copy of the parameter list.
func (c Config[T]) Params() []any {
	return slices.Clone(c.params)
}

// Param returns the parameter at index i, if present.
func (c Config[T]) Param(i int) (any, bool) {
	if i < 0 || i >= len(c.params) {
		return nil, false
	}
	return c.params[i], true
}
