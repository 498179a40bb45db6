package validator

import (
	"context"
	"errors"
	"reflect"

	"github.com/dmitrymomot/apicore/core/apperror"
	"github.com/dmitrymomot/apicore/core/strategy"
)

// unit adapts a Rule to a strategy unit over arbitrary entities.
type unit struct {
	rule Rule
}

// Check applies the unit only to entities whose runtime type matches the rule target.
func (u unit) Check(subject any, params ...any) strategy.Config[any] {
	if subject == nil || indirect(reflect.TypeOf(subject)) != u.rule.Target() {
		return strategy.Skip(subject)
	}
	return strategy.Applicable(subject, params...)
}

// Process runs the rule and hands the entity on unchanged.
func (u unit) Process(ctx context.Context, subject any, _ strategy.Config[any]) (any, error) {
	if err := u.rule.Validate(ctx, subject); err != nil {
		return subject, err
	}
	return subject, nil
}

// UnitType reports the rule's type, so chain statistics name rules rather than adapters.
func (u unit) UnitType() reflect.Type {
	return reflect.TypeOf(u.rule)
}

// Unit adapts a rule to a strategy unit so it can be mixed into custom chains.
func Unit(rule Rule) strategy.Strategy[any] {
	return unit{rule: rule}
}

// DefaultTagCode is the domain code of `validate` tag violations.
const DefaultTagCode = 400

// tagUnit checks `validate` struct tags on struct entities.
type tagUnit struct {
	code int
}

// Check applies the unit to structs and non-nil struct pointers.
func (u tagUnit) Check(subject any, params ...any) strategy.Config[any] {
	rv := reflect.ValueOf(subject)
	for rv.Kind() == reflect.Pointer && !rv.IsNil() {
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return strategy.Skip(subject)
	}
	return strategy.Applicable(subject, params...)
}

// Process runs ValidateStruct and converts violations into a domain error
// carrying the unit's code. The FieldErrors stay reachable through errors.As.
func (u tagUnit) Process(_ context.Context, subject any, _ strategy.Config[any]) (any, error) {
	err := ValidateStruct(subject)
	var fields FieldErrors
	if errors.As(err, &fields) {
		return subject, apperror.Wrap(u.code, fields.Error(), fields)
	}
	return subject, err
}

// TagUnit returns a strategy unit that validates `validate` struct tags and rejects
// violations with a domain error of the given code. A code of 0 uses DefaultTagCode.
func TagUnit(code int) strategy.Strategy[any] {
	if code == 0 {
		code = DefaultTagCode
	}
	return tagUnit{code: code}
}
