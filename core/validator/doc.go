// Package validator runs priority-ordered validation rules over domain entities.
//
// A rule targets one entity type and rejects invalid entities by returning an error,
// usually a coded domain error from the apperror package. Rules never modify the
// entity. Internally every rule is adapted to a strategy.Strategy, so validation is a
// strategy chain whose units apply only to entities of their target type.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/apicore/core/validator"
//
//	rules := validator.New(
//		validator.NewRule(10, func(ctx context.Context, o *Order) error {
//			if o.Quantity <= 0 {
//				return apperror.New(4001, "quantity must be positive")
//			}
//			return nil
//		}),
//		validator.NewRule(20, checkStock),
//	)
//
//	stat, err := rules.Validate(ctx, order)
//	// stat.Applied lists the rule types that ran, lowest priority first
//
// # Ordering and caching
//
// Rules for a type run in ascending priority; ties keep registration order. The
// ordered list is computed on first access for each type and cached. Concurrent first
// accesses are serialized with double-checked locking, so every caller observes the
// same fully sorted list and each type is populated exactly once.
//
// # Struct Tags
//
// ValidateStruct checks exported fields against `validate` tags. Rules are separated
// by semicolons and take comma-separated parameters after a colon:
//
//	type SignupRequest struct {
//		model.Request
//		Email    string `json:"email" validate:"required;email"`
//		Username string `json:"username" validate:"required;between:3,20;alphanum"`
//		Age      int    `json:"age" validate:"min:18"`
//		Locale   string `json:"locale" validate:"locale"`
//	}
//
// Built-in rules cover presence and size (required, min, max, len, between), numbers
// (positive, negative, nonzero), string formats (email, url, uuid, locale, alpha,
// alphanum, numeric, in, not_in, contains, prefix, suffix, regex) and dates (date,
// date_format, after, before). Format rules accept empty strings, so combine them
// with required. RegisterTag adds project-specific rules.
//
// Violations are collected into FieldErrors, one FieldError per failed rule with a
// dotted field path and a "validation.<rule>" message key. Untagged nested structs are
// validated recursively; "-" skips a field.
//
// To run tag checks as part of a registry, enable them with WithStructTags. They run
// before the registered rules and reject with a domain error of the given code:
//
//	rules := validator.NewWithOptions(
//		validator.WithStructTags(422),
//		validator.WithRules(validator.NewRule(10, checkStock)),
//	)
package validator
