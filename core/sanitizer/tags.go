package sanitizer

import (
	"fmt"
	"maps"
	"reflect"
	"slices"
	"strconv"
	"strings"
)

// Sanitizers available in `sanitize` struct tags. Tags list names separated by commas,
// applied left to right, e.g. `sanitize:"trim,lower"`. "max:N" truncates to N runes.
var builtin = map[string]func(string) string{
	"trim":        Trim,
	"lower":       ToLower,
	"upper":       ToUpper,
	"kebab":       ToKebabCase,
	"single_line": SingleLine,
	"no_spaces":   RemoveExtraWhitespace,
	"no_control":  RemoveControlChars,
	"strip_html":  StripHTML,
	"alphanum":    KeepAlphanumeric,
	"digits":      KeepDigits,

	"text": func(s string) string {
		return RemoveExtraWhitespace(RemoveControlChars(s))
	},
}

// Names returns the sanitizer names accepted in tags in sorted order, excluding "max:N".
func Names() []string {
	return slices.Sorted(maps.Keys(builtin))
}

// SanitizeStruct applies the `sanitize` tags of v, which must be a pointer to a struct.
// Nested and embedded structs are always traversed; string pointers and string slices
// are sanitized with their field's tag. A "-" tag skips the field.
func SanitizeStruct(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return ErrNotStructPointer
	}

	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return ErrNotStructPointer
	}

	return sanitizeStruct(rv)
}

func sanitizeStruct(rv reflect.Value) error {
	rt := rv.Type()

	for i := range rv.NumField() {
		field := rv.Field(i)
		if !field.CanSet() {
			continue
		}

		tag := rt.Field(i).Tag.Get("sanitize")
		if tag == "-" {
			continue
		}

		switch field.Kind() {
		case reflect.String:
			if err := sanitizeValue(field, tag); err != nil {
				return fmt.Errorf("%s: %w", rt.Field(i).Name, err)
			}

		case reflect.Pointer:
			if field.IsNil() {
				continue
			}
			elem := field.Elem()
			switch elem.Kind() {
			case reflect.String:
				if err := sanitizeValue(elem, tag); err != nil {
					return fmt.Errorf("%s: %w", rt.Field(i).Name, err)
				}
			case reflect.Struct:
				if err := sanitizeStruct(elem); err != nil {
					return err
				}
			}

		case reflect.Struct:
			if err := sanitizeStruct(field); err != nil {
				return err
			}

		case reflect.Slice:
			if field.Type().Elem().Kind() != reflect.String {
				continue
			}
			for j := range field.Len() {
				if err := sanitizeValue(field.Index(j), tag); err != nil {
					return fmt.Errorf("%s[%d]: %w", rt.Field(i).Name, j, err)
				}
			}
		}
	}

	return nil
}

func sanitizeValue(v reflect.Value, tag string) error {
	if tag == "" {
		return nil
	}
	out, err := Apply(v.String(), tag)
	if err != nil {
		return err
	}
	v.SetString(out)
	return nil
}

// Apply runs the comma-separated sanitizers in tag over value.
func Apply(value, tag string) (string, error) {
	result := value

	for name := range strings.SplitSeq(tag, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}

		if limit, ok := strings.CutPrefix(name, "max:"); ok {
			n, err := strconv.Atoi(limit)
			if err != nil || n <= 0 {
				return value, fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
			}
			result = MaxLength(result, n)
			continue
		}

		fn, ok := builtin[name]
		if !ok {
			return value, fmt.Errorf("%w: %q", ErrUnknownSanitizer, name)
		}
		result = fn(result)
	}

	return result, nil
}
