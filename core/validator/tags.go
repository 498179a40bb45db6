package validator

import (
	"fmt"
	"maps"
	"net/mail"
	"net/url"
	"reflect"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"sync"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// TagFunc checks a field value against one rule of a `validate` tag.
// It returns nil when the value passes.
type TagFunc func(field string, value reflect.Value, params []string) *FieldError

var (
	tagsMu sync.RWMutex
	tags   = map[string]TagFunc{
		// Presence and size
		"required": requiredTag,
		"min":      boundTag("min", "at least", func(got, limit float64) bool { return got >= limit }),
		"max":      boundTag("max", "at most", func(got, limit float64) bool { return got <= limit }),
		"len":      lenTag,
		"between":  betweenTag,

		// Numbers
		"positive": signTag("positive", func(n float64) bool { return n > 0 }),
		"negative": signTag("negative", func(n float64) bool { return n < 0 }),
		"nonzero":  nonZeroTag,

		// String formats
		"email":    stringTag("email", "must be a valid email address", isEmail),
		"url":      stringTag("url", "must be a valid URL", isURL),
		"uuid":     stringTag("uuid", "must be a valid UUID", isUUID),
		"locale":   stringTag("locale", "must be a valid language tag", isLocale),
		"alpha":    stringTag("alpha", "must contain only letters", allRunes(unicode.IsLetter)),
		"alphanum": stringTag("alphanum", "must contain only letters and digits", allRunes(isAlphanumeric)),
		"numeric":  stringTag("numeric", "must contain only digits", allRunes(unicode.IsDigit)),
		"in":       stringTag("in", "must be one of: %s", isIn),
		"not_in":   stringTag("not_in", "must not be one of: %s", notIn),
		"contains": stringTag("contains", "must contain '%s'", paramCheck(strings.Contains)),
		"prefix":   stringTag("prefix", "must start with '%s'", paramCheck(strings.HasPrefix)),
		"suffix":   stringTag("suffix", "must end with '%s'", paramCheck(strings.HasSuffix)),
		"regex":    stringTag("regex", "must match pattern %s", matchesRegex),

		// Dates
		"date":        stringTag("date", "must be a valid date", isDate),
		"date_format": stringTag("date_format", "must be a valid date in format %s", isDateFormat),
		"after":       stringTag("after", "must be after %s", compareDate(time.Time.After)),
		"before":      stringTag("before", "must be before %s", compareDate(time.Time.Before)),
	}

	regexCache sync.Map // pattern -> *regexp.Regexp
)

var dateLayouts = []string{time.DateOnly, time.DateTime, time.RFC3339}

// RegisterTag adds or replaces a named tag rule.
func RegisterTag(name string, fn TagFunc) {
	tagsMu.Lock()
	defer tagsMu.Unlock()
	tags[name] = fn
}

// TagNames returns the registered tag rule names in sorted order.
func TagNames() []string {
	tagsMu.RLock()
	defer tagsMu.RUnlock()
	return slices.Sorted(maps.Keys(tags))
}

// ValidateStruct checks the exported fields of a struct against their `validate` tags.
// Rules in a tag are separated by semicolons and take comma-separated parameters
// after a colon, e.g. `validate:"required;between:3,64"`. Untagged struct fields
// are validated recursively; "-" skips a field.
//
// Violations are collected into FieldErrors. A tag naming an unregistered rule
// aborts validation with ErrUnknownTag.
func ValidateStruct(v any) error {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return fmt.Errorf("%w: got nil %T", ErrNotStruct, v)
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return fmt.Errorf("%w: got %T", ErrNotStruct, v)
	}

	var errs FieldErrors
	if err := validateStruct(rv, "", &errs); err != nil {
		return err
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func validateStruct(rv reflect.Value, prefix string, errs *FieldErrors) error {
	rt := rv.Type()
	for i := range rt.NumField() {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tag := sf.Tag.Get("validate")
		if tag == "-" {
			continue
		}

		path := prefix
		if !sf.Anonymous {
			path = joinPath(prefix, sf.Name)
		}
		field := rv.Field(i)

		if tag == "" {
			if nested, ok := structValue(field); ok {
				if err := validateStruct(nested, path, errs); err != nil {
					return err
				}
			}
			continue
		}

		if field.Kind() == reflect.Pointer && !field.IsNil() {
			field = field.Elem()
		}
		if err := validateField(path, field, tag, errs); err != nil {
			return err
		}
	}
	return nil
}

func validateField(path string, value reflect.Value, tag string, errs *FieldErrors) error {
	tagsMu.RLock()
	defer tagsMu.RUnlock()

	for raw := range strings.SplitSeq(tag, ";") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}

		name, args, _ := strings.Cut(raw, ":")
		name = strings.TrimSpace(name)
		fn, ok := tags[name]
		if !ok {
			return fmt.Errorf("%w: %q on field %s", ErrUnknownTag, name, path)
		}

		var params []string
		if args = strings.TrimSpace(args); args != "" {
			for p := range strings.SplitSeq(args, ",") {
				params = append(params, strings.TrimSpace(p))
			}
		}

		if fe := fn(path, value, params); fe != nil {
			*errs = append(*errs, *fe)
		}
	}
	return nil
}

func structValue(v reflect.Value) (reflect.Value, bool) {
	if v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return reflect.Value{}, false
		}
		v = v.Elem()
	}
	return v, v.Kind() == reflect.Struct
}

func joinPath(prefix, name string) string {
	if prefix == "" {
		return name
	}
	return prefix + "." + name
}

func newFieldError(field, rule, message string, params []string) *FieldError {
	return &FieldError{
		Field:   field,
		Key:     "validation." + rule,
		Message: message,
		Params:  params,
	}
}

// size returns the length of strings (in runes) and collections.
func size(v reflect.Value) (int, bool) {
	switch v.Kind() {
	case reflect.String:
		return utf8.RuneCountInString(v.String()), true
	case reflect.Slice, reflect.Array, reflect.Map:
		return v.Len(), true
	}
	return 0, false
}

func number(v reflect.Value) (float64, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(v.Uint()), true
	case reflect.Float32, reflect.Float64:
		return v.Float(), true
	}
	return 0, false
}

func sizeUnit(v reflect.Value) string {
	if v.Kind() == reflect.String {
		return "characters long"
	}
	return "items"
}

func requiredTag(field string, v reflect.Value, params []string) *FieldError {
	var ok bool
	switch v.Kind() {
	case reflect.Invalid:
	case reflect.String:
		ok = strings.TrimSpace(v.String()) != ""
	case reflect.Slice, reflect.Map, reflect.Array:
		ok = v.Len() > 0
	case reflect.Pointer, reflect.Interface:
		ok = !v.IsNil()
	default:
		ok = !v.IsZero()
	}
	if ok {
		return nil
	}
	return newFieldError(field, "required", "field is required", params)
}

func boundTag(rule, phrase string, within func(got, limit float64) bool) TagFunc {
	return func(field string, v reflect.Value, params []string) *FieldError {
		if len(params) < 1 {
			return nil
		}
		limit, err := strconv.ParseFloat(params[0], 64)
		if err != nil {
			return nil
		}
		if n, ok := size(v); ok {
			if within(float64(n), limit) {
				return nil
			}
			verb := "be"
			if v.Kind() != reflect.String {
				verb = "have"
			}
			return newFieldError(field, rule, fmt.Sprintf("must %s %s %s %s", verb, phrase, params[0], sizeUnit(v)), params)
		}
		if n, ok := number(v); ok && !within(n, limit) {
			return newFieldError(field, rule, fmt.Sprintf("must be %s %s", phrase, params[0]), params)
		}
		return nil
	}
}

func lenTag(field string, v reflect.Value, params []string) *FieldError {
	if len(params) < 1 {
		return nil
	}
	want, err := strconv.Atoi(params[0])
	if err != nil {
		return nil
	}
	if n, ok := size(v); ok && n != want {
		return newFieldError(field, "len", fmt.Sprintf("must be exactly %d %s", want, sizeUnit(v)), params)
	}
	return nil
}

func betweenTag(field string, v reflect.Value, params []string) *FieldError {
	if len(params) < 2 {
		return nil
	}
	lo, errLo := strconv.ParseFloat(params[0], 64)
	hi, errHi := strconv.ParseFloat(params[1], 64)
	if errLo != nil || errHi != nil {
		return nil
	}

	got, ok := number(v)
	unit := ""
	if n, isSize := size(v); isSize {
		got, ok, unit = float64(n), true, " "+sizeUnit(v)
	}
	if !ok || (got >= lo && got <= hi) {
		return nil
	}
	return newFieldError(field, "between", fmt.Sprintf("must be between %s and %s%s", params[0], params[1], unit), params)
}

func signTag(rule string, check func(float64) bool) TagFunc {
	return func(field string, v reflect.Value, params []string) *FieldError {
		if n, ok := number(v); ok && !check(n) {
			return newFieldError(field, rule, "must be "+rule, params)
		}
		return nil
	}
}

func nonZeroTag(field string, v reflect.Value, params []string) *FieldError {
	if v.IsValid() && !v.IsZero() {
		return nil
	}
	return newFieldError(field, "nonzero", "must not be zero", params)
}

// stringTag builds a rule for non-empty string fields; other kinds and empty strings pass.
// A %s verb in message is replaced with the joined parameters.
func stringTag(rule, message string, check func(s string, params []string) bool) TagFunc {
	return func(field string, v reflect.Value, params []string) *FieldError {
		if v.Kind() != reflect.String || v.Len() == 0 {
			return nil
		}
		if check(v.String(), params) {
			return nil
		}
		msg := message
		if strings.Contains(msg, "%s") {
			msg = fmt.Sprintf(msg, strings.Join(params, ", "))
		}
		return newFieldError(field, rule, msg, params)
	}
}

func isEmail(s string, _ []string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}

func isURL(s string, _ []string) bool {
	u, err := url.ParseRequestURI(s)
	return err == nil && u.Scheme != "" && u.Host != ""
}

// isUUID accepts any version, or only the version given as the first parameter.
func isUUID(s string, params []string) bool {
	id, err := uuid.Parse(s)
	if err != nil {
		return false
	}
	if len(params) == 0 {
		return true
	}
	v, err := strconv.Atoi(params[0])
	return err == nil && id.Version() == uuid.Version(v)
}

func isLocale(s string, _ []string) bool {
	_, err := language.Parse(s)
	return err == nil
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func allRunes(pred func(rune) bool) func(string, []string) bool {
	return func(s string, _ []string) bool {
		for _, r := range s {
			if !pred(r) {
				return false
			}
		}
		return true
	}
}

func isIn(s string, params []string) bool {
	return slices.Contains(params, s)
}

func notIn(s string, params []string) bool {
	return !slices.Contains(params, s)
}

func paramCheck(fn func(s, param string) bool) func(string, []string) bool {
	return func(s string, params []string) bool {
		return len(params) == 0 || fn(s, params[0])
	}
}

// matchesRegex joins the parameters back, so patterns may contain commas.
func matchesRegex(s string, params []string) bool {
	pattern := strings.Join(params, ",")
	if pattern == "" {
		return true
	}
	re, ok := regexCache.Load(pattern)
	if !ok {
		compiled, err := regexp.Compile(pattern)
		if err != nil {
			return false
		}
		re, _ = regexCache.LoadOrStore(pattern, compiled)
	}
	return re.(*regexp.Regexp).MatchString(s)
}

func parseDate(s string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func isDate(s string, _ []string) bool {
	_, ok := parseDate(s)
	return ok
}

func isDateFormat(s string, params []string) bool {
	if len(params) == 0 {
		return true
	}
	_, err := time.Parse(strings.Join(params, ","), s)
	return err == nil
}

func compareDate(cmp func(t, ref time.Time) bool) func(string, []string) bool {
	return func(s string, params []string) bool {
		if len(params) == 0 {
			return true
		}
		t, ok := parseDate(s)
		if !ok {
			return false
		}
		ref, ok := parseDate(params[0])
		return ok && cmp(t, ref)
	}
}
