package model

import "strings"

// Direction is a sort direction.
type Direction string

const (
	Ascending  Direction = "ASC"
	Descending Direction = "DESC"
)

// SortField is a single (field, direction) pair of a sort expression.
type SortField struct {
	Field     string
	Direction Direction
}

// String renders the pair in query form: "+name" or "-name".
func (s SortField) String() string {
	if s.Direction == Descending {
		return "-" + s.Field
	}
	return "+" + s.Field
}

// ParseSort parses a comma-separated sort expression such as "+name,-created_at".
//
// A token needs an explicit direction marker: "+" (or a single leading space, which is
// how "+" arrives after URL query decoding) means ascending, "-" means descending.
// Tokens without a marker or without a field name are dropped silently.
func ParseSort(raw string) []SortField {
	if raw == "" {
		return nil
	}

	var sorted []SortField
	for tok := range strings.SplitSeq(raw, ",") {
		if f, ok := parseSortToken(tok); ok {
			sorted = append(sorted, f)
		}
	}
	return sorted
}

// FormatSort renders a sort expression back to its query form.
func FormatSort(sorted []SortField) string {
	parts := make([]string, 0, len(sorted))
	for _, s := range sorted {
		parts = append(parts, s.String())
	}
	return strings.Join(parts, ",")
}

func parseSortToken(tok string) (SortField, bool) {
	tok = strings.TrimRight(tok, " \t")
	if tok == "" {
		return SortField{}, false
	}

	var dir Direction
	trimmed := strings.TrimLeft(tok, " \t")
	switch {
	case strings.HasPrefix(trimmed, "-"):
		dir = Descending
		trimmed = trimmed[1:]
	case strings.HasPrefix(trimmed, "+"):
		dir = Ascending
		trimmed = trimmed[1:]
	case trimmed != tok:
		// leading space is a URL-decoded "+"
		dir = Ascending
	default:
		return SortField{}, false
	}

	field := strings.TrimSpace(trimmed)
	if field == "" {
		return SortField{}, false
	}
	return SortField{Field: field, Direction: dir}, true
}

// ParseFields parses a comma-separated field selection such as "id,,name".
// Empty tokens are dropped.
func ParseFields(raw string) []string {
	if raw == "" {
		return nil
	}

	var fields []string
	for tok := range strings.SplitSeq(raw, ",") {
		if f := strings.TrimSpace(tok); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}
