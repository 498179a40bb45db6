package message

import (
	"strings"

	"golang.org/x/text/language"
)

// Resolver resolves the text for a message code in a locale.
type Resolver interface {
	// Resolve returns the localized text for code, or Placeholder(code, locale)
	// when none is configured.
	Resolve(code string, locale language.Tag) string
}

// ResolverFunc adapts a function to Resolver.
type ResolverFunc func(code string, locale language.Tag) string

// Resolve implements Resolver.
func (f ResolverFunc) Resolve(code string, locale language.Tag) string {
	return f(code, locale)
}

const placeholderMark = "??"

// Placeholder returns the text a Resolver yields for an unresolved code.
func Placeholder(code string, locale language.Tag) string {
	return placeholderMark + code + "_" + locale.String() + placeholderMark
}

// IsUnresolved reports whether s is a placeholder produced for a missing message.
func IsUnresolved(s string) bool {
	return len(s) > 2*len(placeholderMark) &&
		strings.HasPrefix(s, placeholderMark) &&
		strings.HasSuffix(s, placeholderMark)
}
