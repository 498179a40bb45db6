package message

import (
	"fmt"
	"maps"
	"slices"

	"golang.org/x/text/language"
)

// Catalog is an immutable in-memory Resolver.
type Catalog struct {
	// Flattened messages keyed by language tag string, then by dotted code
	messages map[string]map[string]string

	defaultLang language.Tag

	// Configured languages with the default first, used for matching
	tags    []language.Tag
	matcher language.Matcher

	missingKeyHandler func(code string, locale language.Tag)
}

// Option configures a Catalog during construction.
type Option func(*Catalog) error

// New creates a catalog from options. The default language is English unless
// WithDefaultLanguage says otherwise.
func New(opts ...Option) (*Catalog, error) {
	c := &Catalog{
		messages:    make(map[string]map[string]string),
		defaultLang: language.English,
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	c.tags = c.buildTags()
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

// WithDefaultLanguage sets the language used when no better match exists.
func WithDefaultLanguage(tag language.Tag) Option {
	return func(c *Catalog) error {
		if tag == language.Und {
			return ErrUndefinedLanguage
		}
		c.defaultLang = tag
		return nil
	}
}

// WithMessages loads messages for a language. Nested maps are flattened into dotted
// codes, so {"api": {"errorcode": {"5": "..."}}} defines "api.errorcode.5".
// Repeated calls for the same language merge, later values win.
func WithMessages(tag language.Tag, messages map[string]any) Option {
	return func(c *Catalog) error {
		if tag == language.Und {
			return ErrUndefinedLanguage
		}
		if messages == nil {
			return ErrNoMessages
		}

		dst, ok := c.messages[tag.String()]
		if !ok {
			dst = make(map[string]string)
			c.messages[tag.String()] = dst
		}
		flatten(dst, messages, "")
		return nil
	}
}

// WithMissingKeyHandler sets a function called whenever a code cannot be resolved
// in any language, including the default. Useful for reporting missing translations.
func WithMissingKeyHandler(handler func(code string, locale language.Tag)) Option {
	return func(c *Catalog) error {
		c.missingKeyHandler = handler
		return nil
	}
}

// Resolve implements Resolver.
func (c *Catalog) Resolve(code string, locale language.Tag) string {
	if text, ok := c.Lookup(code, locale); ok {
		return text
	}
	if c.missingKeyHandler != nil {
		c.missingKeyHandler(code, locale)
	}
	return Placeholder(code, locale)
}

// Lookup returns the text for code and whether it was found.
func (c *Catalog) Lookup(code string, locale language.Tag) (string, bool) {
	for _, tag := range c.candidates(locale) {
		if text, ok := c.messages[tag.String()][code]; ok {
			return text, true
		}
	}
	return "", false
}

// Languages returns the configured languages, default first, the rest sorted.
func (c *Catalog) Languages() []language.Tag {
	return slices.Clone(c.tags)
}

// Default returns the default language.
func (c *Catalog) Default() language.Tag {
	return c.defaultLang
}

// candidates lists the tags to try for locale, most specific first.
func (c *Catalog) candidates(locale language.Tag) []language.Tag {
	if locale == language.Und {
		return []language.Tag{c.defaultLang}
	}

	out := make([]language.Tag, 0, 4)
	add := func(t language.Tag) {
		if !slices.ContainsFunc(out, func(o language.Tag) bool { return o.String() == t.String() }) {
			out = append(out, t)
		}
	}

	add(locale)
	if base, conf := locale.Base(); conf != language.No {
		add(language.Make(base.String()))
	}
	if _, idx, conf := c.matcher.Match(locale); conf != language.No && idx >= 0 && idx < len(c.tags) {
		add(c.tags[idx])
	}
	add(c.defaultLang)

	return out
}

func (c *Catalog) buildTags() []language.Tag {
	others := slices.Sorted(maps.Keys(c.messages))
	tags := make([]language.Tag, 0, len(others)+1)
	tags = append(tags, c.defaultLang)
	for _, key := range others {
		if key != c.defaultLang.String() {
			tags = append(tags, language.Make(key))
		}
	}
	return tags
}

func flatten(dst map[string]string, data map[string]any, prefix string) {
	for key, value := range data {
		fullKey := key
		if prefix != "" {
			fullKey = prefix + "." + key
		}

		switch v := value.(type) {
		case string:
			dst[fullKey] = v
		case map[string]any:
			flatten(dst, v, fullKey)
		case map[string]string:
			for subKey, subVal := range v {
				dst[fullKey+"."+subKey] = subVal
			}
		default:
			dst[fullKey] = fmt.Sprintf("%v", v)
		}
	}
}
