package codec

import (
	"fmt"
	"slices"
)

// Set is an immutable table of codecs keyed by format.
type Set struct {
	codecs map[Format]Codec
}

// NewSet builds a set from the given codecs. A later codec replaces an earlier one
// registered for the same format.
func NewSet(codecs ...Codec) *Set {
	s := &Set{codecs: make(map[Format]Codec, len(codecs))}
	for _, c := range codecs {
		if c != nil {
			s.codecs[c.Format()] = c
		}
	}
	return s
}

// DefaultSet returns a set holding the JSON and XML codecs.
func DefaultSet() *Set {
	return NewSet(JSON(), XML())
}

// Lookup returns the codec registered for f.
func (s *Set) Lookup(f Format) (Codec, error) {
	c, ok := s.codecs[f]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, f)
	}
	return c, nil
}

// Formats returns the registered formats in sorted order.
func (s *Set) Formats() []Format {
	formats := make([]Format, 0, len(s.codecs))
	for f := range s.codecs {
		formats = append(formats, f)
	}
	slices.Sort(formats)
	return formats
}
