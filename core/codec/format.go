package codec

import (
	"fmt"
	"strings"
)

// Format identifies a wire format. The zero value means "not set".
type Format string

const (
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// DefaultFormat is applied wherever a format was left unset.
const DefaultFormat = FormatJSON

// ParseFormat resolves a format name or media type.
// Accepted values are json, xml, application/json, application/xml and text/xml,
// case-insensitive and with optional media type parameters.
func ParseFormat(s string) (Format, error) {
	mediaType := s
	if idx := strings.Index(mediaType, ";"); idx != -1 {
		mediaType = mediaType[:idx]
	}

	switch strings.ToLower(strings.TrimSpace(mediaType)) {
	case "json", "application/json":
		return FormatJSON, nil
	case "xml", "application/xml", "text/xml":
		return FormatXML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, s)
	}
}

// IsZero reports whether the format is unset.
func (f Format) IsZero() bool {
	return f == ""
}

// OrDefault returns f, or def when f is unset.
func (f Format) OrDefault(def Format) Format {
	if f.IsZero() {
		return def
	}
	return f
}

// ContentType returns the media type of the format.
func (f Format) ContentType() string {
	switch f {
	case FormatJSON:
		return "application/json; charset=utf-8"
	case FormatXML:
		return "application/xml; charset=utf-8"
	default:
		return ""
	}
}

// String implements fmt.Stringer.
func (f Format) String() string {
	return string(f)
}
