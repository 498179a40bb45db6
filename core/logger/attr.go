package logger

import (
	"log/slog"
	"strconv"
	"time"
)

// Attribute helpers return an empty Attr for absent values, which slog drops.
// This allows calls like log.Info("msg", logger.Error(err)) without explicit nil checks.

// Group creates a group of attributes under a single key.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// ============================================================================
// Error Handling
// ============================================================================

// Errors groups multiple non-nil errors under the key "errors".
// Uses index-based keys to preserve error order. Returns empty Attr for all nil errors.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Code creates an attribute for a response code.
func Code(code int) slog.Attr {
	return slog.Int("code", code)
}

// ============================================================================
// Timing
// ============================================================================

// Duration creates an attribute for a duration.
func Duration(d time.Duration) slog.Attr {
	return slog.Duration("duration", d)
}

// Elapsed reports the time passed since start.
func Elapsed(start time.Time) slog.Attr {
	return slog.Duration("elapsed", time.Since(start))
}

// ============================================================================
// Command Dispatch
// ============================================================================

// Command creates an attribute for a command identifier.
func Command(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("command", id)
}

// Version creates an attribute for a command version.
func Version(v string) slog.Attr {
	if v == "" {
		return slog.Attr{}
	}
	return slog.String("version", v)
}

// Operation creates an attribute for a command operation.
// Accepts any fmt.Stringer so the logger does not depend on the command package.
func Operation(op interface{ String() string }) slog.Attr {
	if op == nil {
		return slog.Attr{}
	}
	return slog.String("operation", op.String())
}

// Format creates an attribute for a wire format under the given key,
// e.g. "request_format" or "response_format".
func Format(key, format string) slog.Attr {
	if format == "" {
		return slog.Attr{}
	}
	return slog.String(key, format)
}

// Locale creates an attribute for a locale tag.
func Locale(tag string) slog.Attr {
	if tag == "" || tag == "und" {
		return slog.Attr{}
	}
	return slog.String("locale", tag)
}

// CorrelationID creates an attribute for correlation IDs.
func CorrelationID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("correlation_id", id)
}

// ============================================================================
// Generic Metadata
// ============================================================================

// Component creates an attribute for component names.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Type creates an attribute for type classification.
func Type(t string) slog.Attr {
	return slog.String("type", t)
}

// Count creates a generic counter attribute.
func Count(key string, n int) slog.Attr {
	return slog.Int(key, n)
}

// Strings creates an attribute for a list of names. Returns empty Attr for an empty list.
func Strings(key string, values []string) slog.Attr {
	if len(values) == 0 {
		return slog.Attr{}
	}
	return slog.Any(key, values)
}
