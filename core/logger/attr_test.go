package logger_test

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicore/core/logger"
)

type verb int

func (verb) String() string { return "get" }

func TestGroup(t *testing.T) {
	t.Parallel()
	attr := logger.Group("cmd", slog.String("id", "Ping"), slog.Int("n", 2))
	require.Equal(t, "cmd", attr.Key)
	require.Equal(t, slog.KindGroup, attr.Value.Kind())
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "id", g[0].Key)
	assert.Equal(t, "n", g[1].Key)
}

func TestErrors(t *testing.T) {
	t.Parallel()
	err1 := errors.New("first")
	err2 := errors.New("second")

	attr := logger.Errors(err1, nil, err2)
	require.Equal(t, "errors", attr.Key)
	g := attr.Value.Group()
	require.Len(t, g, 2)
	assert.Equal(t, "0", g[0].Key)
	assert.Equal(t, "2", g[1].Key)
	assert.Equal(t, err2, g[1].Value.Any())

	assert.True(t, logger.Errors(nil, nil).Equal(slog.Attr{}))
}

func TestError(t *testing.T) {
	t.Parallel()
	err := errors.New("boom")
	attr := logger.Error(err)
	require.Equal(t, "error", attr.Key)
	assert.Equal(t, err, attr.Value.Any())

	assert.True(t, logger.Error(nil).Equal(slog.Attr{}))
}

func TestTiming(t *testing.T) {
	t.Parallel()

	attr := logger.Duration(5 * time.Second)
	require.Equal(t, "duration", attr.Key)
	assert.Equal(t, 5*time.Second, attr.Value.Duration())

	elapsed := logger.Elapsed(time.Now().Add(-time.Minute))
	require.Equal(t, "elapsed", elapsed.Key)
	assert.GreaterOrEqual(t, elapsed.Value.Duration(), time.Minute)
}

func TestDispatchAttrs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		attr  slog.Attr
		key   string
		value string
	}{
		{"command", logger.Command("Ping"), "command", "Ping"},
		{"version", logger.Version("v1"), "version", "v1"},
		{"operation", logger.Operation(verb(1)), "operation", "get"},
		{"format", logger.Format("response_format", "xml"), "response_format", "xml"},
		{"locale", logger.Locale("de-CH"), "locale", "de-CH"},
		{"correlation", logger.CorrelationID("abc"), "correlation_id", "abc"},
		{"component", logger.Component("dispatcher"), "component", "dispatcher"},
		{"type", logger.Type("model.Request"), "type", "model.Request"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.key, tt.attr.Key)
			assert.Equal(t, tt.value, tt.attr.Value.String())
		})
	}

	assert.Equal(t, int64(500), logger.Code(500).Value.Int64())
	assert.Equal(t, int64(3), logger.Count("rules", 3).Value.Int64())
}

func TestEmptyAttrs(t *testing.T) {
	t.Parallel()

	empty := []slog.Attr{
		logger.Command(""),
		logger.Version(""),
		logger.Operation(nil),
		logger.Format("request_format", ""),
		logger.Locale("und"),
		logger.CorrelationID(""),
		logger.Strings("applied", nil),
	}
	for _, attr := range empty {
		assert.True(t, attr.Equal(slog.Attr{}))
	}
}

func TestEmptyAttrsAreDropped(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))
	log.Info("dispatched", logger.Command("Ping"), logger.Error(nil), logger.CorrelationID(""))

	out := buf.String()
	assert.Contains(t, out, "command=Ping")
	assert.NotContains(t, out, "error=")
	assert.NotContains(t, out, "correlation_id=")
}
