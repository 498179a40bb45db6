package command_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/apicore/core/codec"
	"github.com/dmitrymomot/apicore/core/command"
)

func TestParseOperation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		verb string
		want command.Operation
	}{
		{"POST", command.OpCreate},
		{"get", command.OpGet},
		{" Put ", command.OpModify},
		{"DELETE", command.OpDelete},
	}
	for _, tt := range tests {
		t.Run(tt.verb, func(t *testing.T) {
			t.Parallel()
			op, err := command.ParseOperation(tt.verb)
			require.NoError(t, err)
			assert.Equal(t, tt.want, op)
		})
	}

	for _, verb := range []string{"PATCH", "HEAD", ""} {
		_, err := command.ParseOperation(verb)
		assert.ErrorIs(t, err, command.ErrUnsupportedOperation, verb)
	}
}

func TestOperationString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "create", command.OpCreate.String())
	assert.Equal(t, "get", command.OpGet.String())
	assert.Equal(t, "modify", command.OpModify.String())
	assert.Equal(t, "delete", command.OpDelete.String())
	assert.Equal(t, "operation(9)", command.Operation(9).String())

	assert.True(t, command.OpDelete.IsValid())
	assert.False(t, command.Operation(0).IsValid())
}

func TestNewCommand(t *testing.T) {
	t.Parallel()

	cmd := command.NewCommand("Ping", "v1", command.OpGet)
	assert.Equal(t, "Ping", cmd.ID)
	assert.Equal(t, "v1", cmd.Version)
	assert.Equal(t, command.OpGet, cmd.Operation)
	assert.NotNil(t, cmd.ContextIDs)
	assert.False(t, cmd.CreatedAt.IsZero())
	assert.False(t, cmd.HasBody())

	_, err := uuid.Parse(cmd.CorrelationID)
	require.NoError(t, err)

	other := command.NewCommand("Ping", "v1", command.OpGet)
	assert.NotEqual(t, cmd.CorrelationID, other.CorrelationID)
}

func TestCommandHelpers(t *testing.T) {
	t.Parallel()

	cmd := command.NewCommand("Order", "v1", command.OpModify).
		WithBody(`{"name":"widget"}`).
		WithFormats(codec.FormatXML, codec.FormatJSON).
		WithLocale(language.German)
	cmd.ContextIDs["id"] = 100

	assert.True(t, cmd.HasBody())
	assert.Equal(t, `{"name":"widget"}`, cmd.RawRequestBody.MustGet())
	assert.Equal(t, codec.FormatXML, cmd.RequestFormat)
	assert.Equal(t, codec.FormatJSON, cmd.ResponseFormat)
	assert.Equal(t, language.German, cmd.Locale)

	id, ok := cmd.ContextID("id")
	assert.True(t, ok)
	assert.Equal(t, 100, id)

	_, ok = cmd.ContextID("missing")
	assert.False(t, ok)

	_, ok = (&command.Command{}).ContextID("id")
	assert.False(t, ok)
}

func TestCommandContext(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	_, ok := command.FromContext(ctx)
	assert.False(t, ok)
	assert.Empty(t, command.CorrelationID(ctx))

	cmd := command.NewCommand("Ping", "v1", command.OpGet)
	ctx = command.WithCommand(ctx, cmd)

	got, ok := command.FromContext(ctx)
	require.True(t, ok)
	assert.Same(t, cmd, got)
	assert.Equal(t, cmd.CorrelationID, command.CorrelationID(ctx))
}
