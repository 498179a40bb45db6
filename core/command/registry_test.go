package command_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/apicore/core/command"
	"github.com/dmitrymomot/apicore/core/model"
)

func reply(text string) command.Handler {
	return command.HandlerFunc(func(context.Context, command.Operation, *command.Command) (any, error) {
		return text, nil
	})
}

func TestRegistryResolve(t *testing.T) {
	t.Parallel()

	orders := [][]command.Binding{
		{
			{ID: "Ping", Version: "v1", Handler: reply("v1")},
			{ID: "Ping", Version: "v2", Handler: reply("v2")},
		},
		{
			{ID: "Ping", Version: "v2", Handler: reply("v2")},
			{ID: "Ping", Version: "v1", Handler: reply("v1")},
		},
	}

	for _, bindings := range orders {
		registry, err := command.NewRegistry(bindings...)
		require.NoError(t, err)

		binding, err := registry.Resolve("Ping", "v1")
		require.NoError(t, err)
		resp, err := binding.Handler.Handle(context.Background(), command.OpGet, nil)
		require.NoError(t, err)
		assert.Equal(t, "v1", resp)

		_, err = registry.Resolve("Ping", "v3")
		assert.ErrorIs(t, err, command.ErrUnknownVersion)
		assert.NotErrorIs(t, err, command.ErrUnknownCommand)

		_, err = registry.Resolve("Missing", "v1")
		assert.ErrorIs(t, err, command.ErrUnknownCommand)
		assert.NotErrorIs(t, err, command.ErrUnknownVersion)
	}
}

func TestRegistryDuplicate(t *testing.T) {
	t.Parallel()

	b := command.NewBuilder()
	require.NoError(t, b.Register(command.Binding{ID: "Ping", Version: "v1", Handler: reply("a")}))

	err := b.Register(command.Binding{ID: "Ping", Version: "v1", Handler: reply("b")})
	assert.ErrorIs(t, err, command.ErrDuplicateRegistration)

	_, err = command.NewRegistry(
		command.Binding{ID: "Ping", Version: "v1", Handler: reply("a")},
		command.Binding{ID: "Ping", Version: "v1", Handler: reply("b")},
	)
	assert.ErrorIs(t, err, command.ErrDuplicateRegistration)

	assert.Panics(t, func() {
		command.MustRegistry(
			command.Binding{ID: "Ping", Version: "v1", Handler: reply("a")},
			command.Binding{ID: "Ping", Version: "v1", Handler: reply("b")},
		)
	})
}

func TestRegistryInvalidBinding(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		binding command.Binding
	}{
		{"missing id", command.Binding{Version: "v1", Handler: reply("x")}},
		{"missing version", command.Binding{ID: "Ping", Handler: reply("x")}},
		{"missing handler", command.Binding{ID: "Ping", Version: "v1"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := command.NewBuilder().Register(tt.binding)
			assert.ErrorIs(t, err, command.ErrInvalidBinding)
		})
	}
}

func TestRegistryIntrospection(t *testing.T) {
	t.Parallel()

	registry := command.MustRegistry(
		command.Binding{ID: "Ping", Version: "v2", Handler: reply("x")},
		command.Binding{ID: "Order", Version: "v1", Handler: reply("x")},
		command.Binding{ID: "Ping", Version: "v1", Handler: reply("x")},
	)

	assert.Equal(t, []string{"Order", "Ping"}, registry.Commands())
	assert.Equal(t, []string{"v1", "v2"}, registry.Versions("Ping"))
	assert.Empty(t, registry.Versions("Missing"))
	assert.Equal(t, 3, registry.Len())
}

func TestRequestOf(t *testing.T) {
	t.Parallel()

	type orderRequest struct {
		model.Request
		Name string `json:"name"`
	}

	factory := command.RequestOf[orderRequest]()
	first, ok := factory().(*orderRequest)
	require.True(t, ok)
	second := factory().(*orderRequest)
	assert.NotSame(t, first, second)
}
