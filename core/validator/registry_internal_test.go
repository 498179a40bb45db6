package validator

import (
	"context"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

type invoice struct{ Total int }

func TestRegistryPopulatesOncePerType(t *testing.T) {
	t.Parallel()

	reg := New(
		NewRule(3, func(context.Context, *invoice) error { return nil }),
		NewRule(1, func(context.Context, *invoice) error { return nil }),
		NewRule(2, func(context.Context, *invoice) error { return nil }),
	)

	start := make(chan struct{})
	var g errgroup.Group
	for range 20 {
		g.Go(func() error {
			<-start
			rules := reg.For(reflect.TypeOf(&invoice{}))
			if len(rules) != 3 {
				t.Errorf("got %d rules", len(rules))
			}
			return nil
		})
	}
	close(start)
	require.NoError(t, g.Wait())

	assert.Equal(t, int64(1), reg.populations.Load())
	assert.Len(t, reg.cache, 1)

	reg.For(reflect.TypeOf(invoice{}))
	assert.Equal(t, int64(1), reg.populations.Load(), "value and pointer types share one entry")

	reg.For(reflect.TypeOf(0))
	assert.Equal(t, int64(2), reg.populations.Load())
}
