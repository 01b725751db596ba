package session

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counter struct {
	value int
}

func TestStore_Get(t *testing.T) {
	t.Run("should lazily initialize state per session", func(t *testing.T) {
		var inits int
		store := NewStore(func() *counter {
			inits++
			return &counter{}
		})
		ctx := WithSession(context.Background(), "s1")

		// when
		first, err := store.Get(ctx)
		require.NoError(t, err)
		first.value = 42
		second, err := store.Get(ctx)

		// then
		require.NoError(t, err)
		assert.Same(t, first, second)
		assert.Equal(t, 42, second.value)
		assert.Equal(t, 1, inits)
	})

	t.Run("should keep sessions independent", func(t *testing.T) {
		store := NewStore(func() *counter { return &counter{} })
		ctxA := WithSession(context.Background(), "a")
		ctxB := WithSession(context.Background(), "b")

		// when
		a, err := store.Get(ctxA)
		require.NoError(t, err)
		a.value = 7
		b, err := store.Get(ctxB)

		// then
		require.NoError(t, err)
		assert.Equal(t, 0, b.value)
	})

	t.Run("should fail without a session in the context", func(t *testing.T) {
		store := NewStore(func() *counter { return &counter{} })

		// when
		_, err := store.Get(context.Background())

		// then
		assert.ErrorIs(t, err, ErrNoSession)
	})
}
