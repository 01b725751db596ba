package event_bus

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEvent EventType = "test.event"

func TestEventBus_Publish(t *testing.T) {
	t.Run("should call handlers synchronously in registration order", func(t *testing.T) {
		bus := NewEventBus()
		var calls []int
		bus.Subscribe(testEvent, func(e Event) error {
			calls = append(calls, 1)
			return nil
		})
		bus.Subscribe(testEvent, func(e Event) error {
			calls = append(calls, 2)
			return nil
		})

		// when
		err := bus.Publish(NewEvent(context.Background(), testEvent, "payload"))

		// then
		require.NoError(t, err)
		assert.Equal(t, []int{1, 2}, calls)
	})

	t.Run("should keep dispatching after a handler error", func(t *testing.T) {
		bus := NewEventBus()
		var called bool
		bus.Subscribe(testEvent, func(e Event) error {
			return errors.New("boom")
		})
		bus.Subscribe(testEvent, func(e Event) error {
			called = true
			return nil
		})

		// when
		err := bus.Publish(NewEvent(context.Background(), testEvent, nil))

		// then
		assert.Error(t, err)
		assert.True(t, called)
	})

	t.Run("should recover from a handler panic", func(t *testing.T) {
		bus := NewEventBus()
		bus.Subscribe(testEvent, func(e Event) error {
			panic("handler gone wrong")
		})

		// when
		err := bus.Publish(NewEvent(context.Background(), testEvent, nil))

		// then
		assert.Error(t, err)
	})

	t.Run("should do nothing without subscribers", func(t *testing.T) {
		bus := NewEventBus()

		// when
		err := bus.Publish(NewEvent(context.Background(), "nobody.listens", nil))

		// then
		assert.NoError(t, err)
	})
}

func TestSubscribeTyped(t *testing.T) {
	type payload struct {
		Name string
	}

	t.Run("should deliver matching payloads with the event context", func(t *testing.T) {
		bus := NewEventBus()
		type ctxKey string
		ctx := context.WithValue(context.Background(), ctxKey("k"), "v")
		var got payload
		var gotCtx context.Context
		SubscribeTyped(bus, testEvent, func(e EventT[payload]) error {
			got = e.Data
			gotCtx = e.Context()
			return nil
		})

		// when
		err := bus.Publish(NewEvent(ctx, testEvent, payload{Name: "budget"}))

		// then
		require.NoError(t, err)
		assert.Equal(t, payload{Name: "budget"}, got)
		assert.Equal(t, "v", gotCtx.Value(ctxKey("k")))
	})

	t.Run("should skip payloads of a different type", func(t *testing.T) {
		bus := NewEventBus()
		var called bool
		SubscribeTyped(bus, testEvent, func(e EventT[payload]) error {
			called = true
			return nil
		})

		// when
		err := bus.Publish(NewEvent(context.Background(), testEvent, 42))

		// then
		require.NoError(t, err)
		assert.False(t, called)
	})
}
