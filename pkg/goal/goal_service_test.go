package goal

import (
	"context"
	"testing"
	"time"

	"github.com/budgetrack/budgetrack/internal/event_bus"
	"github.com/budgetrack/budgetrack/internal/session"
	"github.com/budgetrack/budgetrack/internal/utils"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = &utils.MockClock{FixedNow: time.Date(2024, time.June, 1, 9, 0, 0, 0, time.UTC)}

func setup(t *testing.T, seed func() []Goal) (*ServiceImpl, *event_bus.EventBus, context.Context) {
	bus := event_bus.NewEventBus()
	service := NewService(NewInMemoryRepo(seed), bus, clock)
	ctx := session.WithSession(context.Background(), uuid.NewString())
	return service, bus, ctx
}

func recordEvents(bus *event_bus.EventBus, eventTypes ...event_bus.EventType) *[]event_bus.EventType {
	var seen []event_bus.EventType
	for _, eventType := range eventTypes {
		et := eventType
		bus.Subscribe(et, func(e event_bus.Event) error {
			seen = append(seen, et)
			return nil
		})
	}
	return &seen
}

func TestServiceImpl_SaveDraft(t *testing.T) {
	t.Run("should promote a goal that reached its target to Completed", func(t *testing.T) {
		service, _, ctx := setup(t, nil)

		// given
		_, err := service.OpenNewDraft(ctx)
		require.NoError(t, err)
		_, err = service.UpdateDraftField(ctx, "name", "Team Retreat")
		require.NoError(t, err)
		_, err = service.UpdateDraftField(ctx, "targetAmount", "10000")
		require.NoError(t, err)
		_, err = service.UpdateDraftField(ctx, "currentAmount", "10000")
		require.NoError(t, err)

		// when
		saved, err := service.SaveDraft(ctx)

		// then
		require.NoError(t, err)
		assert.True(t, saved)
		goals, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, StatusCompleted, goals[0].Status)
	})

	t.Run("should not promote a goal with a zero target", func(t *testing.T) {
		service, _, ctx := setup(t, nil)

		// given
		_, err := service.OpenNewDraft(ctx)
		require.NoError(t, err)
		_, err = service.UpdateDraftField(ctx, "name", "Vague Ambition")
		require.NoError(t, err)

		// when
		saved, err := service.SaveDraft(ctx)

		// then
		require.NoError(t, err)
		assert.True(t, saved)
		goals, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, goals, 1)
		assert.Equal(t, StatusOnTrack, goals[0].Status)
	})

	t.Run("should silently skip a draft without a name", func(t *testing.T) {
		service, bus, ctx := setup(t, nil)
		seen := recordEvents(bus, event_bus.GoalCreated, event_bus.GoalUpdated, event_bus.GoalDeleted)

		// given
		_, err := service.OpenNewDraft(ctx)
		require.NoError(t, err)

		// when
		saved, err := service.SaveDraft(ctx)

		// then
		require.NoError(t, err)
		assert.False(t, saved)
		goals, err := service.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, goals)
		assert.Empty(t, *seen)
	})

	t.Run("should publish created and updated events", func(t *testing.T) {
		service, bus, ctx := setup(t, nil)
		seen := recordEvents(bus, event_bus.GoalCreated, event_bus.GoalUpdated)

		// given
		_, err := service.OpenNewDraft(ctx)
		require.NoError(t, err)
		_, err = service.UpdateDraftField(ctx, "name", "Emergency Fund")
		require.NoError(t, err)
		_, err = service.SaveDraft(ctx)
		require.NoError(t, err)

		goals, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, goals, 1)

		// when
		_, found, err := service.OpenEditDraft(ctx, goals[0].ID)
		require.NoError(t, err)
		require.True(t, found)
		_, err = service.UpdateDraftField(ctx, "currentAmount", "500")
		require.NoError(t, err)
		_, err = service.SaveDraft(ctx)
		require.NoError(t, err)

		// then
		assert.Equal(t, []event_bus.EventType{event_bus.GoalCreated, event_bus.GoalUpdated}, *seen)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	t.Run("should publish a deleted event for an existing goal", func(t *testing.T) {
		service, bus, ctx := setup(t, DemoGoals)
		seen := recordEvents(bus, event_bus.GoalDeleted)

		// when
		require.NoError(t, service.Delete(ctx, "g1"))

		// then
		assert.Equal(t, []event_bus.EventType{event_bus.GoalDeleted}, *seen)
		goals, err := service.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, goals, 3)
	})

	t.Run("should stay silent for an unknown id", func(t *testing.T) {
		service, bus, ctx := setup(t, DemoGoals)
		seen := recordEvents(bus, event_bus.GoalDeleted)

		// when
		require.NoError(t, service.Delete(ctx, "no-such-id"))

		// then
		assert.Empty(t, *seen)
	})
}

func TestServiceImpl_DashboardGoals(t *testing.T) {
	t.Run("should list active goals before completed ones, capped at three", func(t *testing.T) {
		service, _, ctx := setup(t, DemoGoals)

		// when
		goals, err := service.DashboardGoals(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, goals, 3)
		assert.Equal(t, "g1", goals[0].ID)
		assert.Equal(t, "g2", goals[1].ID)
		assert.Equal(t, "g4", goals[2].ID)
	})
}

func TestServiceImpl_Counts(t *testing.T) {
	t.Run("should count totals per status", func(t *testing.T) {
		service, _, ctx := setup(t, DemoGoals)

		// when
		counts, err := service.Counts(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, Counts{Total: 4, Completed: 1, AtRisk: 1}, counts)
	})
}

func TestServiceImpl_OpenNewDraft(t *testing.T) {
	t.Run("should seed defaults for a fresh draft", func(t *testing.T) {
		service, _, ctx := setup(t, nil)

		// when
		ed, err := service.OpenNewDraft(ctx)

		// then
		require.NoError(t, err)
		assert.True(t, ed.Open)
		assert.Equal(t, "2024-06-01", ed.Draft.Deadline)
		assert.Equal(t, "General", ed.Draft.Category)
		assert.Equal(t, StatusOnTrack, ed.Draft.Status)
	})
}
