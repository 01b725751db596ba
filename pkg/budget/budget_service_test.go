package budget

import (
	"context"
	"testing"

	"github.com/budgetrack/budgetrack/internal/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*ServiceImpl, context.Context) {
	service := NewService(NewInMemoryRepo(nil))
	ctx := session.WithSession(context.Background(), uuid.NewString())
	return service, ctx
}

func TestServiceImpl_SaveDraft(t *testing.T) {
	t.Run("should append a new budget with a generated id", func(t *testing.T) {
		service, ctx := setup(t)

		// given
		_, err := service.OpenNewDraft(ctx)
		require.NoError(t, err)
		_, err = service.UpdateDraftField(ctx, "name", "Cloud Hosting")
		require.NoError(t, err)
		_, err = service.UpdateDraftField(ctx, "allocatedAmount", "24000")
		require.NoError(t, err)
		_, err = service.UpdateDraftField(ctx, "period", "Q2")
		require.NoError(t, err)

		// when
		saved, err := service.SaveDraft(ctx)

		// then
		require.NoError(t, err)
		assert.True(t, saved)
		budgets, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, budgets, 1)
		assert.NotEmpty(t, budgets[0].ID)
		assert.Equal(t, "Cloud Hosting", budgets[0].Name)
		assert.Equal(t, 24000.0, budgets[0].AllocatedAmount)
		assert.Equal(t, PeriodQ2, budgets[0].Period)
		ed, err := service.Editor(ctx)
		require.NoError(t, err)
		assert.False(t, ed.Open)
	})

	t.Run("should silently skip a draft without a name", func(t *testing.T) {
		service, ctx := setup(t)

		// given
		_, err := service.OpenNewDraft(ctx)
		require.NoError(t, err)
		_, err = service.UpdateDraftField(ctx, "allocatedAmount", "500")
		require.NoError(t, err)

		// when
		saved, err := service.SaveDraft(ctx)

		// then
		require.NoError(t, err)
		assert.False(t, saved)
		budgets, err := service.GetAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, budgets)
		ed, err := service.Editor(ctx)
		require.NoError(t, err)
		assert.True(t, ed.Open)
	})

	t.Run("should replace an existing budget in place", func(t *testing.T) {
		service, ctx := setup(t)

		// given
		require.NoError(t, service.repo.Store(ctx, Budget{ID: "b1", Name: "Marketing", Type: TypeDepartment, AllocatedAmount: 50000, Period: PeriodAnnual}))
		require.NoError(t, service.repo.Store(ctx, Budget{ID: "b2", Name: "Engineering", Type: TypeDepartment, AllocatedAmount: 120000, Period: PeriodAnnual}))
		_, found, err := service.OpenEditDraft(ctx, "b1")
		require.NoError(t, err)
		require.True(t, found)
		_, err = service.UpdateDraftField(ctx, "allocatedAmount", "60000")
		require.NoError(t, err)

		// when
		saved, err := service.SaveDraft(ctx)

		// then
		require.NoError(t, err)
		assert.True(t, saved)
		budgets, err := service.GetAll(ctx)
		require.NoError(t, err)
		require.Len(t, budgets, 2)
		assert.Equal(t, "b1", budgets[0].ID)
		assert.Equal(t, 60000.0, budgets[0].AllocatedAmount)
	})
}

func TestServiceImpl_UpdateDraftField(t *testing.T) {
	t.Run("should keep the previous value when a number does not parse", func(t *testing.T) {
		service, ctx := setup(t)

		// given
		_, err := service.OpenNewDraft(ctx)
		require.NoError(t, err)
		_, err = service.UpdateDraftField(ctx, "allocatedAmount", "1500")
		require.NoError(t, err)

		// when
		ed, err := service.UpdateDraftField(ctx, "allocatedAmount", "not-a-number")

		// then
		require.NoError(t, err)
		assert.Equal(t, 1500.0, ed.Draft.AllocatedAmount)
	})
}

func TestServiceImpl_CloseDraft(t *testing.T) {
	t.Run("should keep the draft content after closing", func(t *testing.T) {
		service, ctx := setup(t)

		// given
		_, err := service.OpenNewDraft(ctx)
		require.NoError(t, err)
		_, err = service.UpdateDraftField(ctx, "name", "Travel")
		require.NoError(t, err)

		// when
		require.NoError(t, service.CloseDraft(ctx))

		// then
		ed, err := service.Editor(ctx)
		require.NoError(t, err)
		assert.False(t, ed.Open)
		assert.Equal(t, "Travel", ed.Draft.Name)
	})
}

func TestServiceImpl_Delete(t *testing.T) {
	t.Run("should ignore an unknown id", func(t *testing.T) {
		service, ctx := setup(t)

		// given
		require.NoError(t, service.repo.Store(ctx, Budget{ID: "b1", Name: "Marketing"}))

		// when
		err := service.Delete(ctx, "no-such-id")

		// then
		require.NoError(t, err)
		budgets, err := service.GetAll(ctx)
		require.NoError(t, err)
		assert.Len(t, budgets, 1)
	})
}

func TestServiceImpl_SessionIsolation(t *testing.T) {
	t.Run("should keep budgets of different sessions apart", func(t *testing.T) {
		service := NewService(NewInMemoryRepo(DemoBudgets))
		ctxA := session.WithSession(context.Background(), "session-a")
		ctxB := session.WithSession(context.Background(), "session-b")

		// when
		require.NoError(t, service.Delete(ctxA, "b1"))

		// then
		budgetsA, err := service.GetAll(ctxA)
		require.NoError(t, err)
		budgetsB, err := service.GetAll(ctxB)
		require.NoError(t, err)
		assert.Len(t, budgetsA, len(budgetsB)-1)
	})
}
