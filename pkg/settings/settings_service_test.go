package settings

import (
	"context"
	"testing"

	"github.com/budgetrack/budgetrack/internal/session"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) (*ServiceImpl, context.Context) {
	service := NewService(NewInMemoryRepo(func() Settings {
		return Settings{
			WarningThreshold:  75,
			CriticalThreshold: 90,
			CurrencyFormat:    "USD ($)",
			DateFormat:        "MM/DD/YYYY",
			Departments:       []string{"Marketing", "Engineering"},
			Projects:          []string{"Office Renovation"},
			ReportDateRange:   "Year to Date",
		}
	}))
	ctx := session.WithSession(context.Background(), uuid.NewString())
	return service, ctx
}

func TestServiceImpl_UpdateField(t *testing.T) {
	t.Run("should truncate threshold values to whole percentages", func(t *testing.T) {
		service, ctx := setup(t)

		// when
		s, err := service.UpdateField(ctx, "warningThreshold", "82.7")

		// then
		require.NoError(t, err)
		assert.Equal(t, 82, s.WarningThreshold)
	})

	t.Run("should keep the previous threshold when the value does not parse", func(t *testing.T) {
		service, ctx := setup(t)

		// when
		s, err := service.UpdateField(ctx, "criticalThreshold", "ninety")

		// then
		require.NoError(t, err)
		assert.Equal(t, 90, s.CriticalThreshold)
	})

	t.Run("should toggle notification preferences", func(t *testing.T) {
		service, ctx := setup(t)

		// when
		s, err := service.UpdateField(ctx, "notificationsWeekly", "true")

		// then
		require.NoError(t, err)
		assert.True(t, s.NotificationsWeekly)
	})

	t.Run("should update display formats", func(t *testing.T) {
		service, ctx := setup(t)

		// when
		s, err := service.UpdateField(ctx, "currencyFormat", "EUR (€)")

		// then
		require.NoError(t, err)
		assert.Equal(t, "EUR (€)", s.CurrencyFormat)
	})
}

func TestServiceImpl_Departments(t *testing.T) {
	t.Run("should not add duplicate departments", func(t *testing.T) {
		service, ctx := setup(t)

		// when
		s, err := service.AddDepartment(ctx, "Marketing")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"Marketing", "Engineering"}, s.Departments)
	})

	t.Run("should ignore an empty department name", func(t *testing.T) {
		service, ctx := setup(t)

		// when
		s, err := service.AddDepartment(ctx, "")

		// then
		require.NoError(t, err)
		assert.Len(t, s.Departments, 2)
	})

	t.Run("should append and remove a department", func(t *testing.T) {
		service, ctx := setup(t)

		// given
		s, err := service.AddDepartment(ctx, "Legal")
		require.NoError(t, err)
		assert.Equal(t, []string{"Marketing", "Engineering", "Legal"}, s.Departments)

		// when
		s, err = service.RemoveDepartment(ctx, "Engineering")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"Marketing", "Legal"}, s.Departments)
	})
}

func TestServiceImpl_Projects(t *testing.T) {
	t.Run("should append and remove a project", func(t *testing.T) {
		service, ctx := setup(t)

		// given
		s, err := service.AddProject(ctx, "Brand Refresh")
		require.NoError(t, err)
		assert.Equal(t, []string{"Office Renovation", "Brand Refresh"}, s.Projects)

		// when
		s, err = service.RemoveProject(ctx, "Office Renovation")

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"Brand Refresh"}, s.Projects)
	})
}
