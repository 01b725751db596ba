package stats

import (
	"context"
	"testing"
	"time"

	"github.com/budgetrack/budgetrack/internal/session"
	"github.com/budgetrack/budgetrack/internal/utils"
	"github.com/budgetrack/budgetrack/pkg/budget"
	"github.com/budgetrack/budgetrack/pkg/expense"
	"github.com/budgetrack/budgetrack/pkg/settings"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var clock = &utils.MockClock{FixedNow: time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)}

func setup(t *testing.T, budgets []budget.Budget, expenses []expense.Expense) (*ServiceImpl, context.Context) {
	budgetRepo := budget.NewInMemoryRepo(func() []budget.Budget { return budgets })
	expenseRepo := expense.NewInMemoryRepo(func() []expense.Expense { return expenses })
	settingsRepo := settings.NewInMemoryRepo(func() settings.Settings {
		return settings.Settings{WarningThreshold: 75, CriticalThreshold: 90}
	})
	service := NewService(budgetRepo, expenseRepo, settingsRepo, clock)
	ctx := session.WithSession(context.Background(), uuid.NewString())
	return service, ctx
}

func TestServiceImpl_Overview(t *testing.T) {
	t.Run("should exclude rejected expenses from totals", func(t *testing.T) {
		service, ctx := setup(t,
			[]budget.Budget{
				{ID: "b1", Name: "Marketing", Type: budget.TypeDepartment, AllocatedAmount: 10000},
				{ID: "b2", Name: "Engineering", Type: budget.TypeDepartment, AllocatedAmount: 20000},
			},
			[]expense.Expense{
				{ID: "e1", Date: "2024-01-10", Category: "Marketing", Amount: 4000, ApprovalStatus: expense.StatusApproved},
				{ID: "e2", Date: "2024-02-10", Category: "Engineering", Amount: 2000, ApprovalStatus: expense.StatusPending},
				{ID: "e3", Date: "2024-03-10", Category: "Marketing", Amount: 9999, ApprovalStatus: expense.StatusRejected},
			})

		// when
		overview, err := service.Overview(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, 30000.0, overview.TotalBudget)
		assert.Equal(t, 6000.0, overview.TotalSpent)
		assert.Equal(t, 24000.0, overview.RemainingBudget)
		assert.Equal(t, 20.0, overview.UtilizationPercentage)
		assert.Equal(t, HealthHealthy, overview.Health)
		assert.Equal(t, 1, overview.PendingApprovals)
		assert.Equal(t, "Marketing", overview.TopSpendingCategory)
	})

	t.Run("should report zero utilization when no budget is allocated", func(t *testing.T) {
		service, ctx := setup(t, nil, []expense.Expense{
			{ID: "e1", Date: "2024-01-10", Category: "Marketing", Amount: 500, ApprovalStatus: expense.StatusApproved},
		})

		// when
		overview, err := service.Overview(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, 0.0, overview.UtilizationPercentage)
		assert.Equal(t, HealthHealthy, overview.Health)
	})

	t.Run("should round utilization to one decimal", func(t *testing.T) {
		service, ctx := setup(t,
			[]budget.Budget{{ID: "b1", Name: "Ops", AllocatedAmount: 3000}},
			[]expense.Expense{{ID: "e1", Date: "2024-01-10", Category: "Ops", Amount: 1000, ApprovalStatus: expense.StatusApproved}})

		// when
		overview, err := service.Overview(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, 33.3, overview.UtilizationPercentage)
	})
}

func TestClassifyHealth(t *testing.T) {
	tests := []struct {
		name        string
		utilization float64
		want        Health
	}{
		{"well under the warning threshold", 50, HealthHealthy},
		{"exactly at the warning threshold", 75, HealthHealthy},
		{"just over the warning threshold", 75.1, HealthWarning},
		{"exactly at the critical threshold", 90, HealthWarning},
		{"just over the critical threshold", 90.1, HealthCritical},
		{"far over budget", 150, HealthCritical},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyHealth(tt.utilization, 75, 90))
		})
	}
}

func TestServiceImpl_BudgetStats(t *testing.T) {
	t.Run("should compute spent and utilization per budget", func(t *testing.T) {
		service, ctx := setup(t,
			[]budget.Budget{
				{ID: "b1", Name: "Marketing", Type: budget.TypeDepartment, AllocatedAmount: 1000, Period: budget.PeriodAnnual},
				{ID: "b2", Name: "Unfunded", Type: budget.TypeProject, AllocatedAmount: 0, Period: budget.PeriodOneTime},
			},
			[]expense.Expense{
				{ID: "e1", Date: "2024-01-10", Category: "Marketing", Amount: 950, ApprovalStatus: expense.StatusApproved},
				{ID: "e2", Date: "2024-02-10", Category: "Unfunded", Amount: 10, ApprovalStatus: expense.StatusApproved},
			})

		// when
		stats, err := service.BudgetStats(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, stats, 2)
		assert.Equal(t, 950.0, stats[0].Spent)
		assert.Equal(t, 50.0, stats[0].Remaining)
		assert.Equal(t, 95.0, stats[0].Utilization)
		assert.Equal(t, HealthCritical, stats[0].Health)
		assert.Equal(t, 0.0, stats[1].Utilization)
		assert.Equal(t, HealthHealthy, stats[1].Health)
		assert.Equal(t, -10.0, stats[1].Remaining)
	})
}

func TestServiceImpl_CategoryDistribution(t *testing.T) {
	t.Run("should aggregate categories in first-seen order", func(t *testing.T) {
		service, ctx := setup(t, nil, []expense.Expense{
			{ID: "e1", Date: "2024-01-10", Category: "Travel", Amount: 100, ApprovalStatus: expense.StatusApproved},
			{ID: "e2", Date: "2024-01-11", Category: "Office", Amount: 200, ApprovalStatus: expense.StatusPending},
			{ID: "e3", Date: "2024-01-12", Category: "Travel", Amount: 50, ApprovalStatus: expense.StatusApproved},
			{ID: "e4", Date: "2024-01-13", Category: "Snacks", Amount: 9000, ApprovalStatus: expense.StatusRejected},
		})

		// when
		values, err := service.CategoryDistribution(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, values, 2)
		assert.Equal(t, CategoryValue{Name: "Travel", Value: 150}, values[0])
		assert.Equal(t, CategoryValue{Name: "Office", Value: 200}, values[1])
	})
}

func TestServiceImpl_MonthlyTrends(t *testing.T) {
	t.Run("should emit months in calendar order with zero backfill", func(t *testing.T) {
		service, ctx := setup(t, nil, []expense.Expense{
			{ID: "e1", Date: "2024-03-10", Category: "Travel", Amount: 100, ApprovalStatus: expense.StatusApproved},
			{ID: "e2", Date: "2024-01-05", Category: "Office", Amount: 200, ApprovalStatus: expense.StatusApproved},
			{ID: "e3", Date: "not-a-date", Category: "Travel", Amount: 999, ApprovalStatus: expense.StatusApproved},
		})

		// when
		trends, err := service.MonthlyTrends(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, trends, 2)
		assert.Equal(t, "Jan", trends[0].Month)
		assert.Equal(t, 200.0, trends[0].Categories["Office"])
		assert.Equal(t, 0.0, trends[0].Categories["Travel"])
		assert.Equal(t, "Mar", trends[1].Month)
		assert.Equal(t, 100.0, trends[1].Categories["Travel"])
		assert.Equal(t, 0.0, trends[1].Categories["Office"])
	})
}

func TestServiceImpl_SpendingForecast(t *testing.T) {
	t.Run("should project current and future months from the monthly average", func(t *testing.T) {
		service, ctx := setup(t, nil, []expense.Expense{
			{ID: "e1", Date: "2024-01-10", Category: "Travel", Amount: 1000, ApprovalStatus: expense.StatusApproved},
			{ID: "e2", Date: "2024-02-10", Category: "Travel", Amount: 2000, ApprovalStatus: expense.StatusApproved},
			{ID: "e3", Date: "2023-02-10", Category: "Travel", Amount: 5000, ApprovalStatus: expense.StatusApproved},
		})

		// when
		forecast, err := service.SpendingForecast(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, forecast, 12)

		// past months report actuals, last year's spending is ignored
		assert.Equal(t, ForecastPoint{Month: "Jan", Actual: 1000, Projected: 1000}, forecast[0])
		assert.Equal(t, ForecastPoint{Month: "Feb", Actual: 2000, Projected: 2000}, forecast[1])
		assert.Equal(t, ForecastPoint{Month: "May", Actual: 0, Projected: 0}, forecast[4])

		// average over months with data is 1500, growing 2% per month ahead
		assert.Equal(t, ForecastPoint{Month: "Jun", Actual: 0, Projected: 1500}, forecast[5])
		assert.Equal(t, ForecastPoint{Month: "Jul", Actual: 0, Projected: 1530}, forecast[6])
		assert.Equal(t, ForecastPoint{Month: "Dec", Actual: 0, Projected: 1680}, forecast[11])
	})

	t.Run("should emit 12 zeroed projections without expenses", func(t *testing.T) {
		service, ctx := setup(t, nil, nil)

		// when
		forecast, err := service.SpendingForecast(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, forecast, 12)
		for _, point := range forecast {
			assert.Equal(t, 0.0, point.Actual)
			assert.Equal(t, 0.0, point.Projected)
		}
	})
}

func TestServiceImpl_DepartmentComparison(t *testing.T) {
	t.Run("should compare only department budgets sorted by spent", func(t *testing.T) {
		service, ctx := setup(t,
			[]budget.Budget{
				{ID: "b1", Name: "Marketing", Type: budget.TypeDepartment, AllocatedAmount: 10000},
				{ID: "b2", Name: "Website Redesign", Type: budget.TypeProject, AllocatedAmount: 5000},
				{ID: "b3", Name: "Engineering", Type: budget.TypeDepartment, AllocatedAmount: 20000},
			},
			[]expense.Expense{
				{ID: "e1", Date: "2024-01-10", Category: "Marketing", Amount: 100, ApprovalStatus: expense.StatusApproved},
				{ID: "e2", Date: "2024-01-11", Category: "Engineering", Amount: 900, ApprovalStatus: expense.StatusApproved},
				{ID: "e3", Date: "2024-01-12", Category: "Website Redesign", Amount: 5000, ApprovalStatus: expense.StatusApproved},
			})

		// when
		comparison, err := service.DepartmentComparison(ctx)

		// then
		require.NoError(t, err)
		require.Len(t, comparison, 2)
		assert.Equal(t, "Engineering", comparison[0].Name)
		assert.Equal(t, 900.0, comparison[0].Spent)
		assert.Equal(t, "Marketing", comparison[1].Name)
	})
}

func TestServiceImpl_BudgetAlerts(t *testing.T) {
	t.Run("should report critical and warning budgets", func(t *testing.T) {
		service, ctx := setup(t,
			[]budget.Budget{
				{ID: "b1", Name: "Marketing", AllocatedAmount: 1000},
				{ID: "b2", Name: "Engineering", AllocatedAmount: 1000},
				{ID: "b3", Name: "Ops", AllocatedAmount: 1000},
			},
			[]expense.Expense{
				{ID: "e1", Date: "2024-01-10", Category: "Marketing", Amount: 950, ApprovalStatus: expense.StatusApproved},
				{ID: "e2", Date: "2024-01-11", Category: "Engineering", Amount: 800, ApprovalStatus: expense.StatusApproved},
				{ID: "e3", Date: "2024-01-12", Category: "Ops", Amount: 100, ApprovalStatus: expense.StatusApproved},
			})

		// when
		alerts, err := service.BudgetAlerts(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{
			"Critical: Marketing is at 95.0% utilization",
			"Warning: Engineering is at 80.0% utilization",
		}, alerts)
	})
}

func TestServiceImpl_SpendingInsights(t *testing.T) {
	t.Run("should fall back to a healthy message", func(t *testing.T) {
		service, ctx := setup(t,
			[]budget.Budget{{ID: "b1", Name: "Marketing", AllocatedAmount: 10000}},
			nil)

		// when
		insights, err := service.SpendingInsights(ctx)

		// then
		require.NoError(t, err)
		assert.Equal(t, []string{"Budget health looks good. Keep tracking expenses daily."}, insights)
	})

	t.Run("should nudge about a pending approval backlog", func(t *testing.T) {
		expenses := make([]expense.Expense, 0, 6)
		for i := 0; i < 6; i++ {
			expenses = append(expenses, expense.Expense{
				ID: uuid.NewString(), Date: "2024-01-10", Category: "Travel", Amount: 1,
				ApprovalStatus: expense.StatusPending,
			})
		}
		service, ctx := setup(t,
			[]budget.Budget{{ID: "b1", Name: "Travel", AllocatedAmount: 10000}},
			expenses)

		// when
		insights, err := service.SpendingInsights(ctx)

		// then
		require.NoError(t, err)
		assert.Contains(t, insights, "You have 6 pending approvals. Clearing these will update accurate spend data.")
		assert.Contains(t, insights, "Travel accounts for the largest share of expenses. Review mainly recurring costs there.")
	})

	t.Run("should warn about high spending velocity", func(t *testing.T) {
		service, ctx := setup(t,
			[]budget.Budget{{ID: "b1", Name: "Marketing", AllocatedAmount: 1000}},
			[]expense.Expense{{ID: "e1", Date: "2024-01-10", Category: "Marketing", Amount: 900, ApprovalStatus: expense.StatusApproved}})

		// when
		insights, err := service.SpendingInsights(ctx)

		// then
		require.NoError(t, err)
		assert.Contains(t, insights, "Spending velocity is high. Consider freezing non-essential expenses.")
	})
}
