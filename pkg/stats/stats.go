package stats

type Overview struct {
	TotalBudget           float64
	TotalSpent            float64
	RemainingBudget       float64
	UtilizationPercentage float64
	Health                Health
	PendingApprovals      int
	TopSpendingCategory   string
}

type BudgetStats struct {
	ID              string
	Name            string
	Type            string
	AllocatedAmount float64
	Period          string
	Spent           float64
	Remaining       float64
	Utilization     float64
	Health          Health
}

type CategoryValue struct {
	Name  string
	Value float64
}

// MonthlyTrend is one month's spending per category. Every emitted month
// carries an entry for every category seen across the whole series.
type MonthlyTrend struct {
	Month      string
	Categories map[string]float64
}

type ForecastPoint struct {
	Month     string
	Actual    float64
	Projected float64
}

type DepartmentComparison struct {
	Name   string
	Budget float64
	Spent  float64
}
