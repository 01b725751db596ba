package stats

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/budgetrack/budgetrack/internal/utils"
	"github.com/budgetrack/budgetrack/pkg/budget"
	"github.com/budgetrack/budgetrack/pkg/expense"
	"github.com/budgetrack/budgetrack/pkg/settings"
	log "github.com/sirupsen/logrus"
)

// Service recomputes every aggregation from the raw budgets and expenses on
// each call. Nothing is cached; a mutation is visible in the next read.
type Service interface {
	Overview(ctx context.Context) (Overview, error)
	BudgetStats(ctx context.Context) ([]BudgetStats, error)
	CategoryDistribution(ctx context.Context) ([]CategoryValue, error)
	MonthlyTrends(ctx context.Context) ([]MonthlyTrend, error)
	SpendingForecast(ctx context.Context) ([]ForecastPoint, error)
	DepartmentComparison(ctx context.Context) ([]DepartmentComparison, error)
	BudgetAlerts(ctx context.Context) ([]string, error)
	SpendingInsights(ctx context.Context) ([]string, error)
}

type ServiceImpl struct {
	budgets  budget.Repo
	expenses expense.Repo
	settings settings.Repo
	clock    utils.Clock
}

func NewService(budgets budget.Repo, expenses expense.Repo, settings settings.Repo, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		budgets:  budgets,
		expenses: expenses,
		settings: settings,
		clock:    clock,
	}
}

func (s *ServiceImpl) Overview(ctx context.Context) (Overview, error) {
	budgets, err := s.budgets.GetAll(ctx)
	if err != nil {
		return Overview{}, err
	}
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return Overview{}, err
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return Overview{}, err
	}

	totalBudget := 0.0
	for _, b := range budgets {
		totalBudget += b.AllocatedAmount
	}
	totalSpent := 0.0
	pending := 0
	for _, e := range expenses {
		if e.ApprovalStatus != expense.StatusRejected {
			totalSpent += e.Amount
		}
		if e.ApprovalStatus == expense.StatusPending {
			pending++
		}
	}
	utilization := 0.0
	if totalBudget != 0 {
		utilization = round1(totalSpent / totalBudget * 100)
	}

	return Overview{
		TotalBudget:           totalBudget,
		TotalSpent:            totalSpent,
		RemainingBudget:       totalBudget - totalSpent,
		UtilizationPercentage: utilization,
		Health:                ClassifyHealth(utilization, cfg.WarningThreshold, cfg.CriticalThreshold),
		PendingApprovals:      pending,
		TopSpendingCategory:   topCategory(distribution(expenses)),
	}, nil
}

func (s *ServiceImpl) BudgetStats(ctx context.Context) ([]BudgetStats, error) {
	budgets, err := s.budgets.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	stats := make([]BudgetStats, 0, len(budgets))
	for _, b := range budgets {
		spent := categorySpent(expenses, b.Name)
		utilization := 0.0
		if b.AllocatedAmount > 0 {
			utilization = spent / b.AllocatedAmount * 100
		}
		stats = append(stats, BudgetStats{
			ID:              b.ID,
			Name:            b.Name,
			Type:            string(b.Type),
			AllocatedAmount: b.AllocatedAmount,
			Period:          string(b.Period),
			Spent:           spent,
			Remaining:       b.AllocatedAmount - spent,
			Utilization:     round1(utilization),
			Health:          ClassifyHealth(utilization, cfg.WarningThreshold, cfg.CriticalThreshold),
		})
	}
	return stats, nil
}

func (s *ServiceImpl) CategoryDistribution(ctx context.Context) ([]CategoryValue, error) {
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return distribution(expenses), nil
}

func (s *ServiceImpl) MonthlyTrends(ctx context.Context) ([]MonthlyTrend, error) {
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	perMonth := make(map[string]map[string]float64)
	allCategories := make(map[string]bool)
	for _, e := range expenses {
		if e.ApprovalStatus == expense.StatusRejected {
			continue
		}
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			log.Errorf("error processing expense date: %v", err)
			continue
		}
		month := date.Format("Jan")
		if perMonth[month] == nil {
			perMonth[month] = make(map[string]float64)
		}
		perMonth[month][e.Category] += e.Amount
		allCategories[e.Category] = true
	}

	trends := make([]MonthlyTrend, 0, len(perMonth))
	for m := time.January; m <= time.December; m++ {
		month := m.String()[:3]
		totals, ok := perMonth[month]
		if !ok {
			continue
		}
		for cat := range allCategories {
			if _, ok := totals[cat]; !ok {
				totals[cat] = 0
			}
		}
		trends = append(trends, MonthlyTrend{Month: month, Categories: totals})
	}
	return trends, nil
}

func (s *ServiceImpl) SpendingForecast(ctx context.Context) ([]ForecastPoint, error) {
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	actuals := make(map[time.Month]float64)
	for _, e := range expenses {
		if e.ApprovalStatus == expense.StatusRejected {
			continue
		}
		date, err := time.Parse("2006-01-02", e.Date)
		if err != nil {
			log.Errorf("error processing expense date: %v", err)
			continue
		}
		if date.Year() == now.Year() {
			actuals[date.Month()] += e.Amount
		}
	}

	totalActual := 0.0
	monthsWithData := 0
	for _, amount := range actuals {
		totalActual += amount
		if amount > 0 {
			monthsWithData++
		}
	}
	avgSpend := totalActual / math.Max(1, float64(monthsWithData))

	currentMonth := now.Month()
	forecast := make([]ForecastPoint, 0, 12)
	for m := time.January; m <= time.December; m++ {
		point := ForecastPoint{Month: m.String()[:3]}
		if m < currentMonth {
			point.Actual = actuals[m]
			point.Projected = actuals[m]
		} else {
			growth := 1 + float64(m-currentMonth)*0.02
			point.Projected = math.Round(avgSpend * growth)
		}
		forecast = append(forecast, point)
	}
	return forecast, nil
}

func (s *ServiceImpl) DepartmentComparison(ctx context.Context) ([]DepartmentComparison, error) {
	budgets, err := s.budgets.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	comparison := make([]DepartmentComparison, 0, len(budgets))
	for _, b := range budgets {
		if b.Type != budget.TypeDepartment {
			continue
		}
		comparison = append(comparison, DepartmentComparison{
			Name:   b.Name,
			Budget: b.AllocatedAmount,
			Spent:  categorySpent(expenses, b.Name),
		})
	}
	sort.SliceStable(comparison, func(i, j int) bool {
		return comparison[i].Spent > comparison[j].Spent
	})
	return comparison, nil
}

func (s *ServiceImpl) BudgetAlerts(ctx context.Context) ([]string, error) {
	budgets, err := s.budgets.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	cfg, err := s.settings.Get(ctx)
	if err != nil {
		return nil, err
	}

	alerts := make([]string, 0)
	for _, b := range budgets {
		if b.AllocatedAmount <= 0 {
			continue
		}
		utilization := categorySpent(expenses, b.Name) / b.AllocatedAmount * 100
		switch ClassifyHealth(utilization, cfg.WarningThreshold, cfg.CriticalThreshold) {
		case HealthCritical:
			alerts = append(alerts, fmt.Sprintf("Critical: %s is at %.1f%% utilization", b.Name, utilization))
		case HealthWarning:
			alerts = append(alerts, fmt.Sprintf("Warning: %s is at %.1f%% utilization", b.Name, utilization))
		}
	}
	return alerts, nil
}

func (s *ServiceImpl) SpendingInsights(ctx context.Context) ([]string, error) {
	budgets, err := s.budgets.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	expenses, err := s.expenses.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	totalBudget := 0.0
	for _, b := range budgets {
		totalBudget += b.AllocatedAmount
	}
	totalSpent := 0.0
	pending := 0
	for _, e := range expenses {
		if e.ApprovalStatus != expense.StatusRejected {
			totalSpent += e.Amount
		}
		if e.ApprovalStatus == expense.StatusPending {
			pending++
		}
	}

	insights := make([]string, 0)
	if totalSpent > totalBudget*0.8 {
		insights = append(insights, "Spending velocity is high. Consider freezing non-essential expenses.")
	}
	if pending > 5 {
		insights = append(insights, fmt.Sprintf("You have %d pending approvals. Clearing these will update accurate spend data.", pending))
	}
	if top := topCategory(distribution(expenses)); top != "None" {
		insights = append(insights, fmt.Sprintf("%s accounts for the largest share of expenses. Review mainly recurring costs there.", top))
	}
	if len(insights) == 0 {
		insights = append(insights, "Budget health looks good. Keep tracking expenses daily.")
	}
	return insights, nil
}

// distribution sums non-rejected expense amounts per category in the order
// categories first appear in the expense list.
func distribution(expenses []expense.Expense) []CategoryValue {
	index := make(map[string]int)
	values := make([]CategoryValue, 0)
	for _, e := range expenses {
		if e.ApprovalStatus == expense.StatusRejected {
			continue
		}
		i, ok := index[e.Category]
		if !ok {
			i = len(values)
			index[e.Category] = i
			values = append(values, CategoryValue{Name: e.Category})
		}
		values[i].Value += e.Amount
	}
	return values
}

func topCategory(values []CategoryValue) string {
	if len(values) == 0 {
		return "None"
	}
	top := values[0]
	for _, v := range values[1:] {
		if v.Value > top.Value {
			top = v
		}
	}
	return top.Name
}

func categorySpent(expenses []expense.Expense, category string) float64 {
	spent := 0.0
	for _, e := range expenses {
		if e.Category == category && e.ApprovalStatus != expense.StatusRejected {
			spent += e.Amount
		}
	}
	return spent
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
