package stats

import (
	"context"
	"encoding/json"
	"net/http"
)

type OverviewDTO struct {
	TotalBudget           float64 `json:"totalBudget"`
	TotalSpent            float64 `json:"totalSpent"`
	RemainingBudget       float64 `json:"remainingBudget"`
	UtilizationPercentage float64 `json:"utilizationPercentage"`
	Health                string  `json:"health"`
	PendingApprovals      int     `json:"pendingApprovals"`
	TopSpendingCategory   string  `json:"topSpendingCategory"`
}

type BudgetStatsDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	AllocatedAmount float64 `json:"allocatedAmount"`
	Period          string  `json:"period"`
	Spent           float64 `json:"spent"`
	Remaining       float64 `json:"remaining"`
	Utilization     float64 `json:"utilization"`
	Health          string  `json:"health"`
}

type CategoryValueDTO struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

type MonthlyTrendDTO struct {
	Month      string             `json:"month"`
	Categories map[string]float64 `json:"categories"`
}

type ForecastPointDTO struct {
	Month     string  `json:"month"`
	Actual    float64 `json:"actual"`
	Projected float64 `json:"projected"`
}

type DepartmentComparisonDTO struct {
	Name   string  `json:"name"`
	Budget float64 `json:"budget"`
	Spent  float64 `json:"spent"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Overview(w http.ResponseWriter, r *http.Request) {
	overview, err := h.service.Overview(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, OverviewDTO{
		TotalBudget:           overview.TotalBudget,
		TotalSpent:            overview.TotalSpent,
		RemainingBudget:       overview.RemainingBudget,
		UtilizationPercentage: overview.UtilizationPercentage,
		Health:                string(overview.Health),
		PendingApprovals:      overview.PendingApprovals,
		TopSpendingCategory:   overview.TopSpendingCategory,
	})
}

func (h *Handler) BudgetStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.BudgetStats(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]BudgetStatsDTO, 0, len(stats))
	for _, s := range stats {
		dtos = append(dtos, BudgetStatsDTO{
			ID:              s.ID,
			Name:            s.Name,
			Type:            s.Type,
			AllocatedAmount: s.AllocatedAmount,
			Period:          s.Period,
			Spent:           s.Spent,
			Remaining:       s.Remaining,
			Utilization:     s.Utilization,
			Health:          string(s.Health),
		})
	}
	writeJSON(w, dtos)
}

func (h *Handler) CategoryDistribution(w http.ResponseWriter, r *http.Request) {
	values, err := h.service.CategoryDistribution(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]CategoryValueDTO, 0, len(values))
	for _, v := range values {
		dtos = append(dtos, CategoryValueDTO{Name: v.Name, Value: v.Value})
	}
	writeJSON(w, dtos)
}

func (h *Handler) MonthlyTrends(w http.ResponseWriter, r *http.Request) {
	trends, err := h.service.MonthlyTrends(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]MonthlyTrendDTO, 0, len(trends))
	for _, t := range trends {
		dtos = append(dtos, MonthlyTrendDTO{Month: t.Month, Categories: t.Categories})
	}
	writeJSON(w, dtos)
}

func (h *Handler) SpendingForecast(w http.ResponseWriter, r *http.Request) {
	forecast, err := h.service.SpendingForecast(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]ForecastPointDTO, 0, len(forecast))
	for _, p := range forecast {
		dtos = append(dtos, ForecastPointDTO{Month: p.Month, Actual: p.Actual, Projected: p.Projected})
	}
	writeJSON(w, dtos)
}

func (h *Handler) DepartmentComparison(w http.ResponseWriter, r *http.Request) {
	comparison, err := h.service.DepartmentComparison(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]DepartmentComparisonDTO, 0, len(comparison))
	for _, c := range comparison {
		dtos = append(dtos, DepartmentComparisonDTO{Name: c.Name, Budget: c.Budget, Spent: c.Spent})
	}
	writeJSON(w, dtos)
}

func (h *Handler) BudgetAlerts(w http.ResponseWriter, r *http.Request) {
	h.writeStrings(w, r, h.service.BudgetAlerts)
}

func (h *Handler) SpendingInsights(w http.ResponseWriter, r *http.Request) {
	h.writeStrings(w, r, h.service.SpendingInsights)
}

func (h *Handler) writeStrings(w http.ResponseWriter, r *http.Request, compute func(ctx context.Context) ([]string, error)) {
	messages, err := compute(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, messages)
}

func writeJSON(w http.ResponseWriter, body any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(body); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
