package app

import (
	"github.com/budgetrack/budgetrack/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Budgets
	r.HandleFunc("/api/budget", deps.BudgetHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/budget/draft", deps.BudgetHandler.GetEditor).Methods("GET")
	r.HandleFunc("/api/budget/draft", deps.BudgetHandler.OpenNewDraft).Methods("POST")
	r.HandleFunc("/api/budget/draft/field", deps.BudgetHandler.UpdateDraftField).Methods("PATCH")
	r.HandleFunc("/api/budget/draft/save", deps.BudgetHandler.SaveDraft).Methods("POST")
	r.HandleFunc("/api/budget/draft/{id}", deps.BudgetHandler.OpenEditDraft).Methods("POST")
	r.HandleFunc("/api/budget/draft", deps.BudgetHandler.CloseDraft).Methods("DELETE")
	r.HandleFunc("/api/budget/{id}", deps.BudgetHandler.Delete).Methods("DELETE")

	// Expenses
	r.HandleFunc("/api/expense", deps.ExpenseHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/expense/tags", deps.ExpenseHandler.GetTags).Methods("GET")
	r.HandleFunc("/api/expense/export", deps.ExpenseHandler.Export).Methods("GET")
	r.HandleFunc("/api/expense/draft", deps.ExpenseHandler.GetEditor).Methods("GET")
	r.HandleFunc("/api/expense/draft", deps.ExpenseHandler.OpenNewDraft).Methods("POST")
	r.HandleFunc("/api/expense/draft/tab", deps.ExpenseHandler.SetActiveTab).Methods("PUT")
	r.HandleFunc("/api/expense/draft/field", deps.ExpenseHandler.UpdateDraftField).Methods("PATCH")
	r.HandleFunc("/api/expense/draft/attachment", deps.ExpenseHandler.SetDraftAttachment).Methods("PUT")
	r.HandleFunc("/api/expense/draft/tag", deps.ExpenseHandler.AddDraftTag).Methods("POST")
	r.HandleFunc("/api/expense/draft/tag/{tag}", deps.ExpenseHandler.RemoveDraftTag).Methods("DELETE")
	r.HandleFunc("/api/expense/draft/split", deps.ExpenseHandler.AddSplit).Methods("POST")
	r.HandleFunc("/api/expense/draft/split/{index}", deps.ExpenseHandler.UpdateSplit).Methods("PUT")
	r.HandleFunc("/api/expense/draft/split/{index}", deps.ExpenseHandler.RemoveSplit).Methods("DELETE")
	r.HandleFunc("/api/expense/draft/comment/text", deps.ExpenseHandler.SetCommentText).Methods("PUT")
	r.HandleFunc("/api/expense/draft/comment", deps.ExpenseHandler.AddDraftComment).Methods("POST")
	r.HandleFunc("/api/expense/draft/save", deps.ExpenseHandler.SaveDraft).Methods("POST")
	r.HandleFunc("/api/expense/draft/{id}", deps.ExpenseHandler.OpenEditDraft).Methods("POST")
	r.HandleFunc("/api/expense/draft", deps.ExpenseHandler.CloseDraft).Methods("DELETE")
	r.HandleFunc("/api/expense/preview", deps.ExpenseHandler.OpenAttachmentPreview).Methods("POST")
	r.HandleFunc("/api/expense/preview", deps.ExpenseHandler.CloseAttachmentPreview).Methods("DELETE")
	r.HandleFunc("/api/expense/preview/zoom/in", deps.ExpenseHandler.ZoomIn).Methods("POST")
	r.HandleFunc("/api/expense/preview/zoom/out", deps.ExpenseHandler.ZoomOut).Methods("POST")
	r.HandleFunc("/api/expense/selection", deps.ExpenseHandler.GetSelection).Methods("GET")
	r.HandleFunc("/api/expense/selection/all", deps.ExpenseHandler.ToggleAll).Methods("PUT")
	r.HandleFunc("/api/expense/selection/{id}", deps.ExpenseHandler.ToggleSelection).Methods("PUT")
	r.HandleFunc("/api/expense/selection/approve", deps.ExpenseHandler.ApproveSelected).Methods("POST")
	r.HandleFunc("/api/expense/selection/reject", deps.ExpenseHandler.RejectSelected).Methods("POST")
	r.HandleFunc("/api/expense/selection/export", deps.ExpenseHandler.ExportSelected).Methods("POST")
	r.HandleFunc("/api/expense/selection", deps.ExpenseHandler.DeleteSelected).Methods("DELETE")
	r.HandleFunc("/api/expense/{id}/duplicate", deps.ExpenseHandler.Duplicate).Methods("POST")
	r.HandleFunc("/api/expense/{id}", deps.ExpenseHandler.Delete).Methods("DELETE")

	// Team members
	r.HandleFunc("/api/team", deps.MemberHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/team/top-spenders", deps.MemberHandler.TopSpenders).Methods("GET")
	r.HandleFunc("/api/team/draft", deps.MemberHandler.GetEditor).Methods("GET")
	r.HandleFunc("/api/team/draft", deps.MemberHandler.OpenNewDraft).Methods("POST")
	r.HandleFunc("/api/team/draft/field", deps.MemberHandler.UpdateDraftField).Methods("PATCH")
	r.HandleFunc("/api/team/draft/save", deps.MemberHandler.SaveDraft).Methods("POST")
	r.HandleFunc("/api/team/draft/{id}", deps.MemberHandler.OpenEditDraft).Methods("POST")
	r.HandleFunc("/api/team/draft", deps.MemberHandler.CloseDraft).Methods("DELETE")
	r.HandleFunc("/api/team/{id}", deps.MemberHandler.Delete).Methods("DELETE")

	// Goals
	r.HandleFunc("/api/goal", deps.GoalHandler.GetAll).Methods("GET")
	r.HandleFunc("/api/goal/dashboard", deps.GoalHandler.Dashboard).Methods("GET")
	r.HandleFunc("/api/goal/counts", deps.GoalHandler.Counts).Methods("GET")
	r.HandleFunc("/api/goal/draft", deps.GoalHandler.GetEditor).Methods("GET")
	r.HandleFunc("/api/goal/draft", deps.GoalHandler.OpenNewDraft).Methods("POST")
	r.HandleFunc("/api/goal/draft/field", deps.GoalHandler.UpdateDraftField).Methods("PATCH")
	r.HandleFunc("/api/goal/draft/save", deps.GoalHandler.SaveDraft).Methods("POST")
	r.HandleFunc("/api/goal/draft/{id}", deps.GoalHandler.OpenEditDraft).Methods("POST")
	r.HandleFunc("/api/goal/draft", deps.GoalHandler.CloseDraft).Methods("DELETE")
	r.HandleFunc("/api/goal/{id}", deps.GoalHandler.Delete).Methods("DELETE")

	// Activity feed
	r.HandleFunc("/api/activity", deps.ActivityHandler.GetAll).Methods("GET")

	// Settings
	r.HandleFunc("/api/settings", deps.SettingsHandler.Get).Methods("GET")
	r.HandleFunc("/api/settings", deps.SettingsHandler.UpdateField).Methods("PATCH")
	r.HandleFunc("/api/settings/department", deps.SettingsHandler.AddDepartment).Methods("POST")
	r.HandleFunc("/api/settings/department/{name}", deps.SettingsHandler.RemoveDepartment).Methods("DELETE")
	r.HandleFunc("/api/settings/project", deps.SettingsHandler.AddProject).Methods("POST")
	r.HandleFunc("/api/settings/project/{name}", deps.SettingsHandler.RemoveProject).Methods("DELETE")

	// Stats
	r.HandleFunc("/api/stats/overview", deps.StatsHandler.Overview).Methods("GET")
	r.HandleFunc("/api/stats/budgets", deps.StatsHandler.BudgetStats).Methods("GET")
	r.HandleFunc("/api/stats/categories", deps.StatsHandler.CategoryDistribution).Methods("GET")
	r.HandleFunc("/api/stats/trends", deps.StatsHandler.MonthlyTrends).Methods("GET")
	r.HandleFunc("/api/stats/forecast", deps.StatsHandler.SpendingForecast).Methods("GET")
	r.HandleFunc("/api/stats/departments", deps.StatsHandler.DepartmentComparison).Methods("GET")
	r.HandleFunc("/api/stats/alerts", deps.StatsHandler.BudgetAlerts).Methods("GET")
	r.HandleFunc("/api/stats/insights", deps.StatsHandler.SpendingInsights).Methods("GET")
}
