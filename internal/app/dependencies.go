package app

import (
	"context"

	"github.com/budgetrack/budgetrack/internal/config"
	"github.com/budgetrack/budgetrack/internal/event_bus"
	"github.com/budgetrack/budgetrack/internal/utils"
	"github.com/budgetrack/budgetrack/pkg/activity"
	"github.com/budgetrack/budgetrack/pkg/budget"
	"github.com/budgetrack/budgetrack/pkg/expense"
	"github.com/budgetrack/budgetrack/pkg/goal"
	"github.com/budgetrack/budgetrack/pkg/settings"
	"github.com/budgetrack/budgetrack/pkg/stats"
	"github.com/budgetrack/budgetrack/pkg/team"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	EventBus *event_bus.EventBus
	Clock    utils.Clock

	BudgetRepo    budget.Repo
	BudgetService budget.Service
	BudgetHandler *budget.Handler

	ExpenseRepo    expense.Repo
	ExpenseService expense.Service
	CsvRenderer    *expense.CsvRenderer
	ExpenseHandler *expense.Handler

	MemberRepo    team.Repo
	MemberService team.Service
	MemberHandler *team.Handler

	GoalRepo    goal.Repo
	GoalService goal.Service
	GoalHandler *goal.Handler

	ActivityRepo    activity.Repo
	ActivityService activity.Service
	ActivityHandler *activity.Handler

	SettingsRepo    settings.Repo
	SettingsService settings.Service
	SettingsHandler *settings.Handler

	StatsService stats.Service
	StatsHandler *stats.Handler
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.EventBus = event_bus.NewEventBus()
	deps.Clock = &utils.SystemClock{}

	deps.BudgetRepo = budget.NewInMemoryRepo(demoSeed(cfg, budget.DemoBudgets))
	deps.BudgetService = budget.NewService(deps.BudgetRepo)
	deps.BudgetHandler = budget.NewHandler(deps.BudgetService)

	deps.ExpenseRepo = expense.NewInMemoryRepo(demoSeed(cfg, expense.DemoExpenses))
	deps.ExpenseService = expense.NewService(deps.ExpenseRepo, deps.Clock, firstBudgetName(deps.BudgetRepo))
	deps.CsvRenderer = expense.NewCsvRenderer()
	deps.ExpenseHandler = expense.NewHandler(deps.ExpenseService, deps.CsvRenderer, deps.Clock)

	deps.MemberRepo = team.NewInMemoryRepo(demoSeed(cfg, team.DemoMembers))
	deps.MemberService = team.NewService(deps.MemberRepo, deps.EventBus, deps.Clock)
	deps.MemberHandler = team.NewHandler(deps.MemberService)

	deps.GoalRepo = goal.NewInMemoryRepo(demoSeed(cfg, goal.DemoGoals))
	deps.GoalService = goal.NewService(deps.GoalRepo, deps.EventBus, deps.Clock)
	deps.GoalHandler = goal.NewHandler(deps.GoalService)

	deps.ActivityRepo = activity.NewInMemoryRepo(demoSeed(cfg, activity.DemoActivities))
	deps.ActivityService = activity.NewService(deps.ActivityRepo)
	deps.ActivityHandler = activity.NewHandler(deps.ActivityService)

	deps.SettingsRepo = settings.NewInMemoryRepo(defaultSettings(cfg))
	deps.SettingsService = settings.NewService(deps.SettingsRepo)
	deps.SettingsHandler = settings.NewHandler(deps.SettingsService)

	deps.StatsService = stats.NewService(deps.BudgetRepo, deps.ExpenseRepo, deps.SettingsRepo, deps.Clock)
	deps.StatsHandler = stats.NewHandler(deps.StatsService)

	subscribeActivityRecorders(deps.EventBus, deps.ActivityService)

	return deps
}

// demoSeed gates the sample dataset behind the demo.seed config flag.
func demoSeed[T any](cfg config.Application, seed func() []T) func() []T {
	if !cfg.Demo.Seed {
		return func() []T { return nil }
	}
	return seed
}

func defaultSettings(cfg config.Application) func() settings.Settings {
	return func() settings.Settings {
		return settings.Settings{
			WarningThreshold:       cfg.Defaults.WarningThreshold,
			CriticalThreshold:      cfg.Defaults.CriticalThreshold,
			CurrencyFormat:         cfg.Defaults.CurrencyFormat,
			DateFormat:             cfg.Defaults.DateFormat,
			NotificationsEmail:     true,
			NotificationsDashboard: true,
			NotificationsWeekly:    false,
			Departments:            []string{"Marketing", "Engineering", "HR", "Sales", "Operations"},
			Projects:               []string{"Office Renovation", "Website Redesign", "Q2 Hiring Push"},
			ReportDateRange:        "Year to Date",
		}
	}
}

// firstBudgetName supplies the default category for new expense drafts.
func firstBudgetName(repo budget.Repo) expense.CategoryProvider {
	return func(ctx context.Context) (string, error) {
		budgets, err := repo.GetAll(ctx)
		if err != nil {
			return "", err
		}
		if len(budgets) == 0 {
			return "", nil
		}
		return budgets[0].Name, nil
	}
}

// subscribeActivityRecorders feeds goal and team member changes into the
// activity feed. Budget and expense mutations intentionally record nothing.
func subscribeActivityRecorders(bus *event_bus.EventBus, activities activity.Service) {
	recordGoal := func(action string, activityType activity.ActivityType) func(event_bus.EventT[event_bus.GoalChanged]) error {
		return func(e event_bus.EventT[event_bus.GoalChanged]) error {
			return activities.Record(e.Context(), action, e.Data.Name, activityType)
		}
	}
	recordMember := func(action string, activityType activity.ActivityType) func(event_bus.EventT[event_bus.MemberChanged]) error {
		return func(e event_bus.EventT[event_bus.MemberChanged]) error {
			return activities.Record(e.Context(), action, e.Data.Name, activityType)
		}
	}

	event_bus.SubscribeTyped(bus, event_bus.GoalCreated, recordGoal("created goal", activity.TypeSystem))
	event_bus.SubscribeTyped(bus, event_bus.GoalUpdated, recordGoal("updated goal", activity.TypeSystem))
	event_bus.SubscribeTyped(bus, event_bus.GoalDeleted, recordGoal("deleted goal", activity.TypeWarning))
	event_bus.SubscribeTyped(bus, event_bus.MemberJoined, recordMember("joined the team", activity.TypeSystem))
	event_bus.SubscribeTyped(bus, event_bus.MemberUpdated, recordMember("updated profile", activity.TypeSystem))
	event_bus.SubscribeTyped(bus, event_bus.MemberRemoved, recordMember("removed member", activity.TypeSystem))
}
