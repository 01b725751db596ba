package settings

import (
	"context"
	"strconv"

	log "github.com/sirupsen/logrus"
)

type Service interface {
	Get(ctx context.Context) (Settings, error)
	// UpdateField applies a single preference change. Threshold values arrive
	// as strings and are truncated to whole percentages; values that do not
	// parse are logged and dropped.
	UpdateField(ctx context.Context, field string, value string) (Settings, error)
	// AddDepartment appends a department unless the name is empty or already
	// listed. Same rules for AddProject.
	AddDepartment(ctx context.Context, name string) (Settings, error)
	RemoveDepartment(ctx context.Context, name string) (Settings, error)
	AddProject(ctx context.Context, name string) (Settings, error)
	RemoveProject(ctx context.Context, name string) (Settings, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo}
}

func (s *ServiceImpl) Get(ctx context.Context) (Settings, error) {
	return s.repo.Get(ctx)
}

func (s *ServiceImpl) UpdateField(ctx context.Context, field string, value string) (Settings, error) {
	return s.repo.Update(ctx, func(st *Settings) {
		switch field {
		case "warningThreshold":
			val, err := strconv.ParseFloat(value, 64)
			if err != nil {
				log.Errorf("error setting warning threshold: %v", err)
				break
			}
			st.WarningThreshold = int(val)
		case "criticalThreshold":
			val, err := strconv.ParseFloat(value, 64)
			if err != nil {
				log.Errorf("error setting critical threshold: %v", err)
				break
			}
			st.CriticalThreshold = int(val)
		case "currencyFormat":
			st.CurrencyFormat = value
		case "dateFormat":
			st.DateFormat = value
		case "reportDateRange":
			st.ReportDateRange = value
		case "notificationsEmail":
			st.NotificationsEmail = value == "true"
		case "notificationsDashboard":
			st.NotificationsDashboard = value == "true"
		case "notificationsWeekly":
			st.NotificationsWeekly = value == "true"
		default:
			log.Warnf("unknown settings field: %s", field)
		}
	})
}

func (s *ServiceImpl) AddDepartment(ctx context.Context, name string) (Settings, error) {
	return s.repo.Update(ctx, func(st *Settings) {
		st.Departments = appendUnique(st.Departments, name)
	})
}

func (s *ServiceImpl) RemoveDepartment(ctx context.Context, name string) (Settings, error) {
	return s.repo.Update(ctx, func(st *Settings) {
		st.Departments = remove(st.Departments, name)
	})
}

func (s *ServiceImpl) AddProject(ctx context.Context, name string) (Settings, error) {
	return s.repo.Update(ctx, func(st *Settings) {
		st.Projects = appendUnique(st.Projects, name)
	})
}

func (s *ServiceImpl) RemoveProject(ctx context.Context, name string) (Settings, error) {
	return s.repo.Update(ctx, func(st *Settings) {
		st.Projects = remove(st.Projects, name)
	})
}

func appendUnique(list []string, name string) []string {
	if name == "" {
		return list
	}
	for _, existing := range list {
		if existing == name {
			return list
		}
	}
	return append(list, name)
}

func remove(list []string, name string) []string {
	kept := make([]string, 0, len(list))
	for _, existing := range list {
		if existing != name {
			kept = append(kept, existing)
		}
	}
	return kept
}
