package activity

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

const (
	actorName   = "Alex Finance"
	actorAvatar = "Felix"
)

type Service interface {
	// Record prepends a feed entry attributed to the built-in finance admin.
	Record(ctx context.Context, action string, target string, activityType ActivityType) error
	// Filtered returns the feed, optionally narrowed to one activity type.
	// The filter is a display label ("All", "Expense", "Budget", "System",
	// "Warning").
	Filtered(ctx context.Context, filter string) ([]Activity, error)
}

type ServiceImpl struct {
	repo Repo
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{repo: repo}
}

func (s *ServiceImpl) Record(ctx context.Context, action string, target string, activityType ActivityType) error {
	return s.repo.StoreAtHead(ctx, Activity{
		ID:         uuid.NewString(),
		UserName:   actorName,
		UserAvatar: actorAvatar,
		Action:     action,
		Target:     target,
		Timestamp:  "Just now",
		Type:       activityType,
	})
}

func (s *ServiceImpl) Filtered(ctx context.Context, filter string) ([]Activity, error) {
	activities, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if filter == "" || filter == "All" {
		return activities, nil
	}
	target := ActivityType(strings.ToLower(filter))
	filtered := make([]Activity, 0, len(activities))
	for _, a := range activities {
		if a.Type == target {
			filtered = append(filtered, a)
		}
	}
	return filtered, nil
}
