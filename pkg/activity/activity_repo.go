package activity

import (
	"context"

	"github.com/budgetrack/budgetrack/internal/session"
)

type Repo interface {
	GetAll(ctx context.Context) ([]Activity, error)
	// StoreAtHead prepends the entry; the feed is ordered newest first.
	StoreAtHead(ctx context.Context, activity Activity) error
}

type state struct {
	activities []Activity
}

type InMemoryRepo struct {
	store *session.Store[state]
}

func NewInMemoryRepo(seed func() []Activity) *InMemoryRepo {
	return &InMemoryRepo{
		store: session.NewStore(func() *state {
			s := &state{}
			if seed != nil {
				s.activities = seed()
			}
			return s
		}),
	}
}

func (r *InMemoryRepo) GetAll(ctx context.Context) ([]Activity, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	activities := make([]Activity, len(s.activities))
	copy(activities, s.activities)
	return activities, nil
}

func (r *InMemoryRepo) StoreAtHead(ctx context.Context, activity Activity) error {
	s, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	s.activities = append([]Activity{activity}, s.activities...)
	return nil
}
