package goal

import (
	"context"

	"github.com/budgetrack/budgetrack/internal/session"
)

type Repo interface {
	GetAll(ctx context.Context) ([]Goal, error)
	FindById(ctx context.Context, id string) (Goal, bool, error)
	Store(ctx context.Context, goal Goal) error
	Replace(ctx context.Context, goal Goal) (bool, error)
	Delete(ctx context.Context, id string) error
}

type state struct {
	goals []Goal
}

type InMemoryRepo struct {
	store *session.Store[state]
}

func NewInMemoryRepo(seed func() []Goal) *InMemoryRepo {
	return &InMemoryRepo{
		store: session.NewStore(func() *state {
			s := &state{}
			if seed != nil {
				s.goals = seed()
			}
			return s
		}),
	}
}

func (r *InMemoryRepo) GetAll(ctx context.Context) ([]Goal, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	goals := make([]Goal, len(s.goals))
	copy(goals, s.goals)
	return goals, nil
}

func (r *InMemoryRepo) FindById(ctx context.Context, id string) (Goal, bool, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return Goal{}, false, err
	}
	for _, g := range s.goals {
		if g.ID == id {
			return g, true, nil
		}
	}
	return Goal{}, false, nil
}

func (r *InMemoryRepo) Store(ctx context.Context, goal Goal) error {
	s, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	s.goals = append(s.goals, goal)
	return nil
}

func (r *InMemoryRepo) Replace(ctx context.Context, goal Goal) (bool, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return false, err
	}
	for i, g := range s.goals {
		if g.ID == goal.ID {
			s.goals[i] = goal
			return true, nil
		}
	}
	return false, nil
}

func (r *InMemoryRepo) Delete(ctx context.Context, id string) error {
	s, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	kept := s.goals[:0]
	for _, g := range s.goals {
		if g.ID != id {
			kept = append(kept, g)
		}
	}
	s.goals = kept
	return nil
}
