package settings

import (
	"context"

	"github.com/budgetrack/budgetrack/internal/session"
)

type Repo interface {
	Get(ctx context.Context) (Settings, error)
	Update(ctx context.Context, mutate func(*Settings)) (Settings, error)
}

type InMemoryRepo struct {
	store *session.Store[Settings]
}

func NewInMemoryRepo(defaults func() Settings) *InMemoryRepo {
	return &InMemoryRepo{
		store: session.NewStore(func() *Settings {
			s := defaults()
			return &s
		}),
	}
}

func (r *InMemoryRepo) Get(ctx context.Context) (Settings, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	return copySettings(s), nil
}

func (r *InMemoryRepo) Update(ctx context.Context, mutate func(*Settings)) (Settings, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return Settings{}, err
	}
	mutate(s)
	return copySettings(s), nil
}

func copySettings(s *Settings) Settings {
	out := *s
	out.Departments = append([]string(nil), s.Departments...)
	out.Projects = append([]string(nil), s.Projects...)
	return out
}
