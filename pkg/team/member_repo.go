package team

import (
	"context"

	"github.com/budgetrack/budgetrack/internal/session"
)

type Repo interface {
	GetAll(ctx context.Context) ([]TeamMember, error)
	FindById(ctx context.Context, id string) (TeamMember, bool, error)
	Store(ctx context.Context, member TeamMember) error
	Replace(ctx context.Context, member TeamMember) (bool, error)
	Delete(ctx context.Context, id string) error
}

type state struct {
	members []TeamMember
}

type InMemoryRepo struct {
	store *session.Store[state]
}

func NewInMemoryRepo(seed func() []TeamMember) *InMemoryRepo {
	return &InMemoryRepo{
		store: session.NewStore(func() *state {
			s := &state{}
			if seed != nil {
				s.members = seed()
			}
			return s
		}),
	}
}

func (r *InMemoryRepo) GetAll(ctx context.Context) ([]TeamMember, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	members := make([]TeamMember, len(s.members))
	copy(members, s.members)
	return members, nil
}

func (r *InMemoryRepo) FindById(ctx context.Context, id string) (TeamMember, bool, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return TeamMember{}, false, err
	}
	for _, m := range s.members {
		if m.ID == id {
			return m, true, nil
		}
	}
	return TeamMember{}, false, nil
}

func (r *InMemoryRepo) Store(ctx context.Context, member TeamMember) error {
	s, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	s.members = append(s.members, member)
	return nil
}

func (r *InMemoryRepo) Replace(ctx context.Context, member TeamMember) (bool, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return false, err
	}
	for i, m := range s.members {
		if m.ID == member.ID {
			s.members[i] = member
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
	kept := s.members[:0]
	for _, m := range s.members {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	s.members = kept
	return nil
}
