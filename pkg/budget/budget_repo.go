package budget

import (
	"context"

	"github.com/budgetrack/budgetrack/internal/session"
)

type Repo interface {
	GetAll(ctx context.Context) ([]Budget, error)
	FindById(ctx context.Context, id string) (Budget, bool, error)
	Store(ctx context.Context, budget Budget) error
	// Replace swaps the stored budget with the same id in place. Returns
	// false when no budget matches; the collection is left untouched.
	Replace(ctx context.Context, budget Budget) (bool, error)
	// Delete removes the budget with the given id. Unknown ids are a no-op.
	Delete(ctx context.Context, id string) error
}

type state struct {
	budgets []Budget
}

// InMemoryRepo keeps an independent ordered budget collection per session.
type InMemoryRepo struct {
	store *session.Store[state]
}

// NewInMemoryRepo creates a repo whose sessions start with the budgets
// returned by seed. A nil seed starts sessions empty.
func NewInMemoryRepo(seed func() []Budget) *InMemoryRepo {
	return &InMemoryRepo{
		store: session.NewStore(func() *state {
			s := &state{}
			if seed != nil {
				s.budgets = seed()
			}
			return s
		}),
	}
}

func (r *InMemoryRepo) GetAll(ctx context.Context) ([]Budget, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	budgets := make([]Budget, len(s.budgets))
	copy(budgets, s.budgets)
	return budgets, nil
}

func (r *InMemoryRepo) FindById(ctx context.Context, id string) (Budget, bool, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return Budget{}, false, err
	}
	for _, b := range s.budgets {
		if b.ID == id {
			return b, true, nil
		}
	}
	return Budget{}, false, nil
}

func (r *InMemoryRepo) Store(ctx context.Context, budget Budget) error {
	s, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	s.budgets = append(s.budgets, budget)
	return nil
}

func (r *InMemoryRepo) Replace(ctx context.Context, budget Budget) (bool, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return false, err
	}
	for i, b := range s.budgets {
		if b.ID == budget.ID {
			s.budgets[i] = budget
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
	kept := s.budgets[:0]
	for _, b := range s.budgets {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	s.budgets = kept
	return nil
}
