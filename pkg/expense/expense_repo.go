package expense

import (
	"context"

	"github.com/budgetrack/budgetrack/internal/session"
)

type Repo interface {
	GetAll(ctx context.Context) ([]Expense, error)
	FindById(ctx context.Context, id string) (Expense, bool, error)
	Store(ctx context.Context, expense Expense) error
	// StoreAtHead prepends the expense; duplicated expenses show up first.
	StoreAtHead(ctx context.Context, expense Expense) error
	Replace(ctx context.Context, expense Expense) (bool, error)
	Delete(ctx context.Context, id string) error
	DeleteAll(ctx context.Context, ids []string) error
	SetStatus(ctx context.Context, ids []string, status ApprovalStatus) error
}

type state struct {
	expenses []Expense
}

// InMemoryRepo keeps an independent ordered expense collection per session.
type InMemoryRepo struct {
	store *session.Store[state]
}

func NewInMemoryRepo(seed func() []Expense) *InMemoryRepo {
	return &InMemoryRepo{
		store: session.NewStore(func() *state {
			s := &state{}
			if seed != nil {
				s.expenses = seed()
			}
			return s
		}),
	}
}

// Reads and writes deep-copy the expense so draft edits in the service never
// alias the stored record's Tags/Splits/Comments/History backing arrays.
func (r *InMemoryRepo) GetAll(ctx context.Context) ([]Expense, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return nil, err
	}
	expenses := make([]Expense, len(s.expenses))
	for i, e := range s.expenses {
		expenses[i] = e.clone()
	}
	return expenses, nil
}

func (r *InMemoryRepo) FindById(ctx context.Context, id string) (Expense, bool, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return Expense{}, false, err
	}
	for _, e := range s.expenses {
		if e.ID == id {
			return e.clone(), true, nil
		}
	}
	return Expense{}, false, nil
}

func (r *InMemoryRepo) Store(ctx context.Context, expense Expense) error {
	s, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	s.expenses = append(s.expenses, expense.clone())
	return nil
}

func (r *InMemoryRepo) StoreAtHead(ctx context.Context, expense Expense) error {
	s, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	s.expenses = append([]Expense{expense.clone()}, s.expenses...)
	return nil
}

func (r *InMemoryRepo) Replace(ctx context.Context, expense Expense) (bool, error) {
	s, err := r.store.Get(ctx)
	if err != nil {
		return false, err
	}
	for i, e := range s.expenses {
		if e.ID == expense.ID {
			s.expenses[i] = expense.clone()
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
	kept := s.expenses[:0]
	for _, e := range s.expenses {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	s.expenses = kept
	return nil
}

func (r *InMemoryRepo) DeleteAll(ctx context.Context, ids []string) error {
	s, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	kept := s.expenses[:0]
	for _, e := range s.expenses {
		if !containsId(ids, e.ID) {
			kept = append(kept, e)
		}
	}
	s.expenses = kept
	return nil
}

func (r *InMemoryRepo) SetStatus(ctx context.Context, ids []string, status ApprovalStatus) error {
	s, err := r.store.Get(ctx)
	if err != nil {
		return err
	}
	for i := range s.expenses {
		if containsId(ids, s.expenses[i].ID) {
			s.expenses[i].ApprovalStatus = status
		}
	}
	return nil
}

func containsId(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
