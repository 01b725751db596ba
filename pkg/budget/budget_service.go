package budget

import (
	"context"
	"strconv"

	"github.com/budgetrack/budgetrack/internal/session"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Editor is the per-session draft state behind the budget dialog.
type Editor struct {
	Open  bool
	Draft Budget
}

type Service interface {
	GetAll(ctx context.Context) ([]Budget, error)
	OpenNewDraft(ctx context.Context) (Editor, error)
	OpenEditDraft(ctx context.Context, id string) (Editor, bool, error)
	CloseDraft(ctx context.Context) error
	Editor(ctx context.Context) (Editor, error)
	// UpdateDraftField applies a typed field update to the draft. Values that
	// fail to parse are dropped and the field keeps its previous value.
	UpdateDraftField(ctx context.Context, field string, value string) (Editor, error)
	// SaveDraft commits the draft: empty id appends with a generated id,
	// otherwise the matching budget is replaced in place. A draft with an
	// empty name is silently not saved and the editor stays open.
	SaveDraft(ctx context.Context) (bool, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo    Repo
	editors *session.Store[Editor]
}

func NewService(repo Repo) *ServiceImpl {
	return &ServiceImpl{
		repo:    repo,
		editors: session.NewStore(func() *Editor { return &Editor{} }),
	}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Budget, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) OpenNewDraft(ctx context.Context) (Editor, error) {
	ed, err := s.editors.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	ed.Draft = Budget{
		Type:   TypeDepartment,
		Period: PeriodAnnual,
	}
	ed.Open = true
	return *ed, nil
}

func (s *ServiceImpl) OpenEditDraft(ctx context.Context, id string) (Editor, bool, error) {
	b, found, err := s.repo.FindById(ctx, id)
	if err != nil {
		return Editor{}, false, err
	}
	if !found {
		return Editor{}, false, nil
	}
	ed, err := s.editors.Get(ctx)
	if err != nil {
		return Editor{}, false, err
	}
	ed.Draft = b
	ed.Open = true
	return *ed, true, nil
}

func (s *ServiceImpl) CloseDraft(ctx context.Context) error {
	ed, err := s.editors.Get(ctx)
	if err != nil {
		return err
	}
	ed.Open = false
	return nil
}

func (s *ServiceImpl) Editor(ctx context.Context) (Editor, error) {
	ed, err := s.editors.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	return *ed, nil
}

func (s *ServiceImpl) UpdateDraftField(ctx context.Context, field string, value string) (Editor, error) {
	ed, err := s.editors.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	switch field {
	case "name":
		ed.Draft.Name = value
	case "type":
		ed.Draft.Type = BudgetType(value)
	case "period":
		ed.Draft.Period = Period(value)
	case "allocatedAmount":
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Errorf("error converting allocatedAmount to float: %v", err)
			break
		}
		ed.Draft.AllocatedAmount = val
	default:
		log.Warnf("unknown budget draft field: %s", field)
	}
	return *ed, nil
}

func (s *ServiceImpl) SaveDraft(ctx context.Context) (bool, error) {
	ed, err := s.editors.Get(ctx)
	if err != nil {
		return false, err
	}
	if ed.Draft.Name == "" {
		log.Debug("budget draft has no name, not saving")
		return false, nil
	}
	if ed.Draft.ID != "" {
		if _, err := s.repo.Replace(ctx, ed.Draft); err != nil {
			return false, err
		}
	} else {
		ed.Draft.ID = uuid.NewString()
		if err := s.repo.Store(ctx, ed.Draft); err != nil {
			return false, err
		}
	}
	ed.Open = false
	return true, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
