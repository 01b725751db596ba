package goal

import (
	"context"
	"strconv"

	"github.com/budgetrack/budgetrack/internal/event_bus"
	"github.com/budgetrack/budgetrack/internal/session"
	"github.com/budgetrack/budgetrack/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Editor is the per-session draft state behind the goal dialog.
type Editor struct {
	Open  bool
	Draft Goal
}

// Counts summarizes the goal list for the dashboard cards.
type Counts struct {
	Total     int
	Completed int
	AtRisk    int
}

type Service interface {
	GetAll(ctx context.Context) ([]Goal, error)
	// DashboardGoals returns active goals first, then completed ones, capped at 3.
	DashboardGoals(ctx context.Context) ([]Goal, error)
	Counts(ctx context.Context) (Counts, error)

	OpenNewDraft(ctx context.Context) (Editor, error)
	OpenEditDraft(ctx context.Context, id string) (Editor, bool, error)
	CloseDraft(ctx context.Context) error
	Editor(ctx context.Context) (Editor, error)
	UpdateDraftField(ctx context.Context, field string, value string) (Editor, error)
	// SaveDraft commits the draft; empty names are silently not saved. A goal
	// whose current amount has reached a positive target is promoted to
	// Completed on save. Goal saves publish activity events.
	SaveDraft(ctx context.Context) (bool, error)
	Delete(ctx context.Context, id string) error
}

type ServiceImpl struct {
	repo    Repo
	bus     *event_bus.EventBus
	clock   utils.Clock
	editors *session.Store[Editor]
}

func NewService(repo Repo, bus *event_bus.EventBus, clock utils.Clock) *ServiceImpl {
	return &ServiceImpl{
		repo:    repo,
		bus:     bus,
		clock:   clock,
		editors: session.NewStore(func() *Editor { return &Editor{} }),
	}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Goal, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) DashboardGoals(ctx context.Context) ([]Goal, error) {
	goals, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	ordered := make([]Goal, 0, len(goals))
	for _, g := range goals {
		if g.Status != StatusCompleted {
			ordered = append(ordered, g)
		}
	}
	for _, g := range goals {
		if g.Status == StatusCompleted {
			ordered = append(ordered, g)
		}
	}
	if len(ordered) > 3 {
		ordered = ordered[:3]
	}
	return ordered, nil
}

func (s *ServiceImpl) Counts(ctx context.Context) (Counts, error) {
	goals, err := s.repo.GetAll(ctx)
	if err != nil {
		return Counts{}, err
	}
	counts := Counts{Total: len(goals)}
	for _, g := range goals {
		switch g.Status {
		case StatusCompleted:
			counts.Completed++
		case StatusAtRisk:
			counts.AtRisk++
		}
	}
	return counts, nil
}

func (s *ServiceImpl) OpenNewDraft(ctx context.Context) (Editor, error) {
	ed, err := s.editors.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	ed.Draft = Goal{
		Deadline: s.clock.Now().Format("2006-01-02"),
		Category: "General",
		Status:   StatusOnTrack,
	}
	ed.Open = true
	return *ed, nil
}

func (s *ServiceImpl) OpenEditDraft(ctx context.Context, id string) (Editor, bool, error) {
	g, found, err := s.repo.FindById(ctx, id)
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
	ed.Draft = g
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
	draft := &ed.Draft
	switch field {
	case "name":
		draft.Name = value
	case "targetAmount":
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Errorf("error converting targetAmount to float: %v", err)
			break
		}
		draft.TargetAmount = val
	case "currentAmount":
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Errorf("error converting currentAmount to float: %v", err)
			break
		}
		draft.CurrentAmount = val
	case "deadline":
		draft.Deadline = value
	case "category":
		draft.Category = value
	case "status":
		draft.Status = GoalStatus(value)
	case "notes":
		draft.Notes = value
	default:
		log.Warnf("unknown goal draft field: %s", field)
	}
	return *ed, nil
}

func (s *ServiceImpl) SaveDraft(ctx context.Context) (bool, error) {
	ed, err := s.editors.Get(ctx)
	if err != nil {
		return false, err
	}
	if ed.Draft.Name == "" {
		log.Debug("goal draft has no name, not saving")
		return false, nil
	}
	if ed.Draft.Status != StatusCompleted && ed.Draft.TargetAmount > 0 && ed.Draft.CurrentAmount >= ed.Draft.TargetAmount {
		ed.Draft.Status = StatusCompleted
	}
	if ed.Draft.ID != "" {
		if _, err := s.repo.Replace(ctx, ed.Draft); err != nil {
			return false, err
		}
		s.publish(ctx, event_bus.GoalUpdated, ed.Draft)
	} else {
		ed.Draft.ID = uuid.NewString()
		if err := s.repo.Store(ctx, ed.Draft); err != nil {
			return false, err
		}
		s.publish(ctx, event_bus.GoalCreated, ed.Draft)
	}
	ed.Open = false
	return true, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	g, found, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, event_bus.GoalDeleted, g)
	return nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, g Goal) {
	err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, event_bus.GoalChanged{Id: g.ID, Name: g.Name}))
	if err != nil {
		log.Errorf("failed to publish %s event: %v", eventType, err)
	}
}
