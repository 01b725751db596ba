package team

import (
	"context"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/budgetrack/budgetrack/internal/event_bus"
	"github.com/budgetrack/budgetrack/internal/session"
	"github.com/budgetrack/budgetrack/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// Editor is the per-session draft state behind the member dialog.
type Editor struct {
	Open  bool
	Draft TeamMember
}

type Service interface {
	GetAll(ctx context.Context) ([]TeamMember, error)
	// Filtered narrows the roster by department (unless "All" or empty) and a
	// case-insensitive substring search over name and role, sorted by name.
	Filtered(ctx context.Context, department string, search string) ([]TeamMember, error)
	// TopSpenders ranks members by their stored SpentAmount, top 5.
	TopSpenders(ctx context.Context) ([]TeamMember, error)

	OpenNewDraft(ctx context.Context) (Editor, error)
	OpenEditDraft(ctx context.Context, id string) (Editor, bool, error)
	CloseDraft(ctx context.Context) error
	Editor(ctx context.Context) (Editor, error)
	UpdateDraftField(ctx context.Context, field string, value string) (Editor, error)
	// SaveDraft commits the draft; empty names are silently not saved. Member
	// saves publish activity events, unlike budget and expense saves.
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

func (s *ServiceImpl) GetAll(ctx context.Context) ([]TeamMember, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) Filtered(ctx context.Context, department string, search string) ([]TeamMember, error) {
	members, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]TeamMember, 0, len(members))
	needle := strings.ToLower(search)
	for _, m := range members {
		if department != "" && department != "All" && m.Department != department {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(m.Name), needle) &&
			!strings.Contains(strings.ToLower(m.Role), needle) {
			continue
		}
		filtered = append(filtered, m)
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Name < filtered[j].Name
	})
	return filtered, nil
}

func (s *ServiceImpl) TopSpenders(ctx context.Context) ([]TeamMember, error) {
	members, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(members, func(i, j int) bool {
		return members[i].SpentAmount > members[j].SpentAmount
	})
	if len(members) > 5 {
		members = members[:5]
	}
	return members, nil
}

func (s *ServiceImpl) OpenNewDraft(ctx context.Context) (Editor, error) {
	ed, err := s.editors.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	ed.Draft = TeamMember{
		Department: "Marketing",
		AvatarSeed: strconv.Itoa(rand.Intn(9000) + 1000),
		Status:     StatusActive,
		JoinedDate: s.clock.Now().Format("2006-01-02"),
	}
	ed.Open = true
	return *ed, nil
}

func (s *ServiceImpl) OpenEditDraft(ctx context.Context, id string) (Editor, bool, error) {
	m, found, err := s.repo.FindById(ctx, id)
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
	ed.Draft = m
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
	case "role":
		draft.Role = value
	case "department":
		draft.Department = value
	case "avatarSeed":
		draft.AvatarSeed = value
	case "email":
		draft.Email = value
	case "phone":
		draft.Phone = value
	case "status":
		draft.Status = MemberStatus(value)
	case "joinedDate":
		draft.JoinedDate = value
	case "assignedBudget":
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Errorf("error converting assignedBudget to float: %v", err)
			break
		}
		draft.AssignedBudget = val
	case "spentAmount":
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Errorf("error converting spentAmount to float: %v", err)
			break
		}
		draft.SpentAmount = val
	default:
		log.Warnf("unknown member draft field: %s", field)
	}
	return *ed, nil
}

func (s *ServiceImpl) SaveDraft(ctx context.Context) (bool, error) {
	ed, err := s.editors.Get(ctx)
	if err != nil {
		return false, err
	}
	if ed.Draft.Name == "" {
		log.Debug("member draft has no name, not saving")
		return false, nil
	}
	if ed.Draft.ID != "" {
		if _, err := s.repo.Replace(ctx, ed.Draft); err != nil {
			return false, err
		}
		s.publish(ctx, event_bus.MemberUpdated, ed.Draft)
	} else {
		ed.Draft.ID = uuid.NewString()
		if ed.Draft.AvatarSeed == "" {
			ed.Draft.AvatarSeed = ed.Draft.Name
		}
		if err := s.repo.Store(ctx, ed.Draft); err != nil {
			return false, err
		}
		s.publish(ctx, event_bus.MemberJoined, ed.Draft)
	}
	ed.Open = false
	return true, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	m, found, err := s.repo.FindById(ctx, id)
	if err != nil {
		return err
	}
	if !found {
		return nil
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.publish(ctx, event_bus.MemberRemoved, m)
	return nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, m TeamMember) {
	err := s.bus.Publish(event_bus.NewEvent(ctx, eventType, event_bus.MemberChanged{Id: m.ID, Name: m.Name}))
	if err != nil {
		log.Errorf("failed to publish %s event: %v", eventType, err)
	}
}
