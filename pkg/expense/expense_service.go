package expense

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/budgetrack/budgetrack/internal/session"
	"github.com/budgetrack/budgetrack/internal/utils"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// The dashboard has no real user accounts; comments and history entries are
// attributed to the built-in finance admin.
const (
	actorName   = "Alex Finance"
	actorAvatar = "Felix"
)

const placeholderAttachmentURL = "https://images.unsplash.com/photo-1554224155-8d04cb21cd6c?auto=format&fit=crop&q=80&w=1000"

const (
	zoomMin  = 25
	zoomMax  = 300
	zoomStep = 25
)

const historyTimestampFormat = "2006-01-02 15:04"

// Editor is the per-session draft state behind the expense dialog. Closing
// the dialog resets only the pending comment text; the draft itself survives
// until the next open-new or open-edit.
type Editor struct {
	Open        bool
	Tab         string
	Draft       Expense
	CommentText string
	PreviewOpen bool
	Zoom        int
}

type viewState struct {
	editor   Editor
	selected []string
}

// CategoryProvider supplies the default category for a fresh draft,
// conventionally the first budget's name.
type CategoryProvider func(ctx context.Context) (string, error)

type Service interface {
	GetAll(ctx context.Context) ([]Expense, error)
	// Filtered applies the category filter (unless "All" or empty), then a
	// case-insensitive substring search over description and category, and
	// sorts by date descending.
	Filtered(ctx context.Context, category string, search string) ([]Expense, error)

	OpenNewDraft(ctx context.Context) (Editor, error)
	OpenEditDraft(ctx context.Context, id string) (Editor, bool, error)
	CloseDraft(ctx context.Context) error
	Editor(ctx context.Context) (Editor, error)
	SetActiveTab(ctx context.Context, tab string) error
	UpdateDraftField(ctx context.Context, field string, value string) (Editor, error)
	SetDraftAttachment(ctx context.Context, hasAttachment bool) error
	AddDraftTag(ctx context.Context, tag string) (Editor, error)
	RemoveDraftTag(ctx context.Context, tag string) (Editor, error)
	AddSplit(ctx context.Context) (Editor, error)
	RemoveSplit(ctx context.Context, index int) (Editor, error)
	UpdateSplit(ctx context.Context, index int, field string, value string) (Editor, error)
	SetCommentText(ctx context.Context, text string) error
	AddDraftComment(ctx context.Context) (Editor, error)
	// SaveDraft commits the draft, appending an "Updated" history entry and,
	// for new expenses, a "Created" one. A draft with an empty description is
	// silently not saved.
	SaveDraft(ctx context.Context) (bool, error)
	Delete(ctx context.Context, id string) error
	Duplicate(ctx context.Context, id string) (Expense, bool, error)

	OpenAttachmentPreview(ctx context.Context) (Editor, bool, error)
	CloseAttachmentPreview(ctx context.Context) error
	ZoomIn(ctx context.Context) (int, error)
	ZoomOut(ctx context.Context) (int, error)

	Selected(ctx context.Context) ([]string, error)
	ToggleSelection(ctx context.Context, id string) ([]string, error)
	ToggleAll(ctx context.Context, category string, search string) ([]string, error)
	ApproveSelected(ctx context.Context) error
	RejectSelected(ctx context.Context) error
	DeleteSelected(ctx context.Context) error
	// ClearSelection backs "export selected": the download itself is
	// fire-and-forget, only the selection reset is a state change.
	ClearSelection(ctx context.Context) error
}

type ServiceImpl struct {
	repo            Repo
	clock           utils.Clock
	defaultCategory CategoryProvider
	views           *session.Store[viewState]
}

func NewService(repo Repo, clock utils.Clock, defaultCategory CategoryProvider) *ServiceImpl {
	return &ServiceImpl{
		repo:            repo,
		clock:           clock,
		defaultCategory: defaultCategory,
		views:           session.NewStore(func() *viewState { return &viewState{} }),
	}
}

func (s *ServiceImpl) GetAll(ctx context.Context) ([]Expense, error) {
	return s.repo.GetAll(ctx)
}

func (s *ServiceImpl) Filtered(ctx context.Context, category string, search string) ([]Expense, error) {
	expenses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	filtered := make([]Expense, 0, len(expenses))
	needle := strings.ToLower(search)
	for _, e := range expenses {
		if category != "" && category != "All" && e.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(e.Description), needle) &&
			!strings.Contains(strings.ToLower(e.Category), needle) {
			continue
		}
		filtered = append(filtered, e)
	}
	// ISO dates sort correctly as strings
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].Date > filtered[j].Date
	})
	return filtered, nil
}

func (s *ServiceImpl) OpenNewDraft(ctx context.Context) (Editor, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	category := ""
	if s.defaultCategory != nil {
		category, err = s.defaultCategory(ctx)
		if err != nil {
			return Editor{}, err
		}
	}
	view.editor.Draft = Expense{
		Date:               s.clock.Now().Format("2006-01-02"),
		Category:           category,
		PaymentMethod:      "Credit Card",
		ApprovalStatus:     StatusPending,
		RecurringFrequency: "One-time",
	}
	view.editor.Tab = "details"
	view.editor.Open = true
	return view.editor, nil
}

func (s *ServiceImpl) OpenEditDraft(ctx context.Context, id string) (Editor, bool, error) {
	e, found, err := s.repo.FindById(ctx, id)
	if err != nil {
		return Editor{}, false, err
	}
	if !found {
		return Editor{}, false, nil
	}
	view, err := s.views.Get(ctx)
	if err != nil {
		return Editor{}, false, err
	}
	view.editor.Draft = e
	view.editor.Tab = "details"
	view.editor.Open = true
	return view.editor, true, nil
}

func (s *ServiceImpl) CloseDraft(ctx context.Context) error {
	view, err := s.views.Get(ctx)
	if err != nil {
		return err
	}
	view.editor.Open = false
	view.editor.CommentText = ""
	return nil
}

func (s *ServiceImpl) Editor(ctx context.Context) (Editor, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	return view.editor, nil
}

func (s *ServiceImpl) SetActiveTab(ctx context.Context, tab string) error {
	view, err := s.views.Get(ctx)
	if err != nil {
		return err
	}
	view.editor.Tab = tab
	return nil
}

func (s *ServiceImpl) UpdateDraftField(ctx context.Context, field string, value string) (Editor, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	draft := &view.editor.Draft
	switch field {
	case "date":
		draft.Date = value
	case "category":
		draft.Category = value
	case "paymentMethod":
		draft.PaymentMethod = value
	case "description":
		draft.Description = value
	case "approvalStatus":
		draft.ApprovalStatus = ApprovalStatus(value)
	case "recurringFrequency":
		draft.RecurringFrequency = value
	case "assignedApproverId":
		draft.AssignedApproverID = value
	case "attachmentUrl":
		draft.AttachmentURL = value
	case "amount":
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Errorf("error converting amount to float: %v", err)
			break
		}
		draft.Amount = val
	default:
		log.Warnf("unknown expense draft field: %s", field)
	}
	return view.editor, nil
}

func (s *ServiceImpl) SetDraftAttachment(ctx context.Context, hasAttachment bool) error {
	view, err := s.views.Get(ctx)
	if err != nil {
		return err
	}
	view.editor.Draft.HasAttachment = hasAttachment
	return nil
}

func (s *ServiceImpl) AddDraftTag(ctx context.Context, tag string) (Editor, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	if tag != "" && !containsId(view.editor.Draft.Tags, tag) {
		view.editor.Draft.Tags = append(view.editor.Draft.Tags, tag)
	}
	return view.editor, nil
}

func (s *ServiceImpl) RemoveDraftTag(ctx context.Context, tag string) (Editor, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	kept := view.editor.Draft.Tags[:0]
	for _, t := range view.editor.Draft.Tags {
		if t != tag {
			kept = append(kept, t)
		}
	}
	view.editor.Draft.Tags = kept
	return view.editor, nil
}

func (s *ServiceImpl) AddSplit(ctx context.Context) (Editor, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	category := ""
	if s.defaultCategory != nil {
		category, err = s.defaultCategory(ctx)
		if err != nil {
			return Editor{}, err
		}
	}
	view.editor.Draft.Splits = append(view.editor.Draft.Splits, Split{Category: category})
	return view.editor, nil
}

func (s *ServiceImpl) RemoveSplit(ctx context.Context, index int) (Editor, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	splits := view.editor.Draft.Splits
	if index >= 0 && index < len(splits) {
		view.editor.Draft.Splits = append(splits[:index], splits[index+1:]...)
	}
	return view.editor, nil
}

func (s *ServiceImpl) UpdateSplit(ctx context.Context, index int, field string, value string) (Editor, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	splits := view.editor.Draft.Splits
	if index < 0 || index >= len(splits) {
		return view.editor, nil
	}
	switch field {
	case "category":
		splits[index].Category = value
	case "amount":
		val, err := strconv.ParseFloat(value, 64)
		if err != nil {
			log.Errorf("error converting split amount to float: %v", err)
			break
		}
		splits[index].Amount = val
	default:
		log.Warnf("unknown split field: %s", field)
	}
	return view.editor, nil
}

func (s *ServiceImpl) SetCommentText(ctx context.Context, text string) error {
	view, err := s.views.Get(ctx)
	if err != nil {
		return err
	}
	view.editor.CommentText = text
	return nil
}

func (s *ServiceImpl) AddDraftComment(ctx context.Context) (Editor, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return Editor{}, err
	}
	if view.editor.CommentText == "" {
		return view.editor, nil
	}
	view.editor.Draft.Comments = append(view.editor.Draft.Comments, Comment{
		ID:        uuid.NewString(),
		User:      actorName,
		Avatar:    actorAvatar,
		Text:      view.editor.CommentText,
		Timestamp: s.clock.Now().Format(historyTimestampFormat),
	})
	view.editor.CommentText = ""
	return view.editor, nil
}

func (s *ServiceImpl) SaveDraft(ctx context.Context) (bool, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return false, err
	}
	if view.editor.Draft.Description == "" {
		log.Debug("expense draft has no description, not saving")
		return false, nil
	}
	now := s.clock.Now().Format(historyTimestampFormat)
	view.editor.Draft.History = append(view.editor.Draft.History, HistoryEntry{
		Action:    "Updated",
		User:      actorName,
		Timestamp: now,
		Note:      "Expense details updated",
	})
	if view.editor.Draft.ID != "" {
		if _, err := s.repo.Replace(ctx, view.editor.Draft); err != nil {
			return false, err
		}
	} else {
		view.editor.Draft.ID = uuid.NewString()
		view.editor.Draft.History = append(view.editor.Draft.History, HistoryEntry{
			Action:    "Created",
			User:      actorName,
			Timestamp: now,
			Note:      "Initial submission",
		})
		if err := s.repo.Store(ctx, view.editor.Draft); err != nil {
			return false, err
		}
	}
	view.editor.Open = false
	view.editor.CommentText = ""
	return true, nil
}

func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	view, err := s.views.Get(ctx)
	if err != nil {
		return err
	}
	if view.editor.Open && view.editor.Draft.ID == id {
		view.editor.Open = false
	}
	return nil
}

func (s *ServiceImpl) Duplicate(ctx context.Context, id string) (Expense, bool, error) {
	original, found, err := s.repo.FindById(ctx, id)
	if err != nil {
		return Expense{}, false, err
	}
	if !found {
		return Expense{}, false, nil
	}
	duplicate := original
	duplicate.ID = uuid.NewString()
	duplicate.Description = "Copy of " + original.Description
	duplicate.Date = s.clock.Now().Format("2006-01-02")
	duplicate.ApprovalStatus = StatusPending
	duplicate.History = nil
	duplicate.Comments = nil
	if err := s.repo.StoreAtHead(ctx, duplicate); err != nil {
		return Expense{}, false, err
	}
	return duplicate, true, nil
}

func (s *ServiceImpl) OpenAttachmentPreview(ctx context.Context) (Editor, bool, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return Editor{}, false, err
	}
	switch {
	case view.editor.Draft.AttachmentURL != "":
	case view.editor.Draft.HasAttachment:
		// attachment flagged but never uploaded: preview a placeholder
		view.editor.Draft.AttachmentURL = placeholderAttachmentURL
	default:
		return view.editor, false, nil
	}
	view.editor.Zoom = 100
	view.editor.PreviewOpen = true
	return view.editor, true, nil
}

func (s *ServiceImpl) CloseAttachmentPreview(ctx context.Context) error {
	view, err := s.views.Get(ctx)
	if err != nil {
		return err
	}
	view.editor.PreviewOpen = false
	return nil
}

func (s *ServiceImpl) ZoomIn(ctx context.Context) (int, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return 0, err
	}
	if view.editor.Zoom < zoomMax {
		view.editor.Zoom += zoomStep
	}
	return view.editor.Zoom, nil
}

func (s *ServiceImpl) ZoomOut(ctx context.Context) (int, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return 0, err
	}
	if view.editor.Zoom > zoomMin {
		view.editor.Zoom -= zoomStep
	}
	return view.editor.Zoom, nil
}

func (s *ServiceImpl) Selected(ctx context.Context) ([]string, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return nil, err
	}
	selected := make([]string, len(view.selected))
	copy(selected, view.selected)
	return selected, nil
}

func (s *ServiceImpl) ToggleSelection(ctx context.Context, id string) ([]string, error) {
	view, err := s.views.Get(ctx)
	if err != nil {
		return nil, err
	}
	if containsId(view.selected, id) {
		kept := view.selected[:0]
		for _, candidate := range view.selected {
			if candidate != id {
				kept = append(kept, candidate)
			}
		}
		view.selected = kept
	} else {
		view.selected = append(view.selected, id)
	}
	return view.selected, nil
}

func (s *ServiceImpl) ToggleAll(ctx context.Context, category string, search string) ([]string, error) {
	filtered, err := s.Filtered(ctx, category, search)
	if err != nil {
		return nil, err
	}
	view, err := s.views.Get(ctx)
	if err != nil {
		return nil, err
	}
	if len(view.selected) == len(filtered) {
		view.selected = nil
	} else {
		view.selected = make([]string, 0, len(filtered))
		for _, e := range filtered {
			view.selected = append(view.selected, e.ID)
		}
	}
	return view.selected, nil
}

func (s *ServiceImpl) ApproveSelected(ctx context.Context) error {
	return s.bulkSetStatus(ctx, StatusApproved)
}

func (s *ServiceImpl) RejectSelected(ctx context.Context) error {
	return s.bulkSetStatus(ctx, StatusRejected)
}

func (s *ServiceImpl) bulkSetStatus(ctx context.Context, status ApprovalStatus) error {
	view, err := s.views.Get(ctx)
	if err != nil {
		return err
	}
	if err := s.repo.SetStatus(ctx, view.selected, status); err != nil {
		return err
	}
	view.selected = nil
	return nil
}

func (s *ServiceImpl) DeleteSelected(ctx context.Context) error {
	view, err := s.views.Get(ctx)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteAll(ctx, view.selected); err != nil {
		return err
	}
	view.selected = nil
	return nil
}

func (s *ServiceImpl) ClearSelection(ctx context.Context) error {
	view, err := s.views.Get(ctx)
	if err != nil {
		return err
	}
	view.selected = nil
	return nil
}
