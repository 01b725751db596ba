package expense

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/budgetrack/budgetrack/internal/utils"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type SplitDTO struct {
	Category string  `json:"category"`
	Amount   float64 `json:"amount"`
}

type CommentDTO struct {
	ID        string `json:"id"`
	User      string `json:"user"`
	Avatar    string `json:"avatar"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type HistoryEntryDTO struct {
	Action    string `json:"action"`
	User      string `json:"user"`
	Timestamp string `json:"timestamp"`
	Note      string `json:"note"`
}

type ExpenseDTO struct {
	ID                 string            `json:"id"`
	Date               string            `json:"date"`
	Category           string            `json:"category"`
	Amount             float64           `json:"amount"`
	PaymentMethod      string            `json:"paymentMethod"`
	Description        string            `json:"description"`
	ApprovalStatus     string            `json:"approvalStatus"`
	RecurringFrequency string            `json:"recurringFrequency"`
	HasAttachment      bool              `json:"hasAttachment"`
	AttachmentURL      string            `json:"attachmentUrl,omitempty"`
	Tags               []string          `json:"tags"`
	Splits             []SplitDTO        `json:"splits"`
	Comments           []CommentDTO      `json:"comments"`
	History            []HistoryEntryDTO `json:"history"`
	AssignedApproverID string            `json:"assignedApproverId,omitempty"`
}

type EditorDTO struct {
	Open            bool       `json:"open"`
	Tab             string     `json:"tab"`
	Draft           ExpenseDTO `json:"draft"`
	CommentText     string     `json:"commentText"`
	PreviewOpen     bool       `json:"previewOpen"`
	Zoom            int        `json:"zoom"`
	SplitTotal      float64    `json:"splitTotal"`
	SplitDifference float64    `json:"splitDifference"`
}

type FieldUpdateDTO struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type Handler struct {
	service  Service
	renderer *CsvRenderer
	clock    utils.Clock
}

func NewHandler(service Service, renderer *CsvRenderer, clock utils.Clock) *Handler {
	return &Handler{service: service, renderer: renderer, clock: clock}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	expenses, err := h.service.Filtered(r.Context(), category, search)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]ExpenseDTO, 0, len(expenses))
	for _, e := range expenses {
		dtos = append(dtos, toDTO(e))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetTags(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(AvailableTags); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) OpenNewDraft(w http.ResponseWriter, r *http.Request) {
	log.Debug("Opening new expense draft")
	ed, err := h.service.OpenNewDraft(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeEditor(w, ed)
}

func (h *Handler) OpenEditDraft(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	ed, found, err := h.service.OpenEditDraft(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}
	h.writeEditor(w, ed)
}

func (h *Handler) GetEditor(w http.ResponseWriter, r *http.Request) {
	ed, err := h.service.Editor(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeEditor(w, ed)
}

func (h *Handler) SetActiveTab(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tab string `json:"tab"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SetActiveTab(r.Context(), body.Tab); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) UpdateDraftField(w http.ResponseWriter, r *http.Request) {
	var update FieldUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ed, err := h.service.UpdateDraftField(r.Context(), update.Field, update.Value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeEditor(w, ed)
}

func (h *Handler) SetDraftAttachment(w http.ResponseWriter, r *http.Request) {
	var body struct {
		HasAttachment bool `json:"hasAttachment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SetDraftAttachment(r.Context(), body.HasAttachment); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddDraftTag(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tag string `json:"tag"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ed, err := h.service.AddDraftTag(r.Context(), body.Tag)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeEditor(w, ed)
}

func (h *Handler) RemoveDraftTag(w http.ResponseWriter, r *http.Request) {
	tag := mux.Vars(r)["tag"]
	ed, err := h.service.RemoveDraftTag(r.Context(), tag)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeEditor(w, ed)
}

func (h *Handler) AddSplit(w http.ResponseWriter, r *http.Request) {
	ed, err := h.service.AddSplit(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeEditor(w, ed)
}

func (h *Handler) RemoveSplit(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ed, err := h.service.RemoveSplit(r.Context(), index)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeEditor(w, ed)
}

func (h *Handler) UpdateSplit(w http.ResponseWriter, r *http.Request) {
	index, err := strconv.Atoi(mux.Vars(r)["index"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	var update FieldUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	ed, err := h.service.UpdateSplit(r.Context(), index, update.Field, update.Value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeEditor(w, ed)
}

func (h *Handler) SetCommentText(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.service.SetCommentText(r.Context(), body.Text); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) AddDraftComment(w http.ResponseWriter, r *http.Request) {
	ed, err := h.service.AddDraftComment(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeEditor(w, ed)
}

// SaveDraft always answers 204: a validation failure leaves the editor open
// with no other side effect and no error body.
func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	saved, err := h.service.SaveDraft(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !saved {
		log.Debug("expense draft not saved")
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) CloseDraft(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CloseDraft(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if err := h.service.Delete(r.Context(), id); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Duplicate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	duplicate, found, err := h.service.Duplicate(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Expense not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(toDTO(duplicate)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) OpenAttachmentPreview(w http.ResponseWriter, r *http.Request) {
	ed, opened, err := h.service.OpenAttachmentPreview(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !opened {
		log.Debug("no attachment to preview")
	}
	h.writeEditor(w, ed)
}

func (h *Handler) CloseAttachmentPreview(w http.ResponseWriter, r *http.Request) {
	if err := h.service.CloseAttachmentPreview(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ZoomIn(w http.ResponseWriter, r *http.Request) {
	h.zoom(w, r, h.service.ZoomIn)
}

func (h *Handler) ZoomOut(w http.ResponseWriter, r *http.Request) {
	h.zoom(w, r, h.service.ZoomOut)
}

func (h *Handler) zoom(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context) (int, error)) {
	w.Header().Set("Content-Type", "application/json")
	zoom, err := fn(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(map[string]int{"zoom": zoom}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetSelection(w http.ResponseWriter, r *http.Request) {
	selected, err := h.service.Selected(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeSelection(w, selected)
}

func (h *Handler) ToggleSelection(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	selected, err := h.service.ToggleSelection(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeSelection(w, selected)
}

func (h *Handler) ToggleAll(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")
	selected, err := h.service.ToggleAll(r.Context(), category, search)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeSelection(w, selected)
}

func (h *Handler) ApproveSelected(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, h.service.ApproveSelected)
}

func (h *Handler) RejectSelected(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, h.service.RejectSelected)
}

func (h *Handler) DeleteSelected(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, h.service.DeleteSelected)
}

func (h *Handler) ExportSelected(w http.ResponseWriter, r *http.Request) {
	h.bulk(w, r, h.service.ClearSelection)
}

func (h *Handler) bulk(w http.ResponseWriter, r *http.Request, fn func(ctx context.Context) error) {
	if err := fn(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Export streams every expense of the session as a CSV download.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	content, err := h.renderer.Render(expenses)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	filename := fmt.Sprintf("budgetrack_export_%s.csv", h.clock.Now().Format("20060102_150405"))
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write([]byte(content)); err != nil {
		log.Errorf("failed to write csv export: %v", err)
	}
}

func (h *Handler) writeEditor(w http.ResponseWriter, ed Editor) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(toEditorDTO(ed)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeSelection(w http.ResponseWriter, selected []string) {
	w.Header().Set("Content-Type", "application/json")
	if selected == nil {
		selected = []string{}
	}
	if err := json.NewEncoder(w).Encode(selected); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toDTO(e Expense) ExpenseDTO {
	tags := e.Tags
	if tags == nil {
		tags = []string{}
	}
	splits := make([]SplitDTO, 0, len(e.Splits))
	for _, s := range e.Splits {
		splits = append(splits, SplitDTO{Category: s.Category, Amount: s.Amount})
	}
	comments := make([]CommentDTO, 0, len(e.Comments))
	for _, c := range e.Comments {
		comments = append(comments, CommentDTO{ID: c.ID, User: c.User, Avatar: c.Avatar, Text: c.Text, Timestamp: c.Timestamp})
	}
	history := make([]HistoryEntryDTO, 0, len(e.History))
	for _, entry := range e.History {
		history = append(history, HistoryEntryDTO{Action: entry.Action, User: entry.User, Timestamp: entry.Timestamp, Note: entry.Note})
	}
	return ExpenseDTO{
		ID:                 e.ID,
		Date:               e.Date,
		Category:           e.Category,
		Amount:             e.Amount,
		PaymentMethod:      e.PaymentMethod,
		Description:        e.Description,
		ApprovalStatus:     string(e.ApprovalStatus),
		RecurringFrequency: e.RecurringFrequency,
		HasAttachment:      e.HasAttachment,
		AttachmentURL:      e.AttachmentURL,
		Tags:               tags,
		Splits:             splits,
		Comments:           comments,
		History:            history,
		AssignedApproverID: e.AssignedApproverID,
	}
}

func toEditorDTO(ed Editor) EditorDTO {
	return EditorDTO{
		Open:            ed.Open,
		Tab:             ed.Tab,
		Draft:           toDTO(ed.Draft),
		CommentText:     ed.CommentText,
		PreviewOpen:     ed.PreviewOpen,
		Zoom:            ed.Zoom,
		SplitTotal:      ed.Draft.SplitTotal(),
		SplitDifference: ed.Draft.SplitDifference(),
	}
}
