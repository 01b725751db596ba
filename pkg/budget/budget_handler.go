package budget

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type BudgetDTO struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type"`
	AllocatedAmount float64 `json:"allocatedAmount"`
	Period          string  `json:"period"`
}

type EditorDTO struct {
	Open  bool      `json:"open"`
	Draft BudgetDTO `json:"draft"`
}

type FieldUpdateDTO struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	budgets, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	dtos := make([]BudgetDTO, 0, len(budgets))
	for _, b := range budgets {
		dtos = append(dtos, toDTO(b))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) OpenNewDraft(w http.ResponseWriter, r *http.Request) {
	log.Debug("Opening new budget draft")
	w.Header().Set("Content-Type", "application/json")

	ed, err := h.service.OpenNewDraft(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(toEditorDTO(ed)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) OpenEditDraft(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	id := mux.Vars(r)["id"]

	ed, found, err := h.service.OpenEditDraft(r.Context(), id)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !found {
		http.Error(w, "Budget not found", http.StatusNotFound)
		return
	}
	if err := json.NewEncoder(w).Encode(toEditorDTO(ed)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) GetEditor(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	ed, err := h.service.Editor(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if err := json.NewEncoder(w).Encode(toEditorDTO(ed)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) UpdateDraftField(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

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
	if err := json.NewEncoder(w).Encode(toEditorDTO(ed)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// SaveDraft always answers 204. A validation failure leaves the editor open
// with no other side effect; the client learns about it by reloading the
// editor state, never through an error body.
func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	saved, err := h.service.SaveDraft(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if !saved {
		log.Debug("budget draft not saved")
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

func toDTO(b Budget) BudgetDTO {
	return BudgetDTO{
		ID:              b.ID,
		Name:            b.Name,
		Type:            string(b.Type),
		AllocatedAmount: b.AllocatedAmount,
		Period:          string(b.Period),
	}
}

func toEditorDTO(ed Editor) EditorDTO {
	return EditorDTO{Open: ed.Open, Draft: toDTO(ed.Draft)}
}
