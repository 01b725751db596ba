package goal

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type GoalDTO struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"targetAmount"`
	CurrentAmount float64 `json:"currentAmount"`
	Deadline      string  `json:"deadline"`
	Category      string  `json:"category"`
	Status        string  `json:"status"`
	Notes         string  `json:"notes"`
}

type EditorDTO struct {
	Open  bool    `json:"open"`
	Draft GoalDTO `json:"draft"`
}

type CountsDTO struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
	AtRisk    int `json:"atRisk"`
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
	goals, err := h.service.GetAll(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeGoals(w, goals)
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	goals, err := h.service.DashboardGoals(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeGoals(w, goals)
}

func (h *Handler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := h.service.Counts(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	dto := CountsDTO{Total: counts.Total, Completed: counts.Completed, AtRisk: counts.AtRisk}
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) OpenNewDraft(w http.ResponseWriter, r *http.Request) {
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
		http.Error(w, "Goal not found", http.StatusNotFound)
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

func (h *Handler) SaveDraft(w http.ResponseWriter, r *http.Request) {
	if _, err := h.service.SaveDraft(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
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

func (h *Handler) writeGoals(w http.ResponseWriter, goals []Goal) {
	w.Header().Set("Content-Type", "application/json")
	dtos := make([]GoalDTO, 0, len(goals))
	for _, g := range goals {
		dtos = append(dtos, toDTO(g))
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (h *Handler) writeEditor(w http.ResponseWriter, ed Editor) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(EditorDTO{Open: ed.Open, Draft: toDTO(ed.Draft)}); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func toDTO(g Goal) GoalDTO {
	return GoalDTO{
		ID:            g.ID,
		Name:          g.Name,
		TargetAmount:  g.TargetAmount,
		CurrentAmount: g.CurrentAmount,
		Deadline:      g.Deadline,
		Category:      g.Category,
		Status:        string(g.Status),
		Notes:         g.Notes,
	}
}
