package team

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type MemberDTO struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Role           string  `json:"role"`
	Department     string  `json:"department"`
	AvatarSeed     string  `json:"avatarSeed"`
	Email          string  `json:"email"`
	Phone          string  `json:"phone"`
	Status         string  `json:"status"`
	JoinedDate     string  `json:"joinedDate"`
	AssignedBudget float64 `json:"assignedBudget"`
	SpentAmount    float64 `json:"spentAmount"`
}

type EditorDTO struct {
	Open  bool      `json:"open"`
	Draft MemberDTO `json:"draft"`
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
	department := r.URL.Query().Get("department")
	search := r.URL.Query().Get("search")

	members, err := h.service.Filtered(r.Context(), department, search)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeMembers(w, members)
}

func (h *Handler) TopSpenders(w http.ResponseWriter, r *http.Request) {
	members, err := h.service.TopSpenders(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeMembers(w, members)
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
		http.Error(w, "Team member not found", http.StatusNotFound)
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

func (h *Handler) writeMembers(w http.ResponseWriter, members []TeamMember) {
	w.Header().Set("Content-Type", "application/json")
	dtos := make([]MemberDTO, 0, len(members))
	for _, m := range members {
		dtos = append(dtos, toDTO(m))
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

func toDTO(m TeamMember) MemberDTO {
	return MemberDTO{
		ID:             m.ID,
		Name:           m.Name,
		Role:           m.Role,
		Department:     m.Department,
		AvatarSeed:     m.AvatarSeed,
		Email:          m.Email,
		Phone:          m.Phone,
		Status:         string(m.Status),
		JoinedDate:     m.JoinedDate,
		AssignedBudget: m.AssignedBudget,
		SpentAmount:    m.SpentAmount,
	}
}
