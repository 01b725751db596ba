package activity

import (
	"encoding/json"
	"net/http"
)

type ActivityDTO struct {
	ID         string `json:"id"`
	UserName   string `json:"userName"`
	UserAvatar string `json:"userAvatar"`
	Action     string `json:"action"`
	Target     string `json:"target"`
	Timestamp  string `json:"timestamp"`
	Type       string `json:"type"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) GetAll(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	filter := r.URL.Query().Get("type")

	activities, err := h.service.Filtered(r.Context(), filter)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	dtos := make([]ActivityDTO, 0, len(activities))
	for _, a := range activities {
		dtos = append(dtos, ActivityDTO{
			ID:         a.ID,
			UserName:   a.UserName,
			UserAvatar: a.UserAvatar,
			Action:     a.Action,
			Target:     a.Target,
			Timestamp:  a.Timestamp,
			Type:       string(a.Type),
		})
	}
	if err := json.NewEncoder(w).Encode(dtos); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
