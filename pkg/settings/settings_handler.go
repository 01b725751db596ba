package settings

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
)

type SettingsDTO struct {
	WarningThreshold       int      `json:"warningThreshold"`
	CriticalThreshold      int      `json:"criticalThreshold"`
	CurrencyFormat         string   `json:"currencyFormat"`
	DateFormat             string   `json:"dateFormat"`
	NotificationsEmail     bool     `json:"notificationsEmail"`
	NotificationsDashboard bool     `json:"notificationsDashboard"`
	NotificationsWeekly    bool     `json:"notificationsWeekly"`
	Departments            []string `json:"departments"`
	Projects               []string `json:"projects"`
	ReportDateRange        string   `json:"reportDateRange"`
}

type FieldUpdateDTO struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

type NameDTO struct {
	Name string `json:"name"`
}

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.service.Get(r.Context())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeSettings(w, s)
}

func (h *Handler) UpdateField(w http.ResponseWriter, r *http.Request) {
	var update FieldUpdateDTO
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s, err := h.service.UpdateField(r.Context(), update.Field, update.Value)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeSettings(w, s)
}

func (h *Handler) AddDepartment(w http.ResponseWriter, r *http.Request) {
	h.addName(w, r, h.service.AddDepartment)
}

func (h *Handler) RemoveDepartment(w http.ResponseWriter, r *http.Request) {
	h.removeName(w, r, h.service.RemoveDepartment)
}

func (h *Handler) AddProject(w http.ResponseWriter, r *http.Request) {
	h.addName(w, r, h.service.AddProject)
}

func (h *Handler) RemoveProject(w http.ResponseWriter, r *http.Request) {
	h.removeName(w, r, h.service.RemoveProject)
}

func (h *Handler) addName(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, name string) (Settings, error)) {
	var body NameDTO
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	s, err := apply(r.Context(), body.Name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeSettings(w, s)
}

func (h *Handler) removeName(w http.ResponseWriter, r *http.Request, apply func(ctx context.Context, name string) (Settings, error)) {
	name := mux.Vars(r)["name"]
	s, err := apply(r.Context(), name)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	h.writeSettings(w, s)
}

func (h *Handler) writeSettings(w http.ResponseWriter, s Settings) {
	w.Header().Set("Content-Type", "application/json")
	dto := SettingsDTO{
		WarningThreshold:       s.WarningThreshold,
		CriticalThreshold:      s.CriticalThreshold,
		CurrencyFormat:         s.CurrencyFormat,
		DateFormat:             s.DateFormat,
		NotificationsEmail:     s.NotificationsEmail,
		NotificationsDashboard: s.NotificationsDashboard,
		NotificationsWeekly:    s.NotificationsWeekly,
		Departments:            s.Departments,
		Projects:               s.Projects,
		ReportDateRange:        s.ReportDateRange,
	}
	if err := json.NewEncoder(w).Encode(dto); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
