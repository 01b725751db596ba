package budget

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/budgetrack/budgetrack/internal/session"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A middleware that sets the session ID in the context
func withSession(sessionId string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := session.WithSession(r.Context(), sessionId)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func setupHandlerTest(t *testing.T) (*Handler, *mux.Router) {
	handler := NewHandler(NewService(NewInMemoryRepo(DemoBudgets)))
	r := mux.NewRouter()
	r.HandleFunc("/api/budget", handler.GetAll).Methods("GET")
	r.HandleFunc("/api/budget/draft", handler.OpenNewDraft).Methods("POST")
	r.HandleFunc("/api/budget/draft/field", handler.UpdateDraftField).Methods("PATCH")
	r.HandleFunc("/api/budget/draft/save", handler.SaveDraft).Methods("POST")
	r.HandleFunc("/api/budget/draft/{id}", handler.OpenEditDraft).Methods("POST")
	return handler, r
}

func TestHandler_GetAll(t *testing.T) {
	t.Run("should list the session's budgets as JSON", func(t *testing.T) {
		_, router := setupHandlerTest(t)

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/budget", nil)
		w := httptest.NewRecorder()
		withSession(uuid.NewString(), router).ServeHTTP(w, req)

		// then
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
		var budgets []BudgetDTO
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &budgets))
		assert.Len(t, budgets, 10)
		assert.Equal(t, "Marketing", budgets[0].Name)
	})
}

func TestHandler_OpenEditDraft(t *testing.T) {
	t.Run("should answer 404 for an unknown budget", func(t *testing.T) {
		_, router := setupHandlerTest(t)

		// when
		req := httptest.NewRequest(http.MethodPost, "/api/budget/draft/no-such-id", nil)
		w := httptest.NewRecorder()
		withSession(uuid.NewString(), router).ServeHTTP(w, req)

		// then
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_UpdateDraftField(t *testing.T) {
	t.Run("should answer 400 for a malformed body", func(t *testing.T) {
		_, router := setupHandlerTest(t)

		// when
		req := httptest.NewRequest(http.MethodPatch, "/api/budget/draft/field", bytes.NewBufferString("{not json"))
		w := httptest.NewRecorder()
		withSession(uuid.NewString(), router).ServeHTTP(w, req)

		// then
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_SaveDraft(t *testing.T) {
	t.Run("should answer 204 even when validation silently skips the save", func(t *testing.T) {
		_, router := setupHandlerTest(t)
		sessionId := uuid.NewString()
		serve := func(req *http.Request) *httptest.ResponseRecorder {
			w := httptest.NewRecorder()
			withSession(sessionId, router).ServeHTTP(w, req)
			return w
		}

		// given an open draft without a name
		resp := serve(httptest.NewRequest(http.MethodPost, "/api/budget/draft", nil))
		require.Equal(t, http.StatusOK, resp.Code)

		// when
		resp = serve(httptest.NewRequest(http.MethodPost, "/api/budget/draft/save", nil))

		// then
		assert.Equal(t, http.StatusNoContent, resp.Code)
		resp = serve(httptest.NewRequest(http.MethodGet, "/api/budget", nil))
		var budgets []BudgetDTO
		require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &budgets))
		assert.Len(t, budgets, 10)
	})
}

func TestHandler_MissingSession(t *testing.T) {
	t.Run("should answer 500 without a session in the context", func(t *testing.T) {
		_, router := setupHandlerTest(t)

		// when
		req := httptest.NewRequest(http.MethodGet, "/api/budget", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		// then
		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}
