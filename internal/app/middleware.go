package app

import (
	"net/http"

	"github.com/budgetrack/budgetrack/internal/config"
	"github.com/budgetrack/budgetrack/internal/session"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Propagate X-Session-Id header into context for downstream services.
	// Requests without one get a fresh id, echoed back so the client can
	// keep using it.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			sessionId := req.Header.Get("X-Session-Id")
			if sessionId == "" {
				sessionId = uuid.NewString()
				log.Debugf("no session header, created session %s", sessionId)
			}
			w.Header().Set("X-Session-Id", sessionId)
			ctx := session.WithSession(req.Context(), sessionId)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
