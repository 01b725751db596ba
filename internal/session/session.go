package session

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"
)

type contextKey string

const SessionKey contextKey = "session"

var ErrNoSession = errors.New("session not found")

// CurrentId retrieves the current session id from the context.
// Returns ErrNoSession if no id is present.
func CurrentId(ctx context.Context) (string, error) {
	id, ok := ctx.Value(SessionKey).(string)
	if !ok || id == "" {
		log.Trace("session not found in context")
		return "", ErrNoSession
	}
	return id, nil
}

func WithSession(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, SessionKey, id)
}
