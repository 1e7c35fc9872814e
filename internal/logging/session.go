package logging

import (
	"context"
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/rs/zerolog"
)

type sessionIDKey struct{}

// NewSessionID returns a new time-ordered session identifier.
func NewSessionID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), rand.Reader).String()
}

// ContextWithSessionID stores id in ctx.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey{}, id)
}

// SessionIDFromContext returns the session ID stored in ctx, or "".
func SessionIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(sessionIDKey{}).(string)
	return id
}

// GetOrGenerateSessionID returns the session ID in ctx, generating one if absent.
func GetOrGenerateSessionID(ctx context.Context) string {
	if id := SessionIDFromContext(ctx); id != "" {
		return id
	}
	return NewSessionID()
}

// WithSession attaches the session ID to logger and stores both in ctx.
func WithSession(ctx context.Context, logger zerolog.Logger) (context.Context, zerolog.Logger) {
	id := GetOrGenerateSessionID(ctx)
	logger = logger.With().Str("session_id", id).Logger()
	ctx = ContextWithSessionID(ctx, id)
	return logger.WithContext(ctx), logger
}
