package logger

import (
	"context"

	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging with context support
type Logger struct {
	*logrus.Entry
}

// contextKey is the private type for the request-context values the HTTP
// middleware shares with this package. Using a dedicated type keeps the
// keys from colliding with anything else stored on the context.
type contextKey string

const (
	// RequestIDKey carries the per-request ID the middleware assigns.
	RequestIDKey contextKey = "request_id"
	// ActorIDKey carries the authenticated actor's ID.
	ActorIDKey contextKey = "actor_id"
)

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithContext creates a logger carrying the acting user and request id when
// the middleware has put them on the context.
func WithContext(ctx context.Context) *Logger {
	logger := New()

	if actor, ok := ctx.Value(ActorIDKey).(string); ok && actor != "" {
		logger.Entry = logger.Entry.WithField("actor", actor)
	}
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok && requestID != "" {
		logger.Entry = logger.Entry.WithField("request_id", requestID)
	}

	return logger
}

// WithField adds a field to the logger
func (l *Logger) WithField(key string, value interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithField(key, value),
	}
}

// WithFields adds multiple fields to the logger
func (l *Logger) WithFields(fields map[string]interface{}) *Logger {
	return &Logger{
		Entry: l.Entry.WithFields(fields),
	}
}
