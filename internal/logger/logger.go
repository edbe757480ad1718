package logger

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Logger wraps logrus for structured logging of service operations
type Logger struct {
	*logrus.Entry
}

// New creates a new logger
func New() *Logger {
	return &Logger{
		Entry: logrus.NewEntry(logrus.StandardLogger()),
	}
}

// WithUser creates a logger tagged with the acting user's id, as resolved
// by the auth middleware.
func WithUser(userID uuid.UUID) *Logger {
	logger := New()

	if userID == uuid.Nil {
		logger.Entry = logger.Entry.WithField("user", "unknown")
	} else {
		logger.Entry = logger.Entry.WithField("user", userID.String())
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
