package notify

import (
	"context"

	"github.com/sirupsen/logrus"
)

// LogNotifier writes notifications to the application log. Used in
// development and as the fallback when no Slack credentials are configured.
type LogNotifier struct{}

// NewLogNotifier creates a log-backed notifier
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// Notify implements Notifier
func (n *LogNotifier) Notify(ctx context.Context, event Event) {
	logrus.WithFields(logrus.Fields{
		"kind":      event.Kind,
		"recipient": event.RecipientID,
	}).Info(event.Message)
}
