package notify

import (
	"context"

	"github.com/google/uuid"
)

// Kind identifies the event behind a notification
type Kind string

const (
	KindMeetingScheduled Kind = "meeting_scheduled"
	KindTopicAdded       Kind = "topic_added"
	KindActionAssigned   Kind = "action_assigned"
)

// Event is a single fire-and-forget notification for one recipient
type Event struct {
	Kind        Kind
	RecipientID uuid.UUID
	Message     string
}

// Notifier delivers events to users. Delivery is best-effort: an
// implementation logs failures and never propagates them, so a failed
// notification can never roll back the operation that produced it.
type Notifier interface {
	Notify(ctx context.Context, event Event)
}

// Noop is a Notifier that drops every event
type Noop struct{}

// Notify implements Notifier
func (Noop) Notify(ctx context.Context, event Event) {}
