package notify

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/slack-go/slack"
)

// SlackNotifier posts notifications to a Slack channel. Recipients are
// referenced by id in the message text; mapping ids to Slack handles is a
// workspace concern left to the channel configuration.
type SlackNotifier struct {
	client  *slack.Client
	channel string
}

// NewSlackNotifier creates a Slack-backed notifier
func NewSlackNotifier(token, channel string) *SlackNotifier {
	return &SlackNotifier{
		client:  slack.New(token),
		channel: channel,
	}
}

// Notify implements Notifier. Failures are logged and swallowed.
func (n *SlackNotifier) Notify(ctx context.Context, event Event) {
	text := fmt.Sprintf("[%s] %s (recipient %s)", event.Kind, event.Message, event.RecipientID)
	_, _, err := n.client.PostMessageContext(ctx, n.channel, slack.MsgOptionText(text, false))
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"kind":      event.Kind,
			"recipient": event.RecipientID,
		}).Warnf("slack notification failed: %v", err)
	}
}
