package notifier

import (
	"context"

	"stockwatch/logger"
)

// NoopNotifier is installed when no webhook URL is configured. It warns the
// operator instead of sending anything, so local runs work without a Slack
// channel.
type NoopNotifier struct {
	log *logger.Logger
}

// NewNoopNotifier creates a notifier that skips sending
func NewNoopNotifier() *NoopNotifier {
	return &NoopNotifier{log: logger.ForNotifier()}
}

// Notify logs a warning and drops the message
func (n *NoopNotifier) Notify(_ context.Context, _ string) error {
	n.log.Warn().Msg("No Slack URL set. To send a slack message set the SLACK_WEB_HOOK_URL environment variable to the desired web hook URL")
	return nil
}
