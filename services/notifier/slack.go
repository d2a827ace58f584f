package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"stockwatch/logger"
	apperrors "stockwatch/pkg/errors"
)

// slackPayload is the webhook message body
type slackPayload struct {
	Text string `json:"text"`
}

// SlackNotifier posts messages to a Slack incoming webhook
type SlackNotifier struct {
	webhookURL string
	client     *http.Client
	log        *logger.Logger
}

// NewSlackNotifier creates a notifier for the given webhook URL
func NewSlackNotifier(webhookURL string, timeout time.Duration) *SlackNotifier {
	return &SlackNotifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: timeout},
		log:        logger.ForNotifier(),
	}
}

// Notify posts {"text": message} to the webhook. The webhook's response
// status is logged but not validated; Slack-side failures do not fail a run.
func (n *SlackNotifier) Notify(ctx context.Context, message string) error {
	n.log.Debug().Msg("Sending Slack message")

	body, err := json.Marshal(slackPayload{Text: message})
	if err != nil {
		return apperrors.NewNotify(n.webhookURL, "failed to encode payload", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return apperrors.NewNotify(n.webhookURL, "failed to create request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return apperrors.NewNotify(n.webhookURL, "failed to post message", err)
	}
	defer resp.Body.Close()

	n.log.Debug().
		Int("status_code", resp.StatusCode).
		Str("reason", http.StatusText(resp.StatusCode)).
		Str("url", resp.Request.URL.String()).
		Msg("Sent Slack message")

	return nil
}
