package checker

import "time"

// AvailabilityEvent is the JSON payload published to the event stream for
// each completed check.
type AvailabilityEvent struct {
	URL       string    `json:"url"`
	Text      string    `json:"text"`
	Available bool      `json:"available"`
	CheckedAt time.Time `json:"checked_at"`
}
