package notifier

import "context"

// Notifier delivers an availability message to a messaging sink
type Notifier interface {
	// Notify sends the message
	Notify(ctx context.Context, message string) error
}
