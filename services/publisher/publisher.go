package publisher

// Publisher represents a service for publishing availability events
type Publisher interface {
	// Publish publishes an event to the stream
	Publish(event []byte) error

	// Close closes the publisher connection
	Close() error
}
