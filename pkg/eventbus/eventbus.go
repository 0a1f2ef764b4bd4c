// Package eventbus defines the contract for publishing and subscribing to
// domain events.
package eventbus

import "context"

// Event is implemented by all domain events. Type returns a namespaced event
// name (e.g. "ledger.transaction.recorded") used for handler registration.
type Event interface {
	Type() string
}

// HandlerFunc handles a single event. Errors are reported to the bus, not to
// the publisher.
type HandlerFunc func(ctx context.Context, event Event) error

// Bus dispatches events to registered handlers.
type Bus interface {
	// Register adds a handler for a specific event type.
	Register(eventType string, handler HandlerFunc)
	// Emit dispatches the event to all handlers registered for its type.
	Emit(ctx context.Context, event Event) error
}
