package usecase

import "context"

// OutboxUsecase defines the interface for draining the side-effect outbox
type OutboxUsecase interface {
	// Drain claims a batch of pending outbox events and dispatches them to
	// the live dispatcher and the event publisher. Returns how many events
	// were processed, delivered or not.
	Drain(ctx context.Context) (int, error)
}
