package repository

import (
	"context"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
)

// OutboxRepository defines the interface for outbox-event database operations.
type OutboxRepository interface {
	// CreateOutboxEvent persists a new outbox event, normally inside the same
	// transaction as the primary write it mirrors.
	CreateOutboxEvent(ctx context.Context, event *entity.OutboxEvent) error

	// ClaimPendingEvents retrieves up to limit pending events in insertion
	// order, locking them against concurrent drainers (SKIP LOCKED semantics).
	ClaimPendingEvents(ctx context.Context, limit int) ([]*entity.OutboxEvent, error)

	// MarkEventDelivered records a successful dispatch.
	MarkEventDelivered(ctx context.Context, id uuid.UUID) error

	// MarkEventFailed increments the attempt count and records the last error.
	// Events exceeding maxAttempts move to FAILED, otherwise stay PENDING.
	MarkEventFailed(ctx context.Context, id uuid.UUID, lastError string, maxAttempts int) error
}
