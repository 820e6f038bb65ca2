package repository

import (
	"context"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackingRepository defines the interface for tracking-entry database operations.
// Entries are append-only; there are no update or delete operations.
type TrackingRepository interface {
	// CreateTrackingEntry persists a new tracking entry.
	CreateTrackingEntry(ctx context.Context, entry *entity.TrackingEntry) error

	// FindRecentEntriesByDelivery retrieves up to limit entries for a delivery,
	// newest first (createdAt descending, insertion order as tiebreaker).
	FindRecentEntriesByDelivery(ctx context.Context, deliveryID uuid.UUID, limit int) ([]*entity.TrackingEntry, error)

	// FindRouteEntriesByDelivery retrieves the entries carrying coordinates for
	// a delivery in chronological order, for distance computation.
	FindRouteEntriesByDelivery(ctx context.Context, deliveryID uuid.UUID) ([]*entity.TrackingEntry, error)
}
