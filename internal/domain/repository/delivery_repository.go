// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for delivery persistence.
var (
	// ErrDeliveryNotFound is returned when a delivery is not found.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrDeliveryVersionConflict is returned when a concurrent update won the row.
	ErrDeliveryVersionConflict = errors.New("delivery version conflict")
)

// DeliveryRepository defines the interface for delivery-related database operations.
type DeliveryRepository interface {
	// CreateDelivery persists a new delivery.
	CreateDelivery(ctx context.Context, delivery *entity.Delivery) error

	// FindDeliveryByID retrieves a delivery by its unique ID.
	FindDeliveryByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// FindDeliveryByIDForUpdate retrieves a delivery and locks its row for the
	// duration of the surrounding transaction. Transition guards must read
	// through this method so concurrent transitions serialize per delivery.
	FindDeliveryByIDForUpdate(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// UpdateDeliveryStatus persists a status change guarded by the version the
	// caller read. CompletedAt is only written when non-nil.
	UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, status entity.DeliveryStatus, completedAt *time.Time, expectedVersion int) error

	// FindDeliveriesByAnnouncement retrieves the deliveries bound to an announcement.
	FindDeliveriesByAnnouncement(ctx context.Context, announcementID uuid.UUID) ([]*entity.Delivery, error)
}
