package usecase

import (
	"context"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Actor identifies the authenticated caller of a use case, as resolved by
// the auth collaborator.
type Actor struct {
	ID    uuid.UUID
	Roles []string
}

// HasRole reports whether the actor carries the given role.
func (a Actor) HasRole(role string) bool {
	for _, r := range a.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// CreateDeliveryInput represents the input for creating a delivery shell
type CreateDeliveryInput struct {
	AnnouncementID    uuid.UUID       `json:"announcement_id"`
	DelivererID       *uuid.UUID      `json:"deliverer_id,omitempty"`
	Price             decimal.Decimal `json:"price"`
	EstimatedDuration int             `json:"estimated_duration"`
}

// TransitionInput represents the input for a status transition
type TransitionInput struct {
	Target         entity.DeliveryStatus `json:"target"`
	ValidationCode string                `json:"validation_code,omitempty"`
	Message        string                `json:"message,omitempty"`
	Location       string                `json:"location,omitempty"`
	Latitude       *float64              `json:"latitude,omitempty"`
	Longitude      *float64              `json:"longitude,omitempty"`
}

// DeliveryView is a delivery together with its presentation progress.
type DeliveryView struct {
	Delivery *entity.Delivery `json:"delivery"`
	Progress int              `json:"progress"`
}

// DeliveryUsecase defines the interface for delivery lifecycle use cases
type DeliveryUsecase interface {
	// CreateDelivery creates a delivery bound to an announcement, generating
	// its immutable validation code.
	CreateDelivery(ctx context.Context, input *CreateDeliveryInput) (*entity.Delivery, error)

	// GetDelivery retrieves a delivery by ID.
	GetDelivery(ctx context.Context, id uuid.UUID) (*DeliveryView, error)

	// Transition moves a delivery along the status graph. Authorization,
	// edge validity, the validation code and the settlement gate are all
	// checked before any write.
	Transition(ctx context.Context, deliveryID uuid.UUID, actor Actor, input *TransitionInput) (*DeliveryView, error)

	// ValidationQR renders the delivery's validation code as a QR image for
	// the recipient. Only the announcement owner and admins may fetch it.
	ValidationQR(ctx context.Context, deliveryID uuid.UUID, actor Actor) ([]byte, error)
}
