package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AnnouncementStatus represents the lifecycle stage of a client announcement.
type AnnouncementStatus string

const (
	AnnouncementStatusDraft      AnnouncementStatus = "DRAFT"
	AnnouncementStatusActive     AnnouncementStatus = "ACTIVE"
	AnnouncementStatusMatched    AnnouncementStatus = "MATCHED"
	AnnouncementStatusInProgress AnnouncementStatus = "IN_PROGRESS"
	AnnouncementStatusCompleted  AnnouncementStatus = "COMPLETED"
	AnnouncementStatusCancelled  AnnouncementStatus = "CANCELLED"
)

// Announcement is a client-posted transport request, the origin of a delivery
// once matched to a deliverer.
type Announcement struct {
	ID                 uuid.UUID          `json:"id"`
	ClientID           uuid.UUID          `json:"client_id"`
	Title              string             `json:"title"`
	Status             AnnouncementStatus `json:"status"`
	Price              decimal.Decimal    `json:"price"`
	PickupAddress      string             `json:"pickup_address"`
	PickupLatitude     float64            `json:"pickup_latitude"`
	PickupLongitude    float64            `json:"pickup_longitude"`
	DeliveryAddress    string             `json:"delivery_address"`
	DeliveryLatitude   float64            `json:"delivery_latitude"`
	DeliveryLongitude  float64            `json:"delivery_longitude"`
	Rating             float64            `json:"rating"` // Client rating, used as a nearby-search sort key.
	CancelledAt        *time.Time         `json:"cancelled_at,omitempty"`
	CancellationReason string             `json:"cancellation_reason,omitempty"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}
