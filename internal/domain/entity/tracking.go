package entity

import (
	"time"

	"github.com/google/uuid"
)

// TrackingEntry is an immutable, time-ordered observation of delivery
// progress. Entries are append-only; one entry is created per state
// transition or explicit location ping, never updated or deleted.
type TrackingEntry struct {
	ID               uuid.UUID      `json:"id"`
	DeliveryID       uuid.UUID      `json:"delivery_id"`
	Status           DeliveryStatus `json:"status"` // Snapshot of the delivery status at observation time.
	Message          string         `json:"message"`
	Location         string         `json:"location,omitempty"`
	Latitude         *float64       `json:"latitude,omitempty"`
	Longitude        *float64       `json:"longitude,omitempty"`
	EstimatedArrival *time.Time     `json:"estimated_arrival,omitempty"`
	Sequence         int64          `json:"-"` // Monotonic insertion order, tiebreaker for equal timestamps.
	CreatedAt        time.Time      `json:"created_at"`
}

// HasCoordinates reports whether the entry carries a GPS position.
func (e *TrackingEntry) HasCoordinates() bool {
	return e.Latitude != nil && e.Longitude != nil
}
