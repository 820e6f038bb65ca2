package usecase

import (
	"context"
	"time"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
)

// TrackingMode selects the depth of a tracking view.
type TrackingMode string

const (
	// TrackingModeLive returns the full recent history for the live map view.
	TrackingModeLive TrackingMode = "live"
	// TrackingModeSummary returns a short history for list views.
	TrackingModeSummary TrackingMode = "summary"
)

// RecordEntryInput represents the input for recording a tracking observation
type RecordEntryInput struct {
	Message          string     `json:"message"`
	Location         string     `json:"location,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty"`
	Longitude        *float64   `json:"longitude,omitempty"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
}

// TrackingView aggregates a delivery's progress for presentation.
type TrackingView struct {
	Delivery         *entity.Delivery        `json:"delivery"`
	Progress         int                     `json:"progress"`
	Entries          []*entity.TrackingEntry `json:"entries"`
	TraveledKm       float64                 `json:"traveled_km"`
	EstimatedArrival *time.Time              `json:"estimated_arrival,omitempty"`
}

// TrackingUsecase defines the interface for tracking and ETA use cases
type TrackingUsecase interface {
	// RecordEntry appends a position/progress observation for a delivery.
	RecordEntry(ctx context.Context, deliveryID uuid.UUID, actor Actor, input *RecordEntryInput) (*entity.TrackingEntry, error)

	// GetTracking builds the tracking view for a delivery. History depth is
	// capped per mode; the estimated arrival falls back to a speed heuristic
	// when no explicit estimate was reported.
	GetTracking(ctx context.Context, deliveryID uuid.UUID, mode TrackingMode) (*TrackingView, error)
}
