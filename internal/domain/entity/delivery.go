// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DeliveryStatus represents the lifecycle stage of a delivery.
type DeliveryStatus string

const (
	DeliveryStatusPending   DeliveryStatus = "PENDING"
	DeliveryStatusAccepted  DeliveryStatus = "ACCEPTED"
	DeliveryStatusPickup    DeliveryStatus = "PICKUP"
	DeliveryStatusInTransit DeliveryStatus = "IN_TRANSIT"
	DeliveryStatusDelivered DeliveryStatus = "DELIVERED"
	DeliveryStatusCompleted DeliveryStatus = "COMPLETED"
	DeliveryStatusCancelled DeliveryStatus = "CANCELLED"
)

// AllowedDeliveryTransitions enumerates every valid direct edge of the
// delivery state graph. No transition may skip a stage, so a delivery always
// carries a tracking trail through every stage it actually passed.
var AllowedDeliveryTransitions = map[DeliveryStatus][]DeliveryStatus{
	DeliveryStatusPending:   {DeliveryStatusAccepted, DeliveryStatusCancelled},
	DeliveryStatusAccepted:  {DeliveryStatusPickup, DeliveryStatusCancelled},
	DeliveryStatusPickup:    {DeliveryStatusInTransit, DeliveryStatusCancelled},
	DeliveryStatusInTransit: {DeliveryStatusDelivered},
	DeliveryStatusDelivered: {DeliveryStatusCompleted},
}

// CanTransition reports whether to is a valid direct successor of from.
func CanTransition(from, to DeliveryStatus) bool {
	for _, next := range AllowedDeliveryTransitions[from] {
		if next == to {
			return true
		}
	}

	return false
}

// deliveryProgress maps each status to a presentation progress percentage.
// It has no bearing on transition legality.
var deliveryProgress = map[DeliveryStatus]int{
	DeliveryStatusPending:   0,
	DeliveryStatusAccepted:  20,
	DeliveryStatusPickup:    40,
	DeliveryStatusInTransit: 70,
	DeliveryStatusDelivered: 90,
	DeliveryStatusCompleted: 100,
}

// Progress returns the UI progress percentage for a status.
func (s DeliveryStatus) Progress() int {
	return deliveryProgress[s]
}

// IsTerminal reports whether no further transitions can leave the status.
func (s DeliveryStatus) IsTerminal() bool {
	return len(AllowedDeliveryTransitions[s]) == 0
}

// Delivery represents one physical transport task bound to an announcement.
type Delivery struct {
	ID                uuid.UUID       `json:"id"`
	AnnouncementID    uuid.UUID       `json:"announcement_id"`
	DelivererID       *uuid.UUID      `json:"deliverer_id,omitempty"` // Nil until a deliverer is matched.
	Status            DeliveryStatus  `json:"status"`
	ValidationCode    string          `json:"-"` // Short secret, immutable once set, checked at drop-off.
	Price             decimal.Decimal `json:"price"`
	EstimatedDuration int             `json:"estimated_duration"` // Minutes.
	ScheduledAt       time.Time       `json:"scheduled_at"`
	CompletedAt       *time.Time      `json:"completed_at,omitempty"`
	Version           int             `json:"-"` // Bumped on every status write; guards concurrent transitions.
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
