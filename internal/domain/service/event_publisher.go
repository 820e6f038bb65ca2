package service

import (
	"context"
)

// DeliveryEvent represents a lifecycle event to be processed by the notification worker
type DeliveryEvent struct {
	RequestID      string   `json:"request_id,omitempty"` // For distributed tracing
	Kind           string   `json:"kind"`                 // DELIVERY_UPDATE, ANNOUNCEMENT_UPDATE or SYSTEM_ALERT
	DeliveryID     string   `json:"delivery_id,omitempty"`
	AnnouncementID string   `json:"announcement_id,omitempty"`
	Status         string   `json:"status,omitempty"`
	Progress       int      `json:"progress"`
	Message        string   `json:"message,omitempty"`
	RecipientIDs   []string `json:"recipient_ids"` // User IDs to notify
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishDeliveryEvent publishes a delivery lifecycle event for async processing
	PublishDeliveryEvent(ctx context.Context, event *DeliveryEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
