package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OutboxStatus represents the delivery state of an outbox event.
type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "PENDING"
	OutboxStatusDelivered OutboxStatus = "DELIVERED"
	OutboxStatusFailed    OutboxStatus = "FAILED"
)

// Event kinds fanned out to live connections and the notification worker.
const (
	EventKindDeliveryUpdate     = "DELIVERY_UPDATE"
	EventKindAnnouncementUpdate = "ANNOUNCEMENT_UPDATE"
	EventKindSystemAlert        = "SYSTEM_ALERT"
)

// OutboxEvent is a durable record of a side effect to deliver after the
// primary transaction commits. The transition transaction writes the status
// change and the outbox row together; a drain step consumes the row, so a
// failed dispatch is retried instead of silently dropped.
type OutboxEvent struct {
	ID          uuid.UUID       `json:"id"`
	Kind        string          `json:"kind"`
	Channel     string          `json:"channel"` // Dispatcher channel the payload is fanned out on.
	Payload     json.RawMessage `json:"payload"`
	Status      OutboxStatus    `json:"status"`
	Attempts    int             `json:"attempts"`
	LastError   string          `json:"last_error,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	DeliveredAt *time.Time      `json:"delivered_at,omitempty"`
}
