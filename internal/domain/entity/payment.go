package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentStatus represents the settlement state of a payment.
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
	PaymentStatusDisputed  PaymentStatus = "DISPUTED"
)

// PaymentMethod identifies how a payment is settled.
type PaymentMethod string

const (
	PaymentMethodCard   PaymentMethod = "CARD"
	PaymentMethodWallet PaymentMethod = "WALLET" // The sole synchronous settlement path.
)

// PaymentEntityType names the kind of entity a payment is attached to.
type PaymentEntityType string

const (
	PaymentEntityDelivery     PaymentEntityType = "DELIVERY"
	PaymentEntityAnnouncement PaymentEntityType = "ANNOUNCEMENT"
	PaymentEntityService      PaymentEntityType = "SERVICE"
	PaymentEntitySubscription PaymentEntityType = "SUBSCRIPTION"
)

// Payment represents one monetary transaction tied to an entity.
// Status mirrors provider webhook confirmations; it is never optimistically
// set to COMPLETED, except for synchronous wallet debits.
type Payment struct {
	ID                uuid.UUID         `json:"id"`
	PayerID           uuid.UUID         `json:"payer_id"`
	Amount            decimal.Decimal   `json:"amount"`
	Currency          string            `json:"currency"`
	Status            PaymentStatus     `json:"status"`
	EntityType        PaymentEntityType `json:"entity_type"`
	EntityID          uuid.UUID         `json:"entity_id"`
	PaymentMethod     PaymentMethod     `json:"payment_method"`
	ProviderReference string            `json:"provider_reference,omitempty"` // Opaque id from the payment provider.
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}

// Wallet holds a user's internal balance for synchronous wallet payments.
type Wallet struct {
	ID        uuid.UUID       `json:"id"`
	UserID    uuid.UUID       `json:"user_id"`
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	UpdatedAt time.Time       `json:"updated_at"`
}
