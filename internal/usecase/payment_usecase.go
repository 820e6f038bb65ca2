package usecase

import (
	"context"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WebhookInput represents a provider webhook confirmation
type WebhookInput struct {
	ProviderReference string `json:"provider_reference"`
	Outcome           string `json:"outcome"` // succeeded, failed, refunded or disputed
}

// PaymentUsecase defines the interface for payment coordination use cases
type PaymentUsecase interface {
	// IsSettled reports whether the latest payment for the entity is COMPLETED.
	// An entity with no payment is not settled.
	IsSettled(ctx context.Context, entityType entity.PaymentEntityType, entityID uuid.UUID) (bool, error)

	// Settle captures the latest payment for the entity via the provider.
	// Calling it on an already COMPLETED payment is a no-op.
	Settle(ctx context.Context, entityType entity.PaymentEntityType, entityID uuid.UUID) error

	// Refund refunds the latest payment for the entity. A second refund on
	// the same payment fails with AlreadyRefunded regardless of amount.
	Refund(ctx context.Context, entityType entity.PaymentEntityType, entityID uuid.UUID, amount decimal.Decimal) error

	// PayWithWallet debits the user's wallet synchronously and records a
	// COMPLETED payment, or fails with InsufficientFunds.
	PayWithWallet(ctx context.Context, userID uuid.UUID, entityType entity.PaymentEntityType, entityID uuid.UUID, amount decimal.Decimal) (*entity.Payment, error)

	// HandleWebhook maps a provider confirmation onto the payment's status
	// and returns the updated payment so the caller can drive follow-up
	// transitions, e.g. completing a delivery once its payment settles.
	HandleWebhook(ctx context.Context, input *WebhookInput) (*entity.Payment, error)
}
