package repository

import (
	"context"
	"errors"

	"ecodeli/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for payment persistence.
var (
	// ErrPaymentNotFound is returned when a payment is not found.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrWalletNotFound is returned when a wallet is not found.
	ErrWalletNotFound = errors.New("wallet not found")
)

// PaymentRepository defines the interface for payment-related database operations.
type PaymentRepository interface {
	// CreatePayment persists a new payment.
	CreatePayment(ctx context.Context, payment *entity.Payment) error

	// FindPaymentByID retrieves a payment by its unique ID.
	FindPaymentByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)

	// FindLatestPaymentByEntity retrieves the most recent payment attached to
	// an entity, or ErrPaymentNotFound when none exists.
	FindLatestPaymentByEntity(ctx context.Context, entityType entity.PaymentEntityType, entityID uuid.UUID) (*entity.Payment, error)

	// FindPaymentByProviderReference retrieves a payment by the provider's
	// opaque reference, used by the webhook handler.
	FindPaymentByProviderReference(ctx context.Context, providerRef string) (*entity.Payment, error)

	// UpdatePaymentStatus persists a payment status change.
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status entity.PaymentStatus) error
}

// WalletRepository defines the interface for wallet database operations.
type WalletRepository interface {
	// FindWalletByUserIDForUpdate retrieves a user's wallet and locks its row
	// for the duration of the surrounding transaction.
	FindWalletByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Wallet, error)

	// UpdateWalletBalance persists a new balance for the wallet.
	UpdateWalletBalance(ctx context.Context, wallet *entity.Wallet) error
}
