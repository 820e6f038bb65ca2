package impl

import (
	"context"
	"log/slog"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/domain/service"
	"ecodeli/internal/errors"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// webhookOutcomes maps provider outcome strings onto payment statuses.
var webhookOutcomes = map[string]entity.PaymentStatus{
	"succeeded": entity.PaymentStatusCompleted,
	"failed":    entity.PaymentStatusFailed,
	"refunded":  entity.PaymentStatusRefunded,
	"disputed":  entity.PaymentStatusDisputed,
}

type paymentService struct {
	txManager   repository.TransactionManager
	paymentRepo repository.PaymentRepository
	provider    service.PaymentProvider
	logger      *slog.Logger
}

// NewPaymentService creates a new payment coordination service instance
func NewPaymentService(
	txManager repository.TransactionManager,
	paymentRepo repository.PaymentRepository,
	provider service.PaymentProvider,
	logger *slog.Logger,
) usecase.PaymentUsecase {
	return &paymentService{
		txManager:   txManager,
		paymentRepo: paymentRepo,
		provider:    provider,
		logger:      logger,
	}
}

// IsSettled reports whether the latest payment for the entity is COMPLETED.
func (s *paymentService) IsSettled(ctx context.Context, entityType entity.PaymentEntityType, entityID uuid.UUID) (bool, error) {
	payment, err := s.paymentRepo.FindLatestPaymentByEntity(ctx, entityType, entityID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return false, nil
		}

		return false, errors.Wrap(err, "find latest payment")
	}

	return payment.Status == entity.PaymentStatusCompleted, nil
}

// Settle captures the latest payment for the entity. A payment that already
// settled is left untouched, so repeated calls never double-capture.
func (s *paymentService) Settle(ctx context.Context, entityType entity.PaymentEntityType, entityID uuid.UUID) error {
	payment, err := s.paymentRepo.FindLatestPaymentByEntity(ctx, entityType, entityID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return domainerrors.ErrPaymentNotFound
		}

		return errors.Wrap(err, "find latest payment")
	}

	if payment.Status == entity.PaymentStatusCompleted {
		return nil
	}

	if err := s.provider.Capture(ctx, payment.ProviderReference); err != nil {
		return errors.Wrap(err, "capture payment")
	}

	// The capture outcome is confirmed asynchronously through the webhook;
	// status stays PENDING until then.
	return nil
}

// Refund refunds the latest payment for the entity at most once.
func (s *paymentService) Refund(ctx context.Context, entityType entity.PaymentEntityType, entityID uuid.UUID, amount decimal.Decimal) error {
	payment, err := s.paymentRepo.FindLatestPaymentByEntity(ctx, entityType, entityID)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return domainerrors.ErrPaymentNotFound
		}

		return errors.Wrap(err, "find latest payment")
	}

	if payment.Status == entity.PaymentStatusRefunded {
		return domainerrors.ErrAlreadyRefunded
	}

	if payment.PaymentMethod == entity.PaymentMethodWallet {
		return s.refundToWallet(ctx, payment, amount)
	}

	if err := s.provider.Refund(ctx, payment.ProviderReference, amount); err != nil {
		return errors.Wrap(err, "refund payment")
	}

	if err := s.paymentRepo.UpdatePaymentStatus(ctx, payment.ID, entity.PaymentStatusRefunded); err != nil {
		return errors.Wrap(err, "update payment status")
	}

	return nil
}

// PayWithWallet debits the user's wallet synchronously. The wallet row stays
// locked for the whole debit so concurrent payments cannot overdraw.
func (s *paymentService) PayWithWallet(ctx context.Context, userID uuid.UUID, entityType entity.PaymentEntityType, entityID uuid.UUID, amount decimal.Decimal) (*entity.Payment, error) {
	var payment *entity.Payment

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		walletRepo := f.NewWalletRepository()

		wallet, err := walletRepo.FindWalletByUserIDForUpdate(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrWalletNotFound) {
				return domainerrors.ErrWalletNotFound
			}

			return errors.Wrap(err, "lock wallet")
		}

		if wallet.Balance.LessThan(amount) {
			return domainerrors.ErrInsufficientFunds
		}

		wallet.Balance = wallet.Balance.Sub(amount)
		wallet.UpdatedAt = time.Now()
		if err := walletRepo.UpdateWalletBalance(ctx, wallet); err != nil {
			return errors.Wrap(err, "update wallet balance")
		}

		now := time.Now()
		payment = &entity.Payment{
			ID:            uuid.New(),
			PayerID:       userID,
			Amount:        amount,
			Currency:      wallet.Currency,
			Status:        entity.PaymentStatusCompleted,
			EntityType:    entityType,
			EntityID:      entityID,
			PaymentMethod: entity.PaymentMethodWallet,
			CreatedAt:     now,
			UpdatedAt:     now,
		}

		return errors.Wrap(f.NewPaymentRepository().CreatePayment(ctx, payment), "create payment")
	})
	if err != nil {
		return nil, err
	}

	return payment, nil
}

// HandleWebhook maps a provider confirmation onto the payment status.
// Replayed confirmations with the same outcome are no-ops.
func (s *paymentService) HandleWebhook(ctx context.Context, input *usecase.WebhookInput) (*entity.Payment, error) {
	status, known := webhookOutcomes[input.Outcome]
	if !known {
		return nil, domainerrors.ErrValidationFailed.WithDetails("unknown webhook outcome: " + input.Outcome)
	}

	payment, err := s.paymentRepo.FindPaymentByProviderReference(ctx, input.ProviderReference)
	if err != nil {
		if errors.Is(err, repository.ErrPaymentNotFound) {
			return nil, domainerrors.ErrPaymentNotFound
		}

		return nil, errors.Wrap(err, "find payment by provider reference")
	}

	if payment.Status == status {
		return payment, nil
	}

	if err := s.paymentRepo.UpdatePaymentStatus(ctx, payment.ID, status); err != nil {
		return nil, errors.Wrap(err, "update payment status")
	}

	s.logger.InfoContext(ctx, "payment status updated from webhook",
		slog.String("payment_id", payment.ID.String()),
		slog.String("status", string(status)))

	payment.Status = status
	payment.UpdatedAt = time.Now()

	return payment, nil
}

// refundToWallet credits a wallet payment back to its payer in one transaction.
func (s *paymentService) refundToWallet(ctx context.Context, payment *entity.Payment, amount decimal.Decimal) error {
	return s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		paymentRepo := f.NewPaymentRepository()

		// Re-read under the transaction so two refunds cannot both pass the
		// REFUNDED guard.
		current, err := paymentRepo.FindPaymentByID(ctx, payment.ID)
		if err != nil {
			return errors.Wrap(err, "find payment")
		}
		if current.Status == entity.PaymentStatusRefunded {
			return domainerrors.ErrAlreadyRefunded
		}

		walletRepo := f.NewWalletRepository()
		wallet, err := walletRepo.FindWalletByUserIDForUpdate(ctx, payment.PayerID)
		if err != nil {
			return errors.Wrap(err, "lock wallet")
		}

		wallet.Balance = wallet.Balance.Add(amount)
		wallet.UpdatedAt = time.Now()
		if err := walletRepo.UpdateWalletBalance(ctx, wallet); err != nil {
			return errors.Wrap(err, "update wallet balance")
		}

		return errors.Wrap(paymentRepo.UpdatePaymentStatus(ctx, payment.ID, entity.PaymentStatusRefunded), "update payment status")
	})
}
