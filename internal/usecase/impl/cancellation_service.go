package impl

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/policy"
	"ecodeli/internal/domain/repository"
	"ecodeli/internal/errors"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
)

// announcementsChannel is the broadcast channel deliverers are
// auto-subscribed to.
const announcementsChannel = "announcements"

const defaultCancellationReason = "Annulée par le client"

type cancellationService struct {
	txManager        repository.TransactionManager
	announcementRepo repository.AnnouncementRepository
	paymentUsecase   usecase.PaymentUsecase
	outbox           usecase.OutboxUsecase
	logger           *slog.Logger
}

// NewCancellationService creates a new cancellation service instance
func NewCancellationService(
	txManager repository.TransactionManager,
	announcementRepo repository.AnnouncementRepository,
	paymentUsecase usecase.PaymentUsecase,
	outbox usecase.OutboxUsecase,
	logger *slog.Logger,
) usecase.CancellationUsecase {
	return &cancellationService{
		txManager:        txManager,
		announcementRepo: announcementRepo,
		paymentUsecase:   paymentUsecase,
		outbox:           outbox,
		logger:           logger,
	}
}

// QuoteCancellation previews fees and refund without mutating anything.
func (s *cancellationService) QuoteCancellation(ctx context.Context, announcementID uuid.UUID) (*usecase.CancellationQuoteView, error) {
	announcement, err := s.announcementRepo.FindAnnouncementByID(ctx, announcementID)
	if err != nil {
		if errors.Is(err, repository.ErrAnnouncementNotFound) {
			return nil, domainerrors.ErrAnnouncementNotFound
		}

		return nil, errors.Wrap(err, "find announcement")
	}

	quote := policy.QuoteCancellation(announcement.Status, announcement.CreatedAt, announcement.Price, time.Now())

	return quoteView(quote), nil
}

// CancelAnnouncement executes a cancellation. The status write and the audit
// record commit together; the refund instruction follows and its failure
// never undoes the cancellation.
func (s *cancellationService) CancelAnnouncement(ctx context.Context, announcementID uuid.UUID, actor usecase.Actor, reason string) (*usecase.CancellationQuoteView, error) {
	permitted := false
	for _, role := range actor.Roles {
		if policy.Allowed(role, policy.OperationCancelAnnouncement) {
			permitted = true

			break
		}
	}
	if !permitted {
		return nil, domainerrors.ErrForbidden
	}

	var quote policy.CancellationQuote

	err := s.txManager.Execute(ctx, func(f repository.RepositoryFactory) error {
		announcementRepo := f.NewAnnouncementRepository()

		announcement, err := announcementRepo.FindAnnouncementByIDForUpdate(ctx, announcementID)
		if err != nil {
			if errors.Is(err, repository.ErrAnnouncementNotFound) {
				return domainerrors.ErrAnnouncementNotFound
			}

			return errors.Wrap(err, "lock announcement")
		}

		if announcement.ClientID != actor.ID && !actor.HasRole(entity.RoleAdmin) {
			return domainerrors.ErrForbidden
		}

		quote = policy.QuoteCancellation(announcement.Status, announcement.CreatedAt, announcement.Price, time.Now())
		if !quote.Cancellable {
			return domainerrors.NewCancellationNotAllowed(quote.Reason)
		}

		now := time.Now()
		finalReason := reason
		if finalReason == "" {
			finalReason = defaultCancellationReason
		}

		if err := announcementRepo.CancelAnnouncement(ctx, announcement.ID, finalReason, now); err != nil {
			return errors.Wrap(err, "cancel announcement")
		}

		payload, err := json.Marshal(map[string]any{
			"announcement_id":     announcement.ID.String(),
			"status":              string(entity.AnnouncementStatusCancelled),
			"cancellation_reason": finalReason,
			"refund_amount":       quote.RefundAmount,
			"will_refund":         quote.WillRefund,
		})
		if err != nil {
			return errors.Wrap(err, "marshal cancellation event")
		}

		if err := f.NewOutboxRepository().CreateOutboxEvent(ctx, &entity.OutboxEvent{
			ID:        uuid.New(),
			Kind:      entity.EventKindAnnouncementUpdate,
			Channel:   announcementsChannel,
			Payload:   payload,
			Status:    entity.OutboxStatusPending,
			CreatedAt: now,
		}); err != nil {
			return errors.Wrap(err, "create outbox event")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	if quote.WillRefund {
		if err := s.paymentUsecase.Refund(ctx, entity.PaymentEntityAnnouncement, announcementID, quote.RefundAmount); err != nil {
			// The cancellation stands; the refund is reconciled out-of-band.
			s.logger.ErrorContext(ctx, "refund after cancellation failed",
				slog.String("announcement_id", announcementID.String()),
				slog.Any("error", err))
		}
	}

	if s.outbox != nil {
		if _, err := s.outbox.Drain(ctx); err != nil {
			s.logger.WarnContext(ctx, "synchronous outbox drain failed, background drainer will retry",
				slog.Any("error", err))
		}
	}

	return quoteView(quote), nil
}

func quoteView(quote policy.CancellationQuote) *usecase.CancellationQuoteView {
	return &usecase.CancellationQuoteView{
		Cancellable:   quote.Cancellable,
		Reason:        quote.Reason,
		WithinGrace:   quote.WithinGrace,
		VariableFee:   quote.VariableFee,
		ProcessingFee: quote.ProcessingFee,
		TotalFees:     quote.TotalFees,
		RefundAmount:  quote.RefundAmount,
		WillRefund:    quote.WillRefund,
	}
}
