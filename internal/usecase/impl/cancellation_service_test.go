package impl

import (
	"context"
	"testing"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	mockRepo "ecodeli/internal/mocks/repository"
	mockUc "ecodeli/internal/mocks/usecase"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cancellationServiceFixtures holds all test dependencies for cancellation service tests.
type cancellationServiceFixtures struct {
	service          usecase.CancellationUsecase
	txManager        *mockRepo.MockTransactionManager
	announcementRepo *mockRepo.MockAnnouncementRepository
	paymentUsecase   *mockUc.MockPaymentUsecase
	outbox           *mockUc.MockOutboxUsecase
}

func createTestCancellationService(t *testing.T) cancellationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	announcementRepo := mockRepo.NewMockAnnouncementRepository(t)
	paymentUsecase := mockUc.NewMockPaymentUsecase(t)
	outbox := mockUc.NewMockOutboxUsecase(t)

	service := NewCancellationService(txManager, announcementRepo, paymentUsecase, outbox, newDiscardLogger())

	return cancellationServiceFixtures{
		service:          service,
		txManager:        txManager,
		announcementRepo: announcementRepo,
		paymentUsecase:   paymentUsecase,
		outbox:           outbox,
	}
}

func TestCancellationService_Quote_MatchedOutsideGrace(t *testing.T) {
	fx := createTestCancellationService(t)

	ctx := context.Background()
	announcementID := uuid.New()

	fx.announcementRepo.EXPECT().
		FindAnnouncementByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:        announcementID,
			Status:    entity.AnnouncementStatusMatched,
			Price:     decimal.RequireFromString("100"),
			CreatedAt: time.Now().Add(-2 * time.Hour),
		}, nil)

	quote, err := fx.service.QuoteCancellation(ctx, announcementID)

	require.NoError(t, err)
	assert.True(t, quote.Cancellable)
	assert.False(t, quote.WithinGrace)
	assert.True(t, quote.VariableFee.Equal(decimal.RequireFromString("15")))
	assert.True(t, quote.ProcessingFee.Equal(decimal.RequireFromString("2.50")))
	assert.True(t, quote.TotalFees.Equal(decimal.RequireFromString("17.50")))
	assert.True(t, quote.RefundAmount.Equal(decimal.RequireFromString("82.50")))
	assert.True(t, quote.WillRefund)
}

func TestCancellationService_Quote_WithinGraceIsFree(t *testing.T) {
	fx := createTestCancellationService(t)

	ctx := context.Background()
	announcementID := uuid.New()

	fx.announcementRepo.EXPECT().
		FindAnnouncementByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:        announcementID,
			Status:    entity.AnnouncementStatusActive,
			Price:     decimal.RequireFromString("100"),
			CreatedAt: time.Now().Add(-10 * time.Minute),
		}, nil)

	quote, err := fx.service.QuoteCancellation(ctx, announcementID)

	require.NoError(t, err)
	assert.True(t, quote.WithinGrace)
	assert.True(t, quote.TotalFees.IsZero())
	assert.True(t, quote.RefundAmount.Equal(decimal.RequireFromString("100")))
}

func TestCancellationService_Cancel_OwnerWithRefund(t *testing.T) {
	fx := createTestCancellationService(t)

	ctx := context.Background()
	announcementID := uuid.New()
	clientID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAnnouncementRepo := mockRepo.NewMockAnnouncementRepository(t)
		mockOutboxRepo := mockRepo.NewMockOutboxRepository(t)

		factory.EXPECT().NewAnnouncementRepository().Return(mockAnnouncementRepo)
		factory.EXPECT().NewOutboxRepository().Return(mockOutboxRepo)

		mockAnnouncementRepo.EXPECT().
			FindAnnouncementByIDForUpdate(ctx, announcementID).
			Return(&entity.Announcement{
				ID:        announcementID,
				ClientID:  clientID,
				Status:    entity.AnnouncementStatusMatched,
				Price:     decimal.RequireFromString("100"),
				CreatedAt: time.Now().Add(-2 * time.Hour),
			}, nil)

		// Empty caller reason falls back to the default.
		mockAnnouncementRepo.EXPECT().
			CancelAnnouncement(ctx, announcementID, "Annulée par le client", mock.AnythingOfType("time.Time")).
			Return(nil)

		mockOutboxRepo.EXPECT().
			CreateOutboxEvent(ctx, mock.AnythingOfType("*entity.OutboxEvent")).
			Run(func(ctx context.Context, event *entity.OutboxEvent) {
				assert.Equal(t, entity.EventKindAnnouncementUpdate, event.Kind)
				assert.Equal(t, "announcements", event.Channel)
				assert.Contains(t, string(event.Payload), "CANCELLED")
			}).
			Return(nil)
	})

	fx.paymentUsecase.EXPECT().
		Refund(ctx, entity.PaymentEntityAnnouncement, announcementID, mock.MatchedBy(func(amount decimal.Decimal) bool {
			return amount.Equal(decimal.RequireFromString("82.50"))
		})).
		Return(nil)

	fx.outbox.EXPECT().Drain(ctx).Return(1, nil)

	quote, err := fx.service.CancelAnnouncement(ctx, announcementID, usecase.Actor{ID: clientID, Roles: []string{entity.RoleClient}}, "")

	require.NoError(t, err)
	assert.True(t, quote.WillRefund)
	assert.True(t, quote.RefundAmount.Equal(decimal.RequireFromString("82.50")))
}

func TestCancellationService_Cancel_InProgressBlocked(t *testing.T) {
	fx := createTestCancellationService(t)

	ctx := context.Background()
	announcementID := uuid.New()
	clientID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAnnouncementRepo := mockRepo.NewMockAnnouncementRepository(t)
		factory.EXPECT().NewAnnouncementRepository().Return(mockAnnouncementRepo)

		mockAnnouncementRepo.EXPECT().
			FindAnnouncementByIDForUpdate(ctx, announcementID).
			Return(&entity.Announcement{
				ID:        announcementID,
				ClientID:  clientID,
				Status:    entity.AnnouncementStatusInProgress,
				Price:     decimal.RequireFromString("100"),
				CreatedAt: time.Now().Add(-2 * time.Hour),
			}, nil)
	})

	quote, err := fx.service.CancelAnnouncement(ctx, announcementID, usecase.Actor{ID: clientID, Roles: []string{entity.RoleClient}}, "")

	assert.Nil(t, quote)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "CANCELLATION_NOT_ALLOWED", appErr.ErrorCode())
	assert.Contains(t, appErr.Message(), "en cours")
}

func TestCancellationService_Cancel_NonOwnerForbidden(t *testing.T) {
	fx := createTestCancellationService(t)

	ctx := context.Background()
	announcementID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAnnouncementRepo := mockRepo.NewMockAnnouncementRepository(t)
		factory.EXPECT().NewAnnouncementRepository().Return(mockAnnouncementRepo)

		mockAnnouncementRepo.EXPECT().
			FindAnnouncementByIDForUpdate(ctx, announcementID).
			Return(&entity.Announcement{
				ID:       announcementID,
				ClientID: uuid.New(),
				Status:   entity.AnnouncementStatusActive,
				Price:    decimal.RequireFromString("50"),
			}, nil)
	})

	quote, err := fx.service.CancelAnnouncement(ctx, announcementID, usecase.Actor{ID: uuid.New(), Roles: []string{entity.RoleClient}}, "")

	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCancellationService_Cancel_DelivererRoleForbidden(t *testing.T) {
	fx := createTestCancellationService(t)

	ctx := context.Background()

	quote, err := fx.service.CancelAnnouncement(ctx, uuid.New(), usecase.Actor{ID: uuid.New(), Roles: []string{entity.RoleDeliverer}}, "")

	assert.Nil(t, quote)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestCancellationService_Cancel_DraftNeverRefunds(t *testing.T) {
	fx := createTestCancellationService(t)

	ctx := context.Background()
	announcementID := uuid.New()
	clientID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAnnouncementRepo := mockRepo.NewMockAnnouncementRepository(t)
		mockOutboxRepo := mockRepo.NewMockOutboxRepository(t)

		factory.EXPECT().NewAnnouncementRepository().Return(mockAnnouncementRepo)
		factory.EXPECT().NewOutboxRepository().Return(mockOutboxRepo)

		mockAnnouncementRepo.EXPECT().
			FindAnnouncementByIDForUpdate(ctx, announcementID).
			Return(&entity.Announcement{
				ID:        announcementID,
				ClientID:  clientID,
				Status:    entity.AnnouncementStatusDraft,
				Price:     decimal.RequireFromString("100"),
				CreatedAt: time.Now().Add(-5 * time.Minute),
			}, nil)

		mockAnnouncementRepo.EXPECT().
			CancelAnnouncement(ctx, announcementID, "Changement de plan", mock.AnythingOfType("time.Time")).
			Return(nil)

		mockOutboxRepo.EXPECT().
			CreateOutboxEvent(ctx, mock.AnythingOfType("*entity.OutboxEvent")).
			Return(nil)
	})

	// No Refund expectation: a draft never had a captured payment.
	fx.outbox.EXPECT().Drain(ctx).Return(1, nil)

	quote, err := fx.service.CancelAnnouncement(ctx, announcementID, usecase.Actor{ID: clientID, Roles: []string{entity.RoleClient}}, "Changement de plan")

	require.NoError(t, err)
	assert.True(t, quote.Cancellable)
	assert.False(t, quote.WillRefund)
}

func TestCancellationService_Cancel_RefundFailureKeepsCancellation(t *testing.T) {
	fx := createTestCancellationService(t)

	ctx := context.Background()
	announcementID := uuid.New()
	clientID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockAnnouncementRepo := mockRepo.NewMockAnnouncementRepository(t)
		mockOutboxRepo := mockRepo.NewMockOutboxRepository(t)

		factory.EXPECT().NewAnnouncementRepository().Return(mockAnnouncementRepo)
		factory.EXPECT().NewOutboxRepository().Return(mockOutboxRepo)

		mockAnnouncementRepo.EXPECT().
			FindAnnouncementByIDForUpdate(ctx, announcementID).
			Return(&entity.Announcement{
				ID:        announcementID,
				ClientID:  clientID,
				Status:    entity.AnnouncementStatusActive,
				Price:     decimal.RequireFromString("40"),
				CreatedAt: time.Now().Add(-1 * time.Hour),
			}, nil)

		mockAnnouncementRepo.EXPECT().
			CancelAnnouncement(ctx, announcementID, "Annulée par le client", mock.AnythingOfType("time.Time")).
			Return(nil)

		mockOutboxRepo.EXPECT().
			CreateOutboxEvent(ctx, mock.AnythingOfType("*entity.OutboxEvent")).
			Return(nil)
	})

	fx.paymentUsecase.EXPECT().
		Refund(ctx, entity.PaymentEntityAnnouncement, announcementID, mock.AnythingOfType("decimal.Decimal")).
		Return(errors.New("provider unavailable"))

	fx.outbox.EXPECT().Drain(ctx).Return(1, nil)

	quote, err := fx.service.CancelAnnouncement(ctx, announcementID, usecase.Actor{ID: clientID, Roles: []string{entity.RoleClient}}, "")

	require.NoError(t, err)
	assert.True(t, quote.WillRefund)
}
