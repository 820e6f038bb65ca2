package impl

import (
	"context"
	"testing"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/domain/repository"
	mockRepo "ecodeli/internal/mocks/repository"
	mockUc "ecodeli/internal/mocks/usecase"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// trackingServiceFixtures holds all test dependencies for tracking service tests.
type trackingServiceFixtures struct {
	service          usecase.TrackingUsecase
	txManager        *mockRepo.MockTransactionManager
	deliveryRepo     *mockRepo.MockDeliveryRepository
	trackingRepo     *mockRepo.MockTrackingRepository
	announcementRepo *mockRepo.MockAnnouncementRepository
	outbox           *mockUc.MockOutboxUsecase
}

func createTestTrackingService(t *testing.T) trackingServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	deliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	trackingRepo := mockRepo.NewMockTrackingRepository(t)
	announcementRepo := mockRepo.NewMockAnnouncementRepository(t)
	outbox := mockUc.NewMockOutboxUsecase(t)

	service := NewTrackingService(txManager, deliveryRepo, trackingRepo, announcementRepo, outbox, newTestConfig(), newDiscardLogger())

	return trackingServiceFixtures{
		service:          service,
		txManager:        txManager,
		deliveryRepo:     deliveryRepo,
		trackingRepo:     trackingRepo,
		announcementRepo: announcementRepo,
		outbox:           outbox,
	}
}

func floatPtr(v float64) *float64 { return &v }

func TestTrackingService_RecordEntry_Success(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	deliveryID := uuid.New()
	delivererID := uuid.New()
	announcementID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		mockTrackingRepo := mockRepo.NewMockTrackingRepository(t)
		mockOutboxRepo := mockRepo.NewMockOutboxRepository(t)

		factory.EXPECT().NewDeliveryRepository().Return(mockDeliveryRepo)
		factory.EXPECT().NewTrackingRepository().Return(mockTrackingRepo)
		factory.EXPECT().NewOutboxRepository().Return(mockOutboxRepo)

		mockDeliveryRepo.EXPECT().
			FindDeliveryByID(ctx, deliveryID).
			Return(&entity.Delivery{
				ID:             deliveryID,
				AnnouncementID: announcementID,
				DelivererID:    &delivererID,
				Status:         entity.DeliveryStatusInTransit,
			}, nil)

		mockTrackingRepo.EXPECT().
			CreateTrackingEntry(ctx, mock.AnythingOfType("*entity.TrackingEntry")).
			Run(func(ctx context.Context, entry *entity.TrackingEntry) {
				assert.Equal(t, deliveryID, entry.DeliveryID)
				assert.Equal(t, entity.DeliveryStatusInTransit, entry.Status)
				assert.Equal(t, "Sur la rocade", entry.Message)
			}).
			Return(nil)

		mockOutboxRepo.EXPECT().
			CreateOutboxEvent(ctx, mock.AnythingOfType("*entity.OutboxEvent")).
			Run(func(ctx context.Context, event *entity.OutboxEvent) {
				assert.Equal(t, entity.EventKindDeliveryUpdate, event.Kind)
				assert.Equal(t, "delivery."+deliveryID.String(), event.Channel)
			}).
			Return(nil)
	})

	fx.announcementRepo.EXPECT().
		FindAnnouncementByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                announcementID,
			DeliveryLatitude:  45.7640,
			DeliveryLongitude: 4.8357,
		}, nil)

	fx.outbox.EXPECT().Drain(ctx).Return(1, nil)

	// Paris position, Lyon destination: far outside every proximity threshold.
	entry, err := fx.service.RecordEntry(ctx, deliveryID, usecase.Actor{ID: delivererID, Roles: []string{entity.RoleDeliverer}}, &usecase.RecordEntryInput{
		Message:   "Sur la rocade",
		Latitude:  floatPtr(48.8566),
		Longitude: floatPtr(2.3522),
	})

	require.NoError(t, err)
	require.NotNil(t, entry)
	assert.True(t, entry.HasCoordinates())
}

func TestTrackingService_RecordEntry_ProximityAlert(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	deliveryID := uuid.New()
	delivererID := uuid.New()
	announcementID := uuid.New()

	var events []*entity.OutboxEvent

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		mockTrackingRepo := mockRepo.NewMockTrackingRepository(t)
		mockOutboxRepo := mockRepo.NewMockOutboxRepository(t)

		factory.EXPECT().NewDeliveryRepository().Return(mockDeliveryRepo)
		factory.EXPECT().NewTrackingRepository().Return(mockTrackingRepo)
		factory.EXPECT().NewOutboxRepository().Return(mockOutboxRepo)

		mockDeliveryRepo.EXPECT().
			FindDeliveryByID(ctx, deliveryID).
			Return(&entity.Delivery{
				ID:             deliveryID,
				AnnouncementID: announcementID,
				DelivererID:    &delivererID,
				Status:         entity.DeliveryStatusInTransit,
			}, nil)

		mockTrackingRepo.EXPECT().
			CreateTrackingEntry(ctx, mock.AnythingOfType("*entity.TrackingEntry")).
			Return(nil)

		mockOutboxRepo.EXPECT().
			CreateOutboxEvent(ctx, mock.AnythingOfType("*entity.OutboxEvent")).
			Run(func(ctx context.Context, event *entity.OutboxEvent) {
				events = append(events, event)
			}).
			Return(nil)
	})

	// Destination roughly 300 m east of the reported position.
	fx.announcementRepo.EXPECT().
		FindAnnouncementByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                announcementID,
			DeliveryLatitude:  48.8566,
			DeliveryLongitude: 2.3563,
		}, nil)

	fx.outbox.EXPECT().Drain(ctx).Return(2, nil)

	_, err := fx.service.RecordEntry(ctx, deliveryID, usecase.Actor{ID: delivererID, Roles: []string{entity.RoleDeliverer}}, &usecase.RecordEntryInput{
		Message:   "Presque arrivé",
		Latitude:  floatPtr(48.8566),
		Longitude: floatPtr(2.3522),
	})

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, entity.EventKindDeliveryUpdate, events[0].Kind)
	assert.Equal(t, entity.EventKindSystemAlert, events[1].Kind)
	assert.Contains(t, string(events[1].Payload), "moins de 500 m")
}

func TestTrackingService_RecordEntry_InvalidCoordinates(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()

	entry, err := fx.service.RecordEntry(ctx, uuid.New(), usecase.Actor{ID: uuid.New(), Roles: []string{entity.RoleDeliverer}}, &usecase.RecordEntryInput{
		Message:   "position",
		Latitude:  floatPtr(95),
		Longitude: floatPtr(2.3522),
	})

	assert.Nil(t, entry)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestTrackingService_RecordEntry_ClientForbidden(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()

	entry, err := fx.service.RecordEntry(ctx, uuid.New(), usecase.Actor{ID: uuid.New(), Roles: []string{entity.RoleClient}}, &usecase.RecordEntryInput{
		Message: "hello",
	})

	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrForbidden))
}

func TestTrackingService_RecordEntry_UnassignedDelivererRejected(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	deliveryID := uuid.New()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
		factory.EXPECT().NewDeliveryRepository().Return(mockDeliveryRepo)

		mockDeliveryRepo.EXPECT().
			FindDeliveryByID(ctx, deliveryID).
			Return(&entity.Delivery{
				ID:     deliveryID,
				Status: entity.DeliveryStatusPending,
			}, nil)
	})

	entry, err := fx.service.RecordEntry(ctx, deliveryID, usecase.Actor{ID: uuid.New(), Roles: []string{entity.RoleDeliverer}}, &usecase.RecordEntryInput{
		Message: "en route",
	})

	assert.Nil(t, entry)
	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryNotAssigned))
}

func TestTrackingService_GetTracking_LiveAndSummaryLimits(t *testing.T) {
	tests := []struct {
		name          string
		mode          usecase.TrackingMode
		expectedLimit int
	}{
		{name: "live mode keeps the full history window", mode: usecase.TrackingModeLive, expectedLimit: 50},
		{name: "summary mode trims to a short history", mode: usecase.TrackingModeSummary, expectedLimit: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestTrackingService(t)

			ctx := context.Background()
			deliveryID := uuid.New()

			fx.deliveryRepo.EXPECT().
				FindDeliveryByID(ctx, deliveryID).
				Return(&entity.Delivery{
					ID:     deliveryID,
					Status: entity.DeliveryStatusCompleted,
				}, nil)

			fx.trackingRepo.EXPECT().
				FindRecentEntriesByDelivery(ctx, deliveryID, tt.expectedLimit).
				Return([]*entity.TrackingEntry{}, nil)

			fx.trackingRepo.EXPECT().
				FindRouteEntriesByDelivery(ctx, deliveryID).
				Return([]*entity.TrackingEntry{}, nil)

			view, err := fx.service.GetTracking(ctx, deliveryID, tt.mode)

			require.NoError(t, err)
			assert.Equal(t, 100, view.Progress)
			// Terminal deliveries carry no arrival estimate.
			assert.Nil(t, view.EstimatedArrival)
		})
	}
}

func TestTrackingService_GetTracking_ExplicitEstimateWins(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	deliveryID := uuid.New()
	reported := time.Now().Add(45 * time.Minute).Truncate(time.Second)

	fx.deliveryRepo.EXPECT().
		FindDeliveryByID(ctx, deliveryID).
		Return(&entity.Delivery{
			ID:     deliveryID,
			Status: entity.DeliveryStatusInTransit,
		}, nil)

	fx.trackingRepo.EXPECT().
		FindRecentEntriesByDelivery(ctx, deliveryID, 50).
		Return([]*entity.TrackingEntry{
			{ID: uuid.New(), DeliveryID: deliveryID, EstimatedArrival: &reported},
			{ID: uuid.New(), DeliveryID: deliveryID},
		}, nil)

	fx.trackingRepo.EXPECT().
		FindRouteEntriesByDelivery(ctx, deliveryID).
		Return([]*entity.TrackingEntry{}, nil)

	view, err := fx.service.GetTracking(ctx, deliveryID, usecase.TrackingModeLive)

	require.NoError(t, err)
	require.NotNil(t, view.EstimatedArrival)
	assert.True(t, view.EstimatedArrival.Equal(reported))
}

func TestTrackingService_GetTracking_SpeedHeuristicFallback(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	deliveryID := uuid.New()
	announcementID := uuid.New()

	fx.deliveryRepo.EXPECT().
		FindDeliveryByID(ctx, deliveryID).
		Return(&entity.Delivery{
			ID:             deliveryID,
			AnnouncementID: announcementID,
			Status:         entity.DeliveryStatusInTransit,
		}, nil)

	fx.trackingRepo.EXPECT().
		FindRecentEntriesByDelivery(ctx, deliveryID, 50).
		Return([]*entity.TrackingEntry{
			{ID: uuid.New(), DeliveryID: deliveryID, Message: "en route"},
		}, nil)

	fx.trackingRepo.EXPECT().
		FindRouteEntriesByDelivery(ctx, deliveryID).
		Return([]*entity.TrackingEntry{
			{ID: uuid.New(), DeliveryID: deliveryID, Latitude: floatPtr(48.8566), Longitude: floatPtr(2.3522)},
		}, nil)

	// Destination 15 km due north of the last route point. At the default
	// 30 km/h that is a 30 minute ride.
	fx.announcementRepo.EXPECT().
		FindAnnouncementByID(ctx, announcementID).
		Return(&entity.Announcement{
			ID:                announcementID,
			DeliveryLatitude:  48.8566 + 0.13490,
			DeliveryLongitude: 2.3522,
		}, nil)

	view, err := fx.service.GetTracking(ctx, deliveryID, usecase.TrackingModeLive)

	require.NoError(t, err)
	require.NotNil(t, view.EstimatedArrival)
	assert.WithinDuration(t, time.Now().Add(30*time.Minute), *view.EstimatedArrival, 2*time.Minute)
}

func TestTrackingService_GetTracking_TraveledDistance(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	deliveryID := uuid.New()

	fx.deliveryRepo.EXPECT().
		FindDeliveryByID(ctx, deliveryID).
		Return(&entity.Delivery{
			ID:     deliveryID,
			Status: entity.DeliveryStatusDelivered,
		}, nil)

	fx.trackingRepo.EXPECT().
		FindRecentEntriesByDelivery(ctx, deliveryID, 50).
		Return([]*entity.TrackingEntry{}, nil)

	// Two legs of roughly 1.11 km each going north.
	fx.trackingRepo.EXPECT().
		FindRouteEntriesByDelivery(ctx, deliveryID).
		Return([]*entity.TrackingEntry{
			{Latitude: floatPtr(48.85), Longitude: floatPtr(2.35)},
			{Latitude: floatPtr(48.86), Longitude: floatPtr(2.35)},
			{Latitude: floatPtr(48.87), Longitude: floatPtr(2.35)},
		}, nil)

	view, err := fx.service.GetTracking(ctx, deliveryID, usecase.TrackingModeLive)

	require.NoError(t, err)
	assert.InDelta(t, 2.22, view.TraveledKm, 0.05)
	assert.Nil(t, view.EstimatedArrival)
}

func TestTrackingService_GetTracking_DeliveryNotFound(t *testing.T) {
	fx := createTestTrackingService(t)

	ctx := context.Background()
	deliveryID := uuid.New()

	fx.deliveryRepo.EXPECT().
		FindDeliveryByID(ctx, deliveryID).
		Return(nil, errors.Wrap(repository.ErrDeliveryNotFound, "scan row"))

	view, err := fx.service.GetTracking(ctx, deliveryID, usecase.TrackingModeLive)

	assert.Nil(t, view)
	assert.True(t, errors.Is(err, domainerrors.ErrDeliveryNotFound))
}
