package impl

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"ecodeli/internal/domain/entity"
	"ecodeli/internal/domain/service"
	mockRepo "ecodeli/internal/mocks/repository"
	mockSvc "ecodeli/internal/mocks/service"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// outboxServiceFixtures holds all test dependencies for outbox service tests.
type outboxServiceFixtures struct {
	service    usecase.OutboxUsecase
	txManager  *mockRepo.MockTransactionManager
	dispatcher *mockSvc.MockEventDispatcher
	publisher  *mockSvc.MockEventPublisher
}

func createTestOutboxService(t *testing.T) outboxServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	dispatcher := mockSvc.NewMockEventDispatcher(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	service := NewOutboxService(txManager, dispatcher, publisher, newTestConfig(), newDiscardLogger())

	return outboxServiceFixtures{
		service:    service,
		txManager:  txManager,
		dispatcher: dispatcher,
		publisher:  publisher,
	}
}

func pendingEvent(kind, channel string, payload string) *entity.OutboxEvent {
	return &entity.OutboxEvent{
		ID:        uuid.New(),
		Kind:      kind,
		Channel:   channel,
		Payload:   json.RawMessage(payload),
		Status:    entity.OutboxStatusPending,
		CreatedAt: time.Now(),
	}
}

func TestOutboxService_Drain_DeliversClaimedBatch(t *testing.T) {
	fx := createTestOutboxService(t)

	ctx := context.Background()
	deliveryID := uuid.New()

	first := pendingEvent(entity.EventKindDeliveryUpdate, "delivery."+deliveryID.String(),
		`{"delivery_id":"`+deliveryID.String()+`","status":"ACCEPTED","progress":20}`)
	second := pendingEvent(entity.EventKindAnnouncementUpdate, "announcements",
		`{"announcement_id":"`+uuid.New().String()+`","status":"CANCELLED"}`)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOutboxRepo := mockRepo.NewMockOutboxRepository(t)
		factory.EXPECT().NewOutboxRepository().Return(mockOutboxRepo)

		mockOutboxRepo.EXPECT().
			ClaimPendingEvents(ctx, 100).
			Return([]*entity.OutboxEvent{first, second}, nil)

		mockOutboxRepo.EXPECT().MarkEventDelivered(ctx, first.ID).Return(nil)
		mockOutboxRepo.EXPECT().MarkEventDelivered(ctx, second.ID).Return(nil)
	})

	fx.dispatcher.EXPECT().Broadcast(first.Channel, first.Kind, first.Payload)
	fx.dispatcher.EXPECT().Broadcast(second.Channel, second.Kind, second.Payload)

	fx.publisher.EXPECT().
		PublishDeliveryEvent(ctx, mock.MatchedBy(func(event *service.DeliveryEvent) bool {
			return event.Kind == entity.EventKindDeliveryUpdate &&
				event.DeliveryID == deliveryID.String() &&
				event.Status == "ACCEPTED" &&
				event.Progress == 20
		})).
		Return(nil)
	fx.publisher.EXPECT().
		PublishDeliveryEvent(ctx, mock.MatchedBy(func(event *service.DeliveryEvent) bool {
			return event.Kind == entity.EventKindAnnouncementUpdate
		})).
		Return(nil)

	count, err := fx.service.Drain(ctx)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestOutboxService_Drain_ClaimAndMarkShareOneTransaction(t *testing.T) {
	fx := createTestOutboxService(t)

	ctx := context.Background()
	event := pendingEvent(entity.EventKindDeliveryUpdate, "delivery."+uuid.New().String(),
		`{"delivery_id":"`+uuid.New().String()+`","status":"PICKUP","progress":40}`)

	// The mark must land on the repository bound to the claiming transaction,
	// so the claimed row stays locked until the whole cycle commits.
	var claimRepo *mockRepo.MockOutboxRepository
	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		claimRepo = mockRepo.NewMockOutboxRepository(t)
		factory.EXPECT().NewOutboxRepository().Return(claimRepo)

		claimRepo.EXPECT().
			ClaimPendingEvents(ctx, 100).
			Return([]*entity.OutboxEvent{event}, nil)
		claimRepo.EXPECT().MarkEventDelivered(ctx, event.ID).Return(nil)
	})

	fx.dispatcher.EXPECT().Broadcast(event.Channel, event.Kind, event.Payload)
	fx.publisher.EXPECT().
		PublishDeliveryEvent(ctx, mock.AnythingOfType("*service.DeliveryEvent")).
		Return(nil)

	count, err := fx.service.Drain(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
	claimRepo.AssertCalled(t, "MarkEventDelivered", ctx, event.ID)
}

func TestOutboxService_Drain_PublisherFailureKeepsEventQueued(t *testing.T) {
	fx := createTestOutboxService(t)

	ctx := context.Background()
	event := pendingEvent(entity.EventKindDeliveryUpdate, "delivery."+uuid.New().String(),
		`{"delivery_id":"`+uuid.New().String()+`","status":"IN_TRANSIT"}`)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOutboxRepo := mockRepo.NewMockOutboxRepository(t)
		factory.EXPECT().NewOutboxRepository().Return(mockOutboxRepo)

		mockOutboxRepo.EXPECT().
			ClaimPendingEvents(ctx, 100).
			Return([]*entity.OutboxEvent{event}, nil)
		mockOutboxRepo.EXPECT().
			MarkEventFailed(ctx, event.ID, mock.AnythingOfType("string"), 5).
			Return(nil)
	})

	fx.dispatcher.EXPECT().Broadcast(event.Channel, event.Kind, event.Payload)

	fx.publisher.EXPECT().
		PublishDeliveryEvent(ctx, mock.AnythingOfType("*service.DeliveryEvent")).
		Return(errors.New("broker unavailable"))

	count, err := fx.service.Drain(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOutboxService_Drain_MalformedPayloadMarkedFailed(t *testing.T) {
	fx := createTestOutboxService(t)

	ctx := context.Background()
	event := pendingEvent(entity.EventKindSystemAlert, "delivery."+uuid.New().String(), `{not json`)

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOutboxRepo := mockRepo.NewMockOutboxRepository(t)
		factory.EXPECT().NewOutboxRepository().Return(mockOutboxRepo)

		mockOutboxRepo.EXPECT().
			ClaimPendingEvents(ctx, 100).
			Return([]*entity.OutboxEvent{event}, nil)
		mockOutboxRepo.EXPECT().
			MarkEventFailed(ctx, event.ID, mock.AnythingOfType("string"), 5).
			Return(nil)
	})

	fx.dispatcher.EXPECT().Broadcast(event.Channel, event.Kind, event.Payload)

	count, err := fx.service.Drain(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestOutboxService_Drain_EmptyBacklog(t *testing.T) {
	fx := createTestOutboxService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOutboxRepo := mockRepo.NewMockOutboxRepository(t)
		factory.EXPECT().NewOutboxRepository().Return(mockOutboxRepo)

		mockOutboxRepo.EXPECT().
			ClaimPendingEvents(ctx, 100).
			Return([]*entity.OutboxEvent{}, nil)
	})

	count, err := fx.service.Drain(ctx)

	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestOutboxService_Drain_ClaimFailure(t *testing.T) {
	fx := createTestOutboxService(t)

	ctx := context.Background()

	expectExecute(t, fx.txManager, ctx, func(factory *mockRepo.MockRepositoryFactory) {
		mockOutboxRepo := mockRepo.NewMockOutboxRepository(t)
		factory.EXPECT().NewOutboxRepository().Return(mockOutboxRepo)

		mockOutboxRepo.EXPECT().
			ClaimPendingEvents(ctx, 100).
			Return(nil, errors.New("database gone"))
	})

	count, err := fx.service.Drain(ctx)

	assert.Zero(t, count)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "claim pending events")
}
