package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	mockusecase "ecodeli/internal/mocks/usecase"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type paymentHandlerFixtures struct {
	handler    *PaymentHandler
	paymentUC  *mockusecase.MockPaymentUsecase
	deliveryUC *mockusecase.MockDeliveryUsecase
}

func newPaymentTestHandler(t *testing.T) paymentHandlerFixtures {
	t.Helper()

	paymentUC := mockusecase.NewMockPaymentUsecase(t)
	deliveryUC := mockusecase.NewMockDeliveryUsecase(t)
	handler := NewPaymentHandler(PaymentHandlerParams{
		PaymentUC:  paymentUC,
		DeliveryUC: deliveryUC,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return paymentHandlerFixtures{
		handler:    handler,
		paymentUC:  paymentUC,
		deliveryUC: deliveryUC,
	}
}

func TestPaymentHandler_Webhook_NonDeliveryEntity(t *testing.T) {
	f := newPaymentTestHandler(t)

	payment := &entity.Payment{
		ID:         uuid.New(),
		Status:     entity.PaymentStatusCompleted,
		EntityType: entity.PaymentEntityAnnouncement,
		EntityID:   uuid.New(),
	}
	f.paymentUC.EXPECT().
		HandleWebhook(mock.Anything, &usecase.WebhookInput{
			ProviderReference: "pi_123",
			Outcome:           "succeeded",
		}).
		Return(payment, nil)

	c, rec := newTestContext(t, http.MethodPost, "/payments/webhook",
		`{"provider_reference":"pi_123","outcome":"succeeded"}`)

	require.NoError(t, f.handler.HandleWebhook(c))

	// No delivery transition for announcement payments.
	assert.Equal(t, http.StatusOK, rec.Code)
	f.deliveryUC.AssertNotCalled(t, "Transition")
}

func TestPaymentHandler_Webhook_SettledDeliveryCompletes(t *testing.T) {
	f := newPaymentTestHandler(t)

	deliveryID := uuid.New()
	payment := &entity.Payment{
		ID:         uuid.New(),
		Status:     entity.PaymentStatusCompleted,
		EntityType: entity.PaymentEntityDelivery,
		EntityID:   deliveryID,
	}
	f.paymentUC.EXPECT().
		HandleWebhook(mock.Anything, mock.Anything).
		Return(payment, nil)

	f.deliveryUC.EXPECT().
		Transition(mock.Anything, deliveryID,
			usecase.Actor{Roles: []string{entity.RoleSystem}},
			mock.MatchedBy(func(input *usecase.TransitionInput) bool {
				return input.Target == entity.DeliveryStatusCompleted
			})).
		Return(&usecase.DeliveryView{
			Delivery: &entity.Delivery{ID: deliveryID, Status: entity.DeliveryStatusCompleted},
			Progress: 100,
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/payments/webhook",
		`{"provider_reference":"pi_456","outcome":"succeeded"}`)

	require.NoError(t, f.handler.HandleWebhook(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentHandler_Webhook_TransitionFailureStillOK(t *testing.T) {
	f := newPaymentTestHandler(t)

	deliveryID := uuid.New()
	payment := &entity.Payment{
		ID:         uuid.New(),
		Status:     entity.PaymentStatusCompleted,
		EntityType: entity.PaymentEntityDelivery,
		EntityID:   deliveryID,
	}
	f.paymentUC.EXPECT().
		HandleWebhook(mock.Anything, mock.Anything).
		Return(payment, nil)

	// The delivery is still IN_TRANSIT; completion waits for the next edge.
	f.deliveryUC.EXPECT().
		Transition(mock.Anything, deliveryID, mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewInvalidTransition("IN_TRANSIT", "COMPLETED"))

	c, rec := newTestContext(t, http.MethodPost, "/payments/webhook",
		`{"provider_reference":"pi_789","outcome":"succeeded"}`)

	require.NoError(t, f.handler.HandleWebhook(c))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestPaymentHandler_Webhook_UnknownOutcomeRejected(t *testing.T) {
	f := newPaymentTestHandler(t)

	c, rec := newTestContext(t, http.MethodPost, "/payments/webhook",
		`{"provider_reference":"pi_123","outcome":"exploded"}`)

	require.NoError(t, f.handler.HandleWebhook(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}

func TestPaymentHandler_PayWithWallet_Success(t *testing.T) {
	f := newPaymentTestHandler(t)

	actorID := uuid.New()
	entityID := uuid.New()
	amount := decimal.NewFromFloat(42.50)

	f.paymentUC.EXPECT().
		PayWithWallet(mock.Anything, actorID, entity.PaymentEntityDelivery, entityID,
			mock.MatchedBy(func(got decimal.Decimal) bool {
				return got.Equal(amount)
			})).
		Return(&entity.Payment{
			ID:            uuid.New(),
			PayerID:       actorID,
			Amount:        amount,
			Status:        entity.PaymentStatusCompleted,
			EntityType:    entity.PaymentEntityDelivery,
			EntityID:      entityID,
			PaymentMethod: entity.PaymentMethodWallet,
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/payments/wallet",
		`{"entity_type":"DELIVERY","entity_id":"`+entityID.String()+`","amount":"42.50"}`)
	authenticate(c, actorID, entity.RoleClient)

	require.NoError(t, f.handler.PayWithWallet(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "COMPLETED")
}

func TestPaymentHandler_PayWithWallet_InsufficientFunds(t *testing.T) {
	f := newPaymentTestHandler(t)

	actorID := uuid.New()
	entityID := uuid.New()

	f.paymentUC.EXPECT().
		PayWithWallet(mock.Anything, actorID, entity.PaymentEntityDelivery, entityID, mock.Anything).
		Return(nil, domainerrors.ErrInsufficientFunds)

	c, rec := newTestContext(t, http.MethodPost, "/payments/wallet",
		`{"entity_type":"DELIVERY","entity_id":"`+entityID.String()+`","amount":"42.50"}`)
	authenticate(c, actorID, entity.RoleClient)

	require.NoError(t, f.handler.PayWithWallet(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "INSUFFICIENT_FUNDS")
}
