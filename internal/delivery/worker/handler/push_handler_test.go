package handler

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecodeli/config"
	"ecodeli/internal/domain/entity"
	"ecodeli/internal/domain/service"
	mockservice "ecodeli/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newPushTestHandler(t *testing.T) (*PushHandler, *mockservice.MockNotificationService) {
	t.Helper()

	notificationSvc := mockservice.NewMockNotificationService(t)
	handler := NewPushHandler(PushHandlerParams{
		Config:          &config.Config{},
		Logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationSvc: notificationSvc,
	})

	return handler, notificationSvc
}

func newPushContext(t *testing.T, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func encodePushMessage(t *testing.T, event *service.DeliveryEvent) string {
	t.Helper()

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	envelope := map[string]any{
		"message": map[string]any{
			"data":      base64.StdEncoding.EncodeToString(payload),
			"messageId": "msg-1",
		},
		"subscription": "projects/test/subscriptions/delivery-events",
	}
	body, err := json.Marshal(envelope)
	require.NoError(t, err)

	return string(body)
}

func TestHandlePush_SendsBatch(t *testing.T) {
	handler, notificationSvc := newPushTestHandler(t)

	deliveryID := uuid.NewString()
	recipients := []string{uuid.NewString(), uuid.NewString()}

	notificationSvc.EXPECT().
		SendBatch(mock.Anything, recipients,
			"Mise à jour de votre livraison", "Votre colis est en route",
			mock.MatchedBy(func(data map[string]string) bool {
				return data["kind"] == entity.EventKindDeliveryUpdate &&
					data["delivery_id"] == deliveryID &&
					data["status"] == "IN_TRANSIT" &&
					data["progress"] == "70"
			})).
		Return(2, 0, nil)

	body := encodePushMessage(t, &service.DeliveryEvent{
		Kind:         entity.EventKindDeliveryUpdate,
		DeliveryID:   deliveryID,
		Status:       "IN_TRANSIT",
		Progress:     70,
		Message:      "Votre colis est en route",
		RecipientIDs: recipients,
	})
	c, rec := newPushContext(t, body)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_StatusFallbackBody(t *testing.T) {
	handler, notificationSvc := newPushTestHandler(t)

	recipients := []string{uuid.NewString()}

	notificationSvc.EXPECT().
		SendBatch(mock.Anything, recipients,
			"Mise à jour de votre livraison", "Statut de la livraison : DELIVERED",
			mock.Anything).
		Return(1, 0, nil)

	body := encodePushMessage(t, &service.DeliveryEvent{
		Kind:         entity.EventKindDeliveryUpdate,
		DeliveryID:   uuid.NewString(),
		Status:       "DELIVERED",
		Progress:     90,
		RecipientIDs: recipients,
	})
	c, rec := newPushContext(t, body)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandlePush_NoRecipients(t *testing.T) {
	handler, notificationSvc := newPushTestHandler(t)

	body := encodePushMessage(t, &service.DeliveryEvent{
		Kind:       entity.EventKindSystemAlert,
		DeliveryID: uuid.NewString(),
		Message:    "Le livreur approche",
	})
	c, rec := newPushContext(t, body)

	require.NoError(t, handler.HandlePush(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	notificationSvc.AssertNotCalled(t, "SendBatch")
}

func TestHandlePush_SendFailureTriggersRetry(t *testing.T) {
	handler, notificationSvc := newPushTestHandler(t)

	recipients := []string{uuid.NewString()}
	notificationSvc.EXPECT().
		SendBatch(mock.Anything, recipients, mock.Anything, mock.Anything, mock.Anything).
		Return(0, 0, errors.New("fcm unavailable"))

	body := encodePushMessage(t, &service.DeliveryEvent{
		Kind:         entity.EventKindDeliveryUpdate,
		DeliveryID:   uuid.NewString(),
		Message:      "Votre colis est en route",
		RecipientIDs: recipients,
	})
	c, rec := newPushContext(t, body)

	require.NoError(t, handler.HandlePush(c))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_InvalidBase64Rejected(t *testing.T) {
	handler, notificationSvc := newPushTestHandler(t)

	c, rec := newPushContext(t,
		`{"message":{"data":"not-base64!!","messageId":"msg-1"},"subscription":"s"}`)

	require.NoError(t, handler.HandlePush(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	notificationSvc.AssertNotCalled(t, "SendBatch")
}
