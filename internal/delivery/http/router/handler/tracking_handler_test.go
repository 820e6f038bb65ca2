package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"
	"time"

	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	mockusecase "ecodeli/internal/mocks/usecase"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTrackingTestHandler(t *testing.T) (*TrackingHandler, *mockusecase.MockTrackingUsecase) {
	t.Helper()

	trackingUC := mockusecase.NewMockTrackingUsecase(t)
	handler := NewTrackingHandler(trackingUC, slog.New(slog.NewTextHandler(io.Discard, nil)))

	return handler, trackingUC
}

func TestTrackingHandler_RecordEntry_Success(t *testing.T) {
	handler, trackingUC := newTrackingTestHandler(t)

	deliveryID := uuid.New()
	actorID := uuid.New()
	lat, lng := 48.8566, 2.3522

	trackingUC.EXPECT().
		RecordEntry(mock.Anything, deliveryID,
			usecase.Actor{ID: actorID, Roles: []string{entity.RoleDeliverer}},
			&usecase.RecordEntryInput{
				Message:   "Colis en route",
				Location:  "Paris",
				Latitude:  &lat,
				Longitude: &lng,
			}).
		Return(&entity.TrackingEntry{
			ID:         uuid.New(),
			DeliveryID: deliveryID,
			Status:     entity.DeliveryStatusInTransit,
			Message:    "Colis en route",
			Latitude:   &lat,
			Longitude:  &lng,
			CreatedAt:  time.Now(),
		}, nil)

	c, rec := newTestContext(t, http.MethodPost, "/deliveries/"+deliveryID.String()+"/entries",
		`{"message":"Colis en route","location":"Paris","latitude":48.8566,"longitude":2.3522}`)
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, actorID, entity.RoleDeliverer)

	require.NoError(t, handler.RecordEntry(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "Colis en route")
}

func TestTrackingHandler_RecordEntry_MissingMessage(t *testing.T) {
	handler, trackingUC := newTrackingTestHandler(t)

	deliveryID := uuid.New()

	c, rec := newTestContext(t, http.MethodPost, "/deliveries/"+deliveryID.String()+"/entries",
		`{"location":"Paris"}`)
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, uuid.New(), entity.RoleDeliverer)

	require.NoError(t, handler.RecordEntry(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	trackingUC.AssertNotCalled(t, "RecordEntry")
}

func TestTrackingHandler_RecordEntry_Unauthenticated(t *testing.T) {
	handler, trackingUC := newTrackingTestHandler(t)

	c, rec := newTestContext(t, http.MethodPost, "/deliveries/"+uuid.NewString()+"/entries",
		`{"message":"Colis en route"}`)

	require.NoError(t, handler.RecordEntry(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	trackingUC.AssertNotCalled(t, "RecordEntry")
}

func TestTrackingHandler_GetTracking_DefaultsToLive(t *testing.T) {
	handler, trackingUC := newTrackingTestHandler(t)

	deliveryID := uuid.New()
	trackingUC.EXPECT().
		GetTracking(mock.Anything, deliveryID, usecase.TrackingModeLive).
		Return(&usecase.TrackingView{
			Delivery:   &entity.Delivery{ID: deliveryID, Status: entity.DeliveryStatusInTransit},
			Progress:   70,
			TraveledKm: 12.4,
		}, nil)

	c, rec := newTestContext(t, http.MethodGet, "/deliveries/"+deliveryID.String()+"/tracking", "")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())

	require.NoError(t, handler.GetTracking(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"traveled_km":12.4`)
}

func TestTrackingHandler_GetTracking_SummaryMode(t *testing.T) {
	handler, trackingUC := newTrackingTestHandler(t)

	deliveryID := uuid.New()
	trackingUC.EXPECT().
		GetTracking(mock.Anything, deliveryID, usecase.TrackingModeSummary).
		Return(&usecase.TrackingView{
			Delivery: &entity.Delivery{ID: deliveryID, Status: entity.DeliveryStatusDelivered},
			Progress: 90,
		}, nil)

	c, rec := newTestContext(t, http.MethodGet,
		"/deliveries/"+deliveryID.String()+"/tracking?mode=summary", "")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())

	require.NoError(t, handler.GetTracking(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"progress":90`)
}

func TestTrackingHandler_GetTracking_NotFound(t *testing.T) {
	handler, trackingUC := newTrackingTestHandler(t)

	deliveryID := uuid.New()
	trackingUC.EXPECT().
		GetTracking(mock.Anything, deliveryID, usecase.TrackingModeLive).
		Return(nil, domainerrors.ErrDeliveryNotFound)

	c, rec := newTestContext(t, http.MethodGet, "/deliveries/"+deliveryID.String()+"/tracking", "")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())

	require.NoError(t, handler.GetTracking(c))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "DELIVERY_NOT_FOUND")
}
