package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ecodeli/internal/delivery/http/validator"
	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	mockusecase "ecodeli/internal/mocks/usecase"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T, method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func authenticate(c echo.Context, userID uuid.UUID, roles ...string) {
	c.Set("userID", userID)
	c.Set("roles", roles)
}

func newDeliveryTestHandler(t *testing.T) (*DeliveryHandler, *mockusecase.MockDeliveryUsecase) {
	t.Helper()

	deliveryUC := mockusecase.NewMockDeliveryUsecase(t)
	handler := NewDeliveryHandler(DeliveryHandlerParams{
		DeliveryUC: deliveryUC,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return handler, deliveryUC
}

func TestDeliveryHandler_GetDelivery_Success(t *testing.T) {
	handler, deliveryUC := newDeliveryTestHandler(t)

	deliveryID := uuid.New()
	view := &usecase.DeliveryView{
		Delivery: &entity.Delivery{ID: deliveryID, Status: entity.DeliveryStatusInTransit},
		Progress: 70,
	}
	deliveryUC.EXPECT().
		GetDelivery(mock.Anything, deliveryID).
		Return(view, nil)

	c, rec := newTestContext(t, http.MethodGet, "/deliveries/"+deliveryID.String(), "")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())

	require.NoError(t, handler.GetDelivery(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "IN_TRANSIT")
	assert.Contains(t, rec.Body.String(), `"progress":70`)
}

func TestDeliveryHandler_GetDelivery_InvalidID(t *testing.T) {
	handler, _ := newDeliveryTestHandler(t)

	c, rec := newTestContext(t, http.MethodGet, "/deliveries/not-a-uuid", "")
	c.SetParamNames("id")
	c.SetParamValues("not-a-uuid")

	require.NoError(t, handler.GetDelivery(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_ID")
}

func TestDeliveryHandler_Transition_Success(t *testing.T) {
	handler, deliveryUC := newDeliveryTestHandler(t)

	deliveryID := uuid.New()
	actorID := uuid.New()
	view := &usecase.DeliveryView{
		Delivery: &entity.Delivery{ID: deliveryID, Status: entity.DeliveryStatusPickup},
		Progress: 40,
	}

	deliveryUC.EXPECT().
		Transition(mock.Anything, deliveryID,
			usecase.Actor{ID: actorID, Roles: []string{entity.RoleDeliverer}},
			mock.MatchedBy(func(input *usecase.TransitionInput) bool {
				return input.Target == entity.DeliveryStatusPickup && input.Message == "Colis récupéré"
			})).
		Return(view, nil)

	c, rec := newTestContext(t, http.MethodPost, "/deliveries/"+deliveryID.String()+"/transition",
		`{"target":"PICKUP","message":"Colis récupéré"}`)
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, actorID, entity.RoleDeliverer)

	require.NoError(t, handler.Transition(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "PICKUP")
}

func TestDeliveryHandler_Transition_AppErrorMapped(t *testing.T) {
	handler, deliveryUC := newDeliveryTestHandler(t)

	deliveryID := uuid.New()
	actorID := uuid.New()

	deliveryUC.EXPECT().
		Transition(mock.Anything, deliveryID, mock.Anything, mock.Anything).
		Return(nil, domainerrors.NewInvalidTransition("PENDING", "DELIVERED"))

	c, rec := newTestContext(t, http.MethodPost, "/deliveries/"+deliveryID.String()+"/transition",
		`{"target":"DELIVERED"}`)
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, actorID, entity.RoleDeliverer)

	require.NoError(t, handler.Transition(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TRANSITION")
}

func TestDeliveryHandler_Transition_Unauthenticated(t *testing.T) {
	handler, _ := newDeliveryTestHandler(t)

	deliveryID := uuid.New()
	c, rec := newTestContext(t, http.MethodPost, "/deliveries/"+deliveryID.String()+"/transition",
		`{"target":"PICKUP"}`)
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())

	require.NoError(t, handler.Transition(c))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestDeliveryHandler_ValidationQR_ReturnsPNG(t *testing.T) {
	handler, deliveryUC := newDeliveryTestHandler(t)

	deliveryID := uuid.New()
	actorID := uuid.New()
	png := []byte{0x89, 'P', 'N', 'G'}

	deliveryUC.EXPECT().
		ValidationQR(mock.Anything, deliveryID,
			usecase.Actor{ID: actorID, Roles: []string{entity.RoleClient}}).
		Return(png, nil)

	c, rec := newTestContext(t, http.MethodGet, "/deliveries/"+deliveryID.String()+"/validation-qr", "")
	c.SetParamNames("id")
	c.SetParamValues(deliveryID.String())
	authenticate(c, actorID, entity.RoleClient)

	require.NoError(t, handler.ValidationQR(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestDeliveryHandler_CreateDelivery_ValidationFailure(t *testing.T) {
	handler, _ := newDeliveryTestHandler(t)

	c, rec := newTestContext(t, http.MethodPost, "/deliveries", `{"estimated_duration":30}`)

	require.NoError(t, handler.CreateDelivery(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}
