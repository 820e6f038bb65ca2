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

type announcementHandlerFixtures struct {
	handler        *AnnouncementHandler
	announcementUC *mockusecase.MockAnnouncementUsecase
	cancellationUC *mockusecase.MockCancellationUsecase
}

func newAnnouncementTestHandler(t *testing.T) announcementHandlerFixtures {
	t.Helper()

	announcementUC := mockusecase.NewMockAnnouncementUsecase(t)
	cancellationUC := mockusecase.NewMockCancellationUsecase(t)
	handler := NewAnnouncementHandler(announcementUC, cancellationUC,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	return announcementHandlerFixtures{
		handler:        handler,
		announcementUC: announcementUC,
		cancellationUC: cancellationUC,
	}
}

func TestAnnouncementHandler_SearchNearby_Success(t *testing.T) {
	f := newAnnouncementTestHandler(t)

	f.announcementUC.EXPECT().
		SearchNearby(mock.Anything, &usecase.NearbySearchInput{
			Latitude:  48.8566,
			Longitude: 2.3522,
			RadiusKm:  5,
			Sort:      usecase.NearbySortPrice,
		}).
		Return([]*usecase.NearbyAnnouncement{
			{
				Announcement: &entity.Announcement{
					ID:     uuid.New(),
					Title:  "Livraison de courses",
					Status: entity.AnnouncementStatusActive,
					Price:  decimal.NewFromInt(20),
				},
				DistanceKm: 1.2,
			},
		}, nil)

	c, rec := newTestContext(t, http.MethodGet,
		"/announcements/nearby?latitude=48.8566&longitude=2.3522&radius_km=5&sort=price", "")

	require.NoError(t, f.handler.SearchNearby(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Livraison de courses")
	assert.Contains(t, rec.Body.String(), `"distance_km":1.2`)
}

func TestAnnouncementHandler_SearchNearby_MissingCoordinates(t *testing.T) {
	f := newAnnouncementTestHandler(t)

	c, rec := newTestContext(t, http.MethodGet, "/announcements/nearby?longitude=2.3522", "")

	require.NoError(t, f.handler.SearchNearby(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_INPUT")
	f.announcementUC.AssertNotCalled(t, "SearchNearby")
}

func TestAnnouncementHandler_QuoteCancellation_Success(t *testing.T) {
	f := newAnnouncementTestHandler(t)

	announcementID := uuid.New()
	f.cancellationUC.EXPECT().
		QuoteCancellation(mock.Anything, announcementID).
		Return(&usecase.CancellationQuoteView{
			Cancellable:   true,
			WithinGrace:   false,
			VariableFee:   decimal.NewFromInt(3),
			ProcessingFee: decimal.NewFromFloat(2.50),
			TotalFees:     decimal.NewFromFloat(5.50),
			RefundAmount:  decimal.NewFromFloat(54.50),
			WillRefund:    true,
		}, nil)

	c, rec := newTestContext(t, http.MethodGet,
		"/announcements/"+announcementID.String()+"/cancellation-quote", "")
	c.SetParamNames("id")
	c.SetParamValues(announcementID.String())

	require.NoError(t, f.handler.QuoteCancellation(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"will_refund":true`)
}

func TestAnnouncementHandler_Cancel_Success(t *testing.T) {
	f := newAnnouncementTestHandler(t)

	announcementID := uuid.New()
	actorID := uuid.New()
	f.cancellationUC.EXPECT().
		CancelAnnouncement(mock.Anything, announcementID,
			usecase.Actor{ID: actorID, Roles: []string{entity.RoleClient}},
			"Plus besoin").
		Return(&usecase.CancellationQuoteView{
			Cancellable:  true,
			WithinGrace:  true,
			RefundAmount: decimal.NewFromInt(60),
			WillRefund:   true,
		}, nil)

	c, rec := newTestContext(t, http.MethodPost,
		"/announcements/"+announcementID.String()+"/cancel", `{"reason":"Plus besoin"}`)
	c.SetParamNames("id")
	c.SetParamValues(announcementID.String())
	authenticate(c, actorID, entity.RoleClient)

	require.NoError(t, f.handler.Cancel(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"within_grace":true`)
}

func TestAnnouncementHandler_Cancel_NotAllowed(t *testing.T) {
	f := newAnnouncementTestHandler(t)

	announcementID := uuid.New()
	actorID := uuid.New()
	f.cancellationUC.EXPECT().
		CancelAnnouncement(mock.Anything, announcementID, mock.Anything, "").
		Return(nil, domainerrors.NewCancellationNotAllowed("COMPLETED"))

	c, rec := newTestContext(t, http.MethodPost,
		"/announcements/"+announcementID.String()+"/cancel", `{}`)
	c.SetParamNames("id")
	c.SetParamValues(announcementID.String())
	authenticate(c, actorID, entity.RoleClient)

	require.NoError(t, f.handler.Cancel(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "CANCELLATION_NOT_ALLOWED")
}
