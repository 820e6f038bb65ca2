package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"ecodeli/internal/delivery/http/middleware"
	"ecodeli/internal/delivery/http/response"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AnnouncementHandler holds dependencies for announcement search and
// cancellation handlers.
type AnnouncementHandler struct {
	announcementUC usecase.AnnouncementUsecase
	cancellationUC usecase.CancellationUsecase
	logger         *slog.Logger
}

// NewAnnouncementHandler is the constructor for AnnouncementHandler, injected by Fx.
func NewAnnouncementHandler(
	announcementUC usecase.AnnouncementUsecase,
	cancellationUC usecase.CancellationUsecase,
	logger *slog.Logger,
) *AnnouncementHandler {
	return &AnnouncementHandler{
		announcementUC: announcementUC,
		cancellationUC: cancellationUC,
		logger:         logger,
	}
}

// CancelRequest represents the request body for cancelling an announcement
type CancelRequest struct {
	Reason string `json:"reason,omitempty"`
}

// SearchNearby handles the nearby announcement search
func (h *AnnouncementHandler) SearchNearby(c echo.Context) error {
	latitude, err := strconv.ParseFloat(c.QueryParam("latitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid latitude")
	}

	longitude, err := strconv.ParseFloat(c.QueryParam("longitude"), 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid longitude")
	}

	input := &usecase.NearbySearchInput{
		Latitude:  latitude,
		Longitude: longitude,
		Sort:      c.QueryParam("sort"),
	}

	if raw := c.QueryParam("radius_km"); raw != "" {
		radius, parseErr := strconv.ParseFloat(raw, 64)
		if parseErr != nil {
			return response.BadRequest(c, "INVALID_INPUT", "Invalid radius")
		}
		input.RadiusKm = radius
	}

	results, err := h.announcementUC.SearchNearby(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, results, "Nearby announcements retrieved successfully")
}

// QuoteCancellation previews cancellation fees without mutating anything
func (h *AnnouncementHandler) QuoteCancellation(c echo.Context) error {
	announcementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid announcement ID")
	}

	quote, err := h.cancellationUC.QuoteCancellation(c.Request().Context(), announcementID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, quote, "Cancellation quote computed successfully")
}

// Cancel executes an announcement cancellation
func (h *AnnouncementHandler) Cancel(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	announcementID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid announcement ID")
	}

	var req CancelRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cancellation input")
	}

	outcome, err := h.cancellationUC.CancelAnnouncement(c.Request().Context(), announcementID, actor, req.Reason)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, outcome, "Announcement cancelled successfully")
}

// handleAppError handles application errors
func (h *AnnouncementHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
