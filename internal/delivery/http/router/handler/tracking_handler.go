package handler

import (
	"log/slog"
	"net/http"
	"time"

	"ecodeli/internal/delivery/http/middleware"
	"ecodeli/internal/delivery/http/response"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// TrackingHandler holds dependencies for tracking-related handlers.
type TrackingHandler struct {
	trackingUC usecase.TrackingUsecase
	logger     *slog.Logger
}

// NewTrackingHandler is the constructor for TrackingHandler, injected by Fx.
func NewTrackingHandler(trackingUC usecase.TrackingUsecase, logger *slog.Logger) *TrackingHandler {
	return &TrackingHandler{
		trackingUC: trackingUC,
		logger:     logger,
	}
}

// RecordEntryRequest represents the request body for recording a tracking observation
type RecordEntryRequest struct {
	Message          string     `json:"message" validate:"required"`
	Location         string     `json:"location,omitempty"`
	Latitude         *float64   `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude        *float64   `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
	EstimatedArrival *time.Time `json:"estimated_arrival,omitempty"`
}

// RecordEntry handles appending a position observation for a delivery
func (h *TrackingHandler) RecordEntry(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	var req RecordEntryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid tracking input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RecordEntryInput{
		Message:          req.Message,
		Location:         req.Location,
		Latitude:         req.Latitude,
		Longitude:        req.Longitude,
		EstimatedArrival: req.EstimatedArrival,
	}

	entry, err := h.trackingUC.RecordEntry(c.Request().Context(), deliveryID, actor, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, entry, "Tracking entry recorded successfully")
}

// GetTracking handles building the tracking view for a delivery
func (h *TrackingHandler) GetTracking(c echo.Context) error {
	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	mode := usecase.TrackingModeLive
	if c.QueryParam("mode") == string(usecase.TrackingModeSummary) {
		mode = usecase.TrackingModeSummary
	}

	view, err := h.trackingUC.GetTracking(c.Request().Context(), deliveryID, mode)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Tracking retrieved successfully")
}

// handleAppError handles application errors
func (h *TrackingHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
