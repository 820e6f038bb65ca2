// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"ecodeli/internal/delivery/http/middleware"
	"ecodeli/internal/delivery/http/response"
	"ecodeli/internal/domain/entity"
	domainerrors "ecodeli/internal/domain/errors"
	"ecodeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

// DeliveryHandlerParams holds dependencies for DeliveryHandler, injected by Fx.
type DeliveryHandlerParams struct {
	fx.In

	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// DeliveryHandler holds dependencies for delivery lifecycle handlers
type DeliveryHandler struct {
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewDeliveryHandler is the constructor for DeliveryHandler
func NewDeliveryHandler(params DeliveryHandlerParams) *DeliveryHandler {
	return &DeliveryHandler{
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// CreateDeliveryRequest represents the request body for creating a delivery
type CreateDeliveryRequest struct {
	AnnouncementID    string          `json:"announcement_id" validate:"required,uuid"`
	DelivererID       *string         `json:"deliverer_id,omitempty" validate:"omitempty,uuid"`
	Price             decimal.Decimal `json:"price" validate:"required"`
	EstimatedDuration int             `json:"estimated_duration" validate:"omitempty,min=0"`
}

// TransitionRequest represents the request body for a status transition
type TransitionRequest struct {
	Target         string   `json:"target" validate:"required"`
	ValidationCode string   `json:"validation_code,omitempty"`
	Message        string   `json:"message,omitempty"`
	Location       string   `json:"location,omitempty"`
	Latitude       *float64 `json:"latitude,omitempty" validate:"omitempty,min=-90,max=90"`
	Longitude      *float64 `json:"longitude,omitempty" validate:"omitempty,min=-180,max=180"`
}

// CreateDelivery handles creating a delivery shell for an announcement
func (h *DeliveryHandler) CreateDelivery(c echo.Context) error {
	var req CreateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid delivery input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	announcementID, err := uuid.Parse(req.AnnouncementID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid announcement ID")
	}

	input := &usecase.CreateDeliveryInput{
		AnnouncementID:    announcementID,
		Price:             req.Price,
		EstimatedDuration: req.EstimatedDuration,
	}
	if req.DelivererID != nil {
		delivererID, parseErr := uuid.Parse(*req.DelivererID)
		if parseErr != nil {
			return response.BadRequest(c, "INVALID_ID", "Invalid deliverer ID")
		}
		input.DelivererID = &delivererID
	}

	created, err := h.deliveryUC.CreateDelivery(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, created, "Delivery created successfully")
}

// GetDelivery handles retrieving a delivery with its progress
func (h *DeliveryHandler) GetDelivery(c echo.Context) error {
	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	view, err := h.deliveryUC.GetDelivery(c.Request().Context(), deliveryID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Delivery retrieved successfully")
}

// Transition handles moving a delivery along the status graph
func (h *DeliveryHandler) Transition(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	var req TransitionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transition input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.TransitionInput{
		Target:         entity.DeliveryStatus(req.Target),
		ValidationCode: req.ValidationCode,
		Message:        req.Message,
		Location:       req.Location,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
	}

	view, err := h.deliveryUC.Transition(c.Request().Context(), deliveryID, actor, input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, view, "Delivery status updated successfully")
}

// ValidationQR streams the delivery validation code as a PNG QR image
func (h *DeliveryHandler) ValidationQR(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	deliveryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid delivery ID")
	}

	png, err := h.deliveryUC.ValidationQR(c.Request().Context(), deliveryID, actor)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// handleAppError handles application errors
func (h *DeliveryHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
