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

// PaymentHandlerParams holds dependencies for PaymentHandler, injected by Fx.
type PaymentHandlerParams struct {
	fx.In

	PaymentUC  usecase.PaymentUsecase
	DeliveryUC usecase.DeliveryUsecase
	Logger     *slog.Logger
}

// PaymentHandler holds dependencies for payment coordination handlers
type PaymentHandler struct {
	paymentUC  usecase.PaymentUsecase
	deliveryUC usecase.DeliveryUsecase
	logger     *slog.Logger
}

// NewPaymentHandler is the constructor for PaymentHandler
func NewPaymentHandler(params PaymentHandlerParams) *PaymentHandler {
	return &PaymentHandler{
		paymentUC:  params.PaymentUC,
		deliveryUC: params.DeliveryUC,
		logger:     params.Logger,
	}
}

// WebhookRequest represents a provider webhook confirmation
type WebhookRequest struct {
	ProviderReference string `json:"provider_reference" validate:"required"`
	Outcome           string `json:"outcome" validate:"required,oneof=succeeded failed refunded disputed"`
}

// WalletPaymentRequest represents the request body for a wallet payment
type WalletPaymentRequest struct {
	EntityType string          `json:"entity_type" validate:"required,oneof=DELIVERY ANNOUNCEMENT SERVICE SUBSCRIPTION"`
	EntityID   string          `json:"entity_id" validate:"required,uuid"`
	Amount     decimal.Decimal `json:"amount" validate:"required"`
}

// HandleWebhook maps a provider confirmation onto the matching payment.
// When a delivery payment settles, the delivery is nudged towards COMPLETED
// with the internal system actor; a delivery not yet at DELIVERED simply
// stays where it is until the next transition attempt.
func (h *PaymentHandler) HandleWebhook(c echo.Context) error {
	var req WebhookRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid webhook payload")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	payment, err := h.paymentUC.HandleWebhook(c.Request().Context(), &usecase.WebhookInput{
		ProviderReference: req.ProviderReference,
		Outcome:           req.Outcome,
	})
	if err != nil {
		return h.handleAppError(c, err)
	}

	if payment.Status == entity.PaymentStatusCompleted && payment.EntityType == entity.PaymentEntityDelivery {
		h.completeDelivery(c, payment.EntityID)
	}

	return response.Success(c, http.StatusOK, payment, "Webhook processed successfully")
}

// completeDelivery drives the DELIVERED to COMPLETED edge once a delivery
// payment has settled. Failures are logged, never surfaced to the provider.
func (h *PaymentHandler) completeDelivery(c echo.Context, deliveryID uuid.UUID) {
	systemActor := usecase.Actor{Roles: []string{entity.RoleSystem}}
	input := &usecase.TransitionInput{
		Target:  entity.DeliveryStatusCompleted,
		Message: "Paiement confirmé, livraison terminée",
	}

	if _, err := h.deliveryUC.Transition(c.Request().Context(), deliveryID, systemActor, input); err != nil {
		h.logger.Info("Delivery not completed after settlement",
			slog.String("delivery_id", deliveryID.String()),
			slog.Any("error", err),
		)
	}
}

// PayWithWallet debits the caller's wallet and records a completed payment
func (h *PaymentHandler) PayWithWallet(c echo.Context) error {
	actor, ok := middleware.Actor(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req WalletPaymentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wallet payment input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	entityID, err := uuid.Parse(req.EntityID)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid entity ID")
	}

	payment, err := h.paymentUC.PayWithWallet(
		c.Request().Context(),
		actor.ID,
		entity.PaymentEntityType(req.EntityType),
		entityID,
		req.Amount,
	)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, payment, "Wallet payment completed successfully")
}

// handleAppError handles application errors
func (h *PaymentHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
