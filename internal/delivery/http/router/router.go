// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ecodeli/internal/delivery/http/middleware"
	"ecodeli/internal/delivery/http/router/handler"
	"ecodeli/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	DeliveryHandler     *handler.DeliveryHandler
	TrackingHandler     *handler.TrackingHandler
	AnnouncementHandler *handler.AnnouncementHandler
	PaymentHandler      *handler.PaymentHandler
	DispatchHandler     *handler.DispatchHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	deliveryHandler     *handler.DeliveryHandler
	trackingHandler     *handler.TrackingHandler
	announcementHandler *handler.AnnouncementHandler
	paymentHandler      *handler.PaymentHandler
	dispatchHandler     *handler.DispatchHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		deliveryHandler:     params.DeliveryHandler,
		trackingHandler:     params.TrackingHandler,
		announcementHandler: params.AnnouncementHandler,
		paymentHandler:      params.PaymentHandler,
		dispatchHandler:     params.DispatchHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Live event stream; the hub performs its own token handshake
	e.GET("/ws", r.dispatchHandler.Connect)

	// Provider callbacks, authenticated by the provider's own channel
	e.POST("/payments/webhook", r.paymentHandler.HandleWebhook)

	// Announcement routes that require authentication
	announcementGroup := e.Group("/announcements")
	announcementGroup.Use(r.authMiddleware.Authenticate)
	{
		announcementGroup.GET("/nearby", r.announcementHandler.SearchNearby)
		announcementGroup.GET("/:id/cancellation-quote", r.announcementHandler.QuoteCancellation)
		announcementGroup.POST("/:id/cancel", r.announcementHandler.Cancel)
	}

	// Delivery lifecycle routes that require authentication
	deliveryGroup := e.Group("/deliveries")
	deliveryGroup.Use(r.authMiddleware.Authenticate)
	{
		// Delivery shells are created by back-office tooling, not end users
		deliveryGroup.POST("", r.deliveryHandler.CreateDelivery,
			r.authMiddleware.RequireRole(entity.RoleAdmin))

		deliveryGroup.GET("/:id", r.deliveryHandler.GetDelivery)
		deliveryGroup.POST("/:id/transition", r.deliveryHandler.Transition)
		deliveryGroup.GET("/:id/validation-qr", r.deliveryHandler.ValidationQR)

		deliveryGroup.GET("/:id/tracking", r.trackingHandler.GetTracking)
		deliveryGroup.POST("/:id/entries", r.trackingHandler.RecordEntry)
	}

	// Wallet payments by the authenticated user
	paymentGroup := e.Group("/payments")
	paymentGroup.Use(r.authMiddleware.Authenticate)
	{
		paymentGroup.POST("/wallet", r.paymentHandler.PayWithWallet)
	}
}
