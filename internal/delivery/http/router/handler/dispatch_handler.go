package handler

import (
	"net/http"

	"ecodeli/internal/delivery/http/response"
	"ecodeli/internal/infra/dispatch"

	"github.com/labstack/echo/v4"
)

// DispatchHandler exposes the websocket endpoint backed by the dispatch hub.
type DispatchHandler struct {
	hub *dispatch.Hub
}

// NewDispatchHandler is the constructor for DispatchHandler, injected by Fx.
func NewDispatchHandler(hub *dispatch.Hub) *DispatchHandler {
	return &DispatchHandler{hub: hub}
}

// Connect upgrades the request to a websocket served by the hub.
func (h *DispatchHandler) Connect(c echo.Context) error {
	h.hub.HandleConnection(c.Response(), c.Request())

	return nil
}

// HealthCheck reports process liveness.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service healthy")
}
