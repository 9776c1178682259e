// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"relay/internal/delivery/api/router/handler"
	"relay/internal/infra/metrics"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RelayHandler *handler.RelayHandler
	Metrics      *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	relayHandler *handler.RelayHandler
	metrics      *metrics.Metrics
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		relayHandler: params.RelayHandler,
		metrics:      params.Metrics,
	}
}

// RegisterRoutes sets up the relay routes. Paths are kept at the root so that existing
// mobile clients keep working unchanged.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.relayHandler.Health)
	e.GET("/metrics", echoprometheus.NewHandlerWithConfig(echoprometheus.HandlerConfig{
		Gatherer: r.metrics.Registry,
	}))

	e.GET("/test", r.relayHandler.Status)
	e.POST("/register-token", r.relayHandler.RegisterToken)
	e.POST("/send-notification", r.relayHandler.SendNotification)
	e.POST("/broadcast", r.relayHandler.Broadcast)
}
