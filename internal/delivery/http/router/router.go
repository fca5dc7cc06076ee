// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"smartcity/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler   *handler.AuthHandler
	RecordHandler *handler.RecordHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler   *handler.AuthHandler
	recordHandler *handler.RecordHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:   params.AuthHandler,
		recordHandler: params.RecordHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Account identity routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Generic record store routes
	recordGroup := api.Group("/records/:kind")
	{
		recordGroup.GET("", r.recordHandler.List)
		recordGroup.POST("", r.recordHandler.Create)
		recordGroup.GET("/:id", r.recordHandler.Get)
		recordGroup.PUT("/:id", r.recordHandler.Update)
		recordGroup.DELETE("/:id", r.recordHandler.Delete)
	}
}
