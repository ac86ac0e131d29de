// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"huddle/internal/delivery/http/middleware"
	"huddle/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	GroupHandler    *handler.GroupHandler
	PresenceHandler *handler.PresenceHandler
	EventHandler    *handler.EventHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	groupHandler    *handler.GroupHandler
	presenceHandler *handler.PresenceHandler
	eventHandler    *handler.EventHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		groupHandler:    params.GroupHandler,
		presenceHandler: params.PresenceHandler,
		eventHandler:    params.EventHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// All group routes require authentication
	api := e.Group("/api")
	api.Use(r.authMiddleware.Authenticate)
	{
		api.POST("/groups", r.groupHandler.CreateGroup)
		api.POST("/groups/:groupID/join", r.groupHandler.JoinGroup)
		api.GET("/groups/:groupID", r.groupHandler.GetGroup)
		api.GET("/groups/:groupID/members", r.groupHandler.ListMembers)
		api.GET("/groups/:groupID/qr", r.groupHandler.GroupInviteQR)

		api.POST("/groups/:groupID/location", r.presenceHandler.ReportLocation)
		api.PUT("/groups/:groupID/status", r.presenceHandler.SetStatus)
		api.GET("/groups/:groupID/snapshot", r.presenceHandler.GroupSnapshot)

		api.GET("/groups/:groupID/events", r.eventHandler.Subscribe)
		api.POST("/groups/:groupID/events", r.eventHandler.Publish)
		api.GET("/groups/:groupID/events/feed", r.eventHandler.Feed)
		api.DELETE("/groups/:groupID/events/feed/:entryID", r.eventHandler.DismissFeedEntry)
	}
}
