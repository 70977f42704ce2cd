// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"rencontre/internal/delivery/http/middleware"
	"rencontre/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler     *handler.UserHandler
	ProfileHandler  *handler.ProfileHandler
	PhotoHandler    *handler.PhotoHandler
	DiscoverHandler *handler.DiscoverHandler
	LikeHandler     *handler.LikeHandler
	MatchHandler    *handler.MatchHandler
	ChatHandler     *handler.ChatHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Public auth routes
	api.POST("/register", r.params.UserHandler.Register)
	api.POST("/login", r.params.UserHandler.Login)

	// Everything below requires a valid access token.
	authed := api.Group("")
	authed.Use(r.params.AuthMiddleware.Authenticate)
	{
		authed.GET("/me", r.params.UserHandler.Me)

		authed.GET("/profile/me", r.params.ProfileHandler.Me)
		authed.PATCH("/profile", r.params.ProfileHandler.Update)
		authed.PATCH("/profile/location", r.params.ProfileHandler.UpdateLocation)

		authed.POST("/profile/photos", r.params.PhotoHandler.Upload)
		// reorder is registered before :id so it is not swallowed by the param route
		authed.PATCH("/profile/photos/reorder", r.params.PhotoHandler.Reorder)
		authed.DELETE("/profile/photos/:id", r.params.PhotoHandler.Delete)
		authed.PATCH("/profile/photos/:id/primary", r.params.PhotoHandler.SetPrimary)

		authed.GET("/discover", r.params.DiscoverHandler.Discover)
		authed.POST("/like/:id", r.params.LikeHandler.Like)
		authed.GET("/matches", r.params.MatchHandler.List)

		authed.GET("/chat/:id", r.params.ChatHandler.History)
		authed.POST("/chat/:id", r.params.ChatHandler.Send)
		authed.PATCH("/chat/:id/seen", r.params.ChatHandler.MarkSeen)
	}
}
