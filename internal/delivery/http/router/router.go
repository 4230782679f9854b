// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"contactbook/internal/delivery/http/middleware"
	"contactbook/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler    *handler.UserHandler
	ContactHandler *handler.ContactHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler    *handler.UserHandler
	contactHandler *handler.ContactHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:    params.UserHandler,
		contactHandler: params.ContactHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.Home)
	e.GET("/health", handler.HealthCheck)

	// Account routes; registration and verification are public
	users := e.Group("/users")
	{
		users.POST("/register", r.userHandler.Register)
		users.POST("/login", r.userHandler.Login)
		users.GET("/verify/:verificationToken", r.userHandler.VerifyEmail)
		users.POST("/verify", r.userHandler.ResendVerification)

		users.POST("/logout", r.userHandler.Logout, r.authMiddleware.Authenticate)
		users.GET("/current", r.userHandler.Current, r.authMiddleware.Authenticate)
		users.GET("/protected", r.userHandler.Protected, r.authMiddleware.Authenticate)
		users.PATCH("", r.userHandler.UpdateSubscription, r.authMiddleware.Authenticate)
		users.PATCH("/avatars", r.userHandler.UpdateAvatar, r.authMiddleware.Authenticate)
	}

	// Contact routes, all scoped to the authenticated owner
	// Authenticate is attached per route so unknown paths under the group still 404.
	contacts := e.Group("/api/contacts")
	{
		contacts.GET("", r.contactHandler.List, r.authMiddleware.Authenticate)
		contacts.POST("", r.contactHandler.Create, r.authMiddleware.Authenticate)
		contacts.GET("/:contactId", r.contactHandler.Get, r.authMiddleware.Authenticate)
		contacts.PUT("/:contactId", r.contactHandler.Update, r.authMiddleware.Authenticate)
		contacts.DELETE("/:contactId", r.contactHandler.Remove, r.authMiddleware.Authenticate)
		contacts.PATCH("/:contactId/favorite", r.contactHandler.UpdateFavorite, r.authMiddleware.Authenticate)
	}
}
