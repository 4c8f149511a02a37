// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"courtside/internal/delivery/http/middleware"
	"courtside/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	AccountHandler    *handler.AccountHandler
	NavigationHandler *handler.NavigationHandler
	ChangeHandler     *handler.ChangeHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	accountHandler    *handler.AccountHandler
	navigationHandler *handler.NavigationHandler
	changeHandler     *handler.ChangeHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		accountHandler:    params.AccountHandler,
		navigationHandler: params.NavigationHandler,
		changeHandler:     params.ChangeHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/exchange", r.authHandler.ExchangeCode)
		authGroup.PUT("/password", r.authHandler.UpdatePassword, r.authMiddleware.Authenticate)
		authGroup.POST("/signout", r.authHandler.SignOut)
	}

	// Guard and change-signal routes used by the client shell
	e.GET("/navigation/decision", r.navigationHandler.Decision)
	e.GET("/changes/status", r.changeHandler.Status)

	// Account partition routes that require authentication
	accountGroup := e.Group("/accounts")
	accountGroup.Use(r.authMiddleware.Authenticate)
	{
		accountGroup.GET("/demo", r.accountHandler.ListDemonstration)
		accountGroup.GET("/real", r.accountHandler.ListReal)
		accountGroup.GET("/:email/classification", r.accountHandler.Classify)
		accountGroup.GET("/:email/onboarding-qr", r.accountHandler.OnboardingQR)
		accountGroup.POST("", r.accountHandler.Create)
		accountGroup.DELETE("/:email", r.accountHandler.Delete)
	}
}
