// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"toolstore/internal/delivery/http/middleware"
	"toolstore/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	CategoryHandler *handler.CategoryHandler
	ProductHandler  *handler.ProductHandler
	AdminHandler    *handler.AdminHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	categoryHandler *handler.CategoryHandler
	productHandler  *handler.ProductHandler
	adminHandler    *handler.AdminHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		categoryHandler: params.CategoryHandler,
		productHandler:  params.ProductHandler,
		adminHandler:    params.AdminHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// Reads on the catalog are public; writes require an admin, and the user
// administration routes require the owner.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	authGroup := api.Group("/auth")
	{
		authGroup.POST("/session", r.authHandler.CreateSession)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
		authGroup.POST("/logout", r.authHandler.Logout)
	}

	categoryGroup := api.Group("/categories")
	{
		categoryGroup.GET("", r.categoryHandler.List)
		categoryGroup.GET("/:id", r.categoryHandler.Get)
		categoryGroup.POST("", r.categoryHandler.Create, r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		categoryGroup.PUT("/:id", r.categoryHandler.Update, r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		categoryGroup.DELETE("/:id", r.categoryHandler.Delete, r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	}

	productGroup := api.Group("/products")
	{
		productGroup.GET("", r.productHandler.List)
		productGroup.GET("/:id", r.productHandler.Get)
		productGroup.POST("", r.productHandler.Create, r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		productGroup.PUT("/:id", r.productHandler.Update, r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
		productGroup.DELETE("/:id", r.productHandler.Delete, r.authMiddleware.Authenticate, r.authMiddleware.RequireAdmin)
	}

	adminGroup := api.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.GET("/users", r.adminHandler.ListUsers, r.authMiddleware.RequireAdmin)
		adminGroup.PUT("/users/:email", r.adminHandler.UpdateAdminStatus, r.authMiddleware.RequireOwner)
	}
}
