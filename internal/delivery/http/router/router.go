// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"reliefmap/internal/delivery/http/middleware"
	"reliefmap/internal/delivery/http/router/handler"
	"reliefmap/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	PointHandler    *handler.PointHandler
	AdminHandler    *handler.AdminHandler
	AuthHandler     *handler.AuthHandler
	ProvinceHandler *handler.ProvinceHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	pointHandler    *handler.PointHandler
	adminHandler    *handler.AdminHandler
	authHandler     *handler.AuthHandler
	provinceHandler *handler.ProvinceHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		pointHandler:    params.PointHandler,
		adminHandler:    params.AdminHandler,
		authHandler:     params.AuthHandler,
		provinceHandler: params.ProvinceHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public read and submission routes, no authentication
	e.GET("/points", r.pointHandler.ListVisible)
	e.POST("/points/submissions", r.pointHandler.SubmitPoint)
	e.GET("/provinces", r.provinceHandler.Search)
	e.GET("/provinces/stats", r.provinceHandler.Stats)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Administrative routes require authentication; role checks against
	// storage happen inside the use cases.
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	{
		adminGroup.GET("/points", r.pointHandler.ListAll)
		adminGroup.POST("/points", r.pointHandler.CreatePoint)
		adminGroup.PATCH("/points/:id", r.pointHandler.UpdatePoint)
		adminGroup.DELETE("/points/:id", r.pointHandler.DeletePoint)

		adminGroup.PATCH("/points/:id/verify", r.adminHandler.SetVerified)
		adminGroup.PATCH("/points/:id/status", r.adminHandler.SetStatus)
		adminGroup.POST("/points/:id/status/toggle", r.adminHandler.ToggleStatus)

		adminGroup.POST("/accounts", r.adminHandler.RegisterAdmin)
	}

	// Audit log view is read-only, gated on the token role up front.
	auditGroup := e.Group("/admin/audit-logs")
	auditGroup.Use(r.authMiddleware.Authenticate)
	auditGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin.String()))
	{
		auditGroup.GET("", r.adminHandler.ListAuditLogs)
	}
}
