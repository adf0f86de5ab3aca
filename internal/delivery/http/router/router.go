// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"drugweb/internal/delivery/http/middleware"
	"drugweb/internal/delivery/http/router/handler"
	"drugweb/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	CatalogHandler      *handler.CatalogHandler
	CartHandler         *handler.CartHandler
	CheckoutHandler     *handler.CheckoutHandler
	DeliveryHandler     *handler.DeliveryHandler
	RequestHandler      *handler.RequestHandler
	NotificationHandler *handler.NotificationHandler
	PointsHandler       *handler.PointsHandler
	ReviewHandler       *handler.ReviewHandler
	AuthMiddleware      *middleware.AuthMiddleware
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
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	// The catalog is browsable without an account.
	e.GET("/medicines", r.params.CatalogHandler.ListMedicines)
	e.GET("/medicines/:code", r.params.CatalogHandler.GetMedicine)

	// Routes shared by every authenticated role
	userGroup := e.Group("/user")
	userGroup.Use(auth.Authenticate)
	{
		userGroup.GET("/profile", r.params.UserHandler.GetProfile)
	}

	// Customer routes require authentication and the "customer" role
	customerGroup := e.Group("/customer")
	customerGroup.Use(auth.Authenticate)
	customerGroup.Use(auth.RequireRole(string(entity.RoleCustomer)))
	{
		customerGroup.GET("/cart", r.params.CartHandler.ViewCart)
		customerGroup.POST("/cart", r.params.CartHandler.AddToCart)
		customerGroup.PUT("/cart/:id", r.params.CartHandler.UpdateQuantity)
		customerGroup.DELETE("/cart/:id", r.params.CartHandler.RemoveLine)

		customerGroup.POST("/checkout", r.params.CheckoutHandler.Checkout)
		customerGroup.GET("/payments", r.params.DeliveryHandler.ListMyPayments)

		customerGroup.GET("/points", r.params.PointsHandler.View)

		customerGroup.GET("/notifications", r.params.NotificationHandler.ListAll)
		customerGroup.GET("/notifications/unread", r.params.NotificationHandler.ListUnread)

		customerGroup.POST("/requests", r.params.RequestHandler.Submit)
		customerGroup.GET("/requests", r.params.RequestHandler.ListMine)

		customerGroup.POST("/reviews", r.params.ReviewHandler.Submit)
	}

	// Admin routes require authentication and the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(auth.Authenticate)
	adminGroup.Use(auth.RequireRole(string(entity.RoleAdmin)))
	{
		adminGroup.GET("/payments", r.params.DeliveryHandler.ListAllPayments)
		adminGroup.POST("/payments/:id/assign", r.params.DeliveryHandler.Assign)
		adminGroup.GET("/staff", r.params.DeliveryHandler.ListStaff)

		adminGroup.GET("/requests", r.params.RequestHandler.ListAll)
		adminGroup.PUT("/requests/decide", r.params.RequestHandler.Decide)

		adminGroup.GET("/reviews", r.params.ReviewHandler.ListAll)
	}

	// Courier routes require authentication and the "delivery" role
	deliveryGroup := e.Group("/delivery")
	deliveryGroup.Use(auth.Authenticate)
	deliveryGroup.Use(auth.RequireRole(string(entity.RoleDelivery)))
	{
		deliveryGroup.GET("/assignments", r.params.DeliveryHandler.ListAssignments)
		deliveryGroup.POST("/assignments/:id/respond", r.params.DeliveryHandler.Respond)
	}
}
