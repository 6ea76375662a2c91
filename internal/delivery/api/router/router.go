// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cafe/internal/delivery/api/middleware"
	"cafe/internal/delivery/api/router/handler"
	"cafe/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	ProfileHandler *handler.ProfileHandler
	CafeHandler    *handler.CafeHandler
	ItemHandler    *handler.ItemHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	cafeHandler    *handler.CafeHandler
	itemHandler    *handler.ItemHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		profileHandler: params.ProfileHandler,
		cafeHandler:    params.CafeHandler,
		itemHandler:    params.ItemHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// User accounts
	r.registerAccountRoutes(api.Group("/auth"), entity.RoleUser)

	// Vendor accounts
	r.registerAccountRoutes(api.Group("/vendor"), entity.RoleVendor)

	cafeGroup := api.Group("/cafe")

	// Public menu; a vendor token narrows it to that vendor's items
	cafeGroup.GET("/item", r.itemHandler.ListItems, r.authMiddleware.OptionalAuthenticate)

	// Vendor-only cafe management
	vendorOnly := []echo.MiddlewareFunc{r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(entity.RoleVendor)}
	{
		cafeGroup.POST("/register", r.cafeHandler.RegisterCafe, vendorOnly...)
		cafeGroup.GET("/register", r.cafeHandler.ListCafes, vendorOnly...)
		cafeGroup.GET("/mycafes", r.cafeHandler.ListCafes, vendorOnly...)
		cafeGroup.GET("/:id/qr", r.cafeHandler.MenuQR, vendorOnly...)
		cafeGroup.POST("/item", r.itemHandler.AddItem, vendorOnly...)
	}
}

// registerAccountRoutes mounts signup, login and profile for one role namespace.
func (r *router) registerAccountRoutes(group *echo.Group, role entity.Role) {
	group.POST("/signup", r.authHandler.Signup(role))
	group.POST("/login", r.authHandler.Login(role))

	profile := group.Group("/profile", r.authMiddleware.Authenticate, r.authMiddleware.RequireRole(role))
	{
		profile.GET("", r.profileHandler.GetProfile)
		profile.PUT("", r.profileHandler.UpdateProfileImage)
	}
}
