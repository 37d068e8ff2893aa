// Package router contains routing setup for the HTTP delivery.
package router

import (
	"eats/internal/delivery/http/middleware"
	"eats/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	RestaurantHandler *handler.RestaurantHandler
	FavoriteHandler   *handler.FavoriteHandler
	OwnerHandler      *handler.OwnerHandler
	ModerationHandler *handler.ModerationHandler
	AuthMiddleware    *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	restaurantHandler *handler.RestaurantHandler
	favoriteHandler   *handler.FavoriteHandler
	ownerHandler      *handler.OwnerHandler
	moderationHandler *handler.ModerationHandler
	authMiddleware    *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		restaurantHandler: params.RestaurantHandler,
		favoriteHandler:   params.FavoriteHandler,
		ownerHandler:      params.OwnerHandler,
		moderationHandler: params.ModerationHandler,
		authMiddleware:    params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/meta", r.restaurantHandler.GetMeta)

	restaurantGroup := e.Group("/restaurants")
	{
		restaurantGroup.GET("", r.restaurantHandler.Search)
		restaurantGroup.GET("/:id", r.restaurantHandler.GetRestaurant)
		restaurantGroup.POST("/:id/events", r.restaurantHandler.RecordEvent)
		restaurantGroup.POST("/:id/reports", r.restaurantHandler.SubmitReport)
	}

	favoriteGroup := e.Group("/favorites")
	{
		favoriteGroup.GET("", r.favoriteHandler.ListFavorites)
		favoriteGroup.GET("/restaurants", r.favoriteHandler.ListFavoriteRestaurants)
		favoriteGroup.POST("/:id/toggle", r.favoriteHandler.ToggleFavorite)
	}

	// Owner routes: a valid token first, then a claim on the restaurant in the path
	adminGroup := e.Group("/admin/restaurants/:id")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRestaurantAccess)
	{
		adminGroup.PUT("/profile", r.ownerHandler.UpdateProfile)
		adminGroup.PUT("/menu", r.ownerHandler.UpdateMenu)

		adminGroup.GET("/special-hours", r.ownerHandler.ListSpecialHours)
		adminGroup.POST("/special-hours", r.ownerHandler.AddSpecialHours)
		adminGroup.DELETE("/special-hours/:entryId", r.ownerHandler.DeleteSpecialHours)

		adminGroup.GET("/reports", r.moderationHandler.ListReports)
		adminGroup.POST("/reports/:reportId/approve", r.moderationHandler.ApproveReport)
		adminGroup.POST("/reports/:reportId/reject", r.moderationHandler.RejectReport)

		adminGroup.GET("/analytics", r.moderationHandler.GetAnalytics)
	}
}
