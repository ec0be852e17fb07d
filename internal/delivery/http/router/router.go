// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"cashreap/internal/delivery/http/middleware"
	"cashreap/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	CatalogHandler    *handler.CatalogHandler
	SavedCardHandler  *handler.SavedCardHandler
	SpendingHandler   *handler.SpendingHandler
	PlanHandler       *handler.PlanHandler
	BonusHandler      *handler.BonusHandler
	ComparisonHandler *handler.ComparisonHandler
	AuthMiddleware    *middleware.AuthMiddleware
	CacheMiddleware   *middleware.CacheMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	catalogHandler    *handler.CatalogHandler
	savedCardHandler  *handler.SavedCardHandler
	spendingHandler   *handler.SpendingHandler
	planHandler       *handler.PlanHandler
	bonusHandler      *handler.BonusHandler
	comparisonHandler *handler.ComparisonHandler
	authMiddleware    *middleware.AuthMiddleware
	cacheMiddleware   *middleware.CacheMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		catalogHandler:    params.CatalogHandler,
		savedCardHandler:  params.SavedCardHandler,
		spendingHandler:   params.SpendingHandler,
		planHandler:       params.PlanHandler,
		bonusHandler:      params.BonusHandler,
		comparisonHandler: params.ComparisonHandler,
		authMiddleware:    params.AuthMiddleware,
		cacheMiddleware:   params.CacheMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/signup", r.userHandler.SignUp)
		authGroup.POST("/signin", r.userHandler.SignIn)
		authGroup.POST("/refresh", r.userHandler.RefreshToken)
		authGroup.POST("/logout", r.userHandler.Logout)
	}

	// Public catalog routes, served through the response cache when enabled
	catalogGroup := e.Group("/api", r.cacheMiddleware.Cache)
	{
		catalogGroup.GET("/credit-cards", r.catalogHandler.ListCards)
		catalogGroup.GET("/credit-cards/:id", r.catalogHandler.GetCard)
		catalogGroup.GET("/categories", r.catalogHandler.ListCategories)
		catalogGroup.GET("/categories/:id/recommendations", r.catalogHandler.CategoryRecommendations)
		catalogGroup.GET("/stores", r.catalogHandler.ListStores)
		// Static paths must be registered alongside the :id route; echo
		// prefers the literal match.
		catalogGroup.GET("/stores/search", r.catalogHandler.SearchStores)
		catalogGroup.GET("/stores/nearby", r.catalogHandler.NearbyStores)
		catalogGroup.GET("/stores/:id", r.catalogHandler.GetStore)
		catalogGroup.GET("/stores/:id/recommendations", r.catalogHandler.StoreRecommendations)
	}

	// Routes that require authentication
	userGroup := e.Group("/api", r.authMiddleware.Authenticate)
	{
		userGroup.GET("/users/me", r.userHandler.GetProfile)
		userGroup.DELETE("/users/me", r.userHandler.DeleteAccount)

		userGroup.GET("/saved-cards", r.savedCardHandler.ListSaved)
		userGroup.POST("/saved-cards", r.savedCardHandler.SaveCard)
		userGroup.GET("/saved-cards/earnings", r.savedCardHandler.ListEarnings)
		userGroup.DELETE("/saved-cards/:cardId", r.savedCardHandler.UnsaveCard)

		userGroup.GET("/search-history", r.savedCardHandler.ListHistory)
		userGroup.POST("/search-history", r.savedCardHandler.RecordSearch)

		userGroup.GET("/spending-profiles", r.spendingHandler.ListProfiles)
		userGroup.PUT("/spending-profiles", r.spendingHandler.UpsertProfile)
		userGroup.GET("/spending-analysis", r.spendingHandler.Analyze)

		userGroup.GET("/preferences", r.spendingHandler.GetPreferences)
		userGroup.PUT("/preferences", r.spendingHandler.UpdatePreferences)

		userGroup.GET("/purchase-plans", r.planHandler.ListPlans)
		userGroup.POST("/purchase-plans", r.planHandler.CreatePlan)
		userGroup.PATCH("/purchase-plans/:id", r.planHandler.UpdatePlan)
		userGroup.DELETE("/purchase-plans/:id", r.planHandler.DeletePlan)

		userGroup.GET("/welcome-bonus-tracking", r.bonusHandler.ListTracking)
		userGroup.POST("/welcome-bonus-tracking", r.bonusHandler.CreateTracking)
		userGroup.PATCH("/welcome-bonus-tracking/:id", r.bonusHandler.UpdateSpending)

		userGroup.GET("/card-comparisons", r.comparisonHandler.ListComparisons)
		userGroup.POST("/card-comparisons", r.comparisonHandler.CreateComparison)
		userGroup.GET("/card-comparisons/:id/qr", r.comparisonHandler.ShareQR)
	}
}
