package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"

	coreport "github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/credit-ledger/internal/infrastructure/adapter/api/middleware"
)

// SetupRoutes configures all the routes for the API
func SetupRoutes(
	router *gin.Engine,
	creditHandler *handler.CreditHandler,
	healthHandler *handler.HealthHandler,
	rateLimiter *limiter.Limiter,
	logger coreport.Logger,
	withTimeout middleware.TimeoutFunc,
) {
	router.GET("/health", healthHandler.Check)

	credits := router.Group("/api/credits")
	credits.Use(middleware.RequireAccount())
	if withTimeout != nil {
		credits.Use(middleware.QueryTimeout(withTimeout))
	}
	{
		credits.GET("", creditHandler.GetBalance)
		credits.GET("/check", creditHandler.CheckCredits)
		credits.GET("/transactions", creditHandler.ListTransactions)
		credits.GET("/stats", creditHandler.GetStats)
	}

	mutating := credits.Group("")
	if rateLimiter != nil {
		mutating.Use(middleware.RateLimit(rateLimiter, logger))
	}
	{
		// POST /api/credits/ensure
		mutating.POST("/ensure", creditHandler.EnsureAccount)

		// POST /api/credits/spend
		mutating.POST("/spend", creditHandler.Spend)

		// POST /api/credits/grant
		mutating.POST("/grant", creditHandler.Grant)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider, allowedOrigins []string) {
	// Apply middlewares in the correct order
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.CORS(allowedOrigins))
}
