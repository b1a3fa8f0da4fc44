package server

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"pos-api/internal/client/orders"
	"pos-api/internal/client/pricing"
	"pos-api/internal/config"
	"pos-api/internal/handlers"
	"pos-api/internal/logger"
	"pos-api/internal/middleware"
	"pos-api/internal/services"
)

// Handler Definitions
var (
	checkoutHandler *handlers.CheckoutHandler
	healthHandler   *handlers.HealthHandler
)

// InitializeHandlers wires the collaborator clients and the checkout core.
func InitializeHandlers(cfg *config.Config) {
	storeClient := pricing.NewClient(cfg.StoreAPIURL, cfg.StoreAPIKey)
	orderClient := orders.NewClient(cfg.OrdersAPIURL, cfg.OrdersAPIKey)

	classifier := services.NewClassifierService()
	quantity := services.NewQuantityService()
	tax := services.NewTaxService()
	totals := services.NewTotalsService()
	assembler := services.NewAssemblerService(classifier)

	checkout := services.NewCheckoutService(classifier, quantity, tax, totals, storeClient, storeClient)
	submission := services.NewSubmissionService(assembler, quantity, orderClient)

	commonServices := handlers.NewCommonServices(checkout, submission)

	checkoutHandler = handlers.NewCheckoutHandler(commonServices)
	healthHandler = handlers.NewHealthHandler()
}

// InitializeRoutes registers the middleware stack and all routes.
func InitializeRoutes(router *gin.Engine) {
	router.Use(configureCORS())
	router.Use(middleware.CorrelationIDMiddleware())

	// Health check
	router.GET("/health", healthHandler.Health)

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		sessions := v1.Group("/checkout/sessions")
		{
			sessions.POST("", checkoutHandler.CreateSession)
			sessions.GET("/:session_id", checkoutHandler.GetSession)
			sessions.DELETE("/:session_id", checkoutHandler.RemoveSession)
			sessions.PUT("/:session_id/customer", checkoutHandler.SelectCustomer)
			sessions.GET("/:session_id/company-location", checkoutHandler.GetCompanyLocation)
			sessions.PUT("/:session_id/location", checkoutHandler.SelectLocation)
			sessions.PUT("/:session_id/cart", checkoutHandler.ReplaceCart)
			sessions.PUT("/:session_id/po-number", checkoutHandler.SetPONumber)
			sessions.PUT("/:session_id/delivery", checkoutHandler.SetDelivery)
			sessions.POST("/:session_id/next", checkoutHandler.Next)
			sessions.POST("/:session_id/back", checkoutHandler.Back)
			sessions.POST("/:session_id/product-detail", checkoutHandler.ProductDetail)
			sessions.POST("/:session_id/reset", checkoutHandler.Reset)
			sessions.POST("/:session_id/submit", checkoutHandler.Submit)
		}
	}

	logger.Info("Routes initialized")
}

// configureCORS returns a configured CORS middleware
func configureCORS() gin.HandlerFunc {
	corsConfig := cors.DefaultConfig()

	originsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	if originsEnv == "" {
		corsConfig.AllowOrigins = []string{"http://localhost:3000"}
	} else {
		origins := strings.Split(originsEnv, ",")
		for i, origin := range origins {
			origins[i] = strings.TrimSpace(origin)
		}
		corsConfig.AllowOrigins = origins
	}

	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Correlation-ID"}
	corsConfig.AllowCredentials = os.Getenv("CORS_ALLOW_CREDENTIALS") == "true"

	return cors.New(corsConfig)
}
