package routes

import (
	coreport "github.com/amirhossein-jamali/finance-records/internal/domain/port/core"
	"github.com/amirhossein-jamali/finance-records/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/finance-records/internal/infrastructure/adapter/api/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers groups the HTTP handlers mounted by SetupRoutes
type Handlers struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Transactions *handler.TransactionHandler
	AppURLs      *handler.AppURLHandler
	Balances     *handler.BalanceHandler
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers, auth usecase.AuthUseCase, logger coreport.Logger) {
	health := h.Health
	if health == nil {
		health = handler.NewHealthHandler(nil)
	}
	router.GET("/health", health.Check)

	api := router.Group("/api")

	authRoutes := api.Group("/auth")
	{
		authRoutes.POST("/google", h.Auth.GoogleLogin)
		authRoutes.GET("/verify", h.Auth.Verify)
	}

	requireSession := middleware.Auth(auth, logger)

	// Export is opened as a plain link, so it also takes ?token=
	api.GET("/records/transactions/export", middleware.QueryToken(), requireSession, h.Transactions.Export)

	records := api.Group("/records", requireSession)
	{
		tx := records.Group("/transactions")
		tx.GET("", h.Transactions.List)
		tx.GET("/:id", h.Transactions.Get)
		tx.POST("", h.Transactions.Create)
		tx.PATCH("/:id", h.Transactions.Update)
		tx.DELETE("/:id", h.Transactions.Delete)

		urls := records.Group("/app-urls")
		urls.GET("", h.AppURLs.List)
		urls.GET("/:id", h.AppURLs.Get)
		urls.POST("", h.AppURLs.Create)
		urls.PATCH("/:id", h.AppURLs.Update)
		urls.DELETE("/:id", h.AppURLs.Delete)

		balances := records.Group("/balances")
		balances.GET("", h.Balances.List)
		balances.GET("/:id", h.Balances.Get)
		balances.POST("", h.Balances.Create)
		balances.PATCH("/:id", h.Balances.Update)
		balances.DELETE("/:id", h.Balances.Delete)
	}
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(router *gin.Engine, logger coreport.Logger, timeProvider coreport.TimeProvider) {
	// Request ids first so every later middleware can log them
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.ErrorHandler(logger))
}

// NewRouter builds a gin engine with the middlewares and routes mounted
func NewRouter(h Handlers, auth usecase.AuthUseCase, logger coreport.Logger, timeProvider coreport.TimeProvider) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	SetupMiddlewares(router, logger, timeProvider)
	SetupRoutes(router, h, auth, logger)
	return router
}
