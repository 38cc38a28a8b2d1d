package api

import (
	v1 "github.com/flexprice/taxengine/internal/api/v1"
	"github.com/flexprice/taxengine/internal/config"
	ierr "github.com/flexprice/taxengine/internal/errors"
	"github.com/flexprice/taxengine/internal/logger"
	"github.com/flexprice/taxengine/internal/rest/middleware"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Handlers struct {
	Health *v1.HealthHandler
	Tax    *v1.TaxHandler
}

func NewRouter(handlers Handlers, cfg *config.Configuration, logger *logger.Logger, reporter middleware.ErrorReporter) *gin.Engine {
	router := gin.Default()
	router.Use(
		middleware.RequestIDMiddleware,
		middleware.CORSMiddleware,
		middleware.SentryMiddleware(cfg),
		middleware.ErrorHandler(reporter),
	)

	router.NoRoute(func(c *gin.Context) {
		c.Error(ierr.NewError("route not found").
			WithHint("Route not found").
			WithReportableDetails(map[string]any{"path": c.Request.URL.Path}).
			Mark(ierr.ErrNotFound))
	})

	router.GET("/health", handlers.Health.Health)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1Group := router.Group("/v1")
	registerV1Routes(v1Group, handlers)

	logger.Debugw("registered api routes", "routes", len(router.Routes()))

	return router
}

func registerV1Routes(router *gin.RouterGroup, handlers Handlers) {
	tax := router.Group("/tax")
	{
		tax.POST("/calculate", handlers.Tax.Calculate)
		tax.POST("/calculate/batch", handlers.Tax.CalculateBatch)
		tax.GET("/custom-rate", handlers.Tax.PreviewCustomRate)
	}
}
