// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"stallbook/internal/domain/catalogs/location"
	"stallbook/internal/domain/catalogs/product"
	"stallbook/internal/domain/reports"
	"stallbook/internal/domain/sales"
	"stallbook/internal/infrastructure/http/v1/handlers"
	"stallbook/internal/infrastructure/http/v1/middleware"
	"stallbook/pkg/logger"
)

// RouterConfig holds the wired services the router exposes.
type RouterConfig struct {
	// Pool is used by health checks only; everything else goes through
	// the services.
	Pool *pgxpool.Pool

	// Logger for request logging
	Logger *logger.Logger

	ProductService  *product.Service
	LocationService *location.Service
	SalesService    *sales.Service
	ReportService   *reports.Service
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	baseHandler := handlers.NewBaseHandler()

	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
	}

	productHandler := handlers.NewProductHandler(baseHandler, cfg.ProductService)
	products := router.Group("/products")
	{
		products.GET("", productHandler.List)
		products.POST("", productHandler.Create)
		products.PUT("/:id", productHandler.Update)
		products.DELETE("/:id", productHandler.Delete)
	}

	locationHandler := handlers.NewLocationHandler(baseHandler, cfg.LocationService)
	locations := router.Group("/locations")
	{
		locations.GET("", locationHandler.List)
		locations.POST("", locationHandler.Create)
		locations.DELETE("/:id", locationHandler.Delete)
	}

	salesHandler := handlers.NewSalesHandler(baseHandler, cfg.SalesService, cfg.ReportService)
	salesGroup := router.Group("/sales")
	{
		salesGroup.GET("/report", salesHandler.Report)
		salesGroup.POST("/bulk", salesHandler.BulkCreate)
		salesGroup.DELETE("/batch", salesHandler.DeleteBatch)
		salesGroup.PUT("/batch", salesHandler.ReplaceBatch)
	}

	return router
}
