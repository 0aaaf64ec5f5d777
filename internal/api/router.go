package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/parceldesk/shipment-api/internal/api/handler"
	"github.com/parceldesk/shipment-api/internal/core/service"
	mongodb "github.com/parceldesk/shipment-api/internal/infrastructure/db/mongo"
)

// NewRouter builds and returns the Echo instance with all routes
// registered. The activity dispatcher is constructed by the caller because
// its worker pool outlives individual requests.
func NewRouter(db *mongo.Database, rdb *redis.Client, dispatcher handler.ActivityDispatcher, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)
	e.Validator = handler.NewValidator()

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("parceldesk"))

	// --- Dependencies ---
	shipmentRepo := mongodb.NewShipmentRepository(db)
	shipmentService := service.NewShipmentService(shipmentRepo, log)
	trackingService := service.NewTrackingService(shipmentRepo, log)

	shipmentHandler := handler.NewShipmentHandler(shipmentService)
	trackingHandler := handler.NewTrackingHandler(trackingService)
	activityHandler := handler.NewActivityHandler(dispatcher)

	// --- Booking & tracking routes ---
	e.POST("/v1/shipments", shipmentHandler.Create)
	e.GET("/v1/shipments", shipmentHandler.List)
	e.GET("/v1/track", trackingHandler.Track)

	// --- Activity event ingestion ---
	e.POST("/v1/events", activityHandler.Receive)
	e.POST("/v1/events/batch", activityHandler.ReceiveBatch)

	// --- Health probes ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
