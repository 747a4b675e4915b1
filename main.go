package main

import (
	"log"

	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/vilimcapic/fipu-IS-projekt/config"
	"github.com/vilimcapic/fipu-IS-projekt/internal/handler"
	"github.com/vilimcapic/fipu-IS-projekt/internal/middleware"
	"github.com/vilimcapic/fipu-IS-projekt/internal/repository"
	"github.com/vilimcapic/fipu-IS-projekt/internal/service"
	"github.com/vilimcapic/fipu-IS-projekt/internal/view"
	"github.com/vilimcapic/fipu-IS-projekt/pkg/database"
	"github.com/vilimcapic/fipu-IS-projekt/pkg/rabbitmq"
	"github.com/vilimcapic/fipu-IS-projekt/pkg/validation"
)

func main() {
	cfg := config.Load()

	db := database.Open(cfg)

	// Lifecycle events are published only when a broker is configured.
	var publisher *rabbitmq.Publisher
	if cfg.RabbitURL != "" {
		var err error
		publisher, err = rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	}

	tripRepo := repository.NewTripRepository(db)
	travellerRepo := repository.NewTravellerRepository(db)

	tripSvc := service.NewTripService(tripRepo, travellerRepo, publisher)
	travellerSvc := service.NewTravellerService(travellerRepo, tripRepo, publisher)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Renderer = view.New()
	e.Validator = validation.New()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "trip-service"})
	})

	handler.NewTripHandler(tripSvc).RegisterRoutes(e)
	handler.NewTravellerHandler(travellerSvc, tripSvc).RegisterRoutes(e)

	log.Printf("Trip service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
