// Package app assembles the catalog HTTP application.
package app

import (
	"catalog/internal/config"
	"catalog/internal/handlers"
	"catalog/internal/metrics"
	"catalog/internal/middleware"
	"catalog/internal/repositories"
	"catalog/internal/services"
	"catalog/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"
)

// Deps are the collaborators New wires together.
type Deps struct {
	Repo    repositories.ProductRepository
	Events  services.EventPublisher // optional
	Metrics *metrics.Metrics        // optional; a fresh registry is used when nil
	Logger  logrus.FieldLogger
}

// New builds the Fiber app: metrics, request logging and panic recovery wrap
// every route; unmatched paths get a 404 envelope.
func New(cfg config.Config, deps Deps) *fiber.App {
	m := deps.Metrics
	if m == nil {
		m = metrics.New()
	}

	app := fiber.New(fiber.Config{
		AppName:      "catalog",
		ErrorHandler: handlers.ErrorHandler(deps.Logger, cfg.Development),
	})

	// --- Middleware ---
	app.Use(middleware.Metrics(m))
	app.Use(middleware.RequestLogger(deps.Logger))
	app.Use(recover.New(recover.Config{EnableStackTrace: cfg.Development}))

	// --- Routes ---
	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hello World")
	})
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	productService := services.NewProductService(deps.Repo, deps.Events)
	productHandler := handlers.NewProductHandler(productService, validation.NewProductValidator(), cfg.APIKeys)
	productHandler.RegisterRoutes(app.Group("/api"))

	app.Use(middleware.RouteNotFound)

	return app
}
