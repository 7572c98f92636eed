package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"catalog/internal/app"
	"catalog/internal/config"
	"catalog/pkg/rabbitmq"
)

func main() {
	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	logger := newLogger(cfg)

	// --- Initialize Repository ---
	repo, err := app.NewRepository(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize product store: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Initialize RabbitMQ Client (optional) ---
	deps := app.Deps{Repo: repo, Logger: logger}
	if cfg.RabbitMQURL != "" {
		mqClient, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL}, logger)
		if err != nil {
			logger.Fatalf("Failed to initialize RabbitMQ client: %v", err)
		}
		defer mqClient.Close()
		deps.Events = mqClient

		if err := mqClient.ConsumeProductEvents(ctx, rabbitmq.AuditLogger(logger)); err != nil {
			logger.WithError(err).Error("Failed to start RabbitMQ consumer")
		}
	}

	server := app.New(cfg, deps)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.Listen(cfg.Addr()); err != nil {
			logger.Fatalf("Server failed to start: %v", err)
		}
	}()
	logEndpoints(logger, cfg)

	// Wait for interrupt signal to gracefully shut down the server
	<-quit
	logger.Info("Shutting down server...")
	cancel()

	if err := server.Shutdown(); err != nil {
		logger.WithError(err).Error("Error during Fiber shutdown")
	}
	logger.Info("Server gracefully stopped")
}

func newLogger(cfg config.Config) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.WithField("level", cfg.LogLevel).Warn("Unknown LOG_LEVEL, using info")
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	// Service code that logs through the package-level logger gets the same setup.
	logrus.SetFormatter(logger.Formatter)
	logrus.SetLevel(level)
	return logger
}

func logEndpoints(logger logrus.FieldLogger, cfg config.Config) {
	base := "http://localhost" + cfg.Addr()
	logger.Infof("Server is running on %s", base)
	for _, endpoint := range []string{
		"GET    /",
		"GET    /api/products",
		"GET    /api/products/search?q=term",
		"GET    /api/products/stats",
		"GET    /api/products/:id",
		"POST   /api/products (X-API-Key)",
		"PUT    /api/products/:id (X-API-Key)",
		"DELETE /api/products/:id (X-API-Key)",
		"GET    /metrics",
	} {
		logger.Info("  " + endpoint)
	}
}
