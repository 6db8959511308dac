package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/pipeline-tools/ccnotify/internal/config"
	"github.com/pipeline-tools/ccnotify/internal/errors"
	"github.com/pipeline-tools/ccnotify/internal/handler"
	"github.com/pipeline-tools/ccnotify/internal/logging"
	"github.com/pipeline-tools/ccnotify/internal/trigger"
)

// newApp wires the Fiber application: middleware, error handling and
// the health and event routes.
func newApp(cfg *config.Config, engine *trigger.Engine) *fiber.App {
	eventHandler := handler.NewEventHandler(cfg, engine)
	healthHandler := handler.NewHealthHandler(cfg)
	errorHandler := errors.NewHandler()

	app := fiber.New(fiber.Config{
		AppName:      "ccnotify",
		ErrorHandler: errorHandler.HandleError,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} ${status} - ${method} ${path} - ${latency}\n",
	}))
	app.Use(cors.New())

	app.Get("/health", healthHandler.HandleHealth)
	app.Post("/event", eventHandler.HandleEvent)

	return app
}

func main() {
	cfg := config.Load()

	triggerCfg, err := config.LoadTriggerConfig(cfg.Trigger.RulesPath)
	if err != nil {
		log.Fatalf("Failed to load trigger configuration: %v", err)
	}

	engine, err := trigger.NewEngine(triggerCfg, nil)
	if err != nil {
		log.Fatalf("Failed to compile trigger rules: %v", err)
	}

	app := newApp(cfg, engine)

	logging.Info("ccnotify starting on port %s", cfg.Server.Port)
	logging.Info("Webhook security: %s", cfg.WebhookSecurityMode())
	logging.Info("Trigger rules: %s (%d projects, %d rules)",
		cfg.Trigger.RulesPath, len(triggerCfg.Projects), len(triggerCfg.Rules))

	log.Fatal(app.Listen(":" + cfg.Server.Port))
}
