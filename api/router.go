package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"os-scheduler/config"
)

// NewApp wires the scheduler routes under /api/v1.
func NewApp(cfg *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(requestLogger)

	handler := NewSchedulerHandlerImpl(cfg)
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", func(ctx *fiber.Ctx) error {
			return ctx.JSON(fiber.Map{"status": "ok"})
		})
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/schedule", handler.Schedule)
		v1.Post("/all", handler.AllAlgorithms)
	}
	return app
}

func requestLogger(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()
	logrus.WithFields(logrus.Fields{
		"method":   ctx.Method(),
		"path":     ctx.Path(),
		"status":   ctx.Response().StatusCode(),
		"duration": time.Since(start),
	}).Debug("request")
	return err
}
