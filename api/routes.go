package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"os-scheduler/internal/metrics"
)

// NewApp wires the scheduler routes under /api/v1. /metrics is only mounted
// when a collector is given.
func NewApp(handler SchedulerHandler, collector *metrics.Collector) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/priority", handler.Priority)
		v1.Post("/priority-preemptive", handler.PriorityPreemptive)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Get("/algorithms", handler.Algorithms)
	}

	if collector != nil {
		app.Get("/metrics", adaptor.HTTPHandler(collector.Handler()))
	}
	return app
}
