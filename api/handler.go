package api

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"os-scheduler/config"
	"os-scheduler/internal/metrics"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	PriorityPreemptive(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Algorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config    *config.SchedulerConfig
	scheduler *schedulers.Scheduler
	metrics   *metrics.Collector
}

// NewSchedulerHandlerImpl builds the handler. collector may be nil.
func NewSchedulerHandlerImpl(config *config.SchedulerConfig, collector *metrics.Collector) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{
		config:    config,
		scheduler: schedulers.NewScheduler(config.RoundRobinTimeQuantum, config.Verbose),
		metrics:   collector,
	}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FirstComeFirstServe)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestJobFirst)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.ShortestRemainingTimeFirst)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityNonPreemptive)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.PriorityPreemptive)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		s.recordFailure("all", err)
		return badRequest(ctx, err)
	}

	start := time.Now()
	results, err := s.scheduler.ScheduleAll(request)
	if err != nil {
		s.recordFailure("all", err)
		return badRequest(ctx, err)
	}
	if s.metrics != nil {
		elapsed := time.Since(start).Seconds() / float64(len(results))
		for _, response := range results {
			s.metrics.RecordSimulation(response, elapsed)
		}
	}
	return ctx.JSON(results)
}

func (s *SchedulerHandlerImpl) Algorithms(ctx *fiber.Ctx) error {
	return ctx.JSON(schedulers.Catalogue())
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, algorithm schedulers.Algorithm) error {
	request, err := s.parseRequest(ctx)
	if err != nil {
		s.recordFailure(string(algorithm), err)
		return badRequest(ctx, err)
	}

	start := time.Now()
	response, err := s.scheduler.ScheduleWith(request, algorithm)
	if err != nil {
		s.recordFailure(string(algorithm), err)
		return badRequest(ctx, err)
	}
	if s.metrics != nil {
		s.metrics.RecordSimulation(response, time.Since(start).Seconds())
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, fmt.Errorf("%w: invalid request format", requests.ErrInvalidRequest)
	}
	request.Normalize(s.config.RoundRobinTimeQuantum)
	if err := request.Validate(); err != nil {
		return nil, err
	}
	return request, nil
}

func (s *SchedulerHandlerImpl) recordFailure(algorithm string, err error) {
	log.Println("can not process", algorithm, "request:", err)
	if s.metrics != nil {
		s.metrics.RecordFailure(algorithm, err)
	}
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": err.Error(),
	})
}
