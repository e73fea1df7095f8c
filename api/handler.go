package api

import (
	"priority-scheduler/config"
	"priority-scheduler/internal/metrics"
	"priority-scheduler/internal/requests"
	"priority-scheduler/internal/schedulers"
	"priority-scheduler/internal/util"

	"github.com/gofiber/fiber/v2"
)

type SchedulerHandler interface {
	Priority(ctx *fiber.Ctx) error
	Demo(ctx *fiber.Ctx) error
}
type SchedulerHandlerImpl struct {
	config    *config.SchedulerConfig
	collector *metrics.Collector
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, collector *metrics.Collector) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, collector: collector}
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request format",
		})
	}
	if err := request.Validate(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	return s.schedule(ctx, request)
}

// Demo schedules the configured job list, which defaults to the sample workload.
func (s *SchedulerHandlerImpl) Demo(ctx *fiber.Ctx) error {
	return s.schedule(ctx, s.config.Request())
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, request requests.ScheduleRequests) error {
	response, err := schedulers.SchedulePriority(request)
	if err != nil {
		util.Logger(ctx.UserContext()).Error().Err(err).Msg("priority scheduling failed")
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": "can not process request"})
	}
	if s.collector != nil {
		s.collector.Observe(response)
	}
	return ctx.JSON(response)
}
