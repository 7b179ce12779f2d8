package api

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"os-scheduler/config"
	"os-scheduler/internal/core"
	"os-scheduler/internal/requests"
	"os-scheduler/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	Schedule(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.RoundRobin)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.SJF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.run(ctx, schedulers.Priority)
}

// Schedule takes the algorithm from the request body.
func (s *SchedulerHandlerImpl) Schedule(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	policy, err := schedulers.ParsePolicy(request.Algorithm)
	if err != nil {
		return respondError(ctx, err)
	}
	response, err := schedulers.Schedule(request, policy, s.config.RoundRobinTimeQuantum)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(response)
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	comparison, err := schedulers.ScheduleAll(request, s.config.RoundRobinTimeQuantum)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(comparison)
}

func (s *SchedulerHandlerImpl) run(ctx *fiber.Ctx, policy schedulers.Policy) error {
	request, err := parseRequest(ctx)
	if err != nil {
		return respondError(ctx, err)
	}
	response, err := schedulers.Schedule(request, policy, s.config.RoundRobinTimeQuantum)
	if err != nil {
		return respondError(ctx, err)
	}
	return ctx.JSON(response)
}

// parseRequest accepts a JSON body or the comma-separated HTML form.
func parseRequest(ctx *fiber.Ctx) (requests.ScheduleRequest, error) {
	var request requests.ScheduleRequest
	contentType := strings.ToLower(ctx.Get(fiber.HeaderContentType))
	if strings.HasPrefix(contentType, fiber.MIMEApplicationForm) || strings.HasPrefix(contentType, fiber.MIMEMultipartForm) {
		var form requests.FormRequest
		if err := ctx.BodyParser(&form); err != nil {
			return request, core.NewValidationError("", "invalid request format")
		}
		return form.ToScheduleRequest()
	}
	if err := ctx.BodyParser(&request); err != nil {
		return request, core.NewValidationError("", "invalid request format")
	}
	return request, nil
}

// respondError shows validation messages verbatim; anything else is an
// internal failure of the run.
func respondError(ctx *fiber.Ctx, err error) error {
	var verr *core.ValidationError
	if errors.As(err, &verr) {
		logrus.WithField("path", ctx.Path()).Infof("rejected request: %v", err)
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": verr.Error()})
	}
	logrus.WithField("path", ctx.Path()).WithError(err).Error("simulation failed")
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "can not process request"})
}
