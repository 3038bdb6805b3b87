package handlers

import (
	"recipe-dashboard/domain"
	"recipe-dashboard/internal/api/presenters"
	"recipe-dashboard/internal/middleware"
	"recipe-dashboard/pkg/foodlog"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodLogHandler interface {
		StartSession(c *fiber.Ctx) error
		EndSession(c *fiber.Ctx) error
		LogRecipe(c *fiber.Ctx) error
		ClearLog(c *fiber.Ctx) error
		GetLog(c *fiber.Ctx) error
		GetSummary(c *fiber.Ctx) error
	}

	foodLogHandler struct {
		foodLogService foodlog.FoodLogService
		validator      *validator.Validate
	}
)

func NewFoodLogHandler(foodLogService foodlog.FoodLogService, validator *validator.Validate) FoodLogHandler {
	return &foodLogHandler{
		foodLogService: foodLogService,
		validator:      validator,
	}
}

func sessionID(c *fiber.Ctx) string {
	id, _ := c.Locals(middleware.SessionIDKey).(string)
	return id
}

func (h *foodLogHandler) StartSession(c *fiber.Ctx) error {
	res, err := h.foodLogService.StartSession(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedStartSession, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessStartSession)
}

func (h *foodLogHandler) EndSession(c *fiber.Ctx) error {
	if err := h.foodLogService.EndSession(c.Context(), sessionID(c)); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedEndSession, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessEndSession)
}

func (h *foodLogHandler) LogRecipe(c *fiber.Ctx) error {
	req := new(domain.LogRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedLogRecipe, err)
	}

	res, err := h.foodLogService.LogRecipe(c.Context(), *req, sessionID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedLogRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessLogRecipe)
}

func (h *foodLogHandler) ClearLog(c *fiber.Ctx) error {
	if err := h.foodLogService.ClearLog(c.Context(), sessionID(c)); err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedClearLog, err)
	}
	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessClearLog)
}

func (h *foodLogHandler) GetLog(c *fiber.Ctx) error {
	res, err := h.foodLogService.GetLog(c.Context(), sessionID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetLog, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetLog)
}

func (h *foodLogHandler) GetSummary(c *fiber.Ctx) error {
	res, err := h.foodLogService.GetSummary(c.Context(), sessionID(c))
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetSummary, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSummary)
}
