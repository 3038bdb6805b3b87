package handlers

import (
	"errors"
	"net/url"

	"recipe-dashboard/domain"
	"recipe-dashboard/internal/api/presenters"
	"recipe-dashboard/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		RankRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		GetCategories(c *fiber.Ctx) error
		GetBounds(c *fiber.Ctx) error
		GetTargets(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) allCategories(c *fiber.Ctx) func() []string {
	return func() []string { return h.recipeService.GetCategories(c.Context()) }
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	criteria, err := parseFilterCriteria(c, h.allCategories(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	res, err := h.recipeService.GetRecipes(c.Context(), criteria)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) RankRecipes(c *fiber.Ctx) error {
	req := domain.RankRequest{
		Criterion: c.Query("criterion"),
		Top:       c.QueryInt("top", 0),
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRankRecipes, err)
	}

	criteria, err := parseFilterCriteria(c, h.allCategories(c))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRankRecipes, err)
	}

	res, err := h.recipeService.RankRecipes(c.Context(), criteria, req)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedRankRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessRankRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	name, err := url.PathUnescape(c.Params("name"))
	if err != nil || name == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), name)
	if err != nil {
		return presenters.ErrorResponse(c, statusFor(err), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) GetCategories(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"categories": h.recipeService.GetCategories(c.Context()),
	}, fiber.StatusOK, domain.MessageSuccessGetCategories)
}

func (h *recipeHandler) GetBounds(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"bounds": h.recipeService.GetBounds(c.Context()),
	}, fiber.StatusOK, domain.MessageSuccessGetBounds)
}

func (h *recipeHandler) GetTargets(c *fiber.Ctx) error {
	return presenters.SuccessResponse(c, fiber.Map{
		"targets": h.recipeService.GetTargets(c.Context()),
	}, fiber.StatusOK, domain.MessageSuccessGetTargets)
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var rangeErr *domain.InvalidRangeError
	switch {
	case errors.As(err, &rangeErr), errors.Is(err, domain.ErrUnknownCriterion):
		return fiber.StatusBadRequest
	case errors.Is(err, domain.ErrRecipeNotFound), errors.Is(err, domain.ErrSessionNotFound):
		return fiber.StatusNotFound
	default:
		return fiber.StatusInternalServerError
	}
}
