package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/pkg/utils"
	"github.com/transit-directory/internal/pkg/validator"
	"github.com/transit-directory/internal/usecase"
	"github.com/transit-directory/internal/usecase/dto"
)

type CategoryHandler struct {
	categoryUseCase *usecase.CategoryUseCase
	logger          *zap.Logger
}

func NewCategoryHandler(categoryUseCase *usecase.CategoryUseCase, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryUseCase: categoryUseCase,
		logger:          logger,
	}
}

// List godoc
// @Summary List categories
// @Tags categories
// @Produce json
// @Param search query string false "Match against name"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Category}
// @Failure 500 {object} utils.ErrorResponse
// @Router /categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	params := parseListParams(c)

	categories, err := h.categoryUseCase.List(c.Context(), params)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, categories, &utils.Meta{
		Total:  len(categories),
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// GetByID godoc
// @Summary Get a category by id
// @Tags categories
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Category}
// @Failure 404 {object} utils.ErrorResponse
// @Router /categories/{id} [get]
func (h *CategoryHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	category, err := h.categoryUseCase.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, category, nil)
}

// Create godoc
// @Summary Create a category (admin)
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category data"
// @Success 201 {object} utils.SuccessResponse{data=dto.CreatedResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	created, err := h.categoryUseCase.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, created)
}

// Update godoc
// @Summary Update a category (admin)
// @Tags categories
// @Security BearerAuth
// @Accept json
// @Param id path int true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /categories/{id} [patch]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	if err := h.categoryUseCase.Update(c.Context(), id, req); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// Delete godoc
// @Summary Delete a category and its transport locations (admin)
// @Tags categories
// @Security BearerAuth
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.DeleteCategoryResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.categoryUseCase.Delete(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
