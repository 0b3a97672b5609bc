package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-directory/internal/delivery/http/middleware"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/pkg/utils"
	"github.com/transit-directory/internal/pkg/validator"
	"github.com/transit-directory/internal/usecase"
	"github.com/transit-directory/internal/usecase/dto"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
	logger      *zap.Logger
}

func NewUserHandler(userUseCase *usecase.UserUseCase, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// GetMe godoc
// @Summary Get the authenticated user's profile
// @Tags users
// @Security BearerAuth
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=domain.UserView}
// @Failure 401 {object} utils.ErrorResponse
// @Router /users/me [get]
func (h *UserHandler) GetMe(c *fiber.Ctx) error {
	session := middleware.Session(c)
	if session == nil {
		return utils.SendError(c, errors.ErrMissingToken)
	}

	user, err := h.userUseCase.GetByID(c.Context(), session.UserID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, user, nil)
}

// UpdateMe godoc
// @Summary Update the authenticated user's profile
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /users/me [patch]
func (h *UserHandler) UpdateMe(c *fiber.Ctx) error {
	session := middleware.Session(c)
	if session == nil {
		return utils.SendError(c, errors.ErrMissingToken)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	// A user can never promote themselves.
	if err := h.userUseCase.Update(c.Context(), session.UserID, req, false); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// Create godoc
// @Summary Create a user (admin)
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateUserRequest true "User data"
// @Success 201 {object} utils.SuccessResponse{data=domain.UserView}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	user, err := h.userUseCase.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, user)
}

// List godoc
// @Summary List users (admin)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param search query string false "Match against name or email"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.UserView}
// @Failure 401 {object} utils.ErrorResponse
// @Router /users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	params := parseListParams(c)

	users, err := h.userUseCase.List(c.Context(), params)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, users, &utils.Meta{
		Total:  len(users),
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// GetByID godoc
// @Summary Get a user by id (admin)
// @Tags users
// @Security BearerAuth
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.UserView}
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	user, err := h.userUseCase.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, user, nil)
}

// Update godoc
// @Summary Update a user (admin)
// @Tags users
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param request body dto.UpdateUserRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id} [patch]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	if err := h.userUseCase.Update(c.Context(), id, req, true); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// Delete godoc
// @Summary Delete a user (admin)
// @Tags users
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.userUseCase.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
