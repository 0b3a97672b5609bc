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

type AuthHandler struct {
	authUseCase *usecase.AuthUseCase
	logger      *zap.Logger
}

func NewAuthHandler(authUseCase *usecase.AuthUseCase, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		logger:      logger,
	}
}

// Register godoc
// @Summary Register a new account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} utils.SuccessResponse{data=domain.UserView}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	user, err := h.authUseCase.Register(c.Context(), req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, user)
}

// Login godoc
// @Summary Authenticate and receive a JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} utils.SuccessResponse{data=dto.LoginResponse}
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	token, err := h.authUseCase.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, dto.LoginResponse{Token: token}, nil)
}

// Logout godoc
// @Summary Revoke the current token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 204
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	session := middleware.Session(c)
	if session == nil {
		return utils.SendError(c, errors.ErrMissingToken)
	}
	if err := h.authUseCase.Logout(c.Context(), session); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
