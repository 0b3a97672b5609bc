package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-directory/internal/delivery/http/middleware"
	"github.com/transit-directory/internal/domain/repository"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/pkg/utils"
	"github.com/transit-directory/internal/pkg/validator"
	"github.com/transit-directory/internal/usecase"
	"github.com/transit-directory/internal/usecase/dto"
)

type FavoriteHandler struct {
	favoriteUseCase *usecase.FavoriteUseCase
	logger          *zap.Logger
}

func NewFavoriteHandler(favoriteUseCase *usecase.FavoriteUseCase, logger *zap.Logger) *FavoriteHandler {
	return &FavoriteHandler{
		favoriteUseCase: favoriteUseCase,
		logger:          logger,
	}
}

// ListMine godoc
// @Summary List the authenticated user's favorites
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Favorite}
// @Failure 401 {object} utils.ErrorResponse
// @Router /favorites/me [get]
func (h *FavoriteHandler) ListMine(c *fiber.Ctx) error {
	session := middleware.Session(c)
	if session == nil {
		return utils.SendError(c, errors.ErrMissingToken)
	}

	favorites, err := h.favoriteUseCase.ListByUser(c.Context(), session.UserID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, favorites, &utils.Meta{Total: len(favorites)})
}

// AddMine godoc
// @Summary Mark a transport location as favorite
// @Tags favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AddFavoriteRequest true "Location to favorite"
// @Success 201 {object} utils.SuccessResponse{data=domain.Favorite}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /favorites/me [post]
func (h *FavoriteHandler) AddMine(c *fiber.Ctx) error {
	session := middleware.Session(c)
	if session == nil {
		return utils.SendError(c, errors.ErrMissingToken)
	}

	var req dto.AddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	favorite, err := h.favoriteUseCase.Add(c.Context(), session.UserID, req.TransportLocationID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, favorite)
}

// RemoveMine godoc
// @Summary Remove a favorite
// @Tags favorites
// @Security BearerAuth
// @Param locationId path int true "Transport location ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /favorites/me/{locationId} [delete]
func (h *FavoriteHandler) RemoveMine(c *fiber.Ctx) error {
	session := middleware.Session(c)
	if session == nil {
		return utils.SendError(c, errors.ErrMissingToken)
	}

	locationID, err := parseIDParam(c, "locationId")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.favoriteUseCase.Remove(c.Context(), session.UserID, locationID); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// List godoc
// @Summary List favorites across users (admin)
// @Tags favorites
// @Security BearerAuth
// @Produce json
// @Param userId query int false "Filter by user"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Favorite}
// @Failure 401 {object} utils.ErrorResponse
// @Router /favorites [get]
func (h *FavoriteHandler) List(c *fiber.Ctx) error {
	userID, err := queryInt64(c, "userId")
	if err != nil {
		return utils.SendError(c, err)
	}
	params := repository.FavoriteListParams{
		UserID: userID,
		Limit:  c.QueryInt("limit", 0),
		Offset: c.QueryInt("offset", 0),
	}

	favorites, err := h.favoriteUseCase.List(c.Context(), params)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, favorites, &utils.Meta{
		Total:  len(favorites),
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// Add godoc
// @Summary Add a favorite for any user (admin)
// @Tags favorites
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AdminAddFavoriteRequest true "User and location"
// @Success 201 {object} utils.SuccessResponse{data=domain.Favorite}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /favorites [post]
func (h *FavoriteHandler) Add(c *fiber.Ctx) error {
	var req dto.AdminAddFavoriteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	favorite, err := h.favoriteUseCase.Add(c.Context(), req.UserID, req.TransportLocationID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, favorite)
}

// Remove godoc
// @Summary Remove any user's favorite (admin)
// @Tags favorites
// @Security BearerAuth
// @Param userId path int true "User ID"
// @Param locationId path int true "Transport location ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /favorites/{userId}/{locationId} [delete]
func (h *FavoriteHandler) Remove(c *fiber.Ctx) error {
	userID, err := parseIDParam(c, "userId")
	if err != nil {
		return utils.SendError(c, err)
	}
	locationID, err := parseIDParam(c, "locationId")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.favoriteUseCase.Remove(c.Context(), userID, locationID); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
