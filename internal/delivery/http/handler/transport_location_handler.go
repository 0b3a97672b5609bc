package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/pkg/utils"
	"github.com/transit-directory/internal/pkg/validator"
	"github.com/transit-directory/internal/usecase"
	"github.com/transit-directory/internal/usecase/dto"
)

type TransportLocationHandler struct {
	locationUseCase *usecase.TransportLocationUseCase
	logger          *zap.Logger
}

func NewTransportLocationHandler(
	locationUseCase *usecase.TransportLocationUseCase,
	logger *zap.Logger,
) *TransportLocationHandler {
	return &TransportLocationHandler{
		locationUseCase: locationUseCase,
		logger:          logger,
	}
}

// List godoc
// @Summary List transport locations
// @Tags transport-locations
// @Produce json
// @Param categoryId query int false "Filter by category"
// @Param search query string false "Match against address or category name"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TransportLocation}
// @Failure 400 {object} utils.ErrorResponse
// @Router /transport-locations [get]
func (h *TransportLocationHandler) List(c *fiber.Ctx) error {
	categoryID, err := queryInt64(c, "categoryId")
	if err != nil {
		return utils.SendError(c, err)
	}
	params := parseListParams(c)

	locations, err := h.locationUseCase.List(c.Context(), categoryID, params)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, locations, &utils.Meta{
		Total:  len(locations),
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// Nearby godoc
// @Summary Find transport locations near a point
// @Description Returns locations ordered by ascending distance in kilometers
// @Description from the given point. Locations without coordinates are never
// @Description included. Radius requires latitude and longitude.
// @Tags transport-locations
// @Produce json
// @Param latitude query number true "Reference latitude, -90..90"
// @Param longitude query number true "Reference longitude, -180..180"
// @Param radius query number false "Max distance in kilometers, > 0"
// @Param limit query int false "Max results (default 50)"
// @Param categoryId query int false "Filter by category"
// @Param search query string false "Match against address or category name"
// @Success 200 {object} utils.SuccessResponse{data=dto.NearbyResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /transport-locations/nearby [get]
func (h *TransportLocationHandler) Nearby(c *fiber.Ctx) error {
	lat, err := queryFloat(c, "latitude")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	lon, err := queryFloat(c, "longitude")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}
	radius, err := queryFloat(c, "radius")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRadius)
	}

	// A radius without a reference point is meaningless; both coordinates
	// are required before anything reaches the search.
	if lat == nil || lon == nil {
		return utils.SendError(c, errors.ErrInvalidCoordinates)
	}

	categoryID, err := queryInt64(c, "categoryId")
	if err != nil {
		return utils.SendError(c, err)
	}

	req := dto.NearbyRequest{
		Latitude:   *lat,
		Longitude:  *lon,
		Radius:     radius,
		Limit:      c.QueryInt("limit", 0),
		CategoryID: categoryID,
		Search:     c.Query("search"),
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	result, err := h.locationUseCase.Nearby(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	// The meta reports the limit that was applied, not the raw request value.
	limit := req.Limit
	if limit <= 0 {
		limit = domain.DefaultNearbyLimit
	}
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: len(result.Locations),
		Limit: limit,
	})
}

// GetByID godoc
// @Summary Get a transport location by id
// @Tags transport-locations
// @Produce json
// @Param id path int true "Transport location ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.TransportLocation}
// @Failure 404 {object} utils.ErrorResponse
// @Router /transport-locations/{id} [get]
func (h *TransportLocationHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	location, err := h.locationUseCase.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, location, nil)
}

// Create godoc
// @Summary Create a transport location (admin)
// @Tags transport-locations
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateTransportLocationRequest true "Location data"
// @Success 201 {object} utils.SuccessResponse{data=dto.CreatedResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /transport-locations [post]
func (h *TransportLocationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTransportLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	created, err := h.locationUseCase.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, created)
}

// Update godoc
// @Summary Update a transport location (admin)
// @Tags transport-locations
// @Security BearerAuth
// @Accept json
// @Param id path int true "Transport location ID"
// @Param request body dto.UpdateTransportLocationRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /transport-locations/{id} [patch]
func (h *TransportLocationHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateTransportLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	if err := h.locationUseCase.Update(c.Context(), id, req); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// Delete godoc
// @Summary Delete a transport location (admin)
// @Tags transport-locations
// @Security BearerAuth
// @Param id path int true "Transport location ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Router /transport-locations/{id} [delete]
func (h *TransportLocationHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	if err := h.locationUseCase.Delete(c.Context(), id); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}
