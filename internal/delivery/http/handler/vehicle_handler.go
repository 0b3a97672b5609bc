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

type VehicleHandler struct {
	vehicleUseCase *usecase.VehicleUseCase
	logger         *zap.Logger
}

func NewVehicleHandler(vehicleUseCase *usecase.VehicleUseCase, logger *zap.Logger) *VehicleHandler {
	return &VehicleHandler{
		vehicleUseCase: vehicleUseCase,
		logger:         logger,
	}
}

// List godoc
// @Summary List vehicles
// @Tags vehicles
// @Produce json
// @Param search query string false "Match against brand or model"
// @Param limit query int false "Page size"
// @Param offset query int false "Page offset"
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Vehicle}
// @Failure 500 {object} utils.ErrorResponse
// @Router /vehicles [get]
func (h *VehicleHandler) List(c *fiber.Ctx) error {
	params := parseListParams(c)

	vehicles, err := h.vehicleUseCase.List(c.Context(), params)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, vehicles, &utils.Meta{
		Total:  len(vehicles),
		Limit:  params.Limit,
		Offset: params.Offset,
	})
}

// GetByID godoc
// @Summary Get a vehicle by id
// @Tags vehicles
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} utils.SuccessResponse{data=domain.Vehicle}
// @Failure 404 {object} utils.ErrorResponse
// @Router /vehicles/{id} [get]
func (h *VehicleHandler) GetByID(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	vehicle, err := h.vehicleUseCase.GetByID(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, vehicle, nil)
}

// Create godoc
// @Summary Create a vehicle (admin)
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateVehicleRequest true "Vehicle data"
// @Success 201 {object} utils.SuccessResponse{data=dto.CreatedResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /vehicles [post]
func (h *VehicleHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	created, err := h.vehicleUseCase.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, created)
}

// Update godoc
// @Summary Update a vehicle (admin)
// @Tags vehicles
// @Security BearerAuth
// @Accept json
// @Param id path int true "Vehicle ID"
// @Param request body dto.UpdateVehicleRequest true "Fields to update"
// @Success 204
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /vehicles/{id} [patch]
func (h *VehicleHandler) Update(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	var req dto.UpdateVehicleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.NewValidationError(err.Error()))
	}

	if err := h.vehicleUseCase.Update(c.Context(), id, req); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendNoContent(c)
}

// Delete godoc
// @Summary Delete a vehicle and its transport locations (admin)
// @Tags vehicles
// @Security BearerAuth
// @Produce json
// @Param id path int true "Vehicle ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.DeleteVehicleResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /vehicles/{id} [delete]
func (h *VehicleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.vehicleUseCase.Delete(c.Context(), id)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, result, nil)
}
