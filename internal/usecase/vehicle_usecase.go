package usecase

import (
	"context"

	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/domain/repository"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

type VehicleUseCase struct {
	vehicleRepo repository.VehicleRepository
	logger      *zap.Logger
}

func NewVehicleUseCase(
	vehicleRepo repository.VehicleRepository,
	logger *zap.Logger,
) *VehicleUseCase {
	return &VehicleUseCase{
		vehicleRepo: vehicleRepo,
		logger:      logger,
	}
}

func (uc *VehicleUseCase) Create(ctx context.Context, req dto.CreateVehicleRequest) (*dto.CreatedResponse, error) {
	vehicle := &domain.Vehicle{
		Brand: req.Brand,
		Model: req.Model,
	}

	id, err := uc.vehicleRepo.Create(ctx, vehicle)
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: id}, nil
}

func (uc *VehicleUseCase) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	return uc.vehicleRepo.GetByID(ctx, id)
}

func (uc *VehicleUseCase) List(ctx context.Context, params domain.ListParams) ([]*domain.Vehicle, error) {
	return uc.vehicleRepo.List(ctx, params)
}

func (uc *VehicleUseCase) Update(ctx context.Context, id int64, req dto.UpdateVehicleRequest) error {
	patch := domain.VehiclePatch{
		Brand: req.Brand,
		Model: req.Model,
	}
	if patch.IsEmpty() {
		return errors.ErrNoFieldGiven
	}
	return uc.vehicleRepo.Update(ctx, id, patch)
}

// Delete removes the vehicle together with its transport locations and
// reports how many locations went with it.
func (uc *VehicleUseCase) Delete(ctx context.Context, id int64) (*dto.DeleteVehicleResponse, error) {
	deleted, err := uc.vehicleRepo.DeleteCascade(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Vehicle deleted",
		zap.Int64("id", id),
		zap.Int64("deleted_transport_locations", deleted),
	)

	return &dto.DeleteVehicleResponse{
		DeletedVehicle:            true,
		DeletedTransportLocations: deleted,
	}, nil
}
