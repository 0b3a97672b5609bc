package repository

import (
	"context"

	"github.com/transit-directory/internal/domain"
)

// VehicleRepository persists vehicles. DeleteCascade mirrors the category
// variant: the vehicle and its dependent transport locations go in one
// transaction, returning the dependent count.
type VehicleRepository interface {
	Create(ctx context.Context, vehicle *domain.Vehicle) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*domain.Vehicle, error)
	List(ctx context.Context, params domain.ListParams) ([]*domain.Vehicle, error)
	Update(ctx context.Context, id int64, patch domain.VehiclePatch) error
	DeleteCascade(ctx context.Context, id int64) (int64, error)
}
