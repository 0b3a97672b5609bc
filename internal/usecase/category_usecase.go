package usecase

import (
	"context"

	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/domain/repository"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

type CategoryUseCase struct {
	categoryRepo repository.CategoryRepository
	logger       *zap.Logger
}

func NewCategoryUseCase(
	categoryRepo repository.CategoryRepository,
	logger *zap.Logger,
) *CategoryUseCase {
	return &CategoryUseCase{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (uc *CategoryUseCase) Create(ctx context.Context, req dto.CreateCategoryRequest) (*dto.CreatedResponse, error) {
	id, err := uc.categoryRepo.Create(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	return &dto.CreatedResponse{ID: id}, nil
}

func (uc *CategoryUseCase) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	return uc.categoryRepo.GetByID(ctx, id)
}

func (uc *CategoryUseCase) List(ctx context.Context, params domain.ListParams) ([]*domain.Category, error) {
	return uc.categoryRepo.List(ctx, params)
}

func (uc *CategoryUseCase) Update(ctx context.Context, id int64, req dto.UpdateCategoryRequest) error {
	patch := domain.CategoryPatch{Name: req.Name}
	if patch.IsEmpty() {
		return errors.ErrNoFieldGiven
	}
	return uc.categoryRepo.Update(ctx, id, patch)
}

// Delete removes the category together with its transport locations and
// reports how many locations went with it. Not-found is a distinct outcome
// with zero effects.
func (uc *CategoryUseCase) Delete(ctx context.Context, id int64) (*dto.DeleteCategoryResponse, error) {
	deleted, err := uc.categoryRepo.DeleteCascade(ctx, id)
	if err != nil {
		return nil, err
	}

	uc.logger.Info("Category deleted",
		zap.Int64("id", id),
		zap.Int64("deleted_transport_locations", deleted),
	)

	return &dto.DeleteCategoryResponse{
		DeletedCategory:           true,
		DeletedTransportLocations: deleted,
	}, nil
}
