package usecase

import (
	"context"

	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/domain/repository"
	"github.com/transit-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type FavoriteUseCase struct {
	favoriteRepo repository.FavoriteRepository
	locationRepo repository.TransportLocationRepository
	logger       *zap.Logger
}

func NewFavoriteUseCase(
	favoriteRepo repository.FavoriteRepository,
	locationRepo repository.TransportLocationRepository,
	logger *zap.Logger,
) *FavoriteUseCase {
	return &FavoriteUseCase{
		favoriteRepo: favoriteRepo,
		locationRepo: locationRepo,
		logger:       logger,
	}
}

// Add marks a location as favorite for a user. A duplicate pair is a
// conflict; the existence pre-check surfaces it before the primary-key
// violation would.
func (uc *FavoriteUseCase) Add(ctx context.Context, userID, locationID int64) (*domain.Favorite, error) {
	if _, err := uc.locationRepo.GetByID(ctx, locationID); err != nil {
		return nil, err
	}

	exists, err := uc.favoriteRepo.Exists(ctx, userID, locationID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrFavoriteExists
	}

	if err := uc.favoriteRepo.Create(ctx, userID, locationID); err != nil {
		return nil, err
	}

	return &domain.Favorite{
		UserID:              userID,
		TransportLocationID: locationID,
	}, nil
}

func (uc *FavoriteUseCase) ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	return uc.favoriteRepo.ListByUser(ctx, userID)
}

func (uc *FavoriteUseCase) List(ctx context.Context, params repository.FavoriteListParams) ([]*domain.Favorite, error) {
	return uc.favoriteRepo.List(ctx, params)
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, userID, locationID int64) error {
	return uc.favoriteRepo.Delete(ctx, userID, locationID)
}
