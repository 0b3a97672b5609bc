package repository

import (
	"context"

	"github.com/transit-directory/internal/domain"
)

// FavoriteListParams filter the admin-wide favorite listing.
type FavoriteListParams struct {
	UserID *int64
	Limit  int
	Offset int
}

// FavoriteRepository persists (user, location) favorite pairs. Create returns
// the uniqueness-conflict sentinel when the pair already exists.
type FavoriteRepository interface {
	Create(ctx context.Context, userID, locationID int64) error
	Exists(ctx context.Context, userID, locationID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error)
	List(ctx context.Context, params FavoriteListParams) ([]*domain.Favorite, error)
	Delete(ctx context.Context, userID, locationID int64) error
}
