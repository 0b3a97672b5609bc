package repository

import (
	"context"

	"github.com/transit-directory/internal/domain"
)

// CategoryRepository persists categories. DeleteCascade removes the category
// together with every transport location referencing it, in one transaction,
// and returns the number of locations removed.
type CategoryRepository interface {
	Create(ctx context.Context, name string) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
	ListByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error)
	List(ctx context.Context, params domain.ListParams) ([]*domain.Category, error)
	Update(ctx context.Context, id int64, patch domain.CategoryPatch) error
	DeleteCascade(ctx context.Context, id int64) (int64, error)
}
