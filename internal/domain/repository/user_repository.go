package repository

import (
	"context"

	"github.com/transit-directory/internal/domain"
)

// UserRepository persists users. Create and Update expect the password field,
// when present, to already contain the hash.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.UserView, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, params domain.ListParams) ([]*domain.UserView, error)
	Update(ctx context.Context, id int64, patch domain.UserPatch) error
	Delete(ctx context.Context, id int64) error
}
