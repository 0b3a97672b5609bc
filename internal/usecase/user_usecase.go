package usecase

import (
	"context"

	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/domain/repository"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/pkg/password"
	"github.com/transit-directory/internal/usecase/dto"
	"go.uber.org/zap"
)

type UserUseCase struct {
	userRepo repository.UserRepository
	hasher   *password.Hasher
	logger   *zap.Logger
}

func NewUserUseCase(
	userRepo repository.UserRepository,
	hasher *password.Hasher,
	logger *zap.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

// Create is the admin path: isAdmin may be set. Email uniqueness is checked
// ahead of the insert so the caller sees a conflict, not a storage failure.
func (uc *UserUseCase) Create(ctx context.Context, req dto.CreateUserRequest) (*domain.UserView, error) {
	exists, err := uc.userRepo.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, errors.ErrEmailTaken
	}

	hashed, err := uc.hasher.Hash(req.Password)
	if err != nil {
		uc.logger.Error("Failed to hash password", zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	user := &domain.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  hashed,
		IsAdmin:   req.IsAdmin,
	}

	id, err := uc.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}
	user.ID = id

	return user.View(), nil
}

func (uc *UserUseCase) GetByID(ctx context.Context, id int64) (*domain.UserView, error) {
	return uc.userRepo.GetByID(ctx, id)
}

func (uc *UserUseCase) List(ctx context.Context, params domain.ListParams) ([]*domain.UserView, error) {
	return uc.userRepo.List(ctx, params)
}

// Update applies patch semantics: only fields present in the request are
// written. An effectively empty patch fails with the no-field-given sentinel
// before any repository call. allowAdmin gates the isAdmin field to the
// admin route; on the self-service route the field is ignored.
func (uc *UserUseCase) Update(ctx context.Context, id int64, req dto.UpdateUserRequest, allowAdmin bool) error {
	patch := domain.UserPatch{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	}
	if allowAdmin {
		patch.IsAdmin = req.IsAdmin
	}

	if req.Password != nil {
		hashed, err := uc.hasher.Hash(*req.Password)
		if err != nil {
			uc.logger.Error("Failed to hash password", zap.Error(err))
			return errors.ErrInternalServer
		}
		patch.Password = &hashed
	}

	if patch.IsEmpty() {
		return errors.ErrNoFieldGiven
	}

	return uc.userRepo.Update(ctx, id, patch)
}

func (uc *UserUseCase) Delete(ctx context.Context, id int64) error {
	return uc.userRepo.Delete(ctx, id)
}
