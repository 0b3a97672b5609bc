package usecase_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/domain/repository"
)

// MockUserRepository is a testify mock of repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetByID(ctx context.Context, id int64) (*domain.UserView, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserView), args.Error(1)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.UserView, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.UserView), args.Error(1)
}

func (m *MockUserRepository) Update(ctx context.Context, id int64, patch domain.UserPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockCategoryRepository is a testify mock of repository.CategoryRepository
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, name string) (int64, error) {
	args := m.Called(ctx, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.Category, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) Update(ctx context.Context, id int64, patch domain.CategoryPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockCategoryRepository) DeleteCascade(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockVehicleRepository is a testify mock of repository.VehicleRepository
type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) (int64, error) {
	args := m.Called(ctx, vehicle)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockVehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Vehicle, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.Vehicle, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) Update(ctx context.Context, id int64, patch domain.VehiclePatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockVehicleRepository) DeleteCascade(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

// MockTransportLocationRepository is a testify mock of repository.TransportLocationRepository
type MockTransportLocationRepository struct {
	mock.Mock
}

func (m *MockTransportLocationRepository) Create(ctx context.Context, loc *domain.TransportLocation) (int64, error) {
	args := m.Called(ctx, loc)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockTransportLocationRepository) GetByID(ctx context.Context, id int64) (*domain.TransportLocation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransportLocation), args.Error(1)
}

func (m *MockTransportLocationRepository) List(ctx context.Context, categoryID *int64, params domain.ListParams) ([]*domain.TransportLocation, error) {
	args := m.Called(ctx, categoryID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.TransportLocation), args.Error(1)
}

func (m *MockTransportLocationRepository) Nearby(ctx context.Context, q domain.NearbyQuery) ([]*domain.NearbyLocation, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.NearbyLocation), args.Error(1)
}

func (m *MockTransportLocationRepository) Update(ctx context.Context, id int64, patch domain.TransportLocationPatch) error {
	args := m.Called(ctx, id, patch)
	return args.Error(0)
}

func (m *MockTransportLocationRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockFavoriteRepository is a testify mock of repository.FavoriteRepository
type MockFavoriteRepository struct {
	mock.Mock
}

func (m *MockFavoriteRepository) Create(ctx context.Context, userID, locationID int64) error {
	args := m.Called(ctx, userID, locationID)
	return args.Error(0)
}

func (m *MockFavoriteRepository) Exists(ctx context.Context, userID, locationID int64) (bool, error) {
	args := m.Called(ctx, userID, locationID)
	return args.Bool(0), args.Error(1)
}

func (m *MockFavoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) List(ctx context.Context, params repository.FavoriteListParams) ([]*domain.Favorite, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Favorite), args.Error(1)
}

func (m *MockFavoriteRepository) Delete(ctx context.Context, userID, locationID int64) error {
	args := m.Called(ctx, userID, locationID)
	return args.Error(0)
}

// MockTokenRepository is a testify mock of repository.TokenRepository
type MockTokenRepository struct {
	mock.Mock
}

func (m *MockTokenRepository) Revoke(ctx context.Context, tokenID string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, ttl)
	return args.Error(0)
}

func (m *MockTokenRepository) IsRevoked(ctx context.Context, tokenID string) (bool, error) {
	args := m.Called(ctx, tokenID)
	return args.Bool(0), args.Error(1)
}

// ptr is fixture sugar for pointer fields
func ptr[T any](v T) *T {
	return &v
}
