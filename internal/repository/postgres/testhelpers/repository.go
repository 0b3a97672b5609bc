package testhelpers

import (
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/transit-directory/internal/domain/repository"
	"github.com/transit-directory/internal/repository/postgres"
)

// NewDBForTest creates a postgres.DB with test database and logger
func NewDBForTest(db *sqlx.DB, logger *zap.Logger) *postgres.DB {
	return postgres.NewDBForTest(db, logger)
}

// NewUserRepositoryForTest creates a user repository with test database and logger
func NewUserRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.UserRepository {
	return postgres.NewUserRepository(NewDBForTest(db, logger))
}

// NewCategoryRepositoryForTest creates a category repository with test database and logger
func NewCategoryRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.CategoryRepository {
	return postgres.NewCategoryRepository(NewDBForTest(db, logger))
}

// NewVehicleRepositoryForTest creates a vehicle repository with test database and logger
func NewVehicleRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.VehicleRepository {
	return postgres.NewVehicleRepository(NewDBForTest(db, logger))
}

// NewTransportLocationRepositoryForTest creates a transport location repository with test database and logger
func NewTransportLocationRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.TransportLocationRepository {
	return postgres.NewTransportLocationRepository(NewDBForTest(db, logger))
}

// NewFavoriteRepositoryForTest creates a favorite repository with test database and logger
func NewFavoriteRepositoryForTest(db *sqlx.DB, logger *zap.Logger) repository.FavoriteRepository {
	return postgres.NewFavoriteRepository(NewDBForTest(db, logger))
}
