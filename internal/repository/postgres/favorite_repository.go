package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/domain/repository"
	"github.com/transit-directory/internal/pkg/errors"
	"go.uber.org/zap"
)

type favoriteRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewFavoriteRepository(db *DB) repository.FavoriteRepository {
	return &favoriteRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *favoriteRepository) Create(ctx context.Context, userID, locationID int64) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO favorites (user_id, transport_location_id) VALUES ($1, $2)`,
		userID, locationID,
	)
	if isUniqueViolation(err) {
		return errors.ErrFavoriteExists
	}
	if err != nil {
		r.logger.Error("Failed to create favorite",
			zap.Int64("user_id", userID),
			zap.Int64("transport_location_id", locationID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}
	return nil
}

func (r *favoriteRepository) Exists(ctx context.Context, userID, locationID int64) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (
			SELECT 1 FROM favorites
			WHERE user_id = $1 AND transport_location_id = $2
		)`,
		userID, locationID,
	)
	if err != nil {
		r.logger.Error("Failed to check favorite existence", zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *favoriteRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Favorite, error) {
	query := `
		SELECT
			f.user_id, f.transport_location_id,
			l.id, l.category_id, l.vehicle_id, l.address, l.latitude, l.longitude,
			c.id, c.name,
			v.id, v.brand, v.model
		FROM favorites f
		JOIN transport_locations l ON l.id = f.transport_location_id
		LEFT JOIN categories c ON c.id = l.category_id
		LEFT JOIN vehicles v ON v.id = l.vehicle_id
		WHERE f.user_id = $1
		ORDER BY f.transport_location_id ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		r.logger.Error("Failed to list favorites by user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	favorites := make([]*domain.Favorite, 0)
	for rows.Next() {
		fav, err := scanFavoriteRow(rows, false)
		if err != nil {
			r.logger.Error("Failed to scan favorite", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate favorites", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return favorites, nil
}

func (r *favoriteRepository) List(
	ctx context.Context,
	params repository.FavoriteListParams,
) ([]*domain.Favorite, error) {
	query := `
		SELECT
			f.user_id, f.transport_location_id,
			l.id, l.category_id, l.vehicle_id, l.address, l.latitude, l.longitude,
			c.id, c.name,
			v.id, v.brand, v.model,
			u.id, u.first_name, u.last_name, u.email, u.is_admin
		FROM favorites f
		JOIN transport_locations l ON l.id = f.transport_location_id
		LEFT JOIN categories c ON c.id = l.category_id
		LEFT JOIN vehicles v ON v.id = l.vehicle_id
		JOIN users u ON u.id = f.user_id
	`

	var args []interface{}
	argIdx := 1

	if params.UserID != nil {
		query += fmt.Sprintf(" WHERE f.user_id = $%d", argIdx)
		args = append(args, *params.UserID)
		argIdx++
	}

	query += " ORDER BY f.user_id ASC, f.transport_location_id ASC"

	if params.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, params.Limit)
		argIdx++
	}
	if params.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, params.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list favorites", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	favorites := make([]*domain.Favorite, 0)
	for rows.Next() {
		fav, err := scanFavoriteRow(rows, true)
		if err != nil {
			r.logger.Error("Failed to scan favorite", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		favorites = append(favorites, fav)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate favorites", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return favorites, nil
}

func (r *favoriteRepository) Delete(ctx context.Context, userID, locationID int64) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM favorites WHERE user_id = $1 AND transport_location_id = $2`,
		userID, locationID,
	)
	if err != nil {
		r.logger.Error("Failed to delete favorite",
			zap.Int64("user_id", userID),
			zap.Int64("transport_location_id", locationID),
			zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrFavoriteNotFound
	}

	return nil
}

func scanFavoriteRow(row rowScanner, withUser bool) (*domain.Favorite, error) {
	var fav domain.Favorite
	var loc domain.TransportLocation
	var catID sql.NullInt64
	var catName sql.NullString
	var vehID sql.NullInt64
	var vehBrand, vehModel sql.NullString

	dest := []interface{}{
		&fav.UserID, &fav.TransportLocationID,
		&loc.ID, &loc.CategoryID, &loc.VehicleID, &loc.Address, &loc.Latitude, &loc.Longitude,
		&catID, &catName,
		&vehID, &vehBrand, &vehModel,
	}

	var user domain.UserView
	if withUser {
		dest = append(dest, &user.ID, &user.FirstName, &user.LastName, &user.Email, &user.IsAdmin)
	}

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	if catID.Valid {
		loc.Category = &domain.Category{ID: catID.Int64, Name: catName.String}
	}
	if vehID.Valid {
		veh := &domain.Vehicle{ID: vehID.Int64}
		if vehBrand.Valid {
			veh.Brand = &vehBrand.String
		}
		if vehModel.Valid {
			veh.Model = &vehModel.String
		}
		loc.Vehicle = veh
	}

	fav.TransportLocation = &loc
	if withUser {
		fav.User = &user
	}

	return &fav, nil
}
