package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/domain/repository"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/pkg/utils"
	"go.uber.org/zap"
)

type transportLocationRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewTransportLocationRepository(db *DB) repository.TransportLocationRepository {
	return &transportLocationRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *transportLocationRepository) Create(ctx context.Context, loc *domain.TransportLocation) (int64, error) {
	query := `
		INSERT INTO transport_locations (category_id, vehicle_id, address, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		loc.CategoryID, loc.VehicleID, loc.Address, loc.Latitude, loc.Longitude,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to create transport location", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return id, nil
}

// locationColumns is the join used by by-id and list reads so every returned
// location carries its category and vehicle in a single round-trip.
const locationColumns = `
	l.id, l.category_id, l.vehicle_id, l.address, l.latitude, l.longitude,
	c.id, c.name,
	v.id, v.brand, v.model
`

const locationJoins = `
	FROM transport_locations l
	LEFT JOIN categories c ON c.id = l.category_id
	LEFT JOIN vehicles v ON v.id = l.vehicle_id
`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLocationRow(row rowScanner) (*domain.TransportLocation, error) {
	var loc domain.TransportLocation
	var catID sql.NullInt64
	var catName sql.NullString
	var vehID sql.NullInt64
	var vehBrand, vehModel sql.NullString

	err := row.Scan(
		&loc.ID, &loc.CategoryID, &loc.VehicleID, &loc.Address, &loc.Latitude, &loc.Longitude,
		&catID, &catName,
		&vehID, &vehBrand, &vehModel,
	)
	if err != nil {
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

	return &loc, nil
}

func (r *transportLocationRepository) GetByID(ctx context.Context, id int64) (*domain.TransportLocation, error) {
	query := "SELECT " + locationColumns + locationJoins + " WHERE l.id = $1"

	loc, err := scanLocationRow(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.ErrLocationNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get transport location by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return loc, nil
}

func (r *transportLocationRepository) List(
	ctx context.Context,
	categoryID *int64,
	params domain.ListParams,
) ([]*domain.TransportLocation, error) {
	query := "SELECT " + locationColumns + locationJoins + " WHERE 1=1"

	var args []interface{}
	argIdx := 1

	if categoryID != nil {
		query += fmt.Sprintf(" AND l.category_id = $%d", argIdx)
		args = append(args, *categoryID)
		argIdx++
	}

	// Search covers the address and the related category name.
	if params.Search != "" {
		query += fmt.Sprintf(" AND (l.address ILIKE $%d OR c.name ILIKE $%d)", argIdx, argIdx)
		args = append(args, utils.ContainsPattern(params.Search))
		argIdx++
	}

	query += " ORDER BY l.id ASC"

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
		r.logger.Error("Failed to list transport locations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	locations := make([]*domain.TransportLocation, 0)
	for rows.Next() {
		loc, err := scanLocationRow(rows)
		if err != nil {
			r.logger.Error("Failed to scan transport location", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		locations = append(locations, loc)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate transport locations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return locations, nil
}

// Nearby ranks eligible locations by great-circle distance from the
// reference point. The Haversine runs in SQL with every value bound as a
// parameter; the cosine argument is clamped to [-1, 1] so floating-point
// drift cannot push acos out of its domain and produce NaN. The search term
// is both escaped (LIKE metacharacters) and bound, never concatenated. This
// is a sequential scan over the filtered set, acceptable at directory scale.
func (r *transportLocationRepository) Nearby(
	ctx context.Context,
	q domain.NearbyQuery,
) ([]*domain.NearbyLocation, error) {
	query := `
		WITH candidates AS (
			SELECT
				id, category_id, vehicle_id, address, latitude, longitude,
				6371 * acos(
					LEAST(1.0, GREATEST(-1.0,
						cos(radians($1)) * cos(radians(latitude)) *
						cos(radians(longitude) - radians($2)) +
						sin(radians($1)) * sin(radians(latitude))
					))
				) AS distance
			FROM transport_locations
			WHERE latitude IS NOT NULL AND longitude IS NOT NULL
	`

	args := []interface{}{q.Latitude, q.Longitude}
	argIdx := 3

	if q.CategoryID != nil {
		query += fmt.Sprintf(" AND category_id = $%d", argIdx)
		args = append(args, *q.CategoryID)
		argIdx++
	}

	if q.Search != "" {
		query += fmt.Sprintf(" AND address ILIKE $%d", argIdx)
		args = append(args, utils.ContainsPattern(q.Search))
		argIdx++
	}

	query += `
		)
		SELECT id, category_id, vehicle_id, address, latitude, longitude, distance
		FROM candidates
	`

	if q.Radius != nil {
		query += fmt.Sprintf(" WHERE distance <= $%d", argIdx)
		args = append(args, *q.Radius)
		argIdx++
	}

	limit := q.Limit
	if limit <= 0 {
		limit = domain.DefaultNearbyLimit
	}
	query += fmt.Sprintf(" ORDER BY distance ASC LIMIT $%d", argIdx)
	args = append(args, limit)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to rank nearby transport locations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	defer rows.Close()

	results := make([]*domain.NearbyLocation, 0)
	for rows.Next() {
		var loc domain.NearbyLocation
		err := rows.Scan(
			&loc.ID, &loc.CategoryID, &loc.VehicleID,
			&loc.Address, &loc.Latitude, &loc.Longitude, &loc.Distance,
		)
		if err != nil {
			r.logger.Error("Failed to scan nearby location", zap.Error(err))
			return nil, errors.ErrDatabaseError
		}
		results = append(results, &loc)
	}
	if err := rows.Err(); err != nil {
		r.logger.Error("Failed to iterate nearby locations", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return results, nil
}

func (r *transportLocationRepository) Update(
	ctx context.Context,
	id int64,
	patch domain.TransportLocationPatch,
) error {
	if patch.IsEmpty() {
		return errors.ErrNoFieldGiven
	}

	query := "UPDATE transport_locations SET "
	var args []interface{}
	argIdx := 1

	appendSet := func(column string, value interface{}) {
		if argIdx > 1 {
			query += ", "
		}
		query += fmt.Sprintf("%s = $%d", column, argIdx)
		args = append(args, value)
		argIdx++
	}

	if patch.CategoryID != nil {
		appendSet("category_id", *patch.CategoryID)
	}
	if patch.VehicleID != nil {
		appendSet("vehicle_id", *patch.VehicleID)
	}
	if patch.Address != nil {
		appendSet("address", *patch.Address)
	}
	if patch.Latitude != nil {
		appendSet("latitude", *patch.Latitude)
	}
	if patch.Longitude != nil {
		appendSet("longitude", *patch.Longitude)
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update transport location", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrLocationNotFound
	}

	return nil
}

func (r *transportLocationRepository) Delete(ctx context.Context, id int64) error {
	// Favorites referencing the location go with it via ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM transport_locations WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete transport location", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrLocationNotFound
	}

	return nil
}
