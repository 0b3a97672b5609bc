package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/transit-directory/internal/domain"
	"github.com/transit-directory/internal/domain/repository"
	"github.com/transit-directory/internal/pkg/errors"
	"github.com/transit-directory/internal/pkg/utils"
	"go.uber.org/zap"
)

type vehicleRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewVehicleRepository(db *DB) repository.VehicleRepository {
	return &vehicleRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *vehicleRepository) Create(ctx context.Context, vehicle *domain.Vehicle) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO vehicles (brand, model) VALUES ($1, $2) RETURNING id`,
		vehicle.Brand, vehicle.Model,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to create vehicle", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return id, nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	var vehicle domain.Vehicle
	err := r.db.GetContext(ctx, &vehicle,
		`SELECT id, brand, model FROM vehicles WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrVehicleNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get vehicle by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &vehicle, nil
}

func (r *vehicleRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Vehicle, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	vehicles := make([]*domain.Vehicle, 0, len(ids))
	err := r.db.SelectContext(ctx, &vehicles,
		`SELECT id, brand, model FROM vehicles WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to list vehicles by IDs", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return vehicles, nil
}

func (r *vehicleRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.Vehicle, error) {
	query := `SELECT id, brand, model FROM vehicles`

	var args []interface{}
	argIdx := 1

	if params.Search != "" {
		query += fmt.Sprintf(" WHERE brand ILIKE $%d OR model ILIKE $%d", argIdx, argIdx)
		args = append(args, utils.ContainsPattern(params.Search))
		argIdx++
	}

	query += " ORDER BY id ASC"

	if params.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, params.Limit)
		argIdx++
	}
	if params.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, params.Offset)
	}

	vehicles := make([]*domain.Vehicle, 0)
	if err := r.db.SelectContext(ctx, &vehicles, query, args...); err != nil {
		r.logger.Error("Failed to list vehicles", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return vehicles, nil
}

func (r *vehicleRepository) Update(ctx context.Context, id int64, patch domain.VehiclePatch) error {
	if patch.IsEmpty() {
		return errors.ErrNoFieldGiven
	}

	query := "UPDATE vehicles SET "
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

	if patch.Brand != nil {
		appendSet("brand", *patch.Brand)
	}
	if patch.Model != nil {
		appendSet("model", *patch.Model)
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to update vehicle", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrVehicleNotFound
	}

	return nil
}

// DeleteCascade removes a vehicle and every transport location referencing it
// as one transaction, mirroring the category cascade.
func (r *vehicleRepository) DeleteCascade(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM vehicles WHERE id = $1 FOR UPDATE)`, id)
	if err != nil {
		r.logger.Error("Failed to lock vehicle", zap.Int64("id", id), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	if !exists {
		return 0, errors.ErrVehicleNotFound
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM transport_locations WHERE vehicle_id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete dependent transport locations",
			zap.Int64("vehicle_id", id), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM vehicles WHERE id = $1`, id); err != nil {
		r.logger.Error("Failed to delete vehicle", zap.Int64("id", id), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit cascade delete", zap.Int64("id", id), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return deleted, nil
}
