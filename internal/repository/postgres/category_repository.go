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

type categoryRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewCategoryRepository(db *DB) repository.CategoryRepository {
	return &categoryRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *categoryRepository) Create(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.db.QueryRowContext(ctx,
		`INSERT INTO categories (name) VALUES ($1) RETURNING id`, name,
	).Scan(&id)
	if err != nil {
		r.logger.Error("Failed to create category", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	return id, nil
}

func (r *categoryRepository) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var category domain.Category
	err := r.db.GetContext(ctx, &category,
		`SELECT id, name FROM categories WHERE id = $1`, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrCategoryNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get category by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return &category, nil
}

func (r *categoryRepository) ListByIDs(ctx context.Context, ids []int64) ([]*domain.Category, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	categories := make([]*domain.Category, 0, len(ids))
	err := r.db.SelectContext(ctx, &categories,
		`SELECT id, name FROM categories WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		r.logger.Error("Failed to list categories by IDs", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return categories, nil
}

func (r *categoryRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.Category, error) {
	query := `SELECT id, name FROM categories`

	var args []interface{}
	argIdx := 1

	if params.Search != "" {
		query += fmt.Sprintf(" WHERE name ILIKE $%d", argIdx)
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

	categories := make([]*domain.Category, 0)
	if err := r.db.SelectContext(ctx, &categories, query, args...); err != nil {
		r.logger.Error("Failed to list categories", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}
	return categories, nil
}

func (r *categoryRepository) Update(ctx context.Context, id int64, patch domain.CategoryPatch) error {
	if patch.IsEmpty() {
		return errors.ErrNoFieldGiven
	}

	res, err := r.db.ExecContext(ctx,
		`UPDATE categories SET name = $1 WHERE id = $2`, *patch.Name, id)
	if err != nil {
		r.logger.Error("Failed to update category", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrCategoryNotFound
	}

	return nil
}

// DeleteCascade removes a category and every transport location referencing
// it as one transaction. The row lock on the category keeps concurrent
// deletes from observing a partially removed parent; any failure rolls the
// whole operation back.
func (r *categoryRepository) DeleteCascade(ctx context.Context, id int64) (int64, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		r.logger.Error("Failed to begin transaction", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	defer tx.Rollback()

	var exists bool
	err = tx.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM categories WHERE id = $1 FOR UPDATE)`, id)
	if err != nil {
		r.logger.Error("Failed to lock category", zap.Int64("id", id), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}
	if !exists {
		return 0, errors.ErrCategoryNotFound
	}

	res, err := tx.ExecContext(ctx,
		`DELETE FROM transport_locations WHERE category_id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete dependent transport locations",
			zap.Int64("category_id", id), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id); err != nil {
		r.logger.Error("Failed to delete category", zap.Int64("id", id), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	if err := tx.Commit(); err != nil {
		r.logger.Error("Failed to commit cascade delete", zap.Int64("id", id), zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return deleted, nil
}
