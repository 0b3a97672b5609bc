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

type userRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewUserRepository(db *DB) repository.UserRepository {
	return &userRepository{
		db:     db.DB,
		logger: db.logger,
	}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) (int64, error) {
	query := `
		INSERT INTO users (first_name, last_name, email, password, is_admin)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id int64
	err := r.db.QueryRowContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.Password, user.IsAdmin,
	).Scan(&id)

	if isUniqueViolation(err) {
		return 0, errors.ErrEmailTaken
	}
	if err != nil {
		r.logger.Error("Failed to create user", zap.Error(err))
		return 0, errors.ErrDatabaseError
	}

	return id, nil
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.UserView, error) {
	query := `
		SELECT id, first_name, last_name, email, is_admin
		FROM users
		WHERE id = $1
	`

	var user domain.UserView
	err := r.db.GetContext(ctx, &user, query, id)
	if err == sql.ErrNoRows {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get user by ID", zap.Int64("id", id), zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT id, first_name, last_name, email, password, is_admin
		FROM users
		WHERE email = $1
	`

	var user domain.User
	err := r.db.GetContext(ctx, &user, query, email)
	if err == sql.ErrNoRows {
		return nil, errors.ErrUserNotFound
	}
	if err != nil {
		r.logger.Error("Failed to get user by email", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return &user, nil
}

func (r *userRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email)
	if err != nil {
		r.logger.Error("Failed to check user existence", zap.Error(err))
		return false, errors.ErrDatabaseError
	}
	return exists, nil
}

func (r *userRepository) List(ctx context.Context, params domain.ListParams) ([]*domain.UserView, error) {
	query := `
		SELECT id, first_name, last_name, email, is_admin
		FROM users
	`

	var args []interface{}
	argIdx := 1

	if params.Search != "" {
		query += fmt.Sprintf(
			" WHERE first_name ILIKE $%d OR last_name ILIKE $%d OR email ILIKE $%d",
			argIdx, argIdx, argIdx,
		)
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

	users := make([]*domain.UserView, 0)
	if err := r.db.SelectContext(ctx, &users, query, args...); err != nil {
		r.logger.Error("Failed to list users", zap.Error(err))
		return nil, errors.ErrDatabaseError
	}

	return users, nil
}

func (r *userRepository) Update(ctx context.Context, id int64, patch domain.UserPatch) error {
	if patch.IsEmpty() {
		return errors.ErrNoFieldGiven
	}

	query := "UPDATE users SET "
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

	if patch.FirstName != nil {
		appendSet("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		appendSet("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		appendSet("email", *patch.Email)
	}
	if patch.Password != nil {
		appendSet("password", *patch.Password)
	}
	if patch.IsAdmin != nil {
		appendSet("is_admin", *patch.IsAdmin)
	}

	query += fmt.Sprintf(" WHERE id = $%d", argIdx)
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if isUniqueViolation(err) {
		return errors.ErrEmailTaken
	}
	if err != nil {
		r.logger.Error("Failed to update user", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrUserNotFound
	}

	return nil
}

func (r *userRepository) Delete(ctx context.Context, id int64) error {
	// Dependent favorites go with the user via ON DELETE CASCADE.
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		r.logger.Error("Failed to delete user", zap.Int64("id", id), zap.Error(err))
		return errors.ErrDatabaseError
	}

	affected, err := res.RowsAffected()
	if err != nil {
		r.logger.Error("Failed to read affected rows", zap.Error(err))
		return errors.ErrDatabaseError
	}
	if affected == 0 {
		return errors.ErrUserNotFound
	}

	return nil
}
