package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/carlosebw/crudify/internal/model"
)

// uniqueViolation is the SQLSTATE for unique_violation.
const uniqueViolation = "23505"

var _ model.UserStore = (*UserRepository)(nil)

type UserRepository struct {
	db querier
}

func NewUserRepository(db *Connection) *UserRepository {
	return &UserRepository{
		db: db,
	}
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	query := `SELECT id, name, email, phone, status, created_at
			  FROM users ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var (
			user   model.User
			status string
		)
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &status, &user.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		user.Status = model.Status(status)
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Insert(ctx context.Context, user model.NewUser) (model.User, error) {
	query := `INSERT INTO users (name, email, phone, status)
			  VALUES ($1, $2, $3, $4)
			  RETURNING id, name, email, phone, status, created_at`

	var (
		saved  model.User
		status string
	)
	err := r.db.QueryRow(ctx, query,
		user.Name, user.Email, user.Phone, string(user.Status),
	).Scan(
		&saved.ID, &saved.Name, &saved.Email, &saved.Phone, &status, &saved.CreatedAt,
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to insert user: %w", translate(err))
	}
	saved.Status = model.Status(status)

	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, patch model.UserPatch) error {
	query := `UPDATE users SET
				name = COALESCE($2, name),
				email = COALESCE($3, email),
				phone = COALESCE($4, phone),
				status = COALESCE($5, status)
			  WHERE id = $1`

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	cmd, err := r.db.Exec(ctx, query, id, patch.Name, patch.Email, patch.Phone, status)
	if err != nil {
		return fmt.Errorf("failed to update user: %w", translate(err))
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = $1`

	cmd, err := r.db.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return model.ErrNotFound
	}

	return nil
}

// translate maps a unique violation on users to model.ErrDuplicateEmail,
// keeping the driver error in the chain.
func translate(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return errors.Join(model.ErrDuplicateEmail, err)
	}
	return err
}
