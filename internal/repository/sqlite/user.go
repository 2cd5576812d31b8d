package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/carlosebw/crudify/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository stores users in a sqlite table. created_at is kept as unix
// nanoseconds; rows sharing a timestamp are ordered by insertion.
type UserRepository struct {
	db  *sql.DB
	now func() time.Time
}

type Option func(*UserRepository)

// WithClock overrides the timestamp source used by Insert.
func WithClock(now func() time.Time) Option {
	return func(r *UserRepository) {
		r.now = now
	}
}

func NewUserRepository(db *sql.DB, opts ...Option) *UserRepository {
	r := &UserRepository{
		db:  db,
		now: time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	const query = `SELECT id, name, email, phone, status, created_at
		FROM users ORDER BY created_at DESC, rowid DESC`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	defer rows.Close()

	users := []model.User{}
	for rows.Next() {
		var (
			user    model.User
			status  string
			created int64
		)
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Phone, &status, &created); err != nil {
			return nil, fmt.Errorf("failed to scan user: %w", err)
		}
		user.Status = model.Status(status)
		user.CreatedAt = time.Unix(0, created).UTC()
		users = append(users, user)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate users: %w", err)
	}

	return users, nil
}

func (r *UserRepository) Insert(ctx context.Context, user model.NewUser) (model.User, error) {
	const query = `INSERT INTO users (id, name, email, phone, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	saved := model.User{
		ID:        uuid.New(),
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Status:    user.Status,
		CreatedAt: r.now().UTC(),
	}

	_, err := r.db.ExecContext(ctx, query,
		saved.ID.String(), saved.Name, saved.Email, saved.Phone, string(saved.Status), saved.CreatedAt.UnixNano(),
	)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to insert user: %w", translate(err))
	}

	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, patch model.UserPatch) error {
	const query = `UPDATE users SET
		name = COALESCE(?, name),
		email = COALESCE(?, email),
		phone = COALESCE(?, phone),
		status = COALESCE(?, status)
		WHERE id = ?`

	var status *string
	if patch.Status != nil {
		s := string(*patch.Status)
		status = &s
	}

	res, err := r.db.ExecContext(ctx, query, patch.Name, patch.Email, patch.Phone, status, id.String())
	if err != nil {
		return fmt.Errorf("failed to update user: %w", translate(err))
	}

	return requireAffected(res)
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM users WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}

	return requireAffected(res)
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return model.ErrNotFound
	}
	return nil
}

// translate maps a UNIQUE constraint failure to model.ErrDuplicateEmail.
// email is the only unique column besides the generated id.
func translate(err error) error {
	var sqliteErr *sqlite.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code() == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return errors.Join(model.ErrDuplicateEmail, err)
	}
	return err
}
