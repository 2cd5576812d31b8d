package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carlosebw/crudify/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// Option configures a UserRepository.
type Option func(*UserRepository)

// WithClock overrides the clock used for creation timestamps.
func WithClock(now func() time.Time) Option {
	return func(r *UserRepository) {
		r.now = now
	}
}

type entry struct {
	user model.User
	seq  uint64
}

// UserRepository is an in-memory implementation of model.UserStore.
// Emails are unique, as in the database-backed stores.
type UserRepository struct {
	mu      sync.RWMutex
	now     func() time.Time
	nextSeq uint64
	store   map[uuid.UUID]entry
	emails  map[string]uuid.UUID
}

// NewUserRepository creates an empty repository.
func NewUserRepository(opts ...Option) *UserRepository {
	r := &UserRepository{
		now:    func() time.Time { return time.Now().UTC() },
		store:  make(map[uuid.UUID]entry),
		emails: make(map[string]uuid.UUID),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *UserRepository) List(ctx context.Context) ([]model.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	entries := make([]entry, 0, len(r.store))
	for _, e := range r.store {
		entries = append(entries, e)
	}
	r.mu.RUnlock()

	sort.Slice(entries, func(i, j int) bool {
		if !entries[i].user.CreatedAt.Equal(entries[j].user.CreatedAt) {
			return entries[i].user.CreatedAt.After(entries[j].user.CreatedAt)
		}
		return entries[i].seq > entries[j].seq
	})

	users := make([]model.User, 0, len(entries))
	for _, e := range entries {
		users = append(users, e.user)
	}
	return users, nil
}

func (r *UserRepository) Insert(ctx context.Context, user model.NewUser) (model.User, error) {
	if err := ctx.Err(); err != nil {
		return model.User{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.emails[user.Email]; taken {
		return model.User{}, model.ErrDuplicateEmail
	}

	saved := model.User{
		ID:        uuid.New(),
		Name:      user.Name,
		Email:     user.Email,
		Phone:     user.Phone,
		Status:    user.Status,
		CreatedAt: r.now(),
	}
	r.nextSeq++
	r.store[saved.ID] = entry{user: saved, seq: r.nextSeq}
	r.emails[saved.Email] = saved.ID

	return saved, nil
}

func (r *UserRepository) Update(ctx context.Context, id uuid.UUID, patch model.UserPatch) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.store[id]
	if !ok {
		return model.ErrNotFound
	}

	if patch.Email != nil && *patch.Email != e.user.Email {
		if _, taken := r.emails[*patch.Email]; taken {
			return model.ErrDuplicateEmail
		}
		delete(r.emails, e.user.Email)
		e.user.Email = *patch.Email
		r.emails[e.user.Email] = id
	}
	if patch.Name != nil {
		e.user.Name = *patch.Name
	}
	if patch.Phone != nil {
		e.user.Phone = *patch.Phone
	}
	if patch.Status != nil {
		e.user.Status = *patch.Status
	}

	r.store[id] = e
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.store[id]
	if !ok {
		return model.ErrNotFound
	}
	delete(r.emails, e.user.Email)
	delete(r.store, id)
	return nil
}
