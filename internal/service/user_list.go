package service

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/carlosebw/crudify/internal/logger"
	"github.com/carlosebw/crudify/internal/model"
)

// MsgLoadFailed is the notification emitted when a refresh fails.
const MsgLoadFailed = "failed to load users"

// UserList holds the last fetched snapshot of all users and a loading flag.
// Refresh is the only writer; the snapshot is always replaced wholesale.
type UserList struct {
	store    model.UserStore
	notifier model.Notifier
	metrics  model.MetricsRecorder
	logger   *logger.Logger

	mountOnce sync.Once

	mu       sync.RWMutex
	users    []model.User
	inflight int
	settled  bool
	issued   uint64
	applied  uint64
}

// NewUserList creates an empty UserList. It reports loading until the
// first refresh settles.
func NewUserList(
	store model.UserStore,
	notifier model.Notifier,
	metrics model.MetricsRecorder,
	logger *logger.Logger,
) *UserList {
	if metrics == nil {
		metrics = model.NoopMetrics{}
	}

	return &UserList{
		store:    store,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		users:    []model.User{},
	}
}

// Mount performs the initial refresh. Only the first call has any effect.
func (l *UserList) Mount(ctx context.Context) {
	l.mountOnce.Do(func() {
		l.Refresh(ctx)
	})
}

// Refresh re-fetches the full collection from the store. On failure the
// previous snapshot is kept and an error notification is emitted; the
// error is not returned.
func (l *UserList) Refresh(ctx context.Context) {
	l.mu.Lock()
	l.inflight++
	l.issued++
	gen := l.issued
	l.mu.Unlock()

	start := time.Now()
	users, err := l.store.List(ctx)
	duration := time.Since(start)

	l.mu.Lock()
	l.inflight--
	l.settled = true
	if err == nil && gen > l.applied {
		if users == nil {
			users = []model.User{}
		}
		l.users = users
		l.applied = gen
	}
	size := len(l.users)
	l.mu.Unlock()

	l.metrics.ObserveRefresh(size, err, duration)

	if err != nil {
		l.logger.Error("User list: refresh failed", "error", err)
		l.notifier.Notify(ctx, model.SeverityError, MsgLoadFailed)
		return
	}

	l.logger.Debug("User list: refreshed", "count", len(users), "duration_ms", duration.Milliseconds())
}

// Snapshot returns a copy of the current users in store order.
func (l *UserList) Snapshot() []model.User {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return slices.Clone(l.users)
}

// Loading reports whether the first refresh has not settled yet or a
// refresh is in flight.
func (l *UserList) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return !l.settled || l.inflight > 0
}

// Lookup finds a user in the current snapshot.
func (l *UserList) Lookup(id uuid.UUID) (model.User, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, u := range l.users {
		if u.ID == id {
			return u, true
		}
	}

	return model.User{}, false
}
