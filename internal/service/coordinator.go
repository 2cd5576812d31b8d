package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/carlosebw/crudify/internal/logger"
	"github.com/carlosebw/crudify/internal/model"
)

// User-facing outcome messages.
const (
	MsgCreated        = "user created successfully"
	MsgUpdated        = "user updated successfully"
	MsgDeleted        = "user deleted successfully"
	MsgDuplicateEmail = "this email is already registered"
	MsgCreateFailed   = "failed to create user"
	MsgUpdateFailed   = "failed to update user"
	MsgDeleteFailed   = "failed to delete user"
)

// Refresher reloads the user list after a mutation.
type Refresher interface {
	Refresh(ctx context.Context)
}

// MutationError is returned when a store call fails. Message is the text
// that was shown to the user; Err is the underlying store error.
type MutationError struct {
	Op      model.Operation
	Message string
	Err     error
}

func (e *MutationError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *MutationError) Unwrap() error {
	return e.Err
}

// Duplicate reports whether the failure was a uniqueness violation.
func (e *MutationError) Duplicate() bool {
	return e.Message == MsgDuplicateEmail
}

// Coordinator runs one mutating call against the store, notifies the
// outcome and refreshes the user list after every success.
type Coordinator struct {
	store    model.UserStore
	list     Refresher
	notifier model.Notifier
	metrics  model.MetricsRecorder
	logger   *logger.Logger

	busy atomic.Int64
}

// NewCoordinator creates a Coordinator.
func NewCoordinator(
	store model.UserStore,
	list Refresher,
	notifier model.Notifier,
	metrics model.MetricsRecorder,
	logger *logger.Logger,
) *Coordinator {
	if metrics == nil {
		metrics = model.NoopMetrics{}
	}

	return &Coordinator{
		store:    store,
		list:     list,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
	}
}

// Busy reports whether a mutation is in flight. It is advisory: the
// coordinator never rejects a call because it is busy.
func (c *Coordinator) Busy() bool {
	return c.busy.Load() > 0
}

// Create inserts a user built from the draft.
func (c *Coordinator) Create(ctx context.Context, draft model.Draft) error {
	return c.run(ctx, model.OperationCreate, func(ctx context.Context) error {
		_, err := c.store.Insert(ctx, draft.NewUser())
		return err
	})
}

// Update applies the patch to the user with the given id.
func (c *Coordinator) Update(ctx context.Context, id uuid.UUID, patch model.UserPatch) error {
	return c.run(ctx, model.OperationUpdate, func(ctx context.Context) error {
		return c.store.Update(ctx, id, patch)
	})
}

// Delete removes the user with the given id.
func (c *Coordinator) Delete(ctx context.Context, id uuid.UUID) error {
	return c.run(ctx, model.OperationDelete, func(ctx context.Context) error {
		return c.store.Delete(ctx, id)
	})
}

func (c *Coordinator) run(ctx context.Context, op model.Operation, call func(context.Context) error) error {
	c.busy.Add(1)
	defer c.busy.Add(-1)

	start := time.Now()
	err := call(ctx)
	duration := time.Since(start)

	if err != nil {
		message, outcome := classify(op, err)
		c.metrics.ObserveMutation(op, outcome, duration)
		c.logger.Error("Coordinator: mutation failed",
			"operation", op,
			"outcome", outcome,
			"error", err)
		c.notifier.Notify(ctx, model.SeverityError, message)
		return &MutationError{Op: op, Message: message, Err: err}
	}

	c.metrics.ObserveMutation(op, model.OutcomeSuccess, duration)
	c.logger.Info("Coordinator: mutation succeeded",
		"operation", op,
		"duration_ms", duration.Milliseconds())
	c.notifier.Notify(ctx, model.SeveritySuccess, successMessage(op))
	c.list.Refresh(ctx)

	return nil
}

func classify(op model.Operation, err error) (string, model.Outcome) {
	switch op {
	case model.OperationCreate:
		if errors.Is(err, model.ErrDuplicateEmail) {
			return MsgDuplicateEmail, model.OutcomeDuplicate
		}
		return MsgCreateFailed, model.OutcomeError
	case model.OperationUpdate:
		if errors.Is(err, model.ErrDuplicateEmail) {
			return MsgDuplicateEmail, model.OutcomeDuplicate
		}
		return MsgUpdateFailed, model.OutcomeError
	default:
		return MsgDeleteFailed, model.OutcomeError
	}
}

func successMessage(op model.Operation) string {
	switch op {
	case model.OperationCreate:
		return MsgCreated
	case model.OperationUpdate:
		return MsgUpdated
	default:
		return MsgDeleted
	}
}
