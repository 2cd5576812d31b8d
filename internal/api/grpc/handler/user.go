package handler

import (
	"context"

	"github.com/google/uuid"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/carlosebw/crudify/internal/api/grpc/userapi"
	"github.com/carlosebw/crudify/internal/logger"
	"github.com/carlosebw/crudify/internal/model"
	"github.com/carlosebw/crudify/internal/service"
	"github.com/carlosebw/crudify/internal/validation"
)

// UserList is the read side: the cached snapshot of users.
type UserList interface {
	Refresh(ctx context.Context)
	Snapshot() []model.User
	Loading() bool
	Lookup(id uuid.UUID) (model.User, bool)
}

// UserMutator performs validated mutations.
type UserMutator interface {
	Create(ctx context.Context, draft model.Draft) error
	Update(ctx context.Context, id uuid.UUID, patch model.UserPatch) error
	Delete(ctx context.Context, id uuid.UUID) error
	Busy() bool
}

// NotificationSource hands out live notification subscriptions.
type NotificationSource interface {
	Subscribe() (<-chan model.Notification, func())
}

var _ userapi.UserAdminServer = (*User)(nil)

// User handles the UserAdmin gRPC endpoints.
type User struct {
	list          UserList
	mutator       UserMutator
	notifications NotificationSource
	logger        *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(list UserList, mutator UserMutator, notifications NotificationSource, logger *logger.Logger) *User {
	return &User{
		list:          list,
		mutator:       mutator,
		notifications: notifications,
		logger:        logger,
	}
}

func (h *User) ListUsers(ctx context.Context, req *userapi.ListUsersRequest) (*userapi.ListUsersResponse, error) {
	if req.Refresh {
		h.list.Refresh(ctx)
	}

	return &userapi.ListUsersResponse{
		Users:   convertUsers(h.list.Snapshot()),
		Loading: h.list.Loading(),
		Busy:    h.mutator.Busy(),
	}, nil
}

func (h *User) CreateUser(ctx context.Context, req *userapi.CreateUserRequest) (*userapi.MutationResponse, error) {
	draft := model.Draft{
		Name:   req.Name,
		Email:  req.Email,
		Phone:  req.Phone,
		Status: req.Status,
	}

	if err := checkDraft(draft); err != nil {
		return nil, err
	}

	if err := h.mutator.Create(ctx, draft); err != nil {
		h.logger.Debug("User handler: create failed", "error", err.Error())
		return nil, handleError(err)
	}

	return h.mutationResponse(service.MsgCreated), nil
}

// UpdateUser starts from the listed values of the user, overlays the
// supplied fields and saves the whole editable field set.
func (h *User) UpdateUser(ctx context.Context, req *userapi.UpdateUserRequest) (*userapi.MutationResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	current, ok := h.list.Lookup(id)
	if !ok {
		return nil, status.Error(codes.NotFound, msgUserNotFound)
	}

	draft := model.DraftFromUser(current)
	overlay(&draft.Name, req.Name)
	overlay(&draft.Email, req.Email)
	overlay(&draft.Phone, req.Phone)
	overlay(&draft.Status, req.Status)

	if err := checkDraft(draft); err != nil {
		return nil, err
	}

	if err := h.mutator.Update(ctx, id, draft.Patch()); err != nil {
		h.logger.Debug("User handler: update failed", "user_id", id, "error", err.Error())
		return nil, handleError(err)
	}

	return h.mutationResponse(service.MsgUpdated), nil
}

func (h *User) DeleteUser(ctx context.Context, req *userapi.DeleteUserRequest) (*userapi.MutationResponse, error) {
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	if err := h.mutator.Delete(ctx, id); err != nil {
		h.logger.Debug("User handler: delete failed", "user_id", id, "error", err.Error())
		return nil, handleError(err)
	}

	return h.mutationResponse(service.MsgDeleted), nil
}

// WatchNotifications streams notifications until the client goes away.
func (h *User) WatchNotifications(_ *userapi.WatchNotificationsRequest, stream grpc.ServerStreamingServer[userapi.Notification]) error {
	ch, unsubscribe := h.notifications.Subscribe()
	defer unsubscribe()

	ctx := stream.Context()
	for {
		select {
		case <-ctx.Done():
			return nil
		case n, ok := <-ch:
			if !ok {
				return nil
			}
			err := stream.Send(&userapi.Notification{
				Severity: string(n.Severity),
				Message:  n.Message,
				At:       n.At,
			})
			if err != nil {
				return err
			}
		}
	}
}

func (h *User) mutationResponse(message string) *userapi.MutationResponse {
	return &userapi.MutationResponse{
		Message: message,
		Users:   convertUsers(h.list.Snapshot()),
	}
}

// checkDraft runs field validation and the status check. Nothing reaches
// the mutator unless both pass.
func checkDraft(draft model.Draft) error {
	if errs := validation.Validate(draft); !errs.Valid() {
		return invalidDraft(errs)
	}

	if draft.Status != "" {
		if _, err := model.ParseStatus(draft.Status); err != nil {
			return status.Error(codes.InvalidArgument, err.Error())
		}
	}

	return nil
}

func invalidDraft(errs validation.Errors) error {
	br := &errdetails.BadRequest{}
	for _, field := range errs.Fields() {
		br.FieldViolations = append(br.FieldViolations, &errdetails.BadRequest_FieldViolation{
			Field:       field,
			Description: errs[field],
		})
	}

	st := status.New(codes.InvalidArgument, msgInvalidUser)
	withDetails, err := st.WithDetails(br)
	if err != nil {
		return st.Err()
	}
	return withDetails.Err()
}

func parseID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, status.Error(codes.InvalidArgument, msgInvalidID)
	}
	return id, nil
}

func overlay(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

func convertUsers(users []model.User) []userapi.User {
	out := make([]userapi.User, 0, len(users))
	for _, u := range users {
		out = append(out, userapi.User{
			ID:        u.ID.String(),
			Name:      u.Name,
			Email:     u.Email,
			Phone:     u.Phone,
			Status:    string(u.Status),
			CreatedAt: u.CreatedAt,
		})
	}
	return out
}
