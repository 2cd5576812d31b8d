package handler

import (
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/carlosebw/crudify/internal/model"
	"github.com/carlosebw/crudify/internal/service"
)

const (
	msgInvalidUser  = "invalid user"
	msgInvalidID    = "invalid user id"
	msgUserNotFound = "user not found"
	msgInternal     = "internal server error"
)

func handleError(err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return status.Error(codes.NotFound, msgUserNotFound)
	}

	var mutErr *service.MutationError
	if errors.As(err, &mutErr) {
		if mutErr.Duplicate() {
			return status.Error(codes.AlreadyExists, mutErr.Message)
		}
		return status.Error(codes.Internal, mutErr.Message)
	}

	return status.Error(codes.Internal, msgInternal)
}
