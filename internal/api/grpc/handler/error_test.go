package handler

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/carlosebw/crudify/internal/model"
	"github.com/carlosebw/crudify/internal/service"
)

func TestHandleError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       error
		wantCode codes.Code
		wantMsg  string
	}{
		{
			name:     "duplicate email -> AlreadyExists",
			in:       &service.MutationError{Op: model.OperationCreate, Message: service.MsgDuplicateEmail, Err: model.ErrDuplicateEmail},
			wantCode: codes.AlreadyExists,
			wantMsg:  service.MsgDuplicateEmail,
		},
		{
			name:     "unknown id -> NotFound",
			in:       &service.MutationError{Op: model.OperationDelete, Message: service.MsgDeleteFailed, Err: fmt.Errorf("delete: %w", model.ErrNotFound)},
			wantCode: codes.NotFound,
			wantMsg:  msgUserNotFound,
		},
		{
			name:     "generic mutation failure -> Internal with user message",
			in:       &service.MutationError{Op: model.OperationUpdate, Message: service.MsgUpdateFailed, Err: errors.New("timeout")},
			wantCode: codes.Internal,
			wantMsg:  service.MsgUpdateFailed,
		},
		{
			name:     "other -> Internal",
			in:       errors.New("boom"),
			wantCode: codes.Internal,
			wantMsg:  msgInternal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := handleError(tt.in)
			st, ok := status.FromError(err)
			assert.True(t, ok)
			assert.Equal(t, tt.wantCode, st.Code())
			assert.Equal(t, tt.wantMsg, st.Message())
		})
	}
}
