package middleware

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	grpcctx "github.com/carlosebw/crudify/internal/api/grpc/context"
	"github.com/carlosebw/crudify/internal/logger"
	"github.com/carlosebw/crudify/internal/testutil"
)

func TestLogging_HandleGRPC(t *testing.T) {
	t.Parallel()

	lg := NewLogging(grpcctx.NewManager(), testutil.MakeNoopLogger())

	tests := []struct {
		name     string
		handler  grpc.UnaryHandler
		wantCode codes.Code
	}{
		{
			name: "success path",
			handler: func(ctx context.Context, req any) (any, error) {
				time.Sleep(10 * time.Millisecond)
				return "ok", nil
			},
			wantCode: codes.OK,
		},
		{
			name: "grpc error propagates",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, status.Error(codes.InvalidArgument, "bad input")
			},
			wantCode: codes.InvalidArgument,
		},
		{
			name: "non-grpc error becomes Internal",
			handler: func(ctx context.Context, req any) (any, error) {
				return nil, errors.New("boom")
			},
			wantCode: codes.Internal,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := &grpc.UnaryServerInfo{FullMethod: "/svc/Method"}
			resp, err := lg.HandleGRPC(context.Background(), struct{}{}, info, tt.handler)

			if tt.wantCode == codes.OK {
				assert.NoError(t, err)
				assert.Equal(t, "ok", resp)
				return
			}

			st, ok := status.FromError(err)
			gotCode := codes.Internal
			if ok {
				gotCode = st.Code()
			}
			assert.Equal(t, tt.wantCode, gotCode)
		})
	}
}

func TestLogging_IncludesRequestID(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogging(grpcctx.NewManager(), logger.NewWithWriter(&buf, 0))
	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(grpcctx.RequestIDKey, "req-42"))

	_, err := lg.HandleGRPC(ctx, nil, &grpc.UnaryServerInfo{FullMethod: "/crudify.v1.UserAdmin/ListUsers"},
		func(ctx context.Context, req any) (any, error) { return nil, nil })

	assert.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "request_id=req-42")
	assert.Contains(t, out, "method=/crudify.v1.UserAdmin/ListUsers")
	assert.Contains(t, out, "status=OK")
}

type fakeServerStream struct {
	grpc.ServerStream
	ctx    context.Context
	header metadata.MD
}

func (s *fakeServerStream) Context() context.Context { return s.ctx }

func (s *fakeServerStream) SetHeader(md metadata.MD) error {
	s.header = metadata.Join(s.header, md)
	return nil
}

func TestLogging_HandleGRPCStream(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogging(grpcctx.NewManager(), logger.NewWithWriter(&buf, 0))
	ss := &fakeServerStream{ctx: context.Background()}

	err := lg.HandleGRPCStream(nil, ss, &grpc.StreamServerInfo{FullMethod: "/svc/Watch"},
		func(srv any, stream grpc.ServerStream) error { return status.Error(codes.Canceled, "gone") })

	assert.Error(t, err)
	assert.Contains(t, buf.String(), "status=Canceled")
}
