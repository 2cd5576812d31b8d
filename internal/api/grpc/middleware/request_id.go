package middleware

import (
	"context"

	grpcmw "github.com/grpc-ecosystem/go-grpc-middleware/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	grpcctx "github.com/carlosebw/crudify/internal/api/grpc/context"
)

// RequestIDManager assigns request ids to incoming calls.
type RequestIDManager interface {
	EnsureRequestID(ctx context.Context) (context.Context, string)
	RequestIDFromContext(ctx context.Context) (string, bool)
}

// RequestID makes sure every call carries a request id and echoes it back
// in the response header.
type RequestID struct {
	manager RequestIDManager
}

func NewRequestID(manager RequestIDManager) *RequestID {
	return &RequestID{manager: manager}
}

func (m *RequestID) HandleGRPC(ctx context.Context, req any, _ *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	ctx, id := m.manager.EnsureRequestID(ctx)
	// no transport stream outside a real server call
	_ = grpc.SetHeader(ctx, metadata.Pairs(grpcctx.RequestIDKey, id))

	return handler(ctx, req)
}

func (m *RequestID) HandleGRPCStream(srv any, ss grpc.ServerStream, _ *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	ctx, id := m.manager.EnsureRequestID(ss.Context())
	if err := ss.SetHeader(metadata.Pairs(grpcctx.RequestIDKey, id)); err != nil {
		return err
	}

	wrapped := grpcmw.WrapServerStream(ss)
	wrapped.WrappedContext = ctx

	return handler(srv, wrapped)
}
