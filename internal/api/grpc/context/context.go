package context

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

// RequestIDKey is the metadata key carrying the request id in both directions.
const RequestIDKey = "x-request-id"

// Manager reads and assigns request ids in gRPC metadata.
type Manager struct {
	newID func() string
}

// NewManager creates a Manager that generates random UUIDs for requests
// arriving without an id.
func NewManager() *Manager {
	return &Manager{
		newID: func() string { return uuid.NewString() },
	}
}

// EnsureRequestID returns ctx unchanged when the incoming metadata already
// carries a request id. Otherwise it stores a fresh id in a copy of the
// incoming metadata.
func (m *Manager) EnsureRequestID(ctx context.Context) (context.Context, string) {
	if id, ok := m.RequestIDFromContext(ctx); ok {
		return ctx, id
	}

	id := m.newID()
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		md = metadata.New(nil)
	} else {
		md = md.Copy()
	}
	md.Set(RequestIDKey, id)

	return metadata.NewIncomingContext(ctx, md), id
}

// RequestIDFromContext retrieves the request id from incoming metadata.
func (m *Manager) RequestIDFromContext(ctx context.Context) (string, bool) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return "", false
	}
	return m.RequestIDFromMetadata(md)
}

// RequestIDFromMetadata retrieves the request id from md. Clients use it on
// response headers.
func (m *Manager) RequestIDFromMetadata(md metadata.MD) (string, bool) {
	ids := md.Get(RequestIDKey)
	if len(ids) == 0 {
		return "", false
	}

	id := strings.TrimSpace(ids[0])
	if id == "" {
		return "", false
	}

	return id, true
}
