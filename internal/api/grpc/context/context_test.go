package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/metadata"
)

func TestManager_EnsureRequestID_Generates(t *testing.T) {
	m := NewManager()
	m.newID = func() string { return "generated" }

	ctx, id := m.EnsureRequestID(stdctx.Background())

	assert.Equal(t, "generated", id)
	got, ok := m.RequestIDFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, "generated", got)
}

func TestManager_EnsureRequestID_KeepsIncoming(t *testing.T) {
	m := NewManager()
	md := metadata.New(map[string]string{RequestIDKey: "abc"})
	in := metadata.NewIncomingContext(stdctx.Background(), md)

	ctx, id := m.EnsureRequestID(in)

	assert.Equal(t, "abc", id)
	assert.Equal(t, in, ctx)
}

func TestManager_EnsureRequestID_PreservesOtherMetadata(t *testing.T) {
	m := NewManager()
	md := metadata.New(map[string]string{"x-trace-id": "t", RequestIDKey: "  "})
	in := metadata.NewIncomingContext(stdctx.Background(), md)

	ctx, id := m.EnsureRequestID(in)

	assert.NotEmpty(t, id)
	out, _ := metadata.FromIncomingContext(ctx)
	assert.Equal(t, []string{"t"}, out.Get("x-trace-id"))
	assert.Equal(t, []string{id}, out.Get(RequestIDKey))
	// the caller's metadata is not mutated
	assert.Equal(t, []string{"  "}, md.Get(RequestIDKey))
}

func TestManager_RequestIDFromContext_NotFound(t *testing.T) {
	m := NewManager()

	_, ok := m.RequestIDFromContext(stdctx.Background())

	assert.False(t, ok)
}

func TestManager_RequestIDFromMetadata(t *testing.T) {
	m := NewManager()

	id, ok := m.RequestIDFromMetadata(metadata.Pairs(RequestIDKey, "r-1"))
	assert.True(t, ok)
	assert.Equal(t, "r-1", id)

	_, ok = m.RequestIDFromMetadata(metadata.MD{})
	assert.False(t, ok)
}
