package notify

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlosebw/crudify/internal/logger"
	"github.com/carlosebw/crudify/internal/mocks"
	"github.com/carlosebw/crudify/internal/model"
)

func TestLog_Notify(t *testing.T) {
	tests := []struct {
		name     string
		severity model.Severity
		level    string
	}{
		{name: "success logs at info", severity: model.SeveritySuccess, level: "level=INFO"},
		{name: "error logs at error", severity: model.SeverityError, level: "level=ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			n := NewLog(logger.NewWithWriter(&buf, 0))

			n.Notify(context.Background(), tt.severity, "user created successfully")

			out := buf.String()
			assert.Contains(t, out, tt.level)
			assert.Contains(t, out, `message="user created successfully"`)
		})
	}
}

func TestMulti_Notify(t *testing.T) {
	ctx := context.Background()
	first := mocks.NewNotifier(t)
	second := mocks.NewNotifier(t)
	first.On("Notify", ctx, model.SeverityError, "failed to load users").Once()
	second.On("Notify", ctx, model.SeverityError, "failed to load users").Once()

	Multi{first, second}.Notify(ctx, model.SeverityError, "failed to load users")
}

func TestHub_Broadcast(t *testing.T) {
	hub := NewHub(4)
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	hub.now = func() time.Time { return at }

	a, unsubA := hub.Subscribe()
	defer unsubA()
	b, unsubB := hub.Subscribe()
	defer unsubB()

	hub.Notify(context.Background(), model.SeveritySuccess, "user deleted successfully")

	want := model.Notification{Severity: model.SeveritySuccess, Message: "user deleted successfully", At: at}
	assert.Equal(t, want, <-a)
	assert.Equal(t, want, <-b)
}

func TestHub_DropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub(1)
	ch, unsub := hub.Subscribe()
	defer unsub()

	hub.Notify(context.Background(), model.SeveritySuccess, "first")
	hub.Notify(context.Background(), model.SeveritySuccess, "second")

	got := <-ch
	assert.Equal(t, "first", got.Message)
	select {
	case n := <-ch:
		t.Fatalf("unexpected notification %q", n.Message)
	default:
	}
}

func TestHub_Unsubscribe(t *testing.T) {
	hub := NewHub(1)
	ch, unsub := hub.Subscribe()
	require.Equal(t, 1, hub.Subscribers())

	unsub()
	unsub()

	assert.Equal(t, 0, hub.Subscribers())
	_, open := <-ch
	assert.False(t, open)

	// no subscribers left; must not panic on the closed channel
	hub.Notify(context.Background(), model.SeverityError, "ignored")
}

func TestNewHub_MinimumBuffer(t *testing.T) {
	hub := NewHub(0)
	ch, unsub := hub.Subscribe()
	defer unsub()

	hub.Notify(context.Background(), model.SeveritySuccess, "kept")

	assert.Equal(t, "kept", (<-ch).Message)
}
