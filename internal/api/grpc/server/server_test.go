package server

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"google.golang.org/grpc"

	"github.com/carlosebw/crudify/internal/mocks"
)

func TestGRPCServer_Address(t *testing.T) {
	s := NewGRPCServer(grpc.NewServer(), ":0")
	assert.Equal(t, ":0", s.Address())
}

func TestGRPCServer_Stop(t *testing.T) {
	s := NewGRPCServer(grpc.NewServer(), ":0")
	err := s.Stop(context.Background())
	assert.NoError(t, err)
}

func TestGRPCServer_Start_ListensAndServes(t *testing.T) {
	t.Parallel()

	gs := grpc.NewServer()
	srv := NewGRPCServer(gs, ":0")
	sec := mocks.NewSecurityLayer(t)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	done := make(chan struct{})
	sec.On("Listen", "tcp", ":0").Return(ln, nil).Run(func(args mock.Arguments) { close(done) })

	served := make(chan error, 1)
	go func() { served <- srv.Start(sec) }()
	<-done
	time.Sleep(10 * time.Millisecond)
	_ = srv.Stop(context.Background())

	assert.NoError(t, <-served)
}

func TestGRPCServer_Start_ListenError(t *testing.T) {
	sec := mocks.NewSecurityLayer(t)
	sec.On("Listen", "tcp", ":0").Return(nil, errors.New("permission denied"))

	err := NewGRPCServer(grpc.NewServer(), ":0").Start(sec)

	assert.ErrorContains(t, err, "failed to listen")
}

func TestGRPCServer_Stop_HonoursDeadline(t *testing.T) {
	s := NewGRPCServer(grpc.NewServer(), ":0")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.NoError(t, s.Stop(ctx))
}
