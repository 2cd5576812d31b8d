package model

import (
	"context"
	"net"
)

// SecurityLayer opens listeners, either plain or TLS.
type SecurityLayer interface {
	Listen(protocol, addr string) (net.Listener, error)
}

// Server is a long-running network endpoint started and stopped by main.
// Both the gRPC API and the metrics endpoint implement it.
type Server interface {
	Start(securityLayer SecurityLayer) error
	Stop(ctx context.Context) error
	Address() string
}
