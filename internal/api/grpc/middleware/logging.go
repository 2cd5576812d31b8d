package middleware

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/carlosebw/crudify/internal/logger"
)

// Logging logs gRPC requests and results.
type Logging struct {
	manager RequestIDManager
	logger  *logger.Logger
}

// NewLogging creates a new Logging middleware.
func NewLogging(manager RequestIDManager, logger *logger.Logger) *Logging {
	return &Logging{manager: manager, logger: logger}
}

// HandleGRPC logs method name, duration and status for each unary request.
func (l *Logging) HandleGRPC(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	start := time.Now()
	log := l.requestLogger(ctx, info.FullMethod)

	log.Debug("gRPC request started")

	resp, err := handler(ctx, req)

	l.completed(log, time.Since(start), err)

	return resp, err
}

// HandleGRPCStream logs streaming calls once they end.
func (l *Logging) HandleGRPCStream(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	start := time.Now()
	log := l.requestLogger(ss.Context(), info.FullMethod)

	log.Debug("gRPC stream opened")

	err := handler(srv, ss)

	l.completed(log, time.Since(start), err)

	return err
}

func (l *Logging) requestLogger(ctx context.Context, method string) *logger.Logger {
	log := l.logger.With("method", method)
	if id, ok := l.manager.RequestIDFromContext(ctx); ok {
		log = log.With("request_id", id)
	}
	return log
}

func (l *Logging) completed(log *logger.Logger, duration time.Duration, err error) {
	statusCode := codes.OK
	if err != nil {
		if st, ok := status.FromError(err); ok {
			statusCode = st.Code()
		} else {
			statusCode = codes.Internal
		}
	}

	log.Info("gRPC request completed",
		"duration_ms", duration.Milliseconds(),
		"status", statusCode.String())

	if err != nil {
		log.Error("gRPC request failed",
			"error", err.Error(),
			"status", statusCode.String())
	}
}
