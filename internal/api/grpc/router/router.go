package router

import (
	"context"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/selector"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"

	"github.com/carlosebw/crudify/internal/api/grpc/handler"
	"github.com/carlosebw/crudify/internal/api/grpc/middleware"
	"github.com/carlosebw/crudify/internal/api/grpc/userapi"
	"github.com/carlosebw/crudify/internal/logger"
)

// Router builds the gRPC server for the user admin API.
type Router struct {
	list           handler.UserList
	mutator        handler.UserMutator
	notifications  handler.NotificationSource
	contextManager middleware.RequestIDManager
	health         *health.Server
	logger         *logger.Logger
}

// New creates new gRPC Router instance.
func New(
	list handler.UserList,
	mutator handler.UserMutator,
	notifications handler.NotificationSource,
	contextManager middleware.RequestIDManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		list:           list,
		mutator:        mutator,
		notifications:  notifications,
		contextManager: contextManager,
		health:         health.NewServer(),
		logger:         logger,
	}
}

// observed excludes health checks and reflection from request ids and logging.
func observed(_ context.Context, c interceptors.CallMeta) bool {
	method := c.FullMethod()
	return !strings.HasPrefix(method, "/grpc.health.v1.Health/") &&
		!strings.HasPrefix(method, "/grpc.reflection.")
}

// Register registers all gRPC services and middleware.
//
// Returns the configured gRPC server instance.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.contextManager, r.logger)
	requestID := middleware.NewRequestID(r.contextManager)
	recoveryOpt := recovery.WithRecoveryHandlerContext(r.recover)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recoveryOpt),
			selector.UnaryServerInterceptor(requestID.HandleGRPC, selector.MatchFunc(observed)),
			selector.UnaryServerInterceptor(logging.HandleGRPC, selector.MatchFunc(observed)),
		),
		grpc.ChainStreamInterceptor(
			recovery.StreamServerInterceptor(recoveryOpt),
			selector.StreamServerInterceptor(requestID.HandleGRPCStream, selector.MatchFunc(observed)),
			selector.StreamServerInterceptor(logging.HandleGRPCStream, selector.MatchFunc(observed)),
		),
	)
	r.registerUserRoutes(s)
	r.registerHealth(s)
	reflection.Register(s)

	return s
}

// Shutdown marks every service as not serving.
func (r *Router) Shutdown() {
	r.health.Shutdown()
}

func (r *Router) registerUserRoutes(server *grpc.Server) {
	userHandler := handler.NewUser(r.list, r.mutator, r.notifications, r.logger)
	userapi.RegisterUserAdminServer(server, userHandler)
}

func (r *Router) registerHealth(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, r.health)
	r.health.SetServingStatus(userapi.ServiceName, healthpb.HealthCheckResponse_SERVING)
}

func (r *Router) recover(ctx context.Context, p any) error {
	r.logger.ErrorContext(ctx, "gRPC handler panicked", "panic", p)
	return status.Error(codes.Internal, "internal server error")
}
