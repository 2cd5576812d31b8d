package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	grpcctx "github.com/carlosebw/crudify/internal/api/grpc/context"
	"github.com/carlosebw/crudify/internal/api/grpc/router"
	grpcServer "github.com/carlosebw/crudify/internal/api/grpc/server"
	"github.com/carlosebw/crudify/internal/config"
	"github.com/carlosebw/crudify/internal/logger"
	"github.com/carlosebw/crudify/internal/metrics"
	"github.com/carlosebw/crudify/internal/model"
	"github.com/carlosebw/crudify/internal/notify"
	"github.com/carlosebw/crudify/internal/repository/memory"
	"github.com/carlosebw/crudify/internal/repository/postgres"
	"github.com/carlosebw/crudify/internal/repository/sqlite"
	"github.com/carlosebw/crudify/internal/server"
	"github.com/carlosebw/crudify/internal/service"

	"github.com/carlosebw/crudify/database"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)
	database.SetLogger(logger.With("component", "migrations"))

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err, "driver", cfg.Store.Driver)
	}
	defer closeStore()

	hub := notify.NewHub(cfg.Notifications.BufferSize)
	notifier := notify.Multi{notify.NewLog(logger.With("component", "notifications")), hub}

	var (
		recorder model.MetricsRecorder = model.NoopMetrics{}
		servers  []model.Server
	)
	if cfg.Metrics.Enabled {
		reg := metrics.NewRegistry()
		recorder = metrics.NewRecorder(reg)
		servers = append(servers, metrics.NewHTTPServer(reg, cfg.Metrics.Addr))
	}

	userList := service.NewUserList(store, notifier, recorder, logger.With("component", "user_list"))
	userList.Mount(ctx)
	coordinator := service.NewCoordinator(store, userList, notifier, recorder, logger.With("component", "coordinator"))

	r := router.New(userList, coordinator, hub, grpcctx.NewManager(), logger)
	api := grpcServer.NewGRPCServer(r.Register(), fmt.Sprintf(":%s", cfg.GRPC.Port))
	servers = append([]model.Server{api}, servers...)

	sl := server.NewSecurityLayer(cfg.GRPC.EnableHTTPS, cfg.GRPC.CertFileName, cfg.GRPC.PrivateKeyFileName)

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s model.Server) {
			defer wg.Done()
			logger.Info("Starting server on", "address", s.Address())
			if err := s.Start(sl); err != nil {
				logger.Error("failed to start server", "error", err, "address", s.Address())
				stop()
			}
		}(s)
	}

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")
	r.Shutdown()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	for _, s := range servers {
		if err := s.Stop(shutdownCtx); err != nil {
			logger.Error("error during server shutdown", "error", err, "address", s.Address())
		}
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

// openStore returns the configured user store and a func releasing it.
func openStore(ctx context.Context, cfg *config.Config) (model.UserStore, func(), error) {
	switch cfg.Store.Driver {
	case config.DriverPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
		if err != nil {
			return nil, nil, err
		}
		return postgres.NewUserRepository(db), func() { _ = db.Close() }, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLite.Path)
		if err != nil {
			return nil, nil, err
		}
		return sqlite.NewUserRepository(db), func() { _ = db.Close() }, nil
	case config.DriverMemory:
		return memory.NewUserRepository(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported store driver %q", cfg.Store.Driver)
	}
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
