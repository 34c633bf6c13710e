package cmd

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/spf13/cobra"

	grpcrouter "github.com/skvindia/app-portal/internal/api/grpc/router"
	grpcserver "github.com/skvindia/app-portal/internal/api/grpc/server"
	httprouter "github.com/skvindia/app-portal/internal/api/http/router"
	httpserver "github.com/skvindia/app-portal/internal/api/http/server"
	"github.com/skvindia/app-portal/internal/config"
	"github.com/skvindia/app-portal/internal/logger"
	"github.com/skvindia/app-portal/internal/metrics"
	"github.com/skvindia/app-portal/internal/model"
	"github.com/skvindia/app-portal/internal/repository/postgres"
	"github.com/skvindia/app-portal/internal/server"
	"github.com/skvindia/app-portal/internal/service"
	"github.com/skvindia/app-portal/internal/telemetry"
	"github.com/skvindia/app-portal/internal/token"
)

const shutdownTimeout = 10 * time.Second

func newServeCommand(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the portal HTTP server and the gRPC health probe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.NewConfig()
			if err != nil {
				return err
			}
			return serve(cmd.Context(), cfg, info)
		},
	}
}

type listenedServer struct {
	server        model.Server
	securityLayer model.SecurityLayer
}

func serve(ctx context.Context, cfg *config.Config, info BuildInfo) error {
	log := logger.New(cfg.LogLevel, cfg.LogFormat)
	log.Info("Starting app portal",
		"version", info.Version,
		"commit", info.Commit,
		"environment", cfg.Environment)

	shutdownTracing, err := telemetry.InitTraceProvider(ctx, cfg.Telemetry.Endpoint, info.Version)
	if err != nil {
		return fmt.Errorf("failed to initialize tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Error("failed to flush traces", "error", err)
		}
	}()

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN, cfg.Database.Migrate)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}
	defer db.Close()

	m := metrics.New()
	tokenManager := token.NewJWT(cfg.JWT.Secret, token.WithTTL(cfg.JWT.TTL))

	userRepo := postgres.NewUserRepository(db)
	permissionRepo := postgres.NewPermissionRepository(db)

	tokenService := service.NewTokenService(tokenManager, log)
	authService := service.NewAuth(userRepo, service.NewStoredPasswordVerifier(), tokenManager, m, log)
	permissionService := service.NewPermission(tokenService, permissionRepo, m, log)

	handler := httprouter.New(authService, permissionService, tokenService, db, m, httprouter.Config{
		CookieName:      cfg.Session.CookieName,
		SecureCookie:    cfg.IsProduction(),
		SessionTTL:      cfg.JWT.TTL,
		ProtectedPrefix: cfg.Session.ProtectedPrefix,
		LoginPath:       cfg.Session.LoginPath,
		StaticDir:       cfg.HTTP.StaticDir,
	}, log).Register()

	sl := server.NewSecurityLayer(cfg.HTTP.EnableHTTPS, cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)

	servers := []listenedServer{{
		server:        httpserver.NewHTTPServer(handler, ":"+cfg.HTTP.Port),
		securityLayer: sl,
	}}
	if cfg.GRPC.Enabled {
		servers = append(servers, listenedServer{
			server:        grpcserver.NewGRPCServer(grpcrouter.New(db, log).Register(), ":"+cfg.GRPC.Port),
			securityLayer: sl,
		})
	}

	return run(ctx, servers, log)
}

// run starts every server and blocks until ctx is cancelled or one of them
// fails, then stops all of them.
func run(ctx context.Context, servers []listenedServer, log *logger.Logger) error {
	errCh := make(chan error, len(servers))

	var wg sync.WaitGroup
	for _, s := range servers {
		wg.Add(1)
		go func(s listenedServer) {
			defer wg.Done()
			log.Info("Starting server on", "address", s.server.Address())
			if err := s.server.Start(s.securityLayer); err != nil {
				errCh <- fmt.Errorf("server %s: %w", s.server.Address(), err)
			}
		}(s)
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info("received interruption signal, shutting down")
	case runErr = <-errCh:
		log.Error("server failed, shutting down", "error", runErr)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var stopErr error
	for _, s := range servers {
		if err := s.server.Stop(shutdownCtx); err != nil {
			log.Error("error during server shutdown", "error", err, "address", s.server.Address())
			stopErr = errors.Join(stopErr, err)
		}
	}

	wg.Wait()
	log.Info("shutdown complete")

	return errors.Join(runErr, stopErr)
}
