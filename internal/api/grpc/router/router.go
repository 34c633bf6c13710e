package router

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"

	"github.com/skvindia/app-portal/internal/api/grpc/health"
	"github.com/skvindia/app-portal/internal/api/grpc/middleware"
	"github.com/skvindia/app-portal/internal/logger"
	"github.com/skvindia/app-portal/internal/model"
)

// Router registers the portal's gRPC services.
type Router struct {
	pinger model.Pinger
	logger *logger.Logger
}

// New creates new gRPC Router instance.
func New(pinger model.Pinger, logger *logger.Logger) *Router {
	return &Router{
		pinger: pinger,
		logger: logger,
	}
}

// Register builds a gRPC server with logging and panic recovery interceptors
// and the health service attached.
func (r *Router) Register() *grpc.Server {
	logging := middleware.NewLogging(r.logger)

	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logging.HandleGRPC,
			middleware.NewRecovery(r.logger),
		),
	)
	r.registerHealthRoutes(s)

	return s
}

func (r *Router) registerHealthRoutes(server *grpc.Server) {
	grpc_health_v1.RegisterHealthServer(server, health.NewHealth(r.pinger, r.logger))
}
