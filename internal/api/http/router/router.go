package router

import (
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/skvindia/app-portal/internal/api/http/handler"
	"github.com/skvindia/app-portal/internal/api/http/middleware"
	"github.com/skvindia/app-portal/internal/logger"
	"github.com/skvindia/app-portal/internal/metrics"
	"github.com/skvindia/app-portal/internal/model"
)

// Config holds the session and static file settings the router needs.
type Config struct {
	CookieName      string
	SecureCookie    bool
	SessionTTL      time.Duration
	ProtectedPrefix string
	LoginPath       string
	StaticDir       string
}

// Router assembles the portal's HTTP routes and middleware.
type Router struct {
	authService       handler.AuthService
	permissionService handler.PermissionService
	tokenService      middleware.TokenService
	pinger            model.Pinger
	metrics           *metrics.Metrics
	config            Config
	logger            *logger.Logger
}

// New creates new HTTP Router instance.
func New(
	authService handler.AuthService,
	permissionService handler.PermissionService,
	tokenService middleware.TokenService,
	pinger model.Pinger,
	metrics *metrics.Metrics,
	config Config,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:       authService,
		permissionService: permissionService,
		tokenService:      tokenService,
		pinger:            pinger,
		metrics:           metrics,
		config:            config,
		logger:            logger,
	}
}

// Register builds the handler tree. Every request passes through request id,
// panic recovery, access logging and the session guard, in that order.
func (r *Router) Register() http.Handler {
	m := mux.NewRouter()

	m.Use(
		middleware.RequestID,
		middleware.NewRecover(r.logger).Handle,
		middleware.NewLogging(r.logger, r.metrics).Handle,
		middleware.NewSessionGuard(
			r.tokenService,
			r.config.CookieName,
			r.config.ProtectedPrefix,
			r.config.LoginPath,
			r.metrics,
			r.logger,
		).Handle,
	)

	r.registerAuthRoutes(m)
	r.registerOpsRoutes(m)
	r.registerStaticRoutes(m)

	return m
}

func (r *Router) registerAuthRoutes(m *mux.Router) {
	authHandler := handler.NewAuth(
		r.authService,
		r.permissionService,
		handler.CookieSettings{
			Name:   r.config.CookieName,
			Secure: r.config.SecureCookie,
			MaxAge: r.config.SessionTTL,
		},
		r.logger,
	)

	api := m.PathPrefix("/api/auth").Subrouter()
	api.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/user", authHandler.User).Methods(http.MethodGet)
	api.HandleFunc("/logout", authHandler.Logout).Methods(http.MethodPost)
}

func (r *Router) registerOpsRoutes(m *mux.Router) {
	healthHandler := handler.NewHealth(r.pinger, r.logger)

	m.HandleFunc("/healthz", healthHandler.Check).Methods(http.MethodGet)
	m.Handle("/metrics", r.metrics.Handler()).Methods(http.MethodGet)
}

// registerStaticRoutes installs a catch-all so middleware, including the
// session guard, also runs for paths without an API route.
func (r *Router) registerStaticRoutes(m *mux.Router) {
	var static http.Handler = http.NotFoundHandler()
	if r.config.StaticDir != "" {
		static = http.FileServer(http.Dir(r.config.StaticDir))
	}
	m.PathPrefix("/").Handler(static)
}
