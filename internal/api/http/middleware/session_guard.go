package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/skvindia/app-portal/internal/logger"
	"github.com/skvindia/app-portal/internal/metrics"
)

// TokenService resolves the email carried by a session token.
type TokenService interface {
	GetEmail(ctx context.Context, token string) (string, error)
}

// SessionGuard redirects requests for the protected area to the login page
// unless they carry a valid session cookie.
type SessionGuard struct {
	tokens     TokenService
	cookieName string
	prefix     string
	loginPath  string
	metrics    *metrics.Metrics
	logger     *logger.Logger
}

func NewSessionGuard(
	tokens TokenService,
	cookieName, prefix, loginPath string,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *SessionGuard {
	return &SessionGuard{
		tokens:     tokens,
		cookieName: cookieName,
		prefix:     strings.TrimSuffix(prefix, "/"),
		loginPath:  loginPath,
		metrics:    metrics,
		logger:     logger,
	}
}

// Protects reports whether path falls under the guarded prefix.
// "/portal" and "/portal/..." match, "/portalx" does not.
func (g *SessionGuard) Protects(path string) bool {
	return path == g.prefix || strings.HasPrefix(path, g.prefix+"/")
}

func (g *SessionGuard) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !g.Protects(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		c, err := r.Cookie(g.cookieName)
		if err != nil || c.Value == "" {
			g.metrics.RecordGuardDecision(metrics.GuardMissing)
			g.redirect(w, r)
			return
		}

		email, err := g.tokens.GetEmail(r.Context(), c.Value)
		if err != nil {
			g.logger.Debug("Session guard: rejected session token",
				"path", r.URL.Path,
				"request_id", RequestIDFromContext(r.Context()))
			g.metrics.RecordGuardDecision(metrics.GuardInvalid)
			g.redirect(w, r)
			return
		}

		g.logger.Debug("Session guard: access granted",
			"path", r.URL.Path,
			"email", email)
		g.metrics.RecordGuardDecision(metrics.GuardAllowed)
		next.ServeHTTP(w, r)
	})
}

func (g *SessionGuard) redirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, g.loginPath, http.StatusTemporaryRedirect)
}
