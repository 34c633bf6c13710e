package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/skvindia/app-portal/internal/logger"
	"github.com/skvindia/app-portal/internal/model"
)

// AuthService defines credential login.
type AuthService interface {
	Login(ctx context.Context, email, password string) (model.Session, error)
}

// PermissionService defines listing the apps a session token grants.
type PermissionService interface {
	List(ctx context.Context, token string) (string, []model.Permission, error)
}

// CookieSettings describes the session cookie.
type CookieSettings struct {
	Name   string
	Secure bool
	MaxAge time.Duration
}

// Auth handles the /api/auth endpoints.
type Auth struct {
	authService       AuthService
	permissionService PermissionService
	cookie            CookieSettings
	logger            *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(
	authService AuthService,
	permissionService PermissionService,
	cookie CookieSettings,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		authService:       authService,
		permissionService: permissionService,
		cookie:            cookie,
		logger:            logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type successResponse struct {
	Success bool `json:"success"`
}

type userResponse struct {
	Email       string             `json:"email"`
	Permissions []model.Permission `json:"permissions"`
}

// Login verifies credentials and sets the session cookie.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debug("Auth handler: malformed login body",
			"error", err.Error())
		handleError(w, model.ErrBadRequest)
		return
	}

	session, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		handleError(w, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(session.Token, session.ExpiresAt))
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

// User returns the caller's email and permitted applications.
func (h *Auth) User(w http.ResponseWriter, r *http.Request) {
	c, err := r.Cookie(h.cookie.Name)
	if err != nil || c.Value == "" {
		writeError(w, http.StatusUnauthorized, msgNotAuthenticated)
		return
	}

	email, perms, err := h.permissionService.List(r.Context(), c.Value)
	if err != nil {
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{Email: email, Permissions: perms})
}

// Logout clears the session cookie. Tokens are stateless, so nothing is revoked.
func (h *Auth) Logout(w http.ResponseWriter, _ *http.Request) {
	c := h.sessionCookie("", time.Unix(0, 0))
	c.MaxAge = -1
	http.SetCookie(w, c)
	writeJSON(w, http.StatusOK, successResponse{Success: true})
}

func (h *Auth) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     h.cookie.Name,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(h.cookie.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   h.cookie.Secure,
		SameSite: http.SameSiteStrictMode,
	}
}
