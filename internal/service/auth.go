package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/skvindia/app-portal/internal/logger"
	"github.com/skvindia/app-portal/internal/metrics"
	"github.com/skvindia/app-portal/internal/model"
	"github.com/skvindia/app-portal/internal/telemetry"
)

// Auth verifies employee credentials and issues session tokens.
type Auth struct {
	userStore    model.UserStore
	passwords    PasswordVerifier
	tokenManager model.TokenManager
	metrics      *metrics.Metrics
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	passwords PasswordVerifier,
	tokenManager model.TokenManager,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		passwords:    passwords,
		tokenManager: tokenManager,
		metrics:      metrics,
		logger:       logger,
	}
}

// Login checks email and password against the credential store and issues
// a session token for the user.
func (a *Auth) Login(ctx context.Context, email, password string) (session model.Session, err error) {
	outcome := metrics.OutcomeError
	ctx, span := telemetry.StartLoginSpan(ctx, email)
	defer func() {
		a.metrics.RecordLogin(outcome)
		telemetry.EndSpan(span, outcome, err)
	}()

	if email == "" || password == "" {
		outcome = metrics.OutcomeBadRequest
		return model.Session{}, model.ErrBadRequest
	}

	a.logger.Debug("Auth service: starting user login",
		"email", email)

	user, err := a.userStore.GetByEmail(ctx, email)
	if errors.Is(err, model.ErrNotFound) {
		a.logger.Info("Auth service: user not found",
			"email", email)
		outcome = metrics.OutcomeInvalidCredentials
		return model.Session{}, model.ErrInvalidCredentials
	}
	if err != nil {
		a.logger.Error("Auth service: failed to get user by email",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	ok, err := a.passwords.Verify(user.Password, password)
	if err != nil {
		a.logger.Error("Auth service: failed to verify password",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		a.logger.Info("Auth service: invalid password",
			"email", email)
		outcome = metrics.OutcomeInvalidCredentials
		return model.Session{}, model.ErrInvalidCredentials
	}

	token, expiresAt, err := a.tokenManager.Sign(user.Email)
	if err != nil {
		a.logger.Error("Auth service: failed to sign session token",
			"email", email,
			"error", err.Error())
		return model.Session{}, fmt.Errorf("failed to issue token: %w", err)
	}

	a.logger.Info("Auth service: login successful",
		"email", user.Email)

	outcome = metrics.OutcomeSuccess
	return model.Session{
		Email:     user.Email,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}
