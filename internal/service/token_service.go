package service

import (
	"context"

	"github.com/skvindia/app-portal/internal/logger"
	"github.com/skvindia/app-portal/internal/model"
)

// TokenService resolves the identity carried by a session token.
// Every verification failure is reported as model.ErrUnauthorized so
// callers cannot tell an expired token from a forged one.
type TokenService struct {
	manager model.TokenManager
	logger  *logger.Logger
}

func NewTokenService(manager model.TokenManager, logger *logger.Logger) *TokenService {
	return &TokenService{manager: manager, logger: logger}
}

// GetEmail verifies token and returns the email it was issued for.
func (s *TokenService) GetEmail(_ context.Context, token string) (string, error) {
	if token == "" {
		return "", model.ErrUnauthorized
	}

	claims, err := s.manager.Verify(token)
	if err != nil {
		s.logger.Debug("Token service: session token rejected",
			"error", err.Error())
		return "", model.ErrUnauthorized
	}

	return claims.Email, nil
}
