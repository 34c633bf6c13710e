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

// Permission lists the applications a session token grants access to.
type Permission struct {
	tokens          *TokenService
	permissionStore model.PermissionStore
	metrics         *metrics.Metrics
	logger          *logger.Logger
}

func NewPermission(
	tokens *TokenService,
	permissionStore model.PermissionStore,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) *Permission {
	return &Permission{
		tokens:          tokens,
		permissionStore: permissionStore,
		metrics:         metrics,
		logger:          logger,
	}
}

// List verifies token and returns the email it belongs to together with the
// user's listable permissions ordered by application name. An empty list is
// not an error.
func (p *Permission) List(ctx context.Context, token string) (email string, perms []model.Permission, err error) {
	outcome := metrics.OutcomeError
	ctx, span := telemetry.StartPermissionSpan(ctx)
	defer func() {
		p.metrics.RecordPermissionLookup(outcome, len(perms))
		telemetry.EndSpan(span, outcome, err)
	}()

	email, err = p.tokens.GetEmail(ctx, token)
	if err != nil {
		outcome = metrics.OutcomeUnauthorized
		return "", nil, err
	}

	stored, err := p.permissionStore.ListByEmail(ctx, email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		p.logger.Error("Permission service: failed to list permissions",
			"email", email,
			"error", err.Error())
		return "", nil, fmt.Errorf("failed to list permissions: %w", err)
	}

	perms = model.ListablePermissions(stored)

	p.logger.Info("Permission service: found permitted apps",
		"email", email,
		"count", len(perms))

	outcome = metrics.OutcomeSuccess
	return email, perms, nil
}
