// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"

	"github.com/canonical/kanban-service/internal/logging"
	"github.com/canonical/kanban-service/internal/monitoring"
	"github.com/canonical/kanban-service/internal/storage"
	"github.com/canonical/kanban-service/internal/tracing"
	"github.com/canonical/kanban-service/internal/types"
)

// Authorizer gates every organization-scoped operation on membership. Roles
// are ordered, so a required role of "member" admits admins and owners too.
type Authorizer struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ AuthorizerInterface = (*Authorizer)(nil)

func NewAuthorizer(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Authorizer {
	return &Authorizer{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CheckOrganizationAccess runs the checks in a fixed order so callers get
// stable failure modes: a missing organization is always NotFound, while a
// non-member and an insufficient role are both Forbidden.
func (a *Authorizer) CheckOrganizationAccess(ctx context.Context, orgID, userID string, required types.Role) (*types.Membership, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckOrganizationAccess")
	defer span.End()

	if userID == "" {
		return nil, types.ErrUnauthenticated
	}

	if _, err := a.storage.GetOrganizationByID(ctx, orgID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	membership, err := a.storage.GetMembership(ctx, orgID, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			a.logger.Security().AuthzFailure(userID, fmt.Sprintf("organization:%s not a member", orgID))
			return nil, types.ErrForbidden
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	if !membership.Role.AtLeast(required) {
		a.logger.Security().AuthzFailure(userID, fmt.Sprintf("organization:%s requires %s", orgID, required))
		return nil, types.ErrForbidden
	}

	return membership, nil
}

func (a *Authorizer) CheckBoardAccess(ctx context.Context, boardID, userID string, required types.Role) (*types.Board, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckBoardAccess")
	defer span.End()

	board, err := a.storage.GetBoardByID(ctx, boardID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	if _, err := a.CheckOrganizationAccess(ctx, board.OrganizationID, userID, required); err != nil {
		return nil, err
	}

	return board, nil
}
