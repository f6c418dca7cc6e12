// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"

	"github.com/canonical/kanban-service/internal/types"
)

type AuthorizerInterface interface {
	// CheckOrganizationAccess verifies the user may act on the organization
	// with at least the required role.
	CheckOrganizationAccess(ctx context.Context, orgID, userID string, required types.Role) (*types.Membership, error)
	// CheckBoardAccess resolves the board's organization and verifies access
	// against it. Returns the board so callers avoid a second lookup.
	CheckBoardAccess(ctx context.Context, boardID, userID string, required types.Role) (*types.Board, error)
}

// StorageInterface is the subset of the storage layer the authorizer needs.
type StorageInterface interface {
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
	GetBoardByID(ctx context.Context, id string) (*types.Board, error)
}
