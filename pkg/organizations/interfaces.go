// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"

	"github.com/canonical/kanban-service/internal/types"
)

type ServiceInterface interface {
	CreateOrganization(ctx context.Context, userID, name string) (*types.Organization, error)
	ListOrganizations(ctx context.Context, userID string) ([]*types.Organization, error)
	GetOrganization(ctx context.Context, orgID, userID string) (*OrganizationDetail, error)
	DeleteOrganization(ctx context.Context, orgID, userID string) error
	ListMembers(ctx context.Context, orgID, userID string) ([]*types.Membership, error)
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateOrganization(ctx context.Context, name, createdBy string) (*types.Organization, error)
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error
	AddMember(ctx context.Context, orgID, userID string, role types.Role) (string, error)
	ListMembersByOrganizationID(ctx context.Context, orgID string) ([]*types.Membership, error)
}

type AuthzInterface interface {
	CheckOrganizationAccess(ctx context.Context, orgID, userID string, required types.Role) (*types.Membership, error)
}

// OrganizationDetail is an organization annotated with the caller's role.
type OrganizationDetail struct {
	types.Organization
	Role types.Role `json:"role"`
}
