// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"time"

	"github.com/canonical/kanban-service/internal/types"
)

type ServiceInterface interface {
	CreateInvite(ctx context.Context, orgID, userID, email string, role types.Role) (*InviteWithLink, error)
	AcceptInvite(ctx context.Context, token, userID string) (*types.Invite, error)
	CancelInvite(ctx context.Context, orgID, inviteID, userID string) error
	ListInvites(ctx context.Context, orgID, userID string) ([]*types.Invite, error)
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error)
	GetInviteByToken(ctx context.Context, token string) (*types.Invite, error)
	HasPendingInvite(ctx context.Context, orgID, email string, now time.Time) (bool, error)
	ListPendingInvites(ctx context.Context, orgID string, now time.Time) ([]*types.Invite, error)
	MarkInviteAccepted(ctx context.Context, inviteID string, when time.Time) error
	DeleteInvite(ctx context.Context, orgID, inviteID string) error
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
	AddMember(ctx context.Context, orgID, userID string, role types.Role) (string, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
}

type AuthzInterface interface {
	CheckOrganizationAccess(ctx context.Context, orgID, userID string, required types.Role) (*types.Membership, error)
}

// InviteWithLink is a created invite together with its accept URL.
type InviteWithLink struct {
	*types.Invite
	Link string `json:"link"`
}
