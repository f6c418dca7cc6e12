// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"time"

	"github.com/canonical/kanban-service/internal/types"
)

type StorageInterface interface {
	// Organizations
	CreateOrganization(ctx context.Context, name, createdBy string) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	ListOrganizationsByUserID(ctx context.Context, userID string) ([]*types.Organization, error)
	DeleteOrganization(ctx context.Context, id string) error

	// Memberships
	AddMember(ctx context.Context, orgID, userID string, role types.Role) (string, error)
	GetMembership(ctx context.Context, orgID, userID string) (*types.Membership, error)
	ListMembersByOrganizationID(ctx context.Context, orgID string) ([]*types.Membership, error)

	// Boards
	CreateBoard(ctx context.Context, board *types.Board) (*types.Board, error)
	GetBoardByID(ctx context.Context, id string) (*types.Board, error)
	ListBoardsByOrganizationID(ctx context.Context, orgID string) ([]*types.Board, error)
	DeleteBoard(ctx context.Context, orgID, boardID string) error

	// Lists
	CreateList(ctx context.Context, boardID, title string, sortOrder int64) (*types.List, error)
	GetListByID(ctx context.Context, id string) (*types.List, error)
	ListListsByBoardID(ctx context.Context, boardID string) ([]*types.List, error)
	MaxListSortOrder(ctx context.Context, boardID string) (int64, error)
	UpdateListSortOrder(ctx context.Context, listID string, sortOrder int64) error
	DeleteList(ctx context.Context, boardID, listID string) error

	// Cards
	CreateCard(ctx context.Context, card *types.Card) (*types.Card, error)
	GetCardByID(ctx context.Context, id string) (*types.Card, error)
	ListCardsByListID(ctx context.Context, listID string) ([]*types.Card, error)
	ListCardsByBoardID(ctx context.Context, boardID string) ([]*types.Card, error)
	UpdateCard(ctx context.Context, card *types.Card, paths []string) error
	UpdateCardSortOrder(ctx context.Context, cardID string, sortOrder int64) error
	MoveCard(ctx context.Context, cardID, sourceListID, targetListID string) error
	MaxCardSortOrder(ctx context.Context, listID string) (int64, error)
	DeleteCard(ctx context.Context, listID, cardID string) error

	// Activities
	CreateActivity(ctx context.Context, activity *types.Activity) error
	ListActivitiesByCardID(ctx context.Context, cardID string) ([]*types.Activity, error)

	// Invites
	CreateInvite(ctx context.Context, invite *types.Invite) (*types.Invite, error)
	GetInviteByToken(ctx context.Context, token string) (*types.Invite, error)
	GetInviteByID(ctx context.Context, id string) (*types.Invite, error)
	HasPendingInvite(ctx context.Context, orgID, email string, now time.Time) (bool, error)
	ListPendingInvites(ctx context.Context, orgID string, now time.Time) ([]*types.Invite, error)
	MarkInviteAccepted(ctx context.Context, inviteID string, when time.Time) error
	DeleteInvite(ctx context.Context, orgID, inviteID string) error
}
