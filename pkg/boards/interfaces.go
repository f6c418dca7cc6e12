// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package boards

import (
	"context"
	"time"

	"github.com/canonical/kanban-service/internal/types"
)

type ServiceInterface interface {
	CreateBoard(ctx context.Context, orgID, userID string, params CreateBoardParams) (*types.Board, error)
	ListBoards(ctx context.Context, orgID, userID string) ([]*types.Board, error)
	DeleteBoard(ctx context.Context, orgID, boardID, userID string) error

	ListLists(ctx context.Context, boardID, userID string) ([]*types.ListWithCards, error)
	CreateList(ctx context.Context, boardID, userID, title string) (*types.List, error)
	ReorderList(ctx context.Context, boardID, listID, userID string, newIndex int) ([]*types.List, error)
	DeleteList(ctx context.Context, boardID, listID, userID string) error

	CreateCard(ctx context.Context, boardID, listID, userID string, params CreateCardParams) (*types.Card, error)
	UpdateCard(ctx context.Context, boardID, listID, cardID, userID string, params UpdateCardParams) (*types.Card, error)
	DeleteCard(ctx context.Context, boardID, listID, cardID, userID string) error
	ReorderCard(ctx context.Context, boardID, listID, cardID, userID string, newIndex int) ([]*types.Card, error)
	MoveCard(ctx context.Context, boardID, listID, cardID, targetListID, userID string) (*types.Card, error)
	SetCardCompleted(ctx context.Context, boardID, listID, cardID, userID string, completed bool) (*types.Card, error)
	ListCardActivities(ctx context.Context, boardID, listID, cardID, userID string) ([]*types.Activity, error)
}

// StorageInterface is the subset of the storage layer this package needs.
type StorageInterface interface {
	CreateBoard(ctx context.Context, board *types.Board) (*types.Board, error)
	ListBoardsByOrganizationID(ctx context.Context, orgID string) ([]*types.Board, error)
	DeleteBoard(ctx context.Context, orgID, boardID string) error

	CreateList(ctx context.Context, boardID, title string, sortOrder int64) (*types.List, error)
	GetListByID(ctx context.Context, id string) (*types.List, error)
	ListListsByBoardID(ctx context.Context, boardID string) ([]*types.List, error)
	MaxListSortOrder(ctx context.Context, boardID string) (int64, error)
	UpdateListSortOrder(ctx context.Context, listID string, sortOrder int64) error
	DeleteList(ctx context.Context, boardID, listID string) error

	CreateCard(ctx context.Context, card *types.Card) (*types.Card, error)
	GetCardByID(ctx context.Context, id string) (*types.Card, error)
	ListCardsByListID(ctx context.Context, listID string) ([]*types.Card, error)
	ListCardsByBoardID(ctx context.Context, boardID string) ([]*types.Card, error)
	UpdateCard(ctx context.Context, card *types.Card, paths []string) error
	UpdateCardSortOrder(ctx context.Context, cardID string, sortOrder int64) error
	MoveCard(ctx context.Context, cardID, sourceListID, targetListID string) error
	MaxCardSortOrder(ctx context.Context, listID string) (int64, error)
	DeleteCard(ctx context.Context, listID, cardID string) error
}

type AuthzInterface interface {
	CheckOrganizationAccess(ctx context.Context, orgID, userID string, required types.Role) (*types.Membership, error)
	CheckBoardAccess(ctx context.Context, boardID, userID string, required types.Role) (*types.Board, error)
}

// ActivityRecorderInterface is the audit hook invoked on card mutations.
type ActivityRecorderInterface interface {
	Record(ctx context.Context, cardID, actorID string, action types.ActivityAction, detail string)
	ListByCard(ctx context.Context, cardID string) ([]*types.Activity, error)
}

type CreateBoardParams struct {
	Title       string
	Description *string
	Color       string
}

type CreateCardParams struct {
	Title       string
	Description *string
	Priority    types.Priority
	DueDate     *time.Time
}

// UpdateCardParams carries a partial update; nil fields are left untouched.
type UpdateCardParams struct {
	Title       *string
	Description *string
	Priority    *types.Priority
	DueDate     *time.Time
	ClearDue    bool
}
