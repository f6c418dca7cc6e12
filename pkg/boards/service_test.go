// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package boards

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/kanban-service/internal/logging"
	"github.com/canonical/kanban-service/internal/monitoring"
	"github.com/canonical/kanban-service/internal/storage"
	"github.com/canonical/kanban-service/internal/tracing"
	"github.com/canonical/kanban-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package boards -destination ./mock_interfaces.go -source=./interfaces.go

const (
	orgID   = "org-1"
	boardID = "board-1"
	listID  = "list-1"
	cardID  = "card-1"
	userID  = "user-1"
)

func newService(t *testing.T) (*Service, *MockStorageInterface, *MockAuthzInterface, *MockActivityRecorderInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockStorage := NewMockStorageInterface(ctrl)
	mockAuthz := NewMockAuthzInterface(ctrl)
	mockActivity := NewMockActivityRecorderInterface(ctrl)

	service := NewService(mockStorage, mockAuthz, mockActivity, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())
	return service, mockStorage, mockAuthz, mockActivity
}

func memberAccess(mockAuthz *MockAuthzInterface) {
	mockAuthz.EXPECT().CheckBoardAccess(gomock.Any(), boardID, userID, types.RoleMember).
		Return(&types.Board{ID: boardID, OrganizationID: orgID}, nil).AnyTimes()
}

func listOnBoard(mockStorage *MockStorageInterface, id string) *types.List {
	l := &types.List{ID: id, BoardID: boardID, Title: "List " + id}
	mockStorage.EXPECT().GetListByID(gomock.Any(), id).Return(l, nil).AnyTimes()
	return l
}

func TestCreateBoard(t *testing.T) {
	t.Run("Any member can create a board", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		mockAuthz.EXPECT().CheckOrganizationAccess(gomock.Any(), orgID, userID, types.RoleMember).
			Return(&types.Membership{OrganizationID: orgID, UserID: userID, Role: types.RoleMember}, nil)
		mockStorage.EXPECT().CreateBoard(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, b *types.Board) (*types.Board, error) {
				if b.Title != "Roadmap" || b.OrganizationID != orgID || b.CreatedBy != userID {
					t.Errorf("unexpected board: %+v", b)
				}
				b.ID = boardID
				return b, nil
			},
		)

		board, err := service.CreateBoard(context.Background(), orgID, userID, CreateBoardParams{Title: "  Roadmap  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if board.ID != boardID {
			t.Errorf("unexpected board: %+v", board)
		}
	})

	t.Run("Blank title is a validation error", func(t *testing.T) {
		service, _, mockAuthz, _ := newService(t)

		mockAuthz.EXPECT().CheckOrganizationAccess(gomock.Any(), orgID, userID, types.RoleMember).
			Return(&types.Membership{}, nil)

		_, err := service.CreateBoard(context.Background(), orgID, userID, CreateBoardParams{Title: "   "})
		if !errors.Is(err, types.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("Non-members are rejected", func(t *testing.T) {
		service, _, mockAuthz, _ := newService(t)

		mockAuthz.EXPECT().CheckOrganizationAccess(gomock.Any(), orgID, "stranger", types.RoleMember).
			Return(nil, types.ErrForbidden)

		_, err := service.CreateBoard(context.Background(), orgID, "stranger", CreateBoardParams{Title: "Roadmap"})
		if !errors.Is(err, types.ErrForbidden) {
			t.Errorf("expected forbidden, got %v", err)
		}
	})
}

func TestDeleteBoard(t *testing.T) {
	t.Run("Requires the owner role", func(t *testing.T) {
		service, _, mockAuthz, _ := newService(t)

		mockAuthz.EXPECT().CheckOrganizationAccess(gomock.Any(), orgID, userID, types.RoleOwner).
			Return(nil, types.ErrForbidden)

		err := service.DeleteBoard(context.Background(), orgID, boardID, userID)
		if !errors.Is(err, types.ErrForbidden) {
			t.Errorf("expected forbidden, got %v", err)
		}
	})

	t.Run("Owner deletes and missing board maps to not found", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		mockAuthz.EXPECT().CheckOrganizationAccess(gomock.Any(), orgID, userID, types.RoleOwner).
			Return(&types.Membership{Role: types.RoleOwner}, nil)
		mockStorage.EXPECT().DeleteBoard(gomock.Any(), orgID, "gone").Return(storage.ErrNotFound)

		err := service.DeleteBoard(context.Background(), orgID, "gone", userID)
		if !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestCreateList(t *testing.T) {
	t.Run("Appends after the current maximum position", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		mockStorage.EXPECT().MaxListSortOrder(gomock.Any(), boardID).Return(int64(3), nil)
		mockStorage.EXPECT().CreateList(gomock.Any(), boardID, "Doing", int64(4)).
			Return(&types.List{ID: listID, BoardID: boardID, Title: "Doing", SortOrder: 4}, nil)

		list, err := service.CreateList(context.Background(), boardID, userID, " Doing ")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if list.SortOrder != 4 {
			t.Errorf("expected sort order 4, got %d", list.SortOrder)
		}
	})

	t.Run("First list on an empty board gets position 1", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		mockStorage.EXPECT().MaxListSortOrder(gomock.Any(), boardID).Return(int64(0), nil)
		mockStorage.EXPECT().CreateList(gomock.Any(), boardID, "Todo", int64(1)).
			Return(&types.List{ID: listID, SortOrder: 1}, nil)

		if _, err := service.CreateList(context.Background(), boardID, userID, "Todo"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestReorderList(t *testing.T) {
	boardLists := func() []*types.List {
		return []*types.List{
			{ID: "l-a", BoardID: boardID, SortOrder: 1},
			{ID: "l-b", BoardID: boardID, SortOrder: 2},
			{ID: "l-c", BoardID: boardID, SortOrder: 3},
		}
	}

	t.Run("Moves the list and renumbers densely", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		mockStorage.EXPECT().ListListsByBoardID(gomock.Any(), boardID).Return(boardLists(), nil)
		mockStorage.EXPECT().UpdateListSortOrder(gomock.Any(), "l-b", int64(1)).Return(nil)
		mockStorage.EXPECT().UpdateListSortOrder(gomock.Any(), "l-c", int64(2)).Return(nil)
		mockStorage.EXPECT().UpdateListSortOrder(gomock.Any(), "l-a", int64(3)).Return(nil)
		mockStorage.EXPECT().ListListsByBoardID(gomock.Any(), boardID).Return(boardLists(), nil)

		if _, err := service.ReorderList(context.Background(), boardID, "l-a", userID, 2); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Reordering to the current position is a no-op write", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		mockStorage.EXPECT().ListListsByBoardID(gomock.Any(), boardID).Return(boardLists(), nil).Times(2)
		mockStorage.EXPECT().UpdateListSortOrder(gomock.Any(), "l-a", int64(1)).Return(nil)
		mockStorage.EXPECT().UpdateListSortOrder(gomock.Any(), "l-b", int64(2)).Return(nil)
		mockStorage.EXPECT().UpdateListSortOrder(gomock.Any(), "l-c", int64(3)).Return(nil)

		if _, err := service.ReorderList(context.Background(), boardID, "l-b", userID, 1); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Unknown list is not found", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		mockStorage.EXPECT().ListListsByBoardID(gomock.Any(), boardID).Return(boardLists(), nil)

		_, err := service.ReorderList(context.Background(), boardID, "l-x", userID, 0)
		if !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("Target index out of range is a validation error", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		mockStorage.EXPECT().ListListsByBoardID(gomock.Any(), boardID).Return(boardLists(), nil)

		_, err := service.ReorderList(context.Background(), boardID, "l-a", userID, 3)
		if !errors.Is(err, types.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestListLists(t *testing.T) {
	t.Run("Nests cards under their lists in sort order", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		mockStorage.EXPECT().ListListsByBoardID(gomock.Any(), boardID).Return([]*types.List{
			{ID: "l-a", BoardID: boardID, SortOrder: 1},
			{ID: "l-b", BoardID: boardID, SortOrder: 2},
		}, nil)
		mockStorage.EXPECT().ListCardsByBoardID(gomock.Any(), boardID).Return([]*types.Card{
			{ID: "c-1", ListID: "l-b", SortOrder: 1},
			{ID: "c-2", ListID: "l-b", SortOrder: 2},
		}, nil)

		lists, err := service.ListLists(context.Background(), boardID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(lists) != 2 {
			t.Fatalf("expected 2 lists, got %d", len(lists))
		}
		if len(lists[0].Cards) != 0 {
			t.Errorf("expected empty list to have no cards, got %d", len(lists[0].Cards))
		}
		if len(lists[1].Cards) != 2 || lists[1].Cards[0].ID != "c-1" {
			t.Errorf("unexpected cards: %+v", lists[1].Cards)
		}
	})
}

func TestCreateCard(t *testing.T) {
	t.Run("Defaults priority to medium and records an activity", func(t *testing.T) {
		service, mockStorage, mockAuthz, mockActivity := newService(t)

		memberAccess(mockAuthz)
		listOnBoard(mockStorage, listID)
		mockStorage.EXPECT().MaxCardSortOrder(gomock.Any(), listID).Return(int64(0), nil)
		mockStorage.EXPECT().CreateCard(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c *types.Card) (*types.Card, error) {
				if c.Priority != types.PriorityMedium || c.SortOrder != 1 {
					t.Errorf("unexpected card: %+v", c)
				}
				c.ID = cardID
				return c, nil
			},
		)
		mockActivity.EXPECT().Record(gomock.Any(), cardID, userID, types.ActivityCreated, `Card created: "Fix login"`)

		card, err := service.CreateCard(context.Background(), boardID, listID, userID, CreateCardParams{Title: "Fix login"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.ID != cardID {
			t.Errorf("unexpected card: %+v", card)
		}
	})

	t.Run("List from another board is not found", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		mockStorage.EXPECT().GetListByID(gomock.Any(), "foreign").
			Return(&types.List{ID: "foreign", BoardID: "board-2"}, nil)

		_, err := service.CreateCard(context.Background(), boardID, "foreign", userID, CreateCardParams{Title: "X"})
		if !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("Unknown priority is a validation error", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		listOnBoard(mockStorage, listID)

		_, err := service.CreateCard(context.Background(), boardID, listID, userID, CreateCardParams{Title: "X", Priority: "urgent"})
		if !errors.Is(err, types.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestUpdateCard(t *testing.T) {
	t.Run("Updates only the provided fields", func(t *testing.T) {
		service, mockStorage, mockAuthz, mockActivity := newService(t)

		memberAccess(mockAuthz)
		listOnBoard(mockStorage, listID)
		mockStorage.EXPECT().GetCardByID(gomock.Any(), cardID).
			Return(&types.Card{ID: cardID, ListID: listID, Title: "Old", Priority: types.PriorityLow}, nil)
		mockStorage.EXPECT().UpdateCard(gomock.Any(), gomock.Any(), []string{"title", "priority"}).DoAndReturn(
			func(_ context.Context, c *types.Card, _ []string) error {
				if c.Title != "New" || c.Priority != types.PriorityHigh {
					t.Errorf("unexpected card: %+v", c)
				}
				return nil
			},
		)
		mockActivity.EXPECT().Record(gomock.Any(), cardID, userID, types.ActivityUpdated, "Updated title, priority")
		mockStorage.EXPECT().GetCardByID(gomock.Any(), cardID).
			Return(&types.Card{ID: cardID, ListID: listID, Title: "New", Priority: types.PriorityHigh}, nil)

		title := "New"
		priority := types.PriorityHigh
		card, err := service.UpdateCard(context.Background(), boardID, listID, cardID, userID, UpdateCardParams{Title: &title, Priority: &priority})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.Title != "New" {
			t.Errorf("unexpected card: %+v", card)
		}
	})

	t.Run("Clearing the due date wins over a provided value", func(t *testing.T) {
		service, mockStorage, mockAuthz, mockActivity := newService(t)

		memberAccess(mockAuthz)
		listOnBoard(mockStorage, listID)
		due := time.Now().Add(24 * time.Hour)
		mockStorage.EXPECT().GetCardByID(gomock.Any(), cardID).
			Return(&types.Card{ID: cardID, ListID: listID, Title: "X", DueDate: &due}, nil)
		mockStorage.EXPECT().UpdateCard(gomock.Any(), gomock.Any(), []string{"due_date"}).DoAndReturn(
			func(_ context.Context, c *types.Card, _ []string) error {
				if c.DueDate != nil {
					t.Errorf("expected due date cleared, got %v", c.DueDate)
				}
				return nil
			},
		)
		mockActivity.EXPECT().Record(gomock.Any(), cardID, userID, types.ActivityUpdated, "Updated due_date")
		mockStorage.EXPECT().GetCardByID(gomock.Any(), cardID).
			Return(&types.Card{ID: cardID, ListID: listID, Title: "X"}, nil)

		_, err := service.UpdateCard(context.Background(), boardID, listID, cardID, userID, UpdateCardParams{DueDate: &due, ClearDue: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Empty update returns the card without writing", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		listOnBoard(mockStorage, listID)
		mockStorage.EXPECT().GetCardByID(gomock.Any(), cardID).
			Return(&types.Card{ID: cardID, ListID: listID, Title: "X"}, nil)

		card, err := service.UpdateCard(context.Background(), boardID, listID, cardID, userID, UpdateCardParams{})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.ID != cardID {
			t.Errorf("unexpected card: %+v", card)
		}
	})
}

func TestReorderCard(t *testing.T) {
	listCards := func() []*types.Card {
		return []*types.Card{
			{ID: "c-1", ListID: listID, SortOrder: 1},
			{ID: "c-2", ListID: listID, SortOrder: 2},
			{ID: "c-3", ListID: listID, SortOrder: 3},
		}
	}

	t.Run("Moves the card within its list", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		listOnBoard(mockStorage, listID)
		mockStorage.EXPECT().ListCardsByListID(gomock.Any(), listID).Return(listCards(), nil)
		mockStorage.EXPECT().UpdateCardSortOrder(gomock.Any(), "c-3", int64(1)).Return(nil)
		mockStorage.EXPECT().UpdateCardSortOrder(gomock.Any(), "c-1", int64(2)).Return(nil)
		mockStorage.EXPECT().UpdateCardSortOrder(gomock.Any(), "c-2", int64(3)).Return(nil)
		mockStorage.EXPECT().ListCardsByListID(gomock.Any(), listID).Return(listCards(), nil)

		if _, err := service.ReorderCard(context.Background(), boardID, listID, "c-3", userID, 0); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Unknown card is not found", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		listOnBoard(mockStorage, listID)
		mockStorage.EXPECT().ListCardsByListID(gomock.Any(), listID).Return(listCards(), nil)

		_, err := service.ReorderCard(context.Background(), boardID, listID, "c-x", userID, 0)
		if !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestMoveCard(t *testing.T) {
	t.Run("Moves across lists and records the source and target titles", func(t *testing.T) {
		service, mockStorage, mockAuthz, mockActivity := newService(t)

		memberAccess(mockAuthz)
		mockStorage.EXPECT().GetListByID(gomock.Any(), listID).
			Return(&types.List{ID: listID, BoardID: boardID, Title: "Todo"}, nil)
		mockStorage.EXPECT().GetListByID(gomock.Any(), "list-2").
			Return(&types.List{ID: "list-2", BoardID: boardID, Title: "Done"}, nil)
		mockStorage.EXPECT().MoveCard(gomock.Any(), cardID, listID, "list-2").Return(nil)
		mockActivity.EXPECT().Record(gomock.Any(), cardID, userID, types.ActivityMoved, `Moved from "Todo" to "Done"`)
		mockStorage.EXPECT().GetCardByID(gomock.Any(), cardID).
			Return(&types.Card{ID: cardID, ListID: "list-2", SortOrder: 0}, nil)

		card, err := service.MoveCard(context.Background(), boardID, listID, cardID, "list-2", userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if card.ListID != "list-2" {
			t.Errorf("unexpected card: %+v", card)
		}
	})

	t.Run("Target list on another board is a validation error", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		mockStorage.EXPECT().GetListByID(gomock.Any(), listID).
			Return(&types.List{ID: listID, BoardID: boardID}, nil)
		mockStorage.EXPECT().GetListByID(gomock.Any(), "foreign").
			Return(&types.List{ID: "foreign", BoardID: "board-2"}, nil)

		_, err := service.MoveCard(context.Background(), boardID, listID, cardID, "foreign", userID)
		if !errors.Is(err, types.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("Losing the source list race is a conflict", func(t *testing.T) {
		service, mockStorage, mockAuthz, _ := newService(t)

		memberAccess(mockAuthz)
		listOnBoard(mockStorage, listID)
		listOnBoard(mockStorage, "list-2")
		mockStorage.EXPECT().MoveCard(gomock.Any(), cardID, listID, "list-2").Return(storage.ErrNotFound)

		_, err := service.MoveCard(context.Background(), boardID, listID, cardID, "list-2", userID)
		if !errors.Is(err, types.ErrConflict) {
			t.Errorf("expected conflict, got %v", err)
		}
	})
}

func TestDeleteCard(t *testing.T) {
	t.Run("Records the deletion before removing the row", func(t *testing.T) {
		service, mockStorage, mockAuthz, mockActivity := newService(t)

		memberAccess(mockAuthz)
		listOnBoard(mockStorage, listID)
		mockStorage.EXPECT().GetCardByID(gomock.Any(), cardID).
			Return(&types.Card{ID: cardID, ListID: listID, Title: "Old task"}, nil)

		gomock.InOrder(
			mockActivity.EXPECT().Record(gomock.Any(), cardID, userID, types.ActivityDeleted, `Card deleted: "Old task"`),
			mockStorage.EXPECT().DeleteCard(gomock.Any(), listID, cardID).Return(nil),
		)

		if err := service.DeleteCard(context.Background(), boardID, listID, cardID, userID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestSetCardCompleted(t *testing.T) {
	t.Run("Marks complete and records it", func(t *testing.T) {
		service, mockStorage, mockAuthz, mockActivity := newService(t)

		memberAccess(mockAuthz)
		listOnBoard(mockStorage, listID)
		mockStorage.EXPECT().GetCardByID(gomock.Any(), cardID).
			Return(&types.Card{ID: cardID, ListID: listID, Title: "X"}, nil)
		mockStorage.EXPECT().UpdateCard(gomock.Any(), gomock.Any(), []string{"completed"}).Return(nil)
		mockActivity.EXPECT().Record(gomock.Any(), cardID, userID, types.ActivityUpdated, "Marked as complete")
		mockStorage.EXPECT().GetCardByID(gomock.Any(), cardID).
			Return(&types.Card{ID: cardID, ListID: listID, Title: "X", Completed: true}, nil)

		card, err := service.SetCardCompleted(context.Background(), boardID, listID, cardID, userID, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !card.Completed {
			t.Errorf("expected card completed, got %+v", card)
		}
	})
}

func TestListCardActivities(t *testing.T) {
	t.Run("Returns the card history newest first", func(t *testing.T) {
		service, mockStorage, mockAuthz, mockActivity := newService(t)

		memberAccess(mockAuthz)
		listOnBoard(mockStorage, listID)
		mockStorage.EXPECT().GetCardByID(gomock.Any(), cardID).
			Return(&types.Card{ID: cardID, ListID: listID}, nil)
		mockActivity.EXPECT().ListByCard(gomock.Any(), cardID).Return([]*types.Activity{
			{ID: "a-2", CardID: cardID, Action: types.ActivityMoved},
			{ID: "a-1", CardID: cardID, Action: types.ActivityCreated},
		}, nil)

		activities, err := service.ListCardActivities(context.Background(), boardID, listID, cardID, userID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(activities) != 2 || activities[0].ID != "a-2" {
			t.Errorf("unexpected activities: %+v", activities)
		}
	})

	t.Run("Storage failure surfaces as an error", func(t *testing.T) {
		service, mockStorage, mockAuthz, mockActivity := newService(t)

		memberAccess(mockAuthz)
		listOnBoard(mockStorage, listID)
		mockStorage.EXPECT().GetCardByID(gomock.Any(), cardID).
			Return(&types.Card{ID: cardID, ListID: listID}, nil)
		mockActivity.EXPECT().ListByCard(gomock.Any(), cardID).Return(nil, fmt.Errorf("boom"))

		if _, err := service.ListCardActivities(context.Background(), boardID, listID, cardID, userID); err == nil {
			t.Error("expected error")
		}
	})
}
