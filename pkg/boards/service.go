// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package boards

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/canonical/kanban-service/internal/logging"
	"github.com/canonical/kanban-service/internal/monitoring"
	"github.com/canonical/kanban-service/internal/storage"
	"github.com/canonical/kanban-service/internal/tracing"
	"github.com/canonical/kanban-service/internal/types"
	"github.com/canonical/kanban-service/pkg/ordering"
)

type Service struct {
	storage  StorageInterface
	authz    AuthzInterface
	activity ActivityRecorderInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	activity ActivityRecorderInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		activity: activity,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) CreateBoard(ctx context.Context, orgID, userID string, params CreateBoardParams) (*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.CreateBoard")
	defer span.End()

	if _, err := s.authz.CheckOrganizationAccess(ctx, orgID, userID, types.RoleMember); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: board title is required", types.ErrValidation)
	}

	board, err := s.storage.CreateBoard(ctx, &types.Board{
		OrganizationID: orgID,
		Title:          title,
		Description:    params.Description,
		Color:          params.Color,
		CreatedBy:      userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return board, nil
}

func (s *Service) ListBoards(ctx context.Context, orgID, userID string) ([]*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.ListBoards")
	defer span.End()

	if _, err := s.authz.CheckOrganizationAccess(ctx, orgID, userID, types.RoleMember); err != nil {
		return nil, err
	}

	return s.storage.ListBoardsByOrganizationID(ctx, orgID)
}

func (s *Service) DeleteBoard(ctx context.Context, orgID, boardID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "boards.Service.DeleteBoard")
	defer span.End()

	if _, err := s.authz.CheckOrganizationAccess(ctx, orgID, userID, types.RoleOwner); err != nil {
		return err
	}

	// Lists, cards and activities cascade with the board.
	if err := s.storage.DeleteBoard(ctx, orgID, boardID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return fmt.Errorf("failed to delete board: %w", err)
	}

	return nil
}

// ListLists returns the board's lists with their cards nested, both in
// sort order.
func (s *Service) ListLists(ctx context.Context, boardID, userID string) ([]*types.ListWithCards, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.ListLists")
	defer span.End()

	if _, err := s.authz.CheckBoardAccess(ctx, boardID, userID, types.RoleMember); err != nil {
		return nil, err
	}

	lists, err := s.storage.ListListsByBoardID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}

	cards, err := s.storage.ListCardsByBoardID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	byList := make(map[string][]*types.Card, len(lists))
	for _, c := range cards {
		byList[c.ListID] = append(byList[c.ListID], c)
	}

	out := make([]*types.ListWithCards, len(lists))
	for i, l := range lists {
		out[i] = &types.ListWithCards{List: *l, Cards: byList[l.ID]}
		if out[i].Cards == nil {
			out[i].Cards = []*types.Card{}
		}
	}

	return out, nil
}

func (s *Service) CreateList(ctx context.Context, boardID, userID, title string) (*types.List, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.CreateList")
	defer span.End()

	if _, err := s.authz.CheckBoardAccess(ctx, boardID, userID, types.RoleMember); err != nil {
		return nil, err
	}

	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: list title is required", types.ErrValidation)
	}

	// Position is read fresh on every append. Concurrent appends may tie;
	// the secondary created_at ordering keeps results stable.
	max, err := s.storage.MaxListSortOrder(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to read list positions: %w", err)
	}

	list, err := s.storage.CreateList(ctx, boardID, title, ordering.Next(max))
	if err != nil {
		return nil, fmt.Errorf("failed to create list: %w", err)
	}

	return list, nil
}

func (s *Service) ReorderList(ctx context.Context, boardID, listID, userID string, newIndex int) ([]*types.List, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.ReorderList")
	defer span.End()

	if _, err := s.authz.CheckBoardAccess(ctx, boardID, userID, types.RoleMember); err != nil {
		return nil, err
	}

	lists, err := s.storage.ListListsByBoardID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}

	ids := make([]string, len(lists))
	for i, l := range lists {
		ids[i] = l.ID
	}

	from := ordering.IndexOf(ids, listID)
	if from == -1 {
		return nil, types.ErrNotFound
	}

	moved, err := ordering.Move(ids, from, newIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrValidation, err)
	}

	for _, p := range ordering.Renumber(moved) {
		if err := s.storage.UpdateListSortOrder(ctx, p.ID, p.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to persist list order: %w", err)
		}
	}

	reordered, err := s.storage.ListListsByBoardID(ctx, boardID)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	return reordered, nil
}

func (s *Service) DeleteList(ctx context.Context, boardID, listID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "boards.Service.DeleteList")
	defer span.End()

	if _, err := s.authz.CheckBoardAccess(ctx, boardID, userID, types.RoleMember); err != nil {
		return err
	}

	if err := s.storage.DeleteList(ctx, boardID, listID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return fmt.Errorf("failed to delete list: %w", err)
	}

	return nil
}

// listInBoard resolves a list and verifies it belongs to the board.
func (s *Service) listInBoard(ctx context.Context, boardID, listID string) (*types.List, error) {
	list, err := s.storage.GetListByID(ctx, listID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get list: %w", err)
	}
	if list.BoardID != boardID {
		return nil, types.ErrNotFound
	}
	return list, nil
}

// cardInList resolves a card and verifies it belongs to the list.
func (s *Service) cardInList(ctx context.Context, listID, cardID string) (*types.Card, error) {
	card, err := s.storage.GetCardByID(ctx, cardID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}
	if card.ListID != listID {
		return nil, types.ErrNotFound
	}
	return card, nil
}

func (s *Service) CreateCard(ctx context.Context, boardID, listID, userID string, params CreateCardParams) (*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.CreateCard")
	defer span.End()

	if _, err := s.authz.CheckBoardAccess(ctx, boardID, userID, types.RoleMember); err != nil {
		return nil, err
	}

	if _, err := s.listInBoard(ctx, boardID, listID); err != nil {
		return nil, err
	}

	title := strings.TrimSpace(params.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: card title is required", types.ErrValidation)
	}

	priority := params.Priority
	if priority == "" {
		priority = types.PriorityMedium
	}
	if !priority.Valid() {
		return nil, fmt.Errorf("%w: unknown priority %q", types.ErrValidation, priority)
	}

	max, err := s.storage.MaxCardSortOrder(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to read card positions: %w", err)
	}

	card, err := s.storage.CreateCard(ctx, &types.Card{
		ListID:      listID,
		Title:       title,
		Description: params.Description,
		Priority:    priority,
		DueDate:     params.DueDate,
		SortOrder:   ordering.Next(max),
		CreatedBy:   userID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create card: %w", err)
	}

	s.activity.Record(ctx, card.ID, userID, types.ActivityCreated, fmt.Sprintf("Card created: %q", card.Title))

	return card, nil
}

func (s *Service) UpdateCard(ctx context.Context, boardID, listID, cardID, userID string, params UpdateCardParams) (*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.UpdateCard")
	defer span.End()

	if _, err := s.authz.CheckBoardAccess(ctx, boardID, userID, types.RoleMember); err != nil {
		return nil, err
	}
	if _, err := s.listInBoard(ctx, boardID, listID); err != nil {
		return nil, err
	}

	card, err := s.cardInList(ctx, listID, cardID)
	if err != nil {
		return nil, err
	}

	var paths []string
	if params.Title != nil {
		title := strings.TrimSpace(*params.Title)
		if title == "" {
			return nil, fmt.Errorf("%w: card title is required", types.ErrValidation)
		}
		card.Title = title
		paths = append(paths, "title")
	}
	if params.Description != nil {
		card.Description = params.Description
		paths = append(paths, "description")
	}
	if params.Priority != nil {
		if !params.Priority.Valid() {
			return nil, fmt.Errorf("%w: unknown priority %q", types.ErrValidation, *params.Priority)
		}
		card.Priority = *params.Priority
		paths = append(paths, "priority")
	}
	if params.ClearDue {
		card.DueDate = nil
		paths = append(paths, "due_date")
	} else if params.DueDate != nil {
		card.DueDate = params.DueDate
		paths = append(paths, "due_date")
	}

	if len(paths) == 0 {
		return card, nil
	}

	if err := s.storage.UpdateCard(ctx, card, paths); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	s.activity.Record(ctx, cardID, userID, types.ActivityUpdated, fmt.Sprintf("Updated %s", strings.Join(paths, ", ")))

	return s.refetchCard(ctx, cardID)
}

func (s *Service) DeleteCard(ctx context.Context, boardID, listID, cardID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "boards.Service.DeleteCard")
	defer span.End()

	if _, err := s.authz.CheckBoardAccess(ctx, boardID, userID, types.RoleMember); err != nil {
		return err
	}
	if _, err := s.listInBoard(ctx, boardID, listID); err != nil {
		return err
	}

	card, err := s.cardInList(ctx, listID, cardID)
	if err != nil {
		return err
	}

	s.activity.Record(ctx, cardID, userID, types.ActivityDeleted, fmt.Sprintf("Card deleted: %q", card.Title))

	if err := s.storage.DeleteCard(ctx, listID, cardID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return fmt.Errorf("failed to delete card: %w", err)
	}

	return nil
}

func (s *Service) ReorderCard(ctx context.Context, boardID, listID, cardID, userID string, newIndex int) ([]*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.ReorderCard")
	defer span.End()

	if _, err := s.authz.CheckBoardAccess(ctx, boardID, userID, types.RoleMember); err != nil {
		return nil, err
	}
	if _, err := s.listInBoard(ctx, boardID, listID); err != nil {
		return nil, err
	}

	cards, err := s.storage.ListCardsByListID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}

	ids := make([]string, len(cards))
	for i, c := range cards {
		ids[i] = c.ID
	}

	from := ordering.IndexOf(ids, cardID)
	if from == -1 {
		return nil, types.ErrNotFound
	}

	moved, err := ordering.Move(ids, from, newIndex)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", types.ErrValidation, err)
	}

	for _, p := range ordering.Renumber(moved) {
		if err := s.storage.UpdateCardSortOrder(ctx, p.ID, p.SortOrder); err != nil {
			return nil, fmt.Errorf("failed to persist card order: %w", err)
		}
	}

	reordered, err := s.storage.ListCardsByListID(ctx, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	return reordered, nil
}

// MoveCard relocates a card to another list on the same board. The update
// is guarded by the source list so a concurrent move cannot be silently
// overwritten; losing that race is a conflict, not an error in state.
func (s *Service) MoveCard(ctx context.Context, boardID, listID, cardID, targetListID, userID string) (*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.MoveCard")
	defer span.End()

	if _, err := s.authz.CheckBoardAccess(ctx, boardID, userID, types.RoleMember); err != nil {
		return nil, err
	}

	source, err := s.listInBoard(ctx, boardID, listID)
	if err != nil {
		return nil, err
	}

	target, err := s.listInBoard(ctx, boardID, targetListID)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, fmt.Errorf("%w: target list does not belong to this board", types.ErrValidation)
		}
		return nil, err
	}

	if err := s.storage.MoveCard(ctx, cardID, listID, targetListID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, fmt.Errorf("%w: card is no longer in the source list", types.ErrConflict)
		}
		return nil, fmt.Errorf("failed to move card: %w", err)
	}

	s.activity.Record(ctx, cardID, userID, types.ActivityMoved,
		fmt.Sprintf("Moved from %q to %q", source.Title, target.Title))

	return s.refetchCard(ctx, cardID)
}

func (s *Service) SetCardCompleted(ctx context.Context, boardID, listID, cardID, userID string, completed bool) (*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.SetCardCompleted")
	defer span.End()

	if _, err := s.authz.CheckBoardAccess(ctx, boardID, userID, types.RoleMember); err != nil {
		return nil, err
	}
	if _, err := s.listInBoard(ctx, boardID, listID); err != nil {
		return nil, err
	}

	card, err := s.cardInList(ctx, listID, cardID)
	if err != nil {
		return nil, err
	}

	card.Completed = completed
	if err := s.storage.UpdateCard(ctx, card, []string{"completed"}); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update card: %w", err)
	}

	detail := "Marked as incomplete"
	if completed {
		detail = "Marked as complete"
	}
	s.activity.Record(ctx, cardID, userID, types.ActivityUpdated, detail)

	return s.refetchCard(ctx, cardID)
}

func (s *Service) ListCardActivities(ctx context.Context, boardID, listID, cardID, userID string) ([]*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "boards.Service.ListCardActivities")
	defer span.End()

	if _, err := s.authz.CheckBoardAccess(ctx, boardID, userID, types.RoleMember); err != nil {
		return nil, err
	}
	if _, err := s.listInBoard(ctx, boardID, listID); err != nil {
		return nil, err
	}
	if _, err := s.cardInList(ctx, listID, cardID); err != nil {
		return nil, err
	}

	return s.activity.ListByCard(ctx, cardID)
}

func (s *Service) refetchCard(ctx context.Context, cardID string) (*types.Card, error) {
	card, err := s.storage.GetCardByID(ctx, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to get updated card: %w", err)
	}
	return card, nil
}
