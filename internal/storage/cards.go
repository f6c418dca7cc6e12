// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/kanban-service/internal/types"
)

const cardColumns = "id, list_id, title, description, priority, due_date, completed, sort_order, created_by, created_at, updated_at"

func scanCard(row sq.RowScanner) (*types.Card, error) {
	var c types.Card
	err := row.Scan(&c.ID, &c.ListID, &c.Title, &c.Description, &c.Priority, &c.DueDate, &c.Completed, &c.SortOrder, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *Storage) CreateCard(ctx context.Context, c *types.Card) (*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateCard")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate card ID: %w", err)
	}

	card, err := scanCard(s.db.Statement(ctx).
		Insert("cards").
		Columns("id", "list_id", "title", "description", "priority", "due_date", "sort_order", "created_by").
		Values(id.String(), c.ListID, c.Title, c.Description, string(c.Priority), c.DueDate, c.SortOrder, c.CreatedBy).
		Suffix("RETURNING " + cardColumns).
		QueryRowContext(ctx))

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert card: %w", err)
	}

	return card, nil
}

func (s *Storage) GetCardByID(ctx context.Context, id string) (*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetCardByID")
	defer span.End()

	card, err := scanCard(s.db.Statement(ctx).
		Select(cardColumns).
		From("cards").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get card: %w", err)
	}

	return card, nil
}

// ListCardsByListID returns the list's cards in display order, with creation
// time and id breaking sort_order ties from concurrent appends.
func (s *Storage) ListCardsByListID(ctx context.Context, listID string) ([]*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCardsByListID")
	defer span.End()

	return s.listCards(ctx, sq.Eq{"list_id": listID}, "")
}

// ListCardsByBoardID returns every card on the board, grouped by list in
// display order. Used to assemble the lists-with-cards board view.
func (s *Storage) ListCardsByBoardID(ctx context.Context, boardID string) ([]*types.Card, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListCardsByBoardID")
	defer span.End()

	return s.listCards(ctx, sq.Expr("list_id IN (SELECT id FROM lists WHERE board_id = ?)", boardID), "list_id ASC")
}

func (s *Storage) listCards(ctx context.Context, where interface{}, leadOrder string) ([]*types.Card, error) {
	orderBy := []string{"sort_order ASC", "created_at ASC", "id ASC"}
	if leadOrder != "" {
		orderBy = append([]string{leadOrder}, orderBy...)
	}

	query := s.db.Statement(ctx).
		Select(cardColumns).
		From("cards").
		Where(where).
		OrderBy(orderBy...)

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list cards: %w", err)
	}
	defer rows.Close()

	var cards []*types.Card
	for rows.Next() {
		var c types.Card
		if err := rows.Scan(&c.ID, &c.ListID, &c.Title, &c.Description, &c.Priority, &c.DueDate, &c.Completed, &c.SortOrder, &c.CreatedBy, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan card: %w", err)
		}
		cards = append(cards, &c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return cards, nil
}

// UpdateCard updates the fields named in paths, following PATCH semantics.
func (s *Storage) UpdateCard(ctx context.Context, card *types.Card, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCard")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "title":
			updateMap["title"] = card.Title
		case "description":
			updateMap["description"] = card.Description
		case "priority":
			updateMap["priority"] = string(card.Priority)
		case "due_date":
			updateMap["due_date"] = card.DueDate
		case "completed":
			updateMap["completed"] = card.Completed
		}
	}

	if len(updateMap) == 0 {
		return nil
	}
	updateMap["updated_at"] = sq.Expr("NOW()")

	res, err := s.db.Statement(ctx).
		Update("cards").
		SetMap(updateMap).
		Where(sq.Eq{"id": card.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update card: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) UpdateCardSortOrder(ctx context.Context, cardID string, sortOrder int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateCardSortOrder")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("cards").
		Set("sort_order", sortOrder).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": cardID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update card sort order: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// MoveCard reparents the card to targetListID and resets its sort_order to 0.
// The WHERE clause is guarded by the claimed source list; when the card is no
// longer there the update affects nothing and ErrNotFound is returned so the
// caller can surface a conflict without any state change.
func (s *Storage) MoveCard(ctx context.Context, cardID, sourceListID, targetListID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.MoveCard")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("cards").
		Set("list_id", targetListID).
		Set("sort_order", 0).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": cardID, "list_id": sourceListID}).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to move card: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// MaxCardSortOrder returns the highest sort_order among the list's cards,
// 0 when the list has none.
func (s *Storage) MaxCardSortOrder(ctx context.Context, listID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MaxCardSortOrder")
	defer span.End()

	var max int64
	err := s.db.Statement(ctx).
		Select("COALESCE(MAX(sort_order), 0)").
		From("cards").
		Where(sq.Eq{"list_id": listID}).
		QueryRowContext(ctx).
		Scan(&max)

	if err != nil {
		return 0, fmt.Errorf("failed to get max card sort order: %w", err)
	}

	return max, nil
}

func (s *Storage) DeleteCard(ctx context.Context, listID, cardID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteCard")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("cards").
		Where(sq.Eq{"id": cardID, "list_id": listID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete card: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}
