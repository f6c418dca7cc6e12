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

func (s *Storage) CreateList(ctx context.Context, boardID, title string, sortOrder int64) (*types.List, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateList")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate list ID: %w", err)
	}

	var l types.List
	err = s.db.Statement(ctx).
		Insert("lists").
		Columns("id", "board_id", "title", "sort_order").
		Values(id.String(), boardID, title, sortOrder).
		Suffix("RETURNING id, board_id, title, sort_order, created_at").
		QueryRowContext(ctx).
		Scan(&l.ID, &l.BoardID, &l.Title, &l.SortOrder, &l.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert list: %w", err)
	}

	return &l, nil
}

func (s *Storage) GetListByID(ctx context.Context, id string) (*types.List, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetListByID")
	defer span.End()

	var l types.List
	err := s.db.Statement(ctx).
		Select("id", "board_id", "title", "sort_order", "created_at").
		From("lists").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&l.ID, &l.BoardID, &l.Title, &l.SortOrder, &l.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get list: %w", err)
	}

	return &l, nil
}

// ListListsByBoardID returns the board's lists ordered by sort_order with
// creation time and id as tie breakers, so concurrent appends that landed on
// the same sort_order still produce a stable total order.
func (s *Storage) ListListsByBoardID(ctx context.Context, boardID string) ([]*types.List, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListListsByBoardID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "board_id", "title", "sort_order", "created_at").
		From("lists").
		Where(sq.Eq{"board_id": boardID}).
		OrderBy("sort_order ASC", "created_at ASC", "id ASC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list lists: %w", err)
	}
	defer rows.Close()

	var lists []*types.List
	for rows.Next() {
		var l types.List
		if err := rows.Scan(&l.ID, &l.BoardID, &l.Title, &l.SortOrder, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan list: %w", err)
		}
		lists = append(lists, &l)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return lists, nil
}

// MaxListSortOrder returns the highest sort_order among the board's lists,
// 0 when the board has none. Always computed from a fresh query, never cached.
func (s *Storage) MaxListSortOrder(ctx context.Context, boardID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.MaxListSortOrder")
	defer span.End()

	var max int64
	err := s.db.Statement(ctx).
		Select("COALESCE(MAX(sort_order), 0)").
		From("lists").
		Where(sq.Eq{"board_id": boardID}).
		QueryRowContext(ctx).
		Scan(&max)

	if err != nil {
		return 0, fmt.Errorf("failed to get max list sort order: %w", err)
	}

	return max, nil
}

func (s *Storage) UpdateListSortOrder(ctx context.Context, listID string, sortOrder int64) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateListSortOrder")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("lists").
		Set("sort_order", sortOrder).
		Where(sq.Eq{"id": listID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update list sort order: %w", err)
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

func (s *Storage) DeleteList(ctx context.Context, boardID, listID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteList")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("lists").
		Where(sq.Eq{"id": listID, "board_id": boardID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete list: %w", err)
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
