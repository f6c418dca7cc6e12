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

func (s *Storage) CreateBoard(ctx context.Context, b *types.Board) (*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateBoard")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate board ID: %w", err)
	}

	var board types.Board
	err = s.db.Statement(ctx).
		Insert("boards").
		Columns("id", "organization_id", "title", "description", "color", "created_by").
		Values(id.String(), b.OrganizationID, b.Title, b.Description, b.Color, b.CreatedBy).
		Suffix("RETURNING id, organization_id, title, description, color, created_by, created_at").
		QueryRowContext(ctx).
		Scan(&board.ID, &board.OrganizationID, &board.Title, &board.Description, &board.Color, &board.CreatedBy, &board.CreatedAt)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert board: %w", err)
	}

	return &board, nil
}

func (s *Storage) GetBoardByID(ctx context.Context, id string) (*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetBoardByID")
	defer span.End()

	var b types.Board
	err := s.db.Statement(ctx).
		Select("id", "organization_id", "title", "description", "color", "created_by", "created_at").
		From("boards").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&b.ID, &b.OrganizationID, &b.Title, &b.Description, &b.Color, &b.CreatedBy, &b.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get board: %w", err)
	}

	return &b, nil
}

func (s *Storage) ListBoardsByOrganizationID(ctx context.Context, orgID string) ([]*types.Board, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListBoardsByOrganizationID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "organization_id", "title", "description", "color", "created_by", "created_at").
		From("boards").
		Where(sq.Eq{"organization_id": orgID}).
		OrderBy("created_at DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list boards: %w", err)
	}
	defer rows.Close()

	var boards []*types.Board
	for rows.Next() {
		var b types.Board
		if err := rows.Scan(&b.ID, &b.OrganizationID, &b.Title, &b.Description, &b.Color, &b.CreatedBy, &b.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan board: %w", err)
		}
		boards = append(boards, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return boards, nil
}

func (s *Storage) DeleteBoard(ctx context.Context, orgID, boardID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteBoard")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("boards").
		Where(sq.Eq{"id": boardID, "organization_id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete board: %w", err)
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
