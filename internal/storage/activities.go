// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/canonical/kanban-service/internal/types"
)

// CreateActivity appends an audit entry for a card. Activities are insert
// only; there is deliberately no update or single-delete counterpart.
func (s *Storage) CreateActivity(ctx context.Context, a *types.Activity) error {
	ctx, span := s.tracer.Start(ctx, "storage.CreateActivity")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate activity ID: %w", err)
	}

	_, err = s.db.Statement(ctx).
		Insert("card_activities").
		Columns("id", "card_id", "action", "actor_id", "detail").
		Values(id.String(), a.CardID, string(a.Action), a.ActorID, a.Detail).
		ExecContext(ctx)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to insert activity: %w", err)
	}

	return nil
}

func (s *Storage) ListActivitiesByCardID(ctx context.Context, cardID string) ([]*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListActivitiesByCardID")
	defer span.End()

	query := s.db.Statement(ctx).
		Select("id", "card_id", "action", "actor_id", "detail", "created_at").
		From("card_activities").
		Where(sq.Eq{"card_id": cardID}).
		OrderBy("created_at DESC", "id DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	defer rows.Close()

	var activities []*types.Activity
	for rows.Next() {
		var a types.Activity
		if err := rows.Scan(&a.ID, &a.CardID, &a.Action, &a.ActorID, &a.Detail, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		activities = append(activities, &a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return activities, nil
}
