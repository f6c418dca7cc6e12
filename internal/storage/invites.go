// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/canonical/kanban-service/internal/types"
)

const inviteColumns = "id, organization_id, email, token, role, created_by, created_at, expires_at, accepted_at"

func scanInvite(row sq.RowScanner) (*types.Invite, error) {
	var i types.Invite
	err := row.Scan(&i.ID, &i.OrganizationID, &i.Email, &i.Token, &i.Role, &i.CreatedBy, &i.CreatedAt, &i.ExpiresAt, &i.AcceptedAt)
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (s *Storage) CreateInvite(ctx context.Context, inv *types.Invite) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateInvite")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate invite ID: %w", err)
	}

	invite, err := scanInvite(s.db.Statement(ctx).
		Insert("invites").
		Columns("id", "organization_id", "email", "token", "role", "created_by", "expires_at").
		Values(id.String(), inv.OrganizationID, inv.Email, inv.Token, string(inv.Role), inv.CreatedBy, inv.ExpiresAt).
		Suffix("RETURNING " + inviteColumns).
		QueryRowContext(ctx))

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return nil, ErrForeignKeyViolation
		}
		return nil, fmt.Errorf("failed to insert invite: %w", err)
	}

	return invite, nil
}

func (s *Storage) GetInviteByToken(ctx context.Context, token string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByToken")
	defer span.End()

	invite, err := scanInvite(s.db.Statement(ctx).
		Select(inviteColumns).
		From("invites").
		Where(sq.Eq{"token": token}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return invite, nil
}

func (s *Storage) GetInviteByID(ctx context.Context, id string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetInviteByID")
	defer span.End()

	invite, err := scanInvite(s.db.Statement(ctx).
		Select(inviteColumns).
		From("invites").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx))

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	return invite, nil
}

// HasPendingInvite reports whether an unaccepted, unexpired invite already
// exists for the email in the organization.
func (s *Storage) HasPendingInvite(ctx context.Context, orgID, email string, now time.Time) (bool, error) {
	ctx, span := s.tracer.Start(ctx, "storage.HasPendingInvite")
	defer span.End()

	var count int
	err := s.db.Statement(ctx).
		Select("COUNT(*)").
		From("invites").
		Where(sq.Eq{"organization_id": orgID, "email": email, "accepted_at": nil}).
		Where(sq.Gt{"expires_at": now}).
		QueryRowContext(ctx).
		Scan(&count)

	if err != nil {
		return false, fmt.Errorf("failed to check pending invite: %w", err)
	}

	return count > 0, nil
}

// ListPendingInvites returns unaccepted, unexpired invites newest first.
// Expiry is evaluated lazily against the supplied clock; expired rows are
// simply filtered out, never transitioned.
func (s *Storage) ListPendingInvites(ctx context.Context, orgID string, now time.Time) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListPendingInvites")
	defer span.End()

	query := s.db.Statement(ctx).
		Select(inviteColumns).
		From("invites").
		Where(sq.Eq{"organization_id": orgID, "accepted_at": nil}).
		Where(sq.Gt{"expires_at": now}).
		OrderBy("created_at DESC")

	rows, err := query.QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list invites: %w", err)
	}
	defer rows.Close()

	var invites []*types.Invite
	for rows.Next() {
		var i types.Invite
		if err := rows.Scan(&i.ID, &i.OrganizationID, &i.Email, &i.Token, &i.Role, &i.CreatedBy, &i.CreatedAt, &i.ExpiresAt, &i.AcceptedAt); err != nil {
			return nil, fmt.Errorf("failed to scan invite: %w", err)
		}
		invites = append(invites, &i)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return invites, nil
}

// MarkInviteAccepted stamps accepted_at, guarded so an already-consumed
// invite cannot be stamped twice.
func (s *Storage) MarkInviteAccepted(ctx context.Context, inviteID string, when time.Time) error {
	ctx, span := s.tracer.Start(ctx, "storage.MarkInviteAccepted")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("invites").
		Set("accepted_at", when).
		Where(sq.Eq{"id": inviteID, "accepted_at": nil}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to mark invite accepted: %w", err)
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

func (s *Storage) DeleteInvite(ctx context.Context, orgID, inviteID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteInvite")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("invites").
		Where(sq.Eq{"id": inviteID, "organization_id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete invite: %w", err)
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
