// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/canonical/kanban-service/internal/db"
	"github.com/canonical/kanban-service/internal/logging"
	"github.com/canonical/kanban-service/internal/mail"
	"github.com/canonical/kanban-service/internal/monitoring"
	"github.com/canonical/kanban-service/internal/storage"
	"github.com/canonical/kanban-service/internal/tracing"
	"github.com/canonical/kanban-service/internal/types"
)

type Service struct {
	storage  StorageInterface
	authz    AuthzInterface
	mailer   mail.MailerInterface
	db       db.DBClientInterface
	lifetime time.Duration
	baseURL  string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	mailer mail.MailerInterface,
	dbClient db.DBClientInterface,
	lifetime time.Duration,
	baseURL string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:  storage,
		authz:    authz,
		mailer:   mailer,
		db:       dbClient,
		lifetime: lifetime,
		baseURL:  baseURL,
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (s *Service) CreateInvite(ctx context.Context, orgID, userID, email string, role types.Role) (*InviteWithLink, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.CreateInvite")
	defer span.End()

	if _, err := s.authz.CheckOrganizationAccess(ctx, orgID, userID, types.RoleOwner); err != nil {
		return nil, err
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", types.ErrValidation)
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", types.ErrValidation, role)
	}

	now := time.Now()
	pending, err := s.storage.HasPendingInvite(ctx, orgID, email, now)
	if err != nil {
		return nil, fmt.Errorf("failed to check pending invites: %w", err)
	}
	if pending {
		return nil, fmt.Errorf("%w: a pending invite for %s already exists", types.ErrConflict, email)
	}

	token, err := newToken()
	if err != nil {
		return nil, err
	}

	invite, err := s.storage.CreateInvite(ctx, &types.Invite{
		OrganizationID: orgID,
		Email:          email,
		Token:          token,
		Role:           role,
		CreatedBy:      userID,
		ExpiresAt:      now.Add(s.lifetime),
	})
	if err != nil {
		if errors.Is(err, storage.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: a pending invite for %s already exists", types.ErrConflict, email)
		}
		return nil, fmt.Errorf("failed to create invite: %w", err)
	}

	link := fmt.Sprintf("%s/invite/%s", strings.TrimRight(s.baseURL, "/"), invite.Token)

	orgName := orgID
	if org, err := s.storage.GetOrganizationByID(ctx, orgID); err == nil {
		orgName = org.Name
	}

	// Mail delivery must not block or fail the request.
	go func(ctx context.Context) {
		if err := s.mailer.SendInvite(ctx, invite.Email, orgName, link); err != nil {
			s.logger.Errorf("failed to send invite mail for %s: %v", invite.ID, err)
		}
	}(context.WithoutCancel(ctx))

	s.logger.Security().InviteIssued(orgID, email)

	return &InviteWithLink{Invite: invite, Link: link}, nil
}

// AcceptInvite redeems a token for a membership. The checks run in a fixed
// order: unknown token, then expiry, then prior acceptance, then existing
// membership. The membership insert and the accepted_at stamp commit
// together or not at all.
func (s *Service) AcceptInvite(ctx context.Context, token, userID string) (*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.AcceptInvite")
	defer span.End()

	if userID == "" {
		return nil, types.ErrUnauthenticated
	}

	invite, err := s.storage.GetInviteByToken(ctx, token)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get invite: %w", err)
	}

	now := time.Now()
	if !now.Before(invite.ExpiresAt) {
		return nil, fmt.Errorf("%w: invite expired at %s", types.ErrExpired, invite.ExpiresAt.Format(time.RFC3339))
	}

	if invite.AcceptedAt != nil {
		return nil, fmt.Errorf("%w: invite already accepted", types.ErrConflict)
	}

	if _, err := s.storage.GetMembership(ctx, invite.OrganizationID, userID); err == nil {
		return nil, fmt.Errorf("%w: already a member of this organization", types.ErrConflict)
	} else if !errors.Is(err, storage.ErrNotFound) {
		return nil, fmt.Errorf("failed to check membership: %w", err)
	}

	err = s.db.WithTx(ctx, func(ctx context.Context) error {
		if _, err := s.storage.AddMember(ctx, invite.OrganizationID, userID, invite.Role); err != nil {
			if errors.Is(err, storage.ErrDuplicateKey) {
				return fmt.Errorf("%w: already a member of this organization", types.ErrConflict)
			}
			return fmt.Errorf("failed to add member: %w", err)
		}

		if err := s.storage.MarkInviteAccepted(ctx, invite.ID, now); err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				return fmt.Errorf("%w: invite already accepted", types.ErrConflict)
			}
			return fmt.Errorf("failed to mark invite accepted: %w", err)
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Security().InviteRedeemed(invite.OrganizationID, userID)

	accepted := *invite
	accepted.AcceptedAt = &now
	return &accepted, nil
}

func (s *Service) CancelInvite(ctx context.Context, orgID, inviteID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "invites.Service.CancelInvite")
	defer span.End()

	if _, err := s.authz.CheckOrganizationAccess(ctx, orgID, userID, types.RoleOwner); err != nil {
		return err
	}

	if err := s.storage.DeleteInvite(ctx, orgID, inviteID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return types.ErrNotFound
		}
		return fmt.Errorf("failed to delete invite: %w", err)
	}

	return nil
}

func (s *Service) ListInvites(ctx context.Context, orgID, userID string) ([]*types.Invite, error) {
	ctx, span := s.tracer.Start(ctx, "invites.Service.ListInvites")
	defer span.End()

	if _, err := s.authz.CheckOrganizationAccess(ctx, orgID, userID, types.RoleOwner); err != nil {
		return nil, err
	}

	return s.storage.ListPendingInvites(ctx, orgID, time.Now())
}
