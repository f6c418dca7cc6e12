// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"context"
	"fmt"
	"strings"

	"github.com/canonical/kanban-service/internal/db"
	"github.com/canonical/kanban-service/internal/logging"
	"github.com/canonical/kanban-service/internal/monitoring"
	"github.com/canonical/kanban-service/internal/tracing"
	"github.com/canonical/kanban-service/internal/types"
)

type Service struct {
	storage StorageInterface
	authz   AuthzInterface
	db      db.DBClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	dbClient db.DBClientInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		authz:   authz,
		db:      dbClient,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// CreateOrganization inserts the organization and the creator's owner
// membership in one transaction, so an organization can never exist without
// an owner.
func (s *Service) CreateOrganization(ctx context.Context, userID, name string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.CreateOrganization")
	defer span.End()

	if userID == "" {
		return nil, types.ErrUnauthenticated
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: organization name is required", types.ErrValidation)
	}

	var org *types.Organization
	err := s.db.WithTx(ctx, func(ctx context.Context) error {
		created, err := s.storage.CreateOrganization(ctx, name, userID)
		if err != nil {
			return fmt.Errorf("failed to create organization: %w", err)
		}

		if _, err := s.storage.AddMember(ctx, created.ID, userID, types.RoleOwner); err != nil {
			return fmt.Errorf("failed to add owner membership: %w", err)
		}

		org = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	return org, nil
}

func (s *Service) ListOrganizations(ctx context.Context, userID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListOrganizations")
	defer span.End()

	if userID == "" {
		return nil, types.ErrUnauthenticated
	}

	return s.storage.ListOrganizationsByUserID(ctx, userID)
}

func (s *Service) GetOrganization(ctx context.Context, orgID, userID string) (*OrganizationDetail, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.GetOrganization")
	defer span.End()

	membership, err := s.authz.CheckOrganizationAccess(ctx, orgID, userID, types.RoleMember)
	if err != nil {
		return nil, err
	}

	org, err := s.storage.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &OrganizationDetail{Organization: *org, Role: membership.Role}, nil
}

func (s *Service) DeleteOrganization(ctx context.Context, orgID, userID string) error {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.DeleteOrganization")
	defer span.End()

	if _, err := s.authz.CheckOrganizationAccess(ctx, orgID, userID, types.RoleOwner); err != nil {
		return err
	}

	// Boards, lists, cards, memberships and invites go with the
	// organization via ON DELETE CASCADE.
	if err := s.storage.DeleteOrganization(ctx, orgID); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	return nil
}

func (s *Service) ListMembers(ctx context.Context, orgID, userID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "organizations.Service.ListMembers")
	defer span.End()

	if _, err := s.authz.CheckOrganizationAccess(ctx, orgID, userID, types.RoleMember); err != nil {
		return nil, err
	}

	return s.storage.ListMembersByOrganizationID(ctx, orgID)
}
