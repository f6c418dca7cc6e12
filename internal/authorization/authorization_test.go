// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/kanban-service/internal/logging"
	"github.com/canonical/kanban-service/internal/monitoring"
	"github.com/canonical/kanban-service/internal/storage"
	"github.com/canonical/kanban-service/internal/tracing"
	"github.com/canonical/kanban-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_storage.go -source=./interfaces.go

func TestCheckOrganizationAccess(t *testing.T) {
	orgID := "org-1"
	userID := "user-1"

	tests := []struct {
		name        string
		userID      string
		required    types.Role
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name:        "Empty user ID is unauthenticated",
			userID:      "",
			required:    types.RoleMember,
			setupMocks:  func(s *MockStorageInterface) {},
			expectedErr: types.ErrUnauthenticated,
		},
		{
			name:     "Missing organization is not found",
			userID:   userID,
			required: types.RoleMember,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name:     "Non-member is forbidden",
			userID:   userID,
			required: types.RoleMember,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				s.EXPECT().GetMembership(gomock.Any(), orgID, userID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:     "Member lacking owner rank is forbidden",
			userID:   userID,
			required: types.RoleOwner,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				s.EXPECT().GetMembership(gomock.Any(), orgID, userID).Return(&types.Membership{Role: types.RoleMember}, nil)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:     "Admin lacking owner rank is forbidden",
			userID:   userID,
			required: types.RoleOwner,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				s.EXPECT().GetMembership(gomock.Any(), orgID, userID).Return(&types.Membership{Role: types.RoleAdmin}, nil)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name:     "Owner passes member requirement",
			userID:   userID,
			required: types.RoleMember,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				s.EXPECT().GetMembership(gomock.Any(), orgID, userID).Return(&types.Membership{Role: types.RoleOwner}, nil)
			},
		},
		{
			name:     "Storage failure propagates",
			userID:   userID,
			required: types.RoleMember,
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(nil, fmt.Errorf("connection refused"))
			},
			expectedErr: errors.New("failed to get organization"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			authorizer := NewAuthorizer(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			membership, err := authorizer.CheckOrganizationAccess(context.Background(), orgID, tt.userID, tt.required)

			if tt.expectedErr == nil {
				if err != nil {
					t.Fatalf("expected success, got %v", err)
				}
				if membership == nil {
					t.Fatal("expected membership, got nil")
				}
				return
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if errors.Is(tt.expectedErr, types.ErrUnauthenticated) ||
				errors.Is(tt.expectedErr, types.ErrNotFound) ||
				errors.Is(tt.expectedErr, types.ErrForbidden) {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
			}
		})
	}
}

func TestCheckBoardAccess(t *testing.T) {
	boardID := "board-1"
	orgID := "org-1"
	userID := "user-1"

	tests := []struct {
		name        string
		setupMocks  func(*MockStorageInterface)
		expectedErr error
	}{
		{
			name: "Missing board is not found",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetBoardByID(gomock.Any(), boardID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrNotFound,
		},
		{
			name: "Organization check failure propagates",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetBoardByID(gomock.Any(), boardID).Return(&types.Board{ID: boardID, OrganizationID: orgID}, nil)
				s.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				s.EXPECT().GetMembership(gomock.Any(), orgID, userID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: types.ErrForbidden,
		},
		{
			name: "Member can access board",
			setupMocks: func(s *MockStorageInterface) {
				s.EXPECT().GetBoardByID(gomock.Any(), boardID).Return(&types.Board{ID: boardID, OrganizationID: orgID}, nil)
				s.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID}, nil)
				s.EXPECT().GetMembership(gomock.Any(), orgID, userID).Return(&types.Membership{Role: types.RoleMember}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			tt.setupMocks(mockStorage)

			authorizer := NewAuthorizer(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			board, err := authorizer.CheckBoardAccess(context.Background(), boardID, userID, types.RoleMember)

			if tt.expectedErr != nil {
				if !errors.Is(err, tt.expectedErr) {
					t.Errorf("expected %v, got %v", tt.expectedErr, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("expected success, got %v", err)
			}
			if board == nil || board.ID != boardID {
				t.Errorf("expected board %s, got %+v", boardID, board)
			}
		})
	}
}
