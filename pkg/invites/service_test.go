// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/canonical/kanban-service/internal/db"
	"github.com/canonical/kanban-service/internal/logging"
	"github.com/canonical/kanban-service/internal/mail"
	"github.com/canonical/kanban-service/internal/monitoring"
	"github.com/canonical/kanban-service/internal/storage"
	"github.com/canonical/kanban-service/internal/tracing"
	"github.com/canonical/kanban-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package invites -destination ./mock_interfaces.go -source=./interfaces.go

const (
	orgID  = "org-1"
	userID = "user-1"
)

type recordingMailer struct {
	mu   sync.Mutex
	sent chan struct{}
	to   string
	link string
	fail bool
}

func (m *recordingMailer) SendInvite(ctx context.Context, to, organizationName, acceptURL string) error {
	m.mu.Lock()
	m.to = to
	m.link = acceptURL
	m.mu.Unlock()
	close(m.sent)
	if m.fail {
		return fmt.Errorf("smtp unavailable")
	}
	return nil
}

var _ mail.MailerInterface = (*recordingMailer)(nil)

type fixture struct {
	service *Service
	storage *MockStorageInterface
	authz   *MockAuthzInterface
	db      *db.MockDBClientInterface
	mailer  *recordingMailer
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	f := &fixture{
		storage: NewMockStorageInterface(ctrl),
		authz:   NewMockAuthzInterface(ctrl),
		db:      db.NewMockDBClientInterface(ctrl),
		mailer:  &recordingMailer{sent: make(chan struct{})},
	}
	f.service = NewService(
		f.storage, f.authz, f.mailer, f.db,
		7*24*time.Hour, "http://localhost:8080",
		tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger(),
	)
	return f
}

func ownerAccess(f *fixture) {
	f.authz.EXPECT().CheckOrganizationAccess(gomock.Any(), orgID, userID, types.RoleOwner).
		Return(&types.Membership{Role: types.RoleOwner}, nil)
}

func TestCreateInvite(t *testing.T) {
	t.Run("Creates invite and sends mail asynchronously", func(t *testing.T) {
		f := newFixture(t)

		ownerAccess(f)
		f.storage.EXPECT().HasPendingInvite(gomock.Any(), orgID, "bob@example.com", gomock.Any()).Return(false, nil)
		f.storage.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv *types.Invite) (*types.Invite, error) {
				if inv.Email != "bob@example.com" {
					t.Errorf("email not normalized: %q", inv.Email)
				}
				if len(inv.Token) != 64 {
					t.Errorf("expected 64 hex chars, got %d", len(inv.Token))
				}
				if inv.Role != types.RoleMember {
					t.Errorf("unexpected role %q", inv.Role)
				}
				remaining := time.Until(inv.ExpiresAt)
				if remaining < 7*24*time.Hour-time.Minute || remaining > 7*24*time.Hour {
					t.Errorf("unexpected expiry %s", inv.ExpiresAt)
				}
				created := *inv
				created.ID = "inv-1"
				return &created, nil
			},
		)
		f.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).
			Return(&types.Organization{ID: orgID, Name: "Acme"}, nil)

		result, err := f.service.CreateInvite(context.Background(), orgID, userID, "  BOB@Example.COM ", types.RoleMember)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Link != "http://localhost:8080/invite/"+result.Token {
			t.Errorf("unexpected link %q", result.Link)
		}

		select {
		case <-f.mailer.sent:
		case <-time.After(time.Second):
			t.Fatal("invite mail was never sent")
		}
		if f.mailer.to != "bob@example.com" || f.mailer.link != result.Link {
			t.Errorf("unexpected mail: to=%q link=%q", f.mailer.to, f.mailer.link)
		}
	})

	t.Run("Pending invite for same email is a conflict", func(t *testing.T) {
		f := newFixture(t)

		ownerAccess(f)
		f.storage.EXPECT().HasPendingInvite(gomock.Any(), orgID, "bob@example.com", gomock.Any()).Return(true, nil)

		_, err := f.service.CreateInvite(context.Background(), orgID, userID, "bob@example.com", types.RoleMember)
		if !errors.Is(err, types.ErrConflict) {
			t.Errorf("expected conflict, got %v", err)
		}
	})

	t.Run("Non-owner cannot invite", func(t *testing.T) {
		f := newFixture(t)

		f.authz.EXPECT().CheckOrganizationAccess(gomock.Any(), orgID, userID, types.RoleOwner).
			Return(nil, types.ErrForbidden)

		_, err := f.service.CreateInvite(context.Background(), orgID, userID, "bob@example.com", types.RoleMember)
		if !errors.Is(err, types.ErrForbidden) {
			t.Errorf("expected forbidden, got %v", err)
		}
	})

	t.Run("Unknown role is a validation error", func(t *testing.T) {
		f := newFixture(t)

		ownerAccess(f)

		_, err := f.service.CreateInvite(context.Background(), orgID, userID, "bob@example.com", types.Role("superuser"))
		if !errors.Is(err, types.ErrValidation) {
			t.Errorf("expected validation error, got %v", err)
		}
	})

	t.Run("Mail failure does not fail the request", func(t *testing.T) {
		f := newFixture(t)
		f.mailer.fail = true

		ownerAccess(f)
		f.storage.EXPECT().HasPendingInvite(gomock.Any(), orgID, "bob@example.com", gomock.Any()).Return(false, nil)
		f.storage.EXPECT().CreateInvite(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv *types.Invite) (*types.Invite, error) {
				created := *inv
				created.ID = "inv-1"
				return &created, nil
			},
		)
		f.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).
			Return(&types.Organization{ID: orgID, Name: "Acme"}, nil)

		if _, err := f.service.CreateInvite(context.Background(), orgID, userID, "bob@example.com", types.RoleMember); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		<-f.mailer.sent
	})
}

func pendingInvite(expiresIn time.Duration) *types.Invite {
	return &types.Invite{
		ID:             "inv-1",
		OrganizationID: orgID,
		Email:          "bob@example.com",
		Token:          strings.Repeat("ab", 32),
		Role:           types.RoleAdmin,
		ExpiresAt:      time.Now().Add(expiresIn),
	}
}

func TestAcceptInvite(t *testing.T) {
	token := strings.Repeat("ab", 32)

	t.Run("Happy path stamps membership and accepted_at atomically", func(t *testing.T) {
		f := newFixture(t)

		invite := pendingInvite(time.Hour)
		f.storage.EXPECT().GetInviteByToken(gomock.Any(), token).Return(invite, nil)
		f.storage.EXPECT().GetMembership(gomock.Any(), orgID, "user-2").Return(nil, storage.ErrNotFound)
		f.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			},
		)
		f.storage.EXPECT().AddMember(gomock.Any(), orgID, "user-2", types.RoleAdmin).Return("m-2", nil)
		f.storage.EXPECT().MarkInviteAccepted(gomock.Any(), "inv-1", gomock.Any()).Return(nil)

		accepted, err := f.service.AcceptInvite(context.Background(), token, "user-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if accepted.AcceptedAt == nil {
			t.Error("expected accepted_at to be set")
		}
	})

	t.Run("Unknown token is not found", func(t *testing.T) {
		f := newFixture(t)

		f.storage.EXPECT().GetInviteByToken(gomock.Any(), token).Return(nil, storage.ErrNotFound)

		_, err := f.service.AcceptInvite(context.Background(), token, "user-2")
		if !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("Expired invite wins over already-accepted check", func(t *testing.T) {
		f := newFixture(t)

		invite := pendingInvite(-time.Hour)
		stamped := time.Now().Add(-2 * time.Hour)
		invite.AcceptedAt = &stamped
		f.storage.EXPECT().GetInviteByToken(gomock.Any(), token).Return(invite, nil)

		_, err := f.service.AcceptInvite(context.Background(), token, "user-2")
		if !errors.Is(err, types.ErrExpired) {
			t.Errorf("expected expired, got %v", err)
		}
	})

	t.Run("Already accepted invite is a conflict", func(t *testing.T) {
		f := newFixture(t)

		invite := pendingInvite(time.Hour)
		stamped := time.Now().Add(-time.Minute)
		invite.AcceptedAt = &stamped
		f.storage.EXPECT().GetInviteByToken(gomock.Any(), token).Return(invite, nil)

		_, err := f.service.AcceptInvite(context.Background(), token, "user-2")
		if !errors.Is(err, types.ErrConflict) {
			t.Errorf("expected conflict, got %v", err)
		}
	})

	t.Run("Existing member is a conflict", func(t *testing.T) {
		f := newFixture(t)

		f.storage.EXPECT().GetInviteByToken(gomock.Any(), token).Return(pendingInvite(time.Hour), nil)
		f.storage.EXPECT().GetMembership(gomock.Any(), orgID, "user-2").
			Return(&types.Membership{UserID: "user-2"}, nil)

		_, err := f.service.AcceptInvite(context.Background(), token, "user-2")
		if !errors.Is(err, types.ErrConflict) {
			t.Errorf("expected conflict, got %v", err)
		}
	})

	t.Run("Concurrent accept loses on duplicate membership", func(t *testing.T) {
		f := newFixture(t)

		f.storage.EXPECT().GetInviteByToken(gomock.Any(), token).Return(pendingInvite(time.Hour), nil)
		f.storage.EXPECT().GetMembership(gomock.Any(), orgID, "user-2").Return(nil, storage.ErrNotFound)
		f.db.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
			func(ctx context.Context, fn func(context.Context) error) error {
				return fn(ctx)
			},
		)
		f.storage.EXPECT().AddMember(gomock.Any(), orgID, "user-2", types.RoleAdmin).
			Return("", storage.ErrDuplicateKey)

		_, err := f.service.AcceptInvite(context.Background(), token, "user-2")
		if !errors.Is(err, types.ErrConflict) {
			t.Errorf("expected conflict, got %v", err)
		}
	})

	t.Run("Anonymous caller is unauthenticated", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.service.AcceptInvite(context.Background(), token, "")
		if !errors.Is(err, types.ErrUnauthenticated) {
			t.Errorf("expected unauthenticated, got %v", err)
		}
	})
}

func TestCancelInvite(t *testing.T) {
	t.Run("Owner cancels invite", func(t *testing.T) {
		f := newFixture(t)

		ownerAccess(f)
		f.storage.EXPECT().DeleteInvite(gomock.Any(), orgID, "inv-1").Return(nil)

		if err := f.service.CancelInvite(context.Background(), orgID, "inv-1", userID); err != nil {
			t.Errorf("unexpected error: %v", err)
		}
	})

	t.Run("Missing invite is not found", func(t *testing.T) {
		f := newFixture(t)

		ownerAccess(f)
		f.storage.EXPECT().DeleteInvite(gomock.Any(), orgID, "inv-9").Return(storage.ErrNotFound)

		if err := f.service.CancelInvite(context.Background(), orgID, "inv-9", userID); !errors.Is(err, types.ErrNotFound) {
			t.Errorf("expected not found, got %v", err)
		}
	})
}

func TestListInvites(t *testing.T) {
	f := newFixture(t)

	ownerAccess(f)
	f.storage.EXPECT().ListPendingInvites(gomock.Any(), orgID, gomock.Any()).
		Return([]*types.Invite{{ID: "inv-2"}, {ID: "inv-1"}}, nil)

	invites, err := f.service.ListInvites(context.Background(), orgID, userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(invites) != 2 || invites[0].ID != "inv-2" {
		t.Errorf("unexpected invites: %+v", invites)
	}
}
