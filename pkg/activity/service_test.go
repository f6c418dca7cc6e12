// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"
	"fmt"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/canonical/kanban-service/internal/db"
	"github.com/canonical/kanban-service/internal/logging"
	"github.com/canonical/kanban-service/internal/monitoring"
	"github.com/canonical/kanban-service/internal/tracing"
	"github.com/canonical/kanban-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package activity -destination ./mock_storage.go -source=./interfaces.go

func TestRecord(t *testing.T) {
	tests := []struct {
		name       string
		detail     string
		storageErr error
	}{
		{
			name:   "Records activity with detail",
			detail: "moved from Backlog to Done",
		},
		{
			name: "Records activity without detail",
		},
		{
			name:       "Storage failure is swallowed",
			detail:     "updated title",
			storageErr: fmt.Errorf("connection refused"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockStorage.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).DoAndReturn(
				func(ctx context.Context, a *types.Activity) error {
					if ctx.Value(db.LazyTxContextKey{}) != nil {
						t.Error("expected the activity insert to run outside any transaction")
					}
					if a.CardID != "card-1" || a.ActorID != "user-1" || a.Action != types.ActivityMoved {
						t.Errorf("unexpected activity: %+v", a)
					}
					if tt.detail == "" && a.Detail != nil {
						t.Errorf("expected nil detail, got %q", *a.Detail)
					}
					if tt.detail != "" && (a.Detail == nil || *a.Detail != tt.detail) {
						t.Errorf("expected detail %q, got %v", tt.detail, a.Detail)
					}
					return tt.storageErr
				},
			)

			service := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

			// Must not panic or surface the error
			service.Record(context.Background(), "card-1", "user-1", types.ActivityMoved, tt.detail)
		})
	}
}

func TestListByCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := []*types.Activity{
		{ID: "a-2", CardID: "card-1", Action: types.ActivityUpdated},
		{ID: "a-1", CardID: "card-1", Action: types.ActivityCreated},
	}

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().ListActivitiesByCardID(gomock.Any(), "card-1").Return(expected, nil)

	service := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	activities, err := service.ListByCard(context.Background(), "card-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(activities) != 2 || activities[0].ID != "a-2" {
		t.Errorf("unexpected activities: %+v", activities)
	}
}

func TestRecordDoesNotRideTheRequestTransaction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	var order []string

	mockStorage := NewMockStorageInterface(ctrl)
	mockStorage.EXPECT().CreateActivity(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, a *types.Activity) error {
			if ctx.Value(db.LazyTxContextKey{}) != nil {
				t.Error("expected the activity insert to run outside the transaction")
			}
			order = append(order, "audit")
			return fmt.Errorf("insert failed")
		},
	)

	service := NewService(mockStorage, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	client := &db.DBClient{}
	err := client.WithTx(context.Background(), func(txCtx context.Context) error {
		service.Record(txCtx, "card-1", "user-1", types.ActivityCreated, `Card created: "Fix login"`)
		order = append(order, "mutation")
		return nil
	})
	if err != nil {
		t.Fatalf("expected the mutation to commit despite the audit failure, got %v", err)
	}

	if len(order) != 2 || order[0] != "mutation" || order[1] != "audit" {
		t.Errorf("expected the audit write to wait for the commit, got %v", order)
	}
}
