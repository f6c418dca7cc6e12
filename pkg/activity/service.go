// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"

	"github.com/canonical/kanban-service/internal/db"
	"github.com/canonical/kanban-service/internal/logging"
	"github.com/canonical/kanban-service/internal/monitoring"
	"github.com/canonical/kanban-service/internal/tracing"
	"github.com/canonical/kanban-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Record swallows storage failures. A card mutation must never be rolled
// back because its audit entry could not be written, so the insert never
// rides the request transaction: a failed statement there would abort the
// transaction and undo the mutation after the fact. The write runs on the
// pool once the transaction has committed, which also makes the mutated
// card row visible to the activity's foreign key.
func (s *Service) Record(ctx context.Context, cardID, actorID string, action types.ActivityAction, detail string) {
	ctx, span := s.tracer.Start(ctx, "activity.Service.Record")
	defer span.End()

	a := &types.Activity{
		CardID:  cardID,
		ActorID: actorID,
		Action:  action,
	}
	if detail != "" {
		a.Detail = &detail
	}

	writeCtx := db.WithoutTx(context.WithoutCancel(ctx))
	db.AfterCommit(ctx, func() {
		if err := s.storage.CreateActivity(writeCtx, a); err != nil {
			s.logger.Errorf("failed to record %s activity for card %s: %v", action, cardID, err)
		}
	})
}

func (s *Service) ListByCard(ctx context.Context, cardID string) ([]*types.Activity, error) {
	ctx, span := s.tracer.Start(ctx, "activity.Service.ListByCard")
	defer span.End()

	return s.storage.ListActivitiesByCardID(ctx, cardID)
}
