// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package activity

import (
	"context"

	"github.com/canonical/kanban-service/internal/types"
)

type ServiceInterface interface {
	// Record appends an audit entry for a card. Recording is best effort
	// and never fails the caller.
	Record(ctx context.Context, cardID, actorID string, action types.ActivityAction, detail string)
	ListByCard(ctx context.Context, cardID string) ([]*types.Activity, error)
}

// StorageInterface is the subset of the storage layer the activity service needs.
type StorageInterface interface {
	CreateActivity(ctx context.Context, activity *types.Activity) error
	ListActivitiesByCardID(ctx context.Context, cardID string) ([]*types.Activity, error)
}
