// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package db

import (
	"context"
	"errors"
	"testing"

	"github.com/canonical/kanban-service/internal/logging"
)

func TestWithoutTxDetachesTransaction(t *testing.T) {
	ctx := contextWithLazyTx(context.Background(), &lazyTx{})

	if lazyTxFromContext(ctx) == nil {
		t.Fatal("expected a transaction holder on the original context")
	}
	if lazyTxFromContext(WithoutTx(ctx)) != nil {
		t.Error("expected no transaction holder on the detached context")
	}
	if lazyTxFromContext(ctx) == nil {
		t.Error("detaching must not mutate the original context")
	}
}

func TestAfterCommitRunsImmediatelyWithoutTransaction(t *testing.T) {
	ran := false
	AfterCommit(context.Background(), func() { ran = true })

	if !ran {
		t.Error("expected hook to run immediately when no transaction is pending")
	}
}

func TestAfterCommitDefersUntilCommit(t *testing.T) {
	client := &DBClient{logger: logging.NewNoopLogger()}

	var order []string
	err := client.WithTx(context.Background(), func(txCtx context.Context) error {
		AfterCommit(txCtx, func() { order = append(order, "hook") })
		order = append(order, "mutation")
		return nil
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(order) != 2 || order[0] != "mutation" || order[1] != "hook" {
		t.Errorf("expected hook to run after the transaction body, got %v", order)
	}
}

func TestAfterCommitDroppedOnRollback(t *testing.T) {
	client := &DBClient{logger: logging.NewNoopLogger()}

	ran := false
	err := client.WithTx(context.Background(), func(txCtx context.Context) error {
		AfterCommit(txCtx, func() { ran = true })
		return errors.New("boom")
	})
	if err == nil {
		t.Fatal("expected the transaction error to surface")
	}

	if ran {
		t.Error("expected hook to be dropped when the transaction rolls back")
	}
}
