// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/canonical/kanban-service/internal/types"
)

func TestStatusFromError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"Unauthenticated", types.ErrUnauthenticated, http.StatusUnauthorized},
		{"Not found", types.ErrNotFound, http.StatusNotFound},
		{"Forbidden", types.ErrForbidden, http.StatusForbidden},
		{"Validation", types.ErrValidation, http.StatusBadRequest},
		{"Conflict", types.ErrConflict, http.StatusConflict},
		{"Expired", types.ErrExpired, http.StatusGone},
		{"Wrapped validation", fmt.Errorf("%w: title is required", types.ErrValidation), http.StatusBadRequest},
		{"Unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := StatusFromError(tt.err); got != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, got)
			}
		})
	}
}

func TestWriteErrorResponseMasksInternalErrors(t *testing.T) {
	rec := httptest.NewRecorder()
	if err := WriteErrorResponse(rec, errors.New("pq: connection refused")); err != nil {
		t.Fatalf("failed to write response: %v", err)
	}

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}

	var resp ErrorResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Message != "internal server error" {
		t.Errorf("internal error detail leaked: %q", resp.Message)
	}
}
