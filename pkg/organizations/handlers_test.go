// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/canonical/kanban-service/internal/logging"
	"github.com/canonical/kanban-service/internal/monitoring"
	"github.com/canonical/kanban-service/internal/tracing"
	"github.com/canonical/kanban-service/internal/types"
	"github.com/canonical/kanban-service/pkg/authentication"
)

func newAPI(t *testing.T) (*API, *MockServiceInterface, *chi.Mux) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	api := NewAPI(mockService, tracing.NewNoopTracer(), monitoring.NewNoopMonitor(), logging.NewNoopLogger())

	mux := chi.NewMux()
	api.RegisterEndpoints(mux)
	return api, mockService, mux
}

func asUser(r *http.Request, userID string) *http.Request {
	return r.WithContext(authentication.WithUserID(r.Context(), userID))
}

func TestCreateHandler(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServiceInterface)
		expectedStatus int
	}{
		{
			name: "Created",
			body: `{"name": "Acme"}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateOrganization(gomock.Any(), "user-1", "Acme").
					Return(&types.Organization{ID: "org-1", Name: "Acme"}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Malformed body",
			body:           `{`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "Missing name",
			body:           `{}`,
			setupMocks:     func(s *MockServiceInterface) {},
			expectedStatus: http.StatusBadRequest,
		},
		{
			name: "Service validation error",
			body: `{"name": " "}`,
			setupMocks: func(s *MockServiceInterface) {
				s.EXPECT().CreateOrganization(gomock.Any(), "user-1", " ").
					Return(nil, types.ErrValidation)
			},
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, mockService, mux := newAPI(t)
			tt.setupMocks(mockService)

			req := httptest.NewRequest(http.MethodPost, "/api/v0/organizations", strings.NewReader(tt.body))
			rr := httptest.NewRecorder()
			mux.ServeHTTP(rr, asUser(req, "user-1"))

			if rr.Code != tt.expectedStatus {
				t.Errorf("expected status %d, got %d", tt.expectedStatus, rr.Code)
			}
		})
	}
}

func TestGetHandler(t *testing.T) {
	t.Run("Returns organization with role", func(t *testing.T) {
		_, mockService, mux := newAPI(t)

		mockService.EXPECT().GetOrganization(gomock.Any(), "org-1", "user-1").
			Return(&OrganizationDetail{Organization: types.Organization{ID: "org-1"}, Role: types.RoleOwner}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/organizations/org-1", nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, asUser(req, "user-1"))

		if rr.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rr.Code)
		}

		var resp struct {
			Status int                `json:"status"`
			Data   OrganizationDetail `json:"data"`
		}
		if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Data.ID != "org-1" || resp.Data.Role != types.RoleOwner {
			t.Errorf("unexpected payload: %+v", resp.Data)
		}
	})

	t.Run("Not found maps to 404", func(t *testing.T) {
		_, mockService, mux := newAPI(t)

		mockService.EXPECT().GetOrganization(gomock.Any(), "org-9", "user-1").
			Return(nil, types.ErrNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/organizations/org-9", nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, asUser(req, "user-1"))

		if rr.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rr.Code)
		}
	})
}

func TestDeleteHandler(t *testing.T) {
	t.Run("Forbidden maps to 403", func(t *testing.T) {
		_, mockService, mux := newAPI(t)

		mockService.EXPECT().DeleteOrganization(gomock.Any(), "org-1", "user-1").
			Return(types.ErrForbidden)

		req := httptest.NewRequest(http.MethodDelete, "/api/v0/organizations/org-1", nil)
		rr := httptest.NewRecorder()
		mux.ServeHTTP(rr, asUser(req, "user-1"))

		if rr.Code != http.StatusForbidden {
			t.Errorf("expected 403, got %d", rr.Code)
		}
	})
}
