// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organizations

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	httpTypes "github.com/canonical/kanban-service/internal/http/types"
	"github.com/canonical/kanban-service/internal/logging"
	"github.com/canonical/kanban-service/internal/monitoring"
	"github.com/canonical/kanban-service/internal/tracing"
	"github.com/canonical/kanban-service/internal/types"
	"github.com/canonical/kanban-service/pkg/authentication"
)

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewAPI(
	service ServiceInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *API {
	return &API{
		service:  service,
		validate: validator.New(),
		tracer:   tracer,
		monitor:  monitor,
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux *chi.Mux) {
	mux.Get("/api/v0/organizations", a.list)
	mux.Post("/api/v0/organizations", a.create)
	mux.Get("/api/v0/organizations/{orgID}", a.get)
	mux.Delete("/api/v0/organizations/{orgID}", a.delete)
	mux.Get("/api/v0/organizations/{orgID}/members", a.listMembers)
}

type CreateOrganizationRequest struct {
	Name string `json:"name" validate:"required"`
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.list")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	orgs, err := a.service.ListOrganizations(ctx, userID)
	if err != nil {
		a.logger.Errorf("failed to list organizations: %v", err)
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, orgs)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.create")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	var req CreateOrganizationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteErrorResponse(w, fmt.Errorf("%w: invalid request body", types.ErrValidation))
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorResponse(w, fmt.Errorf("%w: %v", types.ErrValidation, err))
		return
	}

	org, err := a.service.CreateOrganization(ctx, userID, req.Name)
	if err != nil {
		a.logger.Errorf("failed to create organization: %v", err)
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, org)
}

func (a *API) get(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.get")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	org, err := a.service.GetOrganization(ctx, chi.URLParam(r, "orgID"), userID)
	if err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, org)
}

func (a *API) delete(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.delete")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	if err := a.service.DeleteOrganization(ctx, chi.URLParam(r, "orgID"), userID); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) listMembers(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "organizations.API.listMembers")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	members, err := a.service.ListMembers(ctx, chi.URLParam(r, "orgID"), userID)
	if err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, members)
}
