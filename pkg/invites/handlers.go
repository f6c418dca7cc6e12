// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package invites

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
	mux.Get("/api/v0/organizations/{orgID}/invites", a.list)
	mux.Post("/api/v0/organizations/{orgID}/invites", a.create)
	mux.Delete("/api/v0/organizations/{orgID}/invites/{inviteID}", a.cancel)
	mux.Post("/api/v0/invites/{token}/accept", a.accept)
}

type CreateInviteRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required"`
}

func (a *API) list(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.list")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	invites, err := a.service.ListInvites(ctx, chi.URLParam(r, "orgID"), userID)
	if err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, invites)
}

func (a *API) create(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.create")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	var req CreateInviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpTypes.WriteErrorResponse(w, fmt.Errorf("%w: invalid request body", types.ErrValidation))
		return
	}
	if err := a.validate.Struct(req); err != nil {
		httpTypes.WriteErrorResponse(w, fmt.Errorf("%w: %v", types.ErrValidation, err))
		return
	}

	invite, err := a.service.CreateInvite(ctx, chi.URLParam(r, "orgID"), userID, req.Email, types.Role(req.Role))
	if err != nil {
		a.logger.Errorf("failed to create invite: %v", err)
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, invite)
}

func (a *API) cancel(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.cancel")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	if err := a.service.CancelInvite(ctx, chi.URLParam(r, "orgID"), chi.URLParam(r, "inviteID"), userID); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) accept(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "invites.API.accept")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	invite, err := a.service.AcceptInvite(ctx, chi.URLParam(r, "token"), userID)
	if err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, invite)
}
