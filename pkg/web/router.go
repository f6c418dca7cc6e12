// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package web

import (
	"net/http"
	"time"

	chi "github.com/go-chi/chi/v5"
	middleware "github.com/go-chi/chi/v5/middleware"

	"github.com/canonical/kanban-service/internal/authorization"
	"github.com/canonical/kanban-service/internal/db"
	"github.com/canonical/kanban-service/internal/logging"
	"github.com/canonical/kanban-service/internal/mail"
	"github.com/canonical/kanban-service/internal/monitoring"
	"github.com/canonical/kanban-service/internal/storage"
	"github.com/canonical/kanban-service/internal/tracing"
	"github.com/canonical/kanban-service/pkg/activity"
	"github.com/canonical/kanban-service/pkg/authentication"
	"github.com/canonical/kanban-service/pkg/boards"
	"github.com/canonical/kanban-service/pkg/invites"
	"github.com/canonical/kanban-service/pkg/metrics"
	"github.com/canonical/kanban-service/pkg/organizations"
	"github.com/canonical/kanban-service/pkg/status"
)

// RouterConfig carries the request-independent settings the APIs need.
type RouterConfig struct {
	InvitationLifetime time.Duration
	BaseURL            string
}

func NewRouter(
	s storage.StorageInterface,
	dbClient db.DBClientInterface,
	verifier authentication.TokenVerifierInterface,
	mailer mail.MailerInterface,
	config RouterConfig,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) http.Handler {
	router := chi.NewMux()

	middlewares := make(chi.Middlewares, 0)
	middlewares = append(
		middlewares,
		middleware.RequestID,
		monitoring.NewMiddleware(monitor, logger).ResponseTime(),
		middlewareCORS([]string{"*"}),
	)

	router.Use(middlewares...)

	// Unauthenticated surface.
	metrics.NewAPI(logger).RegisterEndpoints(router)
	status.NewAPI(tracer, monitor, logger).RegisterEndpoints(router)

	authz := authorization.NewAuthorizer(s, tracer, monitor, logger)
	activityService := activity.NewService(s, tracer, monitor, logger)

	organizationsAPI := organizations.NewAPI(
		organizations.NewService(s, authz, dbClient, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	boardsAPI := boards.NewAPI(
		boards.NewService(s, authz, activityService, tracer, monitor, logger),
		tracer, monitor, logger,
	)
	invitesAPI := invites.NewAPI(
		invites.NewService(s, authz, mailer, dbClient, config.InvitationLifetime, config.BaseURL, tracer, monitor, logger),
		tracer, monitor, logger,
	)

	router.Group(func(r chi.Router) {
		r.Use(authentication.NewMiddleware(verifier, tracer, monitor, logger).Authenticate())
		r.Use(db.TransactionMiddleware(dbClient, logger))

		mux := r.(*chi.Mux)
		organizationsAPI.RegisterEndpoints(mux)
		boardsAPI.RegisterEndpoints(mux)
		invitesAPI.RegisterEndpoints(mux)
	})

	return tracing.NewMiddleware(monitor, logger).OpenTelemetry(router)
}
