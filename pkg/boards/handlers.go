// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package boards

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

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
	mux.Get("/api/v0/organizations/{orgID}/boards", a.listBoards)
	mux.Post("/api/v0/organizations/{orgID}/boards", a.createBoard)
	mux.Delete("/api/v0/organizations/{orgID}/boards/{boardID}", a.deleteBoard)

	mux.Get("/api/v0/boards/{boardID}/lists", a.listLists)
	mux.Post("/api/v0/boards/{boardID}/lists", a.createList)
	mux.Post("/api/v0/boards/{boardID}/lists/{listID}/sort", a.reorderList)
	mux.Delete("/api/v0/boards/{boardID}/lists/{listID}", a.deleteList)

	mux.Post("/api/v0/boards/{boardID}/lists/{listID}/cards", a.createCard)
	mux.Patch("/api/v0/boards/{boardID}/lists/{listID}/cards/{cardID}", a.updateCard)
	mux.Delete("/api/v0/boards/{boardID}/lists/{listID}/cards/{cardID}", a.deleteCard)
	mux.Post("/api/v0/boards/{boardID}/lists/{listID}/cards/{cardID}/sort", a.reorderCard)
	mux.Post("/api/v0/boards/{boardID}/lists/{listID}/cards/{cardID}/move", a.moveCard)
	mux.Post("/api/v0/boards/{boardID}/lists/{listID}/cards/{cardID}/complete", a.completeCard)
	mux.Get("/api/v0/boards/{boardID}/lists/{listID}/cards/{cardID}/activities", a.listCardActivities)
}

type CreateBoardRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description *string `json:"description"`
	Color       string  `json:"color"`
}

type CreateListRequest struct {
	Title string `json:"title" validate:"required"`
}

type ReorderRequest struct {
	NewIndex *int `json:"new_index" validate:"required"`
}

type CreateCardRequest struct {
	Title       string     `json:"title" validate:"required"`
	Description *string    `json:"description"`
	Priority    string     `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate     *time.Time `json:"due_date"`
}

type UpdateCardRequest struct {
	Title        *string    `json:"title"`
	Description  *string    `json:"description"`
	Priority     *string    `json:"priority" validate:"omitempty,oneof=low medium high"`
	DueDate      *time.Time `json:"due_date"`
	ClearDueDate bool       `json:"clear_due_date"`
}

type MoveCardRequest struct {
	TargetListID string `json:"target_list_id" validate:"required"`
}

type CompleteCardRequest struct {
	Completed bool `json:"completed"`
}

func (a *API) decode(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid request body", types.ErrValidation)
	}
	if err := a.validate.Struct(dst); err != nil {
		return fmt.Errorf("%w: %v", types.ErrValidation, err)
	}
	return nil
}

func (a *API) listBoards(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.listBoards")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	boards, err := a.service.ListBoards(ctx, chi.URLParam(r, "orgID"), userID)
	if err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, boards)
}

func (a *API) createBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.createBoard")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	var req CreateBoardRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	board, err := a.service.CreateBoard(ctx, chi.URLParam(r, "orgID"), userID, CreateBoardParams{
		Title:       req.Title,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		a.logger.Errorf("failed to create board: %v", err)
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, board)
}

func (a *API) deleteBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.deleteBoard")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	if err := a.service.DeleteBoard(ctx, chi.URLParam(r, "orgID"), chi.URLParam(r, "boardID"), userID); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) listLists(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.listLists")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	lists, err := a.service.ListLists(ctx, chi.URLParam(r, "boardID"), userID)
	if err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, lists)
}

func (a *API) createList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.createList")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	var req CreateListRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	list, err := a.service.CreateList(ctx, chi.URLParam(r, "boardID"), userID, req.Title)
	if err != nil {
		a.logger.Errorf("failed to create list: %v", err)
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, list)
}

func (a *API) reorderList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.reorderList")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	var req ReorderRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	lists, err := a.service.ReorderList(ctx, chi.URLParam(r, "boardID"), chi.URLParam(r, "listID"), userID, *req.NewIndex)
	if err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, lists)
}

func (a *API) deleteList(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.deleteList")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	if err := a.service.DeleteList(ctx, chi.URLParam(r, "boardID"), chi.URLParam(r, "listID"), userID); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) createCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.createCard")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	var req CreateCardRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	card, err := a.service.CreateCard(ctx, chi.URLParam(r, "boardID"), chi.URLParam(r, "listID"), userID, CreateCardParams{
		Title:       req.Title,
		Description: req.Description,
		Priority:    types.Priority(req.Priority),
		DueDate:     req.DueDate,
	})
	if err != nil {
		a.logger.Errorf("failed to create card: %v", err)
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusCreated, card)
}

func (a *API) updateCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.updateCard")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	var req UpdateCardRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	params := UpdateCardParams{
		Title:       req.Title,
		Description: req.Description,
		DueDate:     req.DueDate,
		ClearDue:    req.ClearDueDate,
	}
	if req.Priority != nil {
		p := types.Priority(*req.Priority)
		params.Priority = &p
	}

	card, err := a.service.UpdateCard(ctx, chi.URLParam(r, "boardID"), chi.URLParam(r, "listID"), chi.URLParam(r, "cardID"), userID, params)
	if err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, card)
}

func (a *API) deleteCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.deleteCard")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	if err := a.service.DeleteCard(ctx, chi.URLParam(r, "boardID"), chi.URLParam(r, "listID"), chi.URLParam(r, "cardID"), userID); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, nil)
}

func (a *API) reorderCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.reorderCard")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	var req ReorderRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	cards, err := a.service.ReorderCard(ctx, chi.URLParam(r, "boardID"), chi.URLParam(r, "listID"), chi.URLParam(r, "cardID"), userID, *req.NewIndex)
	if err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, cards)
}

func (a *API) moveCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.moveCard")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	var req MoveCardRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	card, err := a.service.MoveCard(ctx, chi.URLParam(r, "boardID"), chi.URLParam(r, "listID"), chi.URLParam(r, "cardID"), req.TargetListID, userID)
	if err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, card)
}

func (a *API) completeCard(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.completeCard")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	var req CompleteCardRequest
	if err := a.decode(r, &req); err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	card, err := a.service.SetCardCompleted(ctx, chi.URLParam(r, "boardID"), chi.URLParam(r, "listID"), chi.URLParam(r, "cardID"), userID, req.Completed)
	if err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, card)
}

func (a *API) listCardActivities(w http.ResponseWriter, r *http.Request) {
	ctx, span := a.tracer.Start(r.Context(), "boards.API.listCardActivities")
	defer span.End()

	userID, _ := authentication.GetUserID(ctx)

	activities, err := a.service.ListCardActivities(ctx, chi.URLParam(r, "boardID"), chi.URLParam(r, "listID"), chi.URLParam(r, "cardID"), userID)
	if err != nil {
		httpTypes.WriteErrorResponse(w, err)
		return
	}

	httpTypes.WriteResponse(w, http.StatusOK, activities)
}
