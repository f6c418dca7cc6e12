// Copyright 2026 Canonical Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/canonical/kanban-service/internal/types"
)

// Response is the standard envelope for successful API responses.
type Response struct {
	Status int         `json:"status"`
	Data   interface{} `json:"data,omitempty"`
}

// ErrorResponse is the standard envelope for API errors.
type ErrorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// StatusFromError maps domain errors to HTTP status codes. Unknown errors
// map to 500.
func StatusFromError(err error) int {
	switch {
	case errors.Is(err, types.ErrUnauthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, types.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, types.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, types.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, types.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, types.ErrExpired):
		return http.StatusGone
	default:
		return http.StatusInternalServerError
	}
}

func WriteResponse(w http.ResponseWriter, status int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(Response{Status: status, Data: data})
}

func WriteErrorResponse(w http.ResponseWriter, err error) error {
	status := StatusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		// Do not leak internals
		message = "internal server error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(ErrorResponse{Status: status, Message: message})
}
