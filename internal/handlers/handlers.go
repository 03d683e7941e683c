// Package handlers exposes the admin JSON API over the service layer.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/mbaocraft/go-admin/httpx"
	"github.com/mbaocraft/go-admin/internal/services"
)

// decode reads a JSON request body. A failure writes the 400 response and
// reports false; the caller returns immediately.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_json", nil)
		return false
	}
	return true
}

// serviceError maps the service error taxonomy onto HTTP statuses.
func serviceError(w http.ResponseWriter, err error) {
	var vErr *services.ValidationError
	switch {
	case errors.Is(err, services.ErrNotFound):
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
	case errors.Is(err, services.ErrInvalidTransition):
		httpx.JSONError(w, http.StatusConflict, "invalid_transition", nil)
	case errors.Is(err, services.ErrDuplicateEmail):
		httpx.JSONError(w, http.StatusConflict, "email_already_subscribed", nil)
	case errors.As(err, &vErr):
		httpx.JSONError(w, http.StatusUnprocessableEntity, "validation_failed", vErr.Violations)
	default:
		httpx.JSONError(w, http.StatusInternalServerError, "internal_error", nil)
	}
}
