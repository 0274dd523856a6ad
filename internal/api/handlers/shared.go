// Package handlers implements the HTTP layer of the dashboard API. Handlers
// parse and validate requests, delegate to services, and map service errors to
// HTTP statuses.
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/response"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/validation"
)

// decodeJSON decodes the request body into dst. On malformed JSON it writes a
// 400 response and reports false; handlers should return immediately.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		response.RespondError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return false
	}
	return true
}

// respondValidationError writes a 400 with per-field details when err is a
// validation.Error, or a generic 400 otherwise.
func respondValidationError(w http.ResponseWriter, err error) {
	var vErr *validation.Error
	if errors.As(err, &vErr) {
		response.RespondError(w, http.StatusBadRequest, "validation failed", vErr.Fields)
		return
	}
	response.RespondError(w, http.StatusBadRequest, "validation failed", err.Error())
}

// notFoundErrors are the sentinels that map to 404.
var notFoundErrors = []error{
	apperrors.ErrUserNotFound,
	apperrors.ErrPortfolioNotFound,
	apperrors.ErrGoalNotFound,
	apperrors.ErrAtrqResultNotFound,
	apperrors.ErrRuleNotFound,
	apperrors.ErrMonitoringFieldNotFound,
	apperrors.ErrBreachNotFound,
	apperrors.ErrExternalLinkNotConfigured,
}

// respondServiceError maps a service error to an HTTP status: known absence
// sentinels become 404, anything else is a 500 with the given message.
func respondServiceError(w http.ResponseWriter, err error, message string) {
	for _, sentinel := range notFoundErrors {
		if errors.Is(err, sentinel) {
			response.RespondError(w, http.StatusNotFound, err.Error(), nil)
			return
		}
	}
	response.RespondError(w, http.StatusInternalServerError, message, err.Error())
}
