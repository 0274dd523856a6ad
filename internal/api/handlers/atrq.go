package handlers

import (
	"errors"
	"net/http"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/response"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
)

// AtrqHandler handles ATRQ-related HTTP requests
type AtrqHandler struct {
	atrqService *service.AtrqService
	userService *service.UserService
}

// NewAtrqHandler creates a new AtrqHandler
func NewAtrqHandler(atrqService *service.AtrqService, userService *service.UserService) *AtrqHandler {
	return &AtrqHandler{
		atrqService: atrqService,
		userService: userService,
	}
}

// AtrqResult handles GET requests for the demo user's attitude-to-risk
// questionnaire result, or a 200 with a JSON null body when none is recorded.
//
// Endpoint: GET /api/atrq
// Response: 200 OK with model.AtrqResult or null
func (h *AtrqHandler) AtrqResult(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Current()
	if err != nil {
		respondServiceError(w, err, "failed to retrieve ATRQ result")
		return
	}

	result, err := h.atrqService.GetForUser(user.ID)
	if errors.Is(err, apperrors.ErrAtrqResultNotFound) {
		response.RespondJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		respondServiceError(w, err, "failed to retrieve ATRQ result")
		return
	}

	response.RespondJSON(w, http.StatusOK, result)
}
