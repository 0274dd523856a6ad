package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/request"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/response"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/validation"
)

// BreachHandler handles portfolio-breach HTTP requests
type BreachHandler struct {
	breachService *service.BreachService
	userService   *service.UserService
}

// NewBreachHandler creates a new BreachHandler
func NewBreachHandler(breachService *service.BreachService, userService *service.UserService) *BreachHandler {
	return &BreachHandler{
		breachService: breachService,
		userService:   userService,
	}
}

// Breaches handles GET requests to retrieve the breaches recorded against the
// demo user's portfolios.
//
// Endpoint: GET /api/portfolio-breaches
// Response: 200 OK with array of model.PortfolioBreach
func (h *BreachHandler) Breaches(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Current()
	if err != nil {
		respondServiceError(w, err, "failed to retrieve breaches")
		return
	}

	breaches, err := h.breachService.ListForUser(user.ID)
	if err != nil {
		respondServiceError(w, err, "failed to retrieve breaches")
		return
	}

	response.RespondJSON(w, http.StatusOK, breaches)
}

// CreateBreach handles POST requests to record a breach. Status defaults to
// Pending; a breach created directly in a resolved status gets resolvedAt
// stamped immediately.
//
// Endpoint: POST /api/portfolio-breaches
// Response: 201 Created with model.PortfolioBreach
// Error: 400 Bad Request on validation failure
func (h *BreachHandler) CreateBreach(w http.ResponseWriter, r *http.Request) {
	var req request.CreateBreachRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateCreateBreach(req); err != nil {
		respondValidationError(w, err)
		return
	}

	in := service.CreateBreach{
		PortfolioID:       req.PortfolioID,
		MonitoringFieldID: req.MonitoringFieldID,
		BreachCondition:   req.BreachCondition,
		Status:            req.Status,
	}
	if req.BreachValue != nil {
		in.BreachValue = *req.BreachValue
	}

	breach, err := h.breachService.Create(in)
	if err != nil {
		respondServiceError(w, err, "failed to create breach")
		return
	}

	response.RespondJSON(w, http.StatusCreated, breach)
}

// UpdateBreach handles PUT requests to partially update a breach. Status
// changes drive the resolution lifecycle: the first move out of Pending
// stamps resolvedAt, moving back to Pending clears it.
//
// Endpoint: PUT /api/portfolio-breaches/{id}
// Response: 200 OK with model.PortfolioBreach
// Error: 400 on validation failure, 404 if the breach does not exist
func (h *BreachHandler) UpdateBreach(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateBreachRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateUpdateBreach(req); err != nil {
		respondValidationError(w, err)
		return
	}

	breach, err := h.breachService.Update(id, service.BreachUpdate{
		PortfolioID:       req.PortfolioID,
		MonitoringFieldID: req.MonitoringFieldID,
		BreachCondition:   req.BreachCondition,
		BreachValue:       req.BreachValue,
		Status:            req.Status,
	})
	if err != nil {
		respondServiceError(w, err, "failed to update breach")
		return
	}

	response.RespondJSON(w, http.StatusOK, breach)
}

// DeleteBreach handles DELETE requests for a breach.
//
// Endpoint: DELETE /api/portfolio-breaches/{id}
// Response: 200 OK with a confirmation message
// Error: 404 if the breach does not exist
func (h *BreachHandler) DeleteBreach(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.breachService.Delete(id)
	if err != nil {
		respondServiceError(w, err, "failed to delete breach")
		return
	}
	if !deleted {
		response.RespondError(w, http.StatusNotFound, "portfolio breach not found", nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"message": "portfolio breach deleted"})
}
