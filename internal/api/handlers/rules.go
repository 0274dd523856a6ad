package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/request"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/response"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/ruleformat"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/validation"
)

// RuleHandler handles suitability-rule HTTP requests
type RuleHandler struct {
	ruleService *service.RuleService
	userService *service.UserService
}

// NewRuleHandler creates a new RuleHandler
func NewRuleHandler(ruleService *service.RuleService, userService *service.UserService) *RuleHandler {
	return &RuleHandler{
		ruleService: ruleService,
		userService: userService,
	}
}

// RuleResponse is a suitability rule plus the human-readable rendering of its
// condition and action documents.
type RuleResponse struct {
	ID                   string          `json:"id"`
	UserID               string          `json:"userId"`
	Name                 string          `json:"name"`
	IsActive             bool            `json:"isActive"`
	Conditions           json.RawMessage `json:"conditions"`
	Actions              json.RawMessage `json:"actions"`
	ConditionDescription string          `json:"conditionDescription"`
	ActionDescription    string          `json:"actionDescription"`
}

func newRuleResponse(rule model.SuitabilityRule) RuleResponse {
	return RuleResponse{
		ID:                   rule.ID,
		UserID:               rule.UserID,
		Name:                 rule.Name,
		IsActive:             rule.IsActive,
		Conditions:           rule.Conditions,
		Actions:              rule.Actions,
		ConditionDescription: ruleformat.DescribeConditions(rule.Conditions),
		ActionDescription:    ruleformat.DescribeActions(rule.Actions),
	}
}

// Rules handles GET requests to retrieve the demo user's suitability rules.
//
// Endpoint: GET /api/suitability-rules
// Response: 200 OK with array of RuleResponse
func (h *RuleHandler) Rules(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Current()
	if err != nil {
		respondServiceError(w, err, "failed to retrieve suitability rules")
		return
	}

	rules, err := h.ruleService.List(user.ID)
	if err != nil {
		respondServiceError(w, err, "failed to retrieve suitability rules")
		return
	}

	resp := make([]RuleResponse, len(rules))
	for i, rule := range rules {
		resp[i] = newRuleResponse(rule)
	}

	response.RespondJSON(w, http.StatusOK, resp)
}

// CreateRule handles POST requests to create a suitability rule.
//
// Endpoint: POST /api/suitability-rules
// Response: 201 Created with RuleResponse
// Error: 400 Bad Request on validation failure
func (h *RuleHandler) CreateRule(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRuleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateCreateRule(req); err != nil {
		respondValidationError(w, err)
		return
	}

	userID := req.UserID
	if userID == "" {
		user, err := h.userService.Current()
		if err != nil {
			respondServiceError(w, err, "failed to resolve user")
			return
		}
		userID = user.ID
	}

	rule, err := h.ruleService.Create(service.CreateRule{
		UserID:     userID,
		Name:       req.Name,
		IsActive:   req.IsActive,
		Conditions: req.Conditions,
		Actions:    req.Actions,
	})
	if err != nil {
		respondServiceError(w, err, "failed to create suitability rule")
		return
	}

	response.RespondJSON(w, http.StatusCreated, newRuleResponse(rule))
}

// UpdateRule handles PUT requests to partially update a suitability rule.
//
// Endpoint: PUT /api/suitability-rules/{id}
// Response: 200 OK with RuleResponse
// Error: 400 on validation failure, 404 if the rule does not exist
func (h *RuleHandler) UpdateRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateRuleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateUpdateRule(req); err != nil {
		respondValidationError(w, err)
		return
	}

	rule, err := h.ruleService.Update(id, service.RuleUpdate{
		Name:       req.Name,
		IsActive:   req.IsActive,
		Conditions: req.Conditions,
		Actions:    req.Actions,
	})
	if err != nil {
		respondServiceError(w, err, "failed to update suitability rule")
		return
	}

	response.RespondJSON(w, http.StatusOK, newRuleResponse(rule))
}

// DeleteRule handles DELETE requests for a suitability rule. Deleting an
// absent id is a 404; repeating the delete is safe.
//
// Endpoint: DELETE /api/suitability-rules/{id}
// Response: 200 OK with a confirmation message
// Error: 404 if the rule does not exist
func (h *RuleHandler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.ruleService.Delete(id)
	if err != nil {
		respondServiceError(w, err, "failed to delete suitability rule")
		return
	}
	if !deleted {
		response.RespondError(w, http.StatusNotFound, "suitability rule not found", nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"message": "suitability rule deleted"})
}
