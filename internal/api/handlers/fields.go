package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/request"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/response"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/validation"
)

// FieldHandler handles monitoring-field HTTP requests
type FieldHandler struct {
	fieldService *service.FieldService
	userService  *service.UserService
}

// NewFieldHandler creates a new FieldHandler
func NewFieldHandler(fieldService *service.FieldService, userService *service.UserService) *FieldHandler {
	return &FieldHandler{
		fieldService: fieldService,
		userService:  userService,
	}
}

// Fields handles GET requests to retrieve the demo user's monitoring fields.
//
// Endpoint: GET /api/monitoring-fields
// Response: 200 OK with array of model.MonitoringField
func (h *FieldHandler) Fields(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Current()
	if err != nil {
		respondServiceError(w, err, "failed to retrieve monitoring fields")
		return
	}

	fields, err := h.fieldService.List(user.ID)
	if err != nil {
		respondServiceError(w, err, "failed to retrieve monitoring fields")
		return
	}

	response.RespondJSON(w, http.StatusOK, fields)
}

// CreateField handles POST requests to create a monitoring field.
//
// Endpoint: POST /api/monitoring-fields
// Response: 201 Created with model.MonitoringField
// Error: 400 Bad Request on validation failure
func (h *FieldHandler) CreateField(w http.ResponseWriter, r *http.Request) {
	var req request.CreateFieldRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateCreateField(req); err != nil {
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

	field, err := h.fieldService.Create(service.CreateField{
		UserID:     userID,
		FieldName:  req.FieldName,
		IsEnabled:  req.IsEnabled,
		Threshold:  req.Threshold,
		AlertLevel: req.AlertLevel,
	})
	if err != nil {
		respondServiceError(w, err, "failed to create monitoring field")
		return
	}

	response.RespondJSON(w, http.StatusCreated, field)
}

// UpdateField handles PUT requests to partially update a monitoring field.
//
// Endpoint: PUT /api/monitoring-fields/{id}
// Response: 200 OK with model.MonitoringField
// Error: 400 on validation failure, 404 if the field does not exist
func (h *FieldHandler) UpdateField(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req request.UpdateFieldRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateUpdateField(req); err != nil {
		respondValidationError(w, err)
		return
	}

	field, err := h.fieldService.Update(id, service.FieldUpdate{
		FieldName:  req.FieldName,
		IsEnabled:  req.IsEnabled,
		Threshold:  req.Threshold,
		AlertLevel: req.AlertLevel,
	})
	if err != nil {
		respondServiceError(w, err, "failed to update monitoring field")
		return
	}

	response.RespondJSON(w, http.StatusOK, field)
}

// DeleteField handles DELETE requests for a monitoring field.
//
// Endpoint: DELETE /api/monitoring-fields/{id}
// Response: 200 OK with a confirmation message
// Error: 404 if the field does not exist
func (h *FieldHandler) DeleteField(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.fieldService.Delete(id)
	if err != nil {
		respondServiceError(w, err, "failed to delete monitoring field")
		return
	}
	if !deleted {
		response.RespondError(w, http.StatusNotFound, "monitoring field not found", nil)
		return
	}

	response.RespondJSON(w, http.StatusOK, map[string]string{"message": "monitoring field deleted"})
}
