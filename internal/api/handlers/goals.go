package handlers

import (
	"errors"
	"net/http"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/response"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
)

// GoalHandler handles goal-related HTTP requests
type GoalHandler struct {
	goalService *service.GoalService
	userService *service.UserService
}

// NewGoalHandler creates a new GoalHandler
func NewGoalHandler(goalService *service.GoalService, userService *service.UserService) *GoalHandler {
	return &GoalHandler{
		goalService: goalService,
		userService: userService,
	}
}

// Goal handles GET requests for the demo user's goal snapshot. A user with no
// goal record gets a 200 with a JSON null body, matching the dashboard's
// "nothing to show" contract.
//
// Endpoint: GET /api/goals
// Response: 200 OK with model.Goal or null
func (h *GoalHandler) Goal(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Current()
	if err != nil {
		respondServiceError(w, err, "failed to retrieve goal")
		return
	}

	goal, err := h.goalService.FirstForUser(user.ID)
	if errors.Is(err, apperrors.ErrGoalNotFound) {
		response.RespondJSON(w, http.StatusOK, nil)
		return
	}
	if err != nil {
		respondServiceError(w, err, "failed to retrieve goal")
		return
	}

	response.RespondJSON(w, http.StatusOK, goal)
}
