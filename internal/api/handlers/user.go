package handlers

import (
	"net/http"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/response"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService *service.UserService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// UserResponse represents the current-user response. The stored password is
// never serialized.
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

// CurrentUser handles GET requests for the demo user the dashboard runs as.
//
// Endpoint: GET /api/user
// Response: 200 OK with UserResponse
// Error: 404 Not Found if no user has been seeded
func (h *UserHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Current()
	if err != nil {
		respondServiceError(w, err, "failed to retrieve user")
		return
	}

	response.RespondJSON(w, http.StatusOK, UserResponse{
		ID:       user.ID,
		Username: user.Username,
		Name:     user.Name,
	})
}
