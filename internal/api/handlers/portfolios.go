package handlers

import (
	"net/http"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/request"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/response"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/validation"
)

// PortfolioHandler handles portfolio-related HTTP requests
type PortfolioHandler struct {
	portfolioService *service.PortfolioService
	userService      *service.UserService
}

// NewPortfolioHandler creates a new PortfolioHandler
func NewPortfolioHandler(portfolioService *service.PortfolioService, userService *service.UserService) *PortfolioHandler {
	return &PortfolioHandler{
		portfolioService: portfolioService,
		userService:      userService,
	}
}

// Portfolios handles GET requests to retrieve the demo user's portfolios.
//
// Endpoint: GET /api/portfolios
// Response: 200 OK with array of model.Portfolio
// Error: 500 Internal Server Error if retrieval fails
func (h *PortfolioHandler) Portfolios(w http.ResponseWriter, r *http.Request) {
	user, err := h.userService.Current()
	if err != nil {
		respondServiceError(w, err, "failed to retrieve portfolios")
		return
	}

	portfolios, err := h.portfolioService.List(user.ID)
	if err != nil {
		respondServiceError(w, err, "failed to retrieve portfolios")
		return
	}

	response.RespondJSON(w, http.StatusOK, portfolios)
}

// CreatePortfolio handles POST requests to create a portfolio. An omitted
// userId attributes the portfolio to the demo user.
//
// Endpoint: POST /api/portfolios
// Response: 201 Created with the stored model.Portfolio
// Error: 400 Bad Request on validation failure
func (h *PortfolioHandler) CreatePortfolio(w http.ResponseWriter, r *http.Request) {
	var req request.CreatePortfolioRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateCreatePortfolio(req); err != nil {
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

	in := service.CreatePortfolio{
		UserID:    userID,
		Name:      req.Name,
		Type:      req.Type,
		RiskLevel: req.RiskLevel,
	}
	if req.Value != nil {
		in.Value = *req.Value
	}
	if req.Performance != nil {
		in.Performance = *req.Performance
	}

	portfolio, err := h.portfolioService.Create(in)
	if err != nil {
		respondServiceError(w, err, "failed to create portfolio")
		return
	}

	response.RespondJSON(w, http.StatusCreated, portfolio)
}
