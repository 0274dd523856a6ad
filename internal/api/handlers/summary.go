package handlers

import (
	"net/http"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/request"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/response"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/validation"
)

// SummaryHandler handles analysis-report HTTP requests
type SummaryHandler struct {
	reportService *service.ReportService
}

// NewSummaryHandler creates a new SummaryHandler
func NewSummaryHandler(reportService *service.ReportService) *SummaryHandler {
	return &SummaryHandler{
		reportService: reportService,
	}
}

// Generate handles POST requests to produce an analysis report for one
// portfolio. Provider failures never surface here: the report service
// guarantees a deterministic fallback.
//
// Endpoint: POST /api/ai-summary
// Response: 200 OK with model.AnalysisReport
// Error: 400 on a malformed portfolioId, 404 if the portfolio does not exist
func (h *SummaryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	var req request.SummaryRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if err := validation.ValidateUUID(req.PortfolioID); err != nil {
		response.RespondError(w, http.StatusBadRequest, "portfolioId must be a valid UUID", err.Error())
		return
	}

	report, err := h.reportService.Generate(r.Context(), req.PortfolioID)
	if err != nil {
		respondServiceError(w, err, "failed to generate analysis report")
		return
	}

	response.RespondJSON(w, http.StatusOK, report)
}
