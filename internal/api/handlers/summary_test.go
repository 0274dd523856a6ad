package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/handlers"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/request"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/testutil"
)

func TestSummaryHandler_Generate(t *testing.T) {
	t.Run("returns a complete report for an existing portfolio", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSummaryHandler(testutil.NewTestReportService(t, db))

		user := testutil.NewUser().Build(t, db)
		portfolio := testutil.NewPortfolio(user.ID).
			WithValue(1000).
			WithRiskLevel(model.RiskLevelHigh).
			Build(t, db)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/ai-summary",
			request.SummaryRequest{PortfolioID: portfolio.ID}, nil)
		w := httptest.NewRecorder()

		handler.Generate(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d: %s", w.Code, w.Body.String())
		}

		var report model.AnalysisReport
		if err := json.NewDecoder(w.Body).Decode(&report); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if report.ExecutiveSummary == "" {
			t.Errorf("Expected a non-empty executive summary")
		}
		if len(report.PortfolioComposition) != 4 {
			t.Errorf("Expected 4 composition slices, got %d", len(report.PortfolioComposition))
		}
		if len(report.Recommendations) != 4 {
			t.Errorf("Expected 4 recommendations, got %d", len(report.Recommendations))
		}
		if report.KeyMetrics.TotalValue != 1000 {
			t.Errorf("Expected totalValue 1000, got %f", report.KeyMetrics.TotalValue)
		}
	})

	t.Run("unknown portfolio returns 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSummaryHandler(testutil.NewTestReportService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/ai-summary",
			request.SummaryRequest{PortfolioID: testutil.MakeID()}, nil)
		w := httptest.NewRecorder()

		handler.Generate(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})

	t.Run("malformed portfolioId returns 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewSummaryHandler(testutil.NewTestReportService(t, db))

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/ai-summary",
			request.SummaryRequest{PortfolioID: "not-a-uuid"}, nil)
		w := httptest.NewRecorder()

		handler.Generate(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
