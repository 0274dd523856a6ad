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

func TestPortfolioHandler_Portfolios(t *testing.T) {
	t.Run("seeded scenario returns the three demo portfolios", func(t *testing.T) {
		db := testutil.SetupSeededTestDB(t)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestUserService(t, db),
		)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolios/", nil)
		w := httptest.NewRecorder()

		handler.Portfolios(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", w.Code)
		}

		var portfolios []model.Portfolio
		if err := json.NewDecoder(w.Body).Decode(&portfolios); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if len(portfolios) != 3 {
			t.Fatalf("Expected 3 seeded portfolios, got %d", len(portfolios))
		}
		if portfolios[0].Name != "Conservative Growth Fund" {
			t.Errorf("Expected insertion order to be preserved, first was %q", portfolios[0].Name)
		}
	})

	t.Run("no seeded user returns 404", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestUserService(t, db),
		)

		req := httptest.NewRequest(http.MethodGet, "/api/portfolios/", nil)
		w := httptest.NewRecorder()

		handler.Portfolios(w, req)

		if w.Code != http.StatusNotFound {
			t.Errorf("Expected status 404, got %d", w.Code)
		}
	})
}

func TestPortfolioHandler_CreatePortfolio(t *testing.T) {
	t.Run("valid request returns 201 attributed to the demo user", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		user := testutil.NewUser().Build(t, db)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestUserService(t, db),
		)

		value := 750500.0
		performance := 4.1
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/portfolios/", request.CreatePortfolioRequest{
			Name:        "Balanced Income Fund",
			Type:        "Bond Fund",
			Value:       &value,
			Performance: &performance,
			RiskLevel:   model.RiskLevelLow,
		}, nil)
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("Expected status 201, got %d: %s", w.Code, w.Body.String())
		}

		var portfolio model.Portfolio
		if err := json.NewDecoder(w.Body).Decode(&portfolio); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if portfolio.ID == "" {
			t.Errorf("Expected a fresh id")
		}
		if portfolio.UserID != user.ID {
			t.Errorf("Expected portfolio owned by %s, got %s", user.ID, portfolio.UserID)
		}
		if portfolio.LastUpdated.IsZero() {
			t.Errorf("Expected lastUpdated to be stamped")
		}
	})

	t.Run("missing name returns 400 with field details", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewUser().Build(t, db)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestUserService(t, db),
		)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/portfolios/", request.CreatePortfolioRequest{
			Type: "Bond Fund",
		}, nil)
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("Expected status 400, got %d", w.Code)
		}

		var body struct {
			Message string            `json:"message"`
			Details map[string]string `json:"details"`
		}
		if err := json.NewDecoder(w.Body).Decode(&body); err != nil {
			t.Fatalf("Failed to decode response: %v", err)
		}
		if body.Message == "" {
			t.Errorf("Expected a message in the error body")
		}
		if _, ok := body.Details["name"]; !ok {
			t.Errorf("Expected a name field error, got %v", body.Details)
		}
	})

	t.Run("negative value returns 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewUser().Build(t, db)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestUserService(t, db),
		)

		value := -100.0
		req := testutil.NewJSONRequest(t, http.MethodPost, "/api/portfolios/", request.CreatePortfolioRequest{
			Name:  "Bad Fund",
			Type:  "Bond Fund",
			Value: &value,
		}, nil)
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})

	t.Run("malformed body returns 400", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		handler := handlers.NewPortfolioHandler(
			testutil.NewTestPortfolioService(t, db),
			testutil.NewTestUserService(t, db),
		)

		req := httptest.NewRequest(http.MethodPost, "/api/portfolios/", nil)
		w := httptest.NewRecorder()

		handler.CreatePortfolio(w, req)

		if w.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400, got %d", w.Code)
		}
	})
}
