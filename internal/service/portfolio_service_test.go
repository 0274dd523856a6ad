package service_test

import (
	"errors"
	"testing"
	"time"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/testutil"
)

func floatPtr(f float64) *float64 { return &f }

func TestPortfolioService_Create(t *testing.T) {
	t.Run("assigns a fresh id and stamps lastUpdated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		user := testutil.NewUser().Build(t, db)
		existing := testutil.NewPortfolio(user.ID).Build(t, db)

		before := time.Now().UTC()
		portfolio, err := svc.Create(service.CreatePortfolio{
			UserID:      user.ID,
			Name:        "Conservative Growth Fund",
			Type:        "Mutual Fund",
			Value:       450200,
			Performance: 8.7,
			RiskLevel:   model.RiskLevelMedium,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if portfolio.ID == "" || portfolio.ID == existing.ID {
			t.Errorf("Expected a fresh id, got %q", portfolio.ID)
		}
		if portfolio.LastUpdated.Before(before) {
			t.Errorf("Expected lastUpdated >= %v, got %v", before, portfolio.LastUpdated)
		}

		stored, err := svc.Get(portfolio.ID)
		if err != nil {
			t.Fatalf("Get failed: %v", err)
		}
		if stored.Name != "Conservative Growth Fund" {
			t.Errorf("Expected stored name to round-trip, got %q", stored.Name)
		}
	})
}

func TestPortfolioService_Update(t *testing.T) {
	t.Run("merges provided fields and refreshes lastUpdated", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		user := testutil.NewUser().Build(t, db)
		portfolio := testutil.NewPortfolio(user.ID).WithValue(100000).Build(t, db)

		updated, err := svc.Update(portfolio.ID, service.PortfolioUpdate{
			Value: floatPtr(125000),
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}

		if updated.Value != 125000 {
			t.Errorf("Expected value 125000, got %f", updated.Value)
		}
		if updated.Name != portfolio.Name {
			t.Errorf("Expected unset fields to be retained, name changed to %q", updated.Name)
		}
		if !updated.LastUpdated.After(portfolio.LastUpdated) {
			t.Errorf("Expected lastUpdated to be refreshed")
		}
	})

	t.Run("missing portfolio reports not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)

		_, err := svc.Update(testutil.MakeID(), service.PortfolioUpdate{Value: floatPtr(1)})
		if !errors.Is(err, apperrors.ErrPortfolioNotFound) {
			t.Errorf("Expected ErrPortfolioNotFound, got %v", err)
		}
	})
}

func TestPortfolioService_Delete(t *testing.T) {
	t.Run("delete does not cascade to breaches", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestPortfolioService(t, db)
		breachSvc := testutil.NewTestBreachService(t, db)

		user := testutil.NewUser().Build(t, db)
		portfolio := testutil.NewPortfolio(user.ID).Build(t, db)
		field := testutil.NewField(user.ID).Build(t, db)
		breach := testutil.NewBreach(portfolio.ID, field.ID).Build(t, db)

		deleted, err := svc.Delete(portfolio.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if !deleted {
			t.Fatalf("Expected delete to report true")
		}

		// No cascading delete: the breach record survives as an orphan.
		got, err := breachSvc.Get(breach.ID)
		if err != nil {
			t.Fatalf("Expected breach to survive portfolio deletion: %v", err)
		}
		if got.PortfolioID != portfolio.ID {
			t.Errorf("Expected breach to still reference %s, got %s", portfolio.ID, got.PortfolioID)
		}
	})
}
