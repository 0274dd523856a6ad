package database_test

import (
	"testing"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/database"
)

func TestSeedDemoData(t *testing.T) {
	t.Run("seeds the demo scenario once", func(t *testing.T) {
		db, err := database.Open(":memory:")
		if err != nil {
			t.Fatalf("Failed to open database: %v", err)
		}
		t.Cleanup(func() { db.Close() })

		if err := database.Migrate(db); err != nil {
			t.Fatalf("Failed to migrate: %v", err)
		}

		if err := database.SeedDemoData(db); err != nil {
			t.Fatalf("Failed to seed: %v", err)
		}
		// Second run must be a no-op.
		if err := database.SeedDemoData(db); err != nil {
			t.Fatalf("Re-seed failed: %v", err)
		}

		counts := map[string]int{
			"user":             1,
			"portfolio":        3,
			"goal":             1,
			"atrq_result":      1,
			"monitoring_field": 3,
			"suitability_rule": 2,
			"portfolio_breach": 3,
		}
		for table, want := range counts {
			var got int
			if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&got); err != nil {
				t.Fatalf("Failed to count %s: %v", table, err)
			}
			if got != want {
				t.Errorf("Expected %d rows in %s, got %d", want, table, got)
			}
		}

		var pending int
		if err := db.QueryRow(`SELECT COUNT(*) FROM portfolio_breach WHERE status = 'Pending'`).Scan(&pending); err != nil {
			t.Fatalf("Failed to count pending breaches: %v", err)
		}
		if pending != 1 {
			t.Errorf("Expected 1 pending seeded breach, got %d", pending)
		}
	})
}
