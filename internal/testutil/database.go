package testutil

import (
	"database/sql"
	"testing"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/database"
)

// SetupTestDB creates an in-memory store for testing, with the full schema
// applied. The database is automatically cleaned up when the test completes.
//
// Example usage:
//
//	func TestSomething(t *testing.T) {
//	    db := testutil.SetupTestDB(t)
//	    // db is ready to use with schema created
//	}
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// In-memory database (destroyed when connection closes)
	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	// Cleanup when test ends
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

// SetupSeededTestDB creates an in-memory store with the demo seed applied,
// for tests exercising the seeded dashboard scenario.
func SetupSeededTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db := SetupTestDB(t)
	if err := database.SeedDemoData(db); err != nil {
		t.Fatalf("Failed to seed test database: %v", err)
	}

	return db
}
