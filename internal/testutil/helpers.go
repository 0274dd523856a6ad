package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/report"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/repository"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
)

func NewTestUserService(t *testing.T, db *sql.DB) *service.UserService {
	t.Helper()

	return service.NewUserService(repository.NewUserRepository(db))
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	return service.NewPortfolioService(repository.NewPortfolioRepository(db))
}

func NewTestGoalService(t *testing.T, db *sql.DB) *service.GoalService {
	t.Helper()

	return service.NewGoalService(repository.NewGoalRepository(db))
}

func NewTestAtrqService(t *testing.T, db *sql.DB) *service.AtrqService {
	t.Helper()

	return service.NewAtrqService(repository.NewAtrqRepository(db))
}

func NewTestRuleService(t *testing.T, db *sql.DB) *service.RuleService {
	t.Helper()

	return service.NewRuleService(repository.NewRuleRepository(db))
}

func NewTestFieldService(t *testing.T, db *sql.DB) *service.FieldService {
	t.Helper()

	return service.NewFieldService(repository.NewFieldRepository(db))
}

func NewTestBreachService(t *testing.T, db *sql.DB) *service.BreachService {
	t.Helper()

	return service.NewBreachService(
		repository.NewBreachRepository(db),
		repository.NewPortfolioRepository(db),
	)
}

// NewTestReportService creates a ReportService backed by the deterministic
// provider.
func NewTestReportService(t *testing.T, db *sql.DB) *service.ReportService {
	t.Helper()

	return service.NewReportService(
		repository.NewPortfolioRepository(db),
		repository.NewBreachRepository(db),
		repository.NewAtrqRepository(db),
		report.NewStaticProvider(),
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeUsername generates a unique username for testing.
//
// Example usage:
//
//	username := testutil.MakeUsername("advisor")
//	// Returns: "advisor.AB12CD"
func MakeUsername(base string) string {
	if base == "" {
		base = "user"
	}
	return base + "." + randomAlphanumeric(6)
}

// MakeName generates a unique display name for testing.
//
// Example usage:
//
//	name := testutil.MakeName("Test Portfolio")
//	// Returns: "Test Portfolio ABC123"
func MakeName(base string) string {
	if base == "" {
		base = "Test"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
