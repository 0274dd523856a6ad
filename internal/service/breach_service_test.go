package service_test

import (
	"errors"
	"testing"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/testutil"
)

func strPtr(s string) *string { return &s }

// TestBreachService_Lifecycle tests the resolution-stamping rule.
//
// WHY: the dashboard derives its pending/resolved split from resolvedAt, so
// the invariant "resolvedAt is non-nil iff status is not Pending" must hold
// across every transition, including moving a breach back to Pending.
func TestBreachService_Lifecycle(t *testing.T) {
	t.Run("create defaults to Pending with nil resolvedAt", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBreachService(t, db)

		breach, err := svc.Create(service.CreateBreach{
			PortfolioID:       testutil.MakeID(),
			MonitoringFieldID: testutil.MakeID(),
			BreachCondition:   "Allocation drift exceeds threshold",
			BreachValue:       7.2,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if breach.Status != model.BreachStatusPending {
			t.Errorf("Expected status Pending, got %q", breach.Status)
		}
		if breach.ResolvedAt != nil {
			t.Errorf("Expected nil resolvedAt, got %v", breach.ResolvedAt)
		}
		if breach.DetectedAt.IsZero() {
			t.Errorf("Expected detectedAt to be stamped")
		}
	})

	t.Run("create in a resolved status stamps resolvedAt immediately", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBreachService(t, db)

		breach, err := svc.Create(service.CreateBreach{
			PortfolioID:       testutil.MakeID(),
			MonitoringFieldID: testutil.MakeID(),
			BreachCondition:   "Risk profile mismatch",
			BreachValue:       2.1,
			Status:            model.BreachStatusAcceptAndChange,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		if breach.ResolvedAt == nil {
			t.Errorf("Expected resolvedAt to be stamped for a resolved breach")
		}
	})

	t.Run("leaving Pending stamps resolvedAt exactly once", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBreachService(t, db)

		breach, err := svc.Create(service.CreateBreach{
			PortfolioID:       testutil.MakeID(),
			MonitoringFieldID: testutil.MakeID(),
			BreachCondition:   "Concentration risk",
			BreachValue:       25.8,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		resolved, err := svc.Update(breach.ID, service.BreachUpdate{
			Status: strPtr(model.BreachStatusReject),
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if resolved.ResolvedAt == nil {
			t.Fatalf("Expected resolvedAt to be stamped on leaving Pending")
		}
		firstStamp := *resolved.ResolvedAt

		// A second resolution decision must not move the stamp.
		reresolved, err := svc.Update(breach.ID, service.BreachUpdate{
			Status: strPtr(model.BreachStatusAcceptWithoutChange),
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if reresolved.ResolvedAt == nil {
			t.Fatalf("Expected resolvedAt to persist across resolution changes")
		}
		if !reresolved.ResolvedAt.Equal(firstStamp) {
			t.Errorf("Expected resolvedAt %v to be untouched, got %v", firstStamp, *reresolved.ResolvedAt)
		}
	})

	t.Run("returning to Pending clears resolvedAt", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBreachService(t, db)

		breach, err := svc.Create(service.CreateBreach{
			PortfolioID:       testutil.MakeID(),
			MonitoringFieldID: testutil.MakeID(),
			BreachCondition:   "Allocation drift exceeds threshold",
			BreachValue:       7.2,
			Status:            model.BreachStatusReject,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		reopened, err := svc.Update(breach.ID, service.BreachUpdate{
			Status: strPtr(model.BreachStatusPending),
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if reopened.ResolvedAt != nil {
			t.Errorf("Expected resolvedAt to be cleared on return to Pending, got %v", reopened.ResolvedAt)
		}
	})

	t.Run("free-text statuses are accepted and count as resolved", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBreachService(t, db)

		breach, err := svc.Create(service.CreateBreach{
			PortfolioID:       testutil.MakeID(),
			MonitoringFieldID: testutil.MakeID(),
			BreachCondition:   "Allocation drift exceeds threshold",
			BreachValue:       7.2,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		escalated, err := svc.Update(breach.ID, service.BreachUpdate{
			Status: strPtr("Escalated to compliance"),
		})
		if err != nil {
			t.Fatalf("Update failed: %v", err)
		}
		if escalated.Status != "Escalated to compliance" {
			t.Errorf("Expected free-text status to be stored, got %q", escalated.Status)
		}
		if escalated.ResolvedAt == nil {
			t.Errorf("Expected non-Pending free-text status to stamp resolvedAt")
		}
	})

	t.Run("updating a missing breach reports not found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBreachService(t, db)

		_, err := svc.Update(testutil.MakeID(), service.BreachUpdate{
			Status: strPtr(model.BreachStatusReject),
		})
		if !errors.Is(err, apperrors.ErrBreachNotFound) {
			t.Errorf("Expected ErrBreachNotFound, got %v", err)
		}
	})
}

// TestBreachService_ListForUser tests the two-stage user-scoped breach query.
func TestBreachService_ListForUser(t *testing.T) {
	t.Run("returns exactly the breaches on the user's portfolios", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBreachService(t, db)

		owner := testutil.NewUser().Build(t, db)
		other := testutil.NewUser().Build(t, db)

		p1 := testutil.NewPortfolio(owner.ID).Build(t, db)
		p2 := testutil.NewPortfolio(owner.ID).Build(t, db)
		foreign := testutil.NewPortfolio(other.ID).Build(t, db)

		field := testutil.NewField(owner.ID).Build(t, db)

		b1 := testutil.NewBreach(p1.ID, field.ID).Build(t, db)
		b2 := testutil.NewBreach(p2.ID, field.ID).WithStatus(model.BreachStatusReject).Build(t, db)
		testutil.NewBreach(foreign.ID, field.ID).Build(t, db)

		breaches, err := svc.ListForUser(owner.ID)
		if err != nil {
			t.Fatalf("ListForUser failed: %v", err)
		}

		if len(breaches) != 2 {
			t.Fatalf("Expected 2 breaches, got %d", len(breaches))
		}
		got := map[string]bool{}
		for _, b := range breaches {
			got[b.ID] = true
		}
		if !got[b1.ID] || !got[b2.ID] {
			t.Errorf("Expected breaches %s and %s, got %v", b1.ID, b2.ID, got)
		}
	})

	t.Run("user without portfolios sees no breaches", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBreachService(t, db)

		user := testutil.NewUser().Build(t, db)

		breaches, err := svc.ListForUser(user.ID)
		if err != nil {
			t.Fatalf("ListForUser failed: %v", err)
		}
		if len(breaches) != 0 {
			t.Errorf("Expected no breaches, got %d", len(breaches))
		}
	})
}

func TestBreachService_Delete(t *testing.T) {
	t.Run("delete is idempotent", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestBreachService(t, db)

		breach, err := svc.Create(service.CreateBreach{
			PortfolioID:       testutil.MakeID(),
			MonitoringFieldID: testutil.MakeID(),
			BreachCondition:   "Allocation drift exceeds threshold",
			BreachValue:       7.2,
		})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		deleted, err := svc.Delete(breach.ID)
		if err != nil {
			t.Fatalf("Delete failed: %v", err)
		}
		if !deleted {
			t.Errorf("Expected first delete to report true")
		}

		deleted, err = svc.Delete(breach.ID)
		if err != nil {
			t.Fatalf("Second delete failed: %v", err)
		}
		if deleted {
			t.Errorf("Expected second delete to report false")
		}
	})
}
