package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/report"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/repository"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/service"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/testutil"
)

// recordingProvider captures what it is handed so tests can assert on the
// context and input the service passes through.
type recordingProvider struct {
	ctxErr   error
	input    report.Input
	generate int
}

func (p *recordingProvider) Generate(ctx context.Context, in report.Input) (model.AnalysisReport, error) {
	p.ctxErr = ctx.Err()
	p.input = in
	p.generate++
	return model.AnalysisReport{ExecutiveSummary: "recorded"}, nil
}

func newRecordingReportService(t *testing.T, provider report.Provider) (*service.ReportService, model.Portfolio) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	user := testutil.NewUser().Build(t, db)
	portfolio := testutil.NewPortfolio(user.ID).Build(t, db)
	field := testutil.NewField(user.ID).Build(t, db)
	testutil.NewBreach(portfolio.ID, field.ID).Build(t, db)

	svc := service.NewReportService(
		repository.NewPortfolioRepository(db),
		repository.NewBreachRepository(db),
		repository.NewAtrqRepository(db),
		provider,
	)
	return svc, portfolio
}

func TestReportService_Generate(t *testing.T) {
	t.Run("provider receives a live context and the loaded breaches", func(t *testing.T) {
		provider := &recordingProvider{}
		svc, portfolio := newRecordingReportService(t, provider)

		rep, err := svc.Generate(context.Background(), portfolio.ID)
		if err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
		if rep.ExecutiveSummary != "recorded" {
			t.Errorf("Expected the provider's report, got %q", rep.ExecutiveSummary)
		}

		if provider.generate != 1 {
			t.Fatalf("Expected one provider call, got %d", provider.generate)
		}
		if provider.ctxErr != nil {
			t.Errorf("Expected a live context at the provider call, got %v", provider.ctxErr)
		}
		if len(provider.input.Breaches) != 1 {
			t.Errorf("Expected 1 breach in the provider input, got %d", len(provider.input.Breaches))
		}
		if provider.input.Atrq != nil {
			t.Errorf("Expected nil ATRQ input when no result exists, got %+v", provider.input.Atrq)
		}
	})

	t.Run("unknown portfolio reports not found", func(t *testing.T) {
		provider := &recordingProvider{}
		svc, _ := newRecordingReportService(t, provider)

		_, err := svc.Generate(context.Background(), testutil.MakeID())
		if !errors.Is(err, apperrors.ErrPortfolioNotFound) {
			t.Errorf("Expected ErrPortfolioNotFound, got %v", err)
		}
		if provider.generate != 0 {
			t.Errorf("Expected no provider call for an unknown portfolio, got %d", provider.generate)
		}
	})
}
