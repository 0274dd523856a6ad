package service

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/report"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/repository"
)

// ReportService assembles the inputs for an analysis report and invokes the
// configured provider. The provider contract guarantees a complete report, so
// the only failure modes here are a missing portfolio or a store error.
type ReportService struct {
	portfolioRepo *repository.PortfolioRepository
	breachRepo    *repository.BreachRepository
	atrqRepo      *repository.AtrqRepository
	provider      report.Provider
}

// NewReportService creates a new ReportService with the given provider.
func NewReportService(
	portfolioRepo *repository.PortfolioRepository,
	breachRepo *repository.BreachRepository,
	atrqRepo *repository.AtrqRepository,
	provider report.Provider,
) *ReportService {
	return &ReportService{
		portfolioRepo: portfolioRepo,
		breachRepo:    breachRepo,
		atrqRepo:      atrqRepo,
		provider:      provider,
	}
}

// Generate produces an analysis report for the given portfolio. Breaches and
// the owner's ATRQ result are loaded concurrently; a missing ATRQ result is
// not an error, the report simply falls back to its default score.
func (s *ReportService) Generate(ctx context.Context, portfolioID string) (model.AnalysisReport, error) {
	portfolio, err := s.portfolioRepo.GetByID(portfolioID)
	if err != nil {
		return model.AnalysisReport{}, err
	}

	var (
		breaches []model.PortfolioBreach
		atrq     *model.AtrqResult
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		breaches, err = s.breachRepo.ListByPortfolioIDs([]string{portfolio.ID})
		return err
	})
	g.Go(func() error {
		result, err := s.atrqRepo.GetByUserID(portfolio.UserID)
		if errors.Is(err, apperrors.ErrAtrqResultNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		atrq = &result
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.AnalysisReport{}, err
	}

	return s.provider.Generate(ctx, report.Input{
		Portfolio: portfolio,
		Breaches:  breaches,
		Atrq:      atrq,
	})
}
