// Package report generates fixed-shape portfolio analysis reports. The
// deterministic provider is the contract; the Gemini-backed provider is a
// best-effort prose enhancement that can never fail the request.
package report

import (
	"context"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

// Input carries everything a provider needs to generate a report. Breaches may
// include records for other portfolios; providers filter by the portfolio id.
// Atrq is nil when the user has no questionnaire result.
type Input struct {
	Portfolio model.Portfolio
	Breaches  []model.PortfolioBreach
	Atrq      *model.AtrqResult
}

// Provider generates an analysis report for a portfolio. Implementations must
// always return a complete report; provider-side failures are swallowed into
// the deterministic fallback, never surfaced to the caller.
type Provider interface {
	Generate(ctx context.Context, in Input) (model.AnalysisReport, error)
}
