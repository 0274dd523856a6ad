package report

import (
	"context"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

// Composition fractions are fixed placeholders. There is no holdings-level
// data model to compute a real breakdown from.
var compositionCategories = []struct {
	category string
	fraction float64
}{
	{"Equities", 0.45},
	{"Fixed Income", 0.30},
	{"Real Estate", 0.15},
	{"Cash", 0.10},
}

// defaultAtrqScore is used when no questionnaire result is available.
const defaultAtrqScore = 65

// StaticProvider produces the deterministic analysis report. It never fails.
type StaticProvider struct{}

// NewStaticProvider creates the deterministic report provider.
func NewStaticProvider() *StaticProvider {
	return &StaticProvider{}
}

// Generate builds the fixed-shape report from the portfolio, its breaches and
// the ATRQ result. Breaches belonging to other portfolios are ignored.
func (p *StaticProvider) Generate(_ context.Context, in Input) (model.AnalysisReport, error) {
	portfolio := in.Portfolio

	breaches := make([]model.PortfolioBreach, 0, len(in.Breaches))
	for _, b := range in.Breaches {
		if b.PortfolioID == portfolio.ID {
			breaches = append(breaches, b)
		}
	}

	pending := 0
	for _, b := range breaches {
		if !b.Resolved() {
			pending++
		}
	}

	riskLevel := strings.ToLower(portfolio.RiskLevel)
	if riskLevel == "" {
		riskLevel = "moderate"
	}

	overallRisk := portfolio.RiskLevel
	if overallRisk == "" {
		overallRisk = "Moderate"
	}

	atrqScore := float64(defaultAtrqScore)
	if in.Atrq != nil && in.Atrq.OverallScore != 0 {
		atrqScore = in.Atrq.OverallScore
	}

	composition := make([]model.CompositionSlice, 0, len(compositionCategories))
	for _, c := range compositionCategories {
		composition = append(composition, model.CompositionSlice{
			Category:   c.category,
			Percentage: c.fraction * 100,
			Value:      portfolio.Value * c.fraction,
		})
	}

	breachSummary := "No suitability breaches detected. Portfolio remains compliant with all monitoring rules."
	complianceAdvice := "Maintain current compliance monitoring"
	if len(breaches) > 0 {
		breachSummary = fmt.Sprintf("%d suitability breaches detected requiring attention.", len(breaches))
		complianceAdvice = "Address outstanding suitability breaches promptly"
	}

	return model.AnalysisReport{
		ExecutiveSummary: fmt.Sprintf(
			"This portfolio analysis for %s reveals a well-diversified investment strategy with a current value of £%s. The portfolio demonstrates %s risk exposure aligned with the client's risk tolerance profile.",
			portfolio.Name,
			humanize.Commaf(portfolio.Value),
			riskLevel,
		),
		RiskAssessment: model.RiskAssessment{
			OverallRisk:   overallRisk,
			AtrqScore:     atrqScore,
			RiskAlignment: "The portfolio risk level aligns well with the client's ATRQ assessment, indicating appropriate risk management.",
		},
		PortfolioComposition: composition,
		BreachAnalysis: model.BreachAnalysis{
			TotalBreaches:    len(breaches),
			CriticalBreaches: pending,
			ResolvedBreaches: len(breaches) - pending,
			BreachSummary:    breachSummary,
		},
		Recommendations: []string{
			"Consider rebalancing equity allocation to maintain target risk profile",
			"Monitor fixed income duration risk in current interest rate environment",
			complianceAdvice,
			"Review portfolio performance against benchmarks quarterly",
		},
		KeyMetrics: model.KeyMetrics{
			TotalValue:     portfolio.Value,
			ExpectedReturn: "7.2%",
			Volatility:     "12.8%",
			SharpeRatio:    "0.56",
			MaxDrawdown:    "-8.3%",
		},
	}, nil
}
