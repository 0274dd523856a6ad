package model

// AnalysisReport is the fixed-shape output of the analysis report generator.
// All fields are always present regardless of which provider produced it.
type AnalysisReport struct {
	ExecutiveSummary     string                 `json:"executiveSummary"`
	RiskAssessment       RiskAssessment         `json:"riskAssessment"`
	PortfolioComposition []CompositionSlice     `json:"portfolioComposition"`
	BreachAnalysis       BreachAnalysis         `json:"breachAnalysis"`
	Recommendations      []string               `json:"recommendations"`
	KeyMetrics           KeyMetrics             `json:"keyMetrics"`
}

// RiskAssessment relates the portfolio's risk level to the client's ATRQ score.
type RiskAssessment struct {
	OverallRisk   string  `json:"overallRisk"`
	AtrqScore     float64 `json:"atrqScore"`
	RiskAlignment string  `json:"riskAlignment"`
}

// CompositionSlice is one asset-class bucket of the composition breakdown.
// The percentages are fixed placeholders; there is no holdings-level data
// model to compute them from.
type CompositionSlice struct {
	Category   string  `json:"category"`
	Percentage float64 `json:"percentage"`
	Value      float64 `json:"value"`
}

// BreachAnalysis summarizes breach counts for the analyzed portfolio.
// Critical means still Pending; resolved means anything else.
type BreachAnalysis struct {
	TotalBreaches    int    `json:"totalBreaches"`
	CriticalBreaches int    `json:"criticalBreaches"`
	ResolvedBreaches int    `json:"resolvedBreaches"`
	BreachSummary    string `json:"breachSummary"`
}

// KeyMetrics carries headline portfolio figures. Everything except TotalValue
// is a hardcoded placeholder string.
type KeyMetrics struct {
	TotalValue     float64 `json:"totalValue"`
	ExpectedReturn string  `json:"expectedReturn"`
	Volatility     string  `json:"volatility"`
	SharpeRatio    string  `json:"sharpeRatio"`
	MaxDrawdown    string  `json:"maxDrawdown"`
}
