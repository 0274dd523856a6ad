package request

// SummaryRequest selects the portfolio an analysis report is generated for.
type SummaryRequest struct {
	PortfolioID string `json:"portfolioId"`
}
