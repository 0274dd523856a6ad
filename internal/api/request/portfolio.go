package request

// CreatePortfolioRequest represents the request body for creating a portfolio.
// It mirrors the portfolio shape minus id and lastUpdated, which the server
// assigns. Pointer fields distinguish "absent" from zero values.
type CreatePortfolioRequest struct {
	UserID      string   `json:"userId"`
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Value       *float64 `json:"value"`
	Performance *float64 `json:"performance"`
	RiskLevel   string   `json:"riskLevel"`
}

// UpdatePortfolioRequest represents a partial portfolio update.
type UpdatePortfolioRequest struct {
	Name        *string  `json:"name,omitempty"`
	Type        *string  `json:"type,omitempty"`
	Value       *float64 `json:"value,omitempty"`
	Performance *float64 `json:"performance,omitempty"`
	RiskLevel   *string  `json:"riskLevel,omitempty"`
}
