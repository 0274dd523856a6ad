package request

// CreateBreachRequest represents the request body for recording a portfolio
// breach. Status is optional and defaults to Pending; detectedAt and
// resolvedAt are server-assigned.
type CreateBreachRequest struct {
	PortfolioID       string   `json:"portfolioId"`
	MonitoringFieldID string   `json:"monitoringFieldId"`
	BreachCondition   string   `json:"breachCondition"`
	BreachValue       *float64 `json:"breachValue"`
	Status            string   `json:"status,omitempty"`
}

// UpdateBreachRequest represents a partial breach update. Setting status is
// how advisors triage a breach; resolution stamping happens server-side.
type UpdateBreachRequest struct {
	PortfolioID       *string  `json:"portfolioId,omitempty"`
	MonitoringFieldID *string  `json:"monitoringFieldId,omitempty"`
	BreachCondition   *string  `json:"breachCondition,omitempty"`
	BreachValue       *float64 `json:"breachValue,omitempty"`
	Status            *string  `json:"status,omitempty"`
}
