package model

import "time"

// Breach statuses used by the triage UI. The store accepts any string; these
// are the conventional values. A breach starts at Pending and is resolved by
// an advisor decision.
const (
	BreachStatusPending             = "Pending"
	BreachStatusAcceptAndChange     = "Accept and change"
	BreachStatusAcceptWithoutChange = "Accept without change"
	BreachStatusReject              = "Reject"
)

// PortfolioBreach records an instance where a portfolio's monitored metric
// violated a threshold. ResolvedAt is non-nil exactly when Status is not
// Pending; it is stamped once when the status first leaves Pending.
type PortfolioBreach struct {
	ID                string     `json:"id"`
	PortfolioID       string     `json:"portfolioId"`
	MonitoringFieldID string     `json:"monitoringFieldId"`
	BreachCondition   string     `json:"breachCondition"`
	BreachValue       float64    `json:"breachValue"`
	Status            string     `json:"status"`
	DetectedAt        time.Time  `json:"detectedAt"`
	ResolvedAt        *time.Time `json:"resolvedAt"`
}

// Resolved reports whether the breach has left the Pending state.
func (b PortfolioBreach) Resolved() bool {
	return b.Status != BreachStatusPending
}
