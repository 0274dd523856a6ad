package model

import "time"

// Risk levels recognized for a portfolio.
const (
	RiskLevelLow    = "Low"
	RiskLevelMedium = "Medium"
	RiskLevelHigh   = "High"
)

// Portfolio represents a client portfolio owned by a user.
// LastUpdated is refreshed on every mutation.
type Portfolio struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Value       float64   `json:"value"`
	Performance float64   `json:"performance"`
	RiskLevel   string    `json:"riskLevel"`
	LastUpdated time.Time `json:"lastUpdated"`
}
