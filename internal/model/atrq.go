package model

import "time"

// AtrqResult represents a user's Attitude-To-Risk Questionnaire outcome with
// its sub-scores. One result is expected per user.
type AtrqResult struct {
	ID                string    `json:"id"`
	UserID            string    `json:"userId"`
	OverallScore      float64   `json:"overallScore"`
	RiskProfile       string    `json:"riskProfile"`
	TimeHorizon       float64   `json:"timeHorizon"`
	FinancialCapacity float64   `json:"financialCapacity"`
	LossTolerance     float64   `json:"lossTolerance"`
	RiskExperience    float64   `json:"riskExperience"`
	LastUpdated       time.Time `json:"lastUpdated"`
}
