package model

// Goal represents a user's financial goal snapshot shown on the dashboard.
// One active goal record is expected per user; lookups take the first match.
type Goal struct {
	ID             string  `json:"id"`
	UserID         string  `json:"userId"`
	TotalAssets    float64 `json:"totalAssets"`
	TargetProgress float64 `json:"targetProgress"`
	MonthlyIncome  float64 `json:"monthlyIncome"`
	RiskScore      float64 `json:"riskScore"`
	AssetsChange   float64 `json:"assetsChange"`
	IncomeChange   float64 `json:"incomeChange"`
}
