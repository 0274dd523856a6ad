package model

// Alert levels recognized for a monitoring field.
const (
	AlertLevelInfo     = "Info"
	AlertLevelWarning  = "Warning"
	AlertLevelCritical = "Critical"
)

// MonitoringField is a named, configurable metric that breaches reference.
// Threshold may be absent.
type MonitoringField struct {
	ID         string   `json:"id"`
	UserID     string   `json:"userId"`
	FieldName  string   `json:"fieldName"`
	IsEnabled  bool     `json:"isEnabled"`
	Threshold  *float64 `json:"threshold"`
	AlertLevel string   `json:"alertLevel"`
}
