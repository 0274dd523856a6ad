package request

// CreateFieldRequest represents the request body for creating a monitoring
// field. Threshold may be absent; isEnabled defaults to true on the server.
type CreateFieldRequest struct {
	UserID     string   `json:"userId"`
	FieldName  string   `json:"fieldName"`
	IsEnabled  *bool    `json:"isEnabled,omitempty"`
	Threshold  *float64 `json:"threshold,omitempty"`
	AlertLevel string   `json:"alertLevel"`
}

// UpdateFieldRequest represents a partial monitoring-field update.
type UpdateFieldRequest struct {
	FieldName  *string  `json:"fieldName,omitempty"`
	IsEnabled  *bool    `json:"isEnabled,omitempty"`
	Threshold  *float64 `json:"threshold,omitempty"`
	AlertLevel *string  `json:"alertLevel,omitempty"`
}
