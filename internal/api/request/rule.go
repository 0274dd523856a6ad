package request

import "encoding/json"

// CreateRuleRequest represents the request body for creating a suitability
// rule. Conditions and actions are opaque JSON documents; only their shape
// (being JSON objects) is validated.
type CreateRuleRequest struct {
	UserID     string          `json:"userId"`
	Name       string          `json:"name"`
	IsActive   *bool           `json:"isActive,omitempty"`
	Conditions json.RawMessage `json:"conditions"`
	Actions    json.RawMessage `json:"actions"`
}

// UpdateRuleRequest represents a partial suitability-rule update. A nil
// Conditions/Actions document leaves the stored one unchanged.
type UpdateRuleRequest struct {
	Name       *string         `json:"name,omitempty"`
	IsActive   *bool           `json:"isActive,omitempty"`
	Conditions json.RawMessage `json:"conditions,omitempty"`
	Actions    json.RawMessage `json:"actions,omitempty"`
}
