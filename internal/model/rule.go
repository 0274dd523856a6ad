package model

import "encoding/json"

// SuitabilityRule is a stored condition/action document describing when an
// alert should fire. Rules are display-only: nothing in this system evaluates
// them against live portfolio data. Conditions and Actions are kept as opaque
// JSON documents for round-trip fidelity.
type SuitabilityRule struct {
	ID         string          `json:"id"`
	UserID     string          `json:"userId"`
	Name       string          `json:"name"`
	IsActive   bool            `json:"isActive"`
	Conditions json.RawMessage `json:"conditions"`
	Actions    json.RawMessage `json:"actions"`
}
