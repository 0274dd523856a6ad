package validation

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/request"
)

// isJSONObject reports whether doc is a syntactically valid JSON object.
// Rule conditions and actions are stored verbatim, so this is the only shape
// constraint enforced on them.
func isJSONObject(doc json.RawMessage) bool {
	trimmed := bytes.TrimSpace(doc)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	var m map[string]json.RawMessage
	return json.Unmarshal(trimmed, &m) == nil
}

func ValidateCreateRule(req request.CreateRuleRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if req.UserID != "" {
		if err := ValidateUUID(req.UserID); err != nil {
			errors["userId"] = "userId must be a valid UUID"
		}
	}
	if len(req.Conditions) > 0 && !isJSONObject(req.Conditions) {
		errors["conditions"] = "conditions must be a JSON object"
	}
	if len(req.Actions) > 0 && !isJSONObject(req.Actions) {
		errors["actions"] = "actions must be a JSON object"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateRule(req request.UpdateRuleRequest) error {
	errors := make(map[string]string)

	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}
	if len(req.Conditions) > 0 && !isJSONObject(req.Conditions) {
		errors["conditions"] = "conditions must be a JSON object"
	}
	if len(req.Actions) > 0 && !isJSONObject(req.Actions) {
		errors["actions"] = "actions must be a JSON object"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
