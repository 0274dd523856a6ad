// Package ruleformat renders suitability-rule condition and action documents
// as human-readable descriptions for display. Rules are never evaluated
// against live portfolio data; this is presentation only.
package ruleformat

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DescribeConditions renders a conditions document (field name -> {operator,
// value}) as "<field> <operator> <value>" entries joined with " AND ".
// Entries missing an operator or value are skipped. Field order follows the
// document's own key order. Returns "" for anything that is not a JSON object.
func DescribeConditions(doc json.RawMessage) string {
	dec := json.NewDecoder(bytes.NewReader(doc))

	tok, err := dec.Token()
	if err != nil || tok != json.Delim('{') {
		return ""
	}

	var parts []string
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return strings.Join(parts, " AND ")
		}
		key, ok := keyTok.(string)
		if !ok {
			return strings.Join(parts, " AND ")
		}

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return strings.Join(parts, " AND ")
		}

		var entry map[string]any
		if err := json.Unmarshal(raw, &entry); err != nil {
			continue
		}

		operator, ok := entry["operator"].(string)
		if !ok || operator == "" {
			continue
		}
		value, ok := entry["value"]
		if !ok {
			continue
		}

		parts = append(parts, fmt.Sprintf("%s %s %s", key, operator, formatValue(value)))
	}

	return strings.Join(parts, " AND ")
}

// DescribeActions renders an actions document as "<alertLevel> Alert:
// <message>", defaulting the alert level to "Unknown" and the message to
// "No message" when absent. Returns "" for anything that is not a JSON object.
func DescribeActions(doc json.RawMessage) string {
	var actions map[string]any
	if err := json.Unmarshal(doc, &actions); err != nil || actions == nil {
		return ""
	}

	alertLevel, _ := actions["alertLevel"].(string)
	if alertLevel == "" {
		alertLevel = "Unknown"
	}
	message, _ := actions["message"].(string)
	if message == "" {
		message = "No message"
	}

	return fmt.Sprintf("%s Alert: %s", alertLevel, message)
}

// formatValue renders a decoded JSON value the way the dashboard displays it:
// numbers without a trailing ".0", everything else via its natural form.
func formatValue(v any) string {
	switch value := v.(type) {
	case float64:
		return strconv.FormatFloat(value, 'f', -1, 64)
	case string:
		return value
	case bool:
		return strconv.FormatBool(value)
	default:
		return fmt.Sprintf("%v", value)
	}
}
