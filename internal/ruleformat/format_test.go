package ruleformat_test

import (
	"encoding/json"
	"testing"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/ruleformat"
)

// TestDescribeConditions tests the condition rendering used on the
// suitability-monitor screen.
//
// WHY: rule documents are free-form JSON supplied by users; the formatter
// must skip incomplete entries instead of failing, and preserve the
// document's own field order.
func TestDescribeConditions(t *testing.T) {
	t.Run("renders a single complete entry", func(t *testing.T) {
		got := ruleformat.DescribeConditions(json.RawMessage(`{"allocationDrift": {"operator": ">", "value": 5}}`))
		want := "allocationDrift > 5"
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("skips entries missing operator or value", func(t *testing.T) {
		got := ruleformat.DescribeConditions(json.RawMessage(`{"A": {"operator": ">", "value": 5}, "B": {}}`))
		want := "A > 5"
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("joins complete entries with AND in document order", func(t *testing.T) {
		doc := json.RawMessage(`{
			"riskScore": {"operator": ">", "value": 7.5},
			"concentration": {"operator": ">=", "value": 20},
			"incomplete": {"operator": "<"}
		}`)
		got := ruleformat.DescribeConditions(doc)
		want := "riskScore > 7.5 AND concentration >= 20"
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("renders string values verbatim", func(t *testing.T) {
		got := ruleformat.DescribeConditions(json.RawMessage(`{"riskProfile": {"operator": "==", "value": "Moderate"}}`))
		want := "riskProfile == Moderate"
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("returns empty string for non-object documents", func(t *testing.T) {
		for _, doc := range []string{`[]`, `"text"`, `42`, ``} {
			if got := ruleformat.DescribeConditions(json.RawMessage(doc)); got != "" {
				t.Errorf("Expected empty string for %q, got %q", doc, got)
			}
		}
	})
}

func TestDescribeActions(t *testing.T) {
	t.Run("renders alert level and message", func(t *testing.T) {
		got := ruleformat.DescribeActions(json.RawMessage(`{"alertLevel": "Critical", "message": "Rebalance required"}`))
		want := "Critical Alert: Rebalance required"
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("defaults missing fields", func(t *testing.T) {
		got := ruleformat.DescribeActions(json.RawMessage(`{}`))
		want := "Unknown Alert: No message"
		if got != want {
			t.Errorf("Expected %q, got %q", want, got)
		}
	})

	t.Run("returns empty string for non-object documents", func(t *testing.T) {
		if got := ruleformat.DescribeActions(json.RawMessage(`[1, 2]`)); got != "" {
			t.Errorf("Expected empty string, got %q", got)
		}
	})
}
