package validation_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/request"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/validation"
)

func TestValidateCreatePortfolio(t *testing.T) {
	value := 1000.0
	negative := -5.0

	t.Run("accepts a complete request", func(t *testing.T) {
		err := validation.ValidateCreatePortfolio(request.CreatePortfolioRequest{
			Name:      "Growth Fund",
			Type:      "Mutual Fund",
			Value:     &value,
			RiskLevel: model.RiskLevelMedium,
		})
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})

	t.Run("collects all field errors at once", func(t *testing.T) {
		err := validation.ValidateCreatePortfolio(request.CreatePortfolioRequest{
			Value:     &negative,
			RiskLevel: "Extreme",
		})
		if err == nil {
			t.Fatalf("Expected a validation error")
		}

		var vErr *validation.Error
		if !errors.As(err, &vErr) {
			t.Fatalf("Expected *validation.Error, got %T", err)
		}
		for _, field := range []string{"name", "type", "value", "riskLevel"} {
			if _, ok := vErr.Fields[field]; !ok {
				t.Errorf("Expected an error for %q, got %v", field, vErr.Fields)
			}
		}
	})

	t.Run("accepts the recognized risk levels", func(t *testing.T) {
		for _, level := range []string{model.RiskLevelLow, model.RiskLevelMedium, model.RiskLevelHigh} {
			err := validation.ValidateCreatePortfolio(request.CreatePortfolioRequest{
				Name:      "Growth Fund",
				Type:      "Mutual Fund",
				RiskLevel: level,
			})
			if err != nil {
				t.Errorf("Expected %q to be accepted, got %v", level, err)
			}
		}
	})

	t.Run("update validates only provided fields", func(t *testing.T) {
		err := validation.ValidateUpdatePortfolio(request.UpdatePortfolioRequest{
			Value: &value,
		})
		if err != nil {
			t.Errorf("Expected no error for a partial update, got %v", err)
		}
	})
}

func TestValidateCreateRule(t *testing.T) {
	t.Run("rejects non-object condition documents", func(t *testing.T) {
		err := validation.ValidateCreateRule(request.CreateRuleRequest{
			Name:       "Rule",
			Conditions: json.RawMessage(`"just a string"`),
		})
		if err == nil {
			t.Errorf("Expected a validation error for non-object conditions")
		}
	})

	t.Run("accepts omitted documents", func(t *testing.T) {
		err := validation.ValidateCreateRule(request.CreateRuleRequest{Name: "Rule"})
		if err != nil {
			t.Errorf("Expected no error, got %v", err)
		}
	})
}

func TestValidateCreateField(t *testing.T) {
	t.Run("rejects an unrecognized alert level", func(t *testing.T) {
		err := validation.ValidateCreateField(request.CreateFieldRequest{
			FieldName:  "Allocation Drift",
			AlertLevel: "Severe",
		})
		if err == nil {
			t.Errorf("Expected a validation error for alertLevel")
		}
	})

	t.Run("accepts the recognized alert levels", func(t *testing.T) {
		for _, level := range []string{model.AlertLevelInfo, model.AlertLevelWarning, model.AlertLevelCritical} {
			err := validation.ValidateCreateField(request.CreateFieldRequest{
				FieldName:  "Allocation Drift",
				AlertLevel: level,
			})
			if err != nil {
				t.Errorf("Expected %q to be accepted, got %v", level, err)
			}
		}
	})
}

func TestValidateUUID(t *testing.T) {
	if err := validation.ValidateUUID("550e8400-e29b-41d4-a716-446655440000"); err != nil {
		t.Errorf("Expected valid UUID to pass, got %v", err)
	}
	if err := validation.ValidateUUID("nope"); !errors.Is(err, validation.ErrInvalidUUID) {
		t.Errorf("Expected ErrInvalidUUID, got %v", err)
	}
}
