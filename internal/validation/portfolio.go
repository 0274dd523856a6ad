package validation

import (
	"strings"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/request"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

func validRiskLevel(level string) bool {
	switch level {
	case model.RiskLevelLow, model.RiskLevelMedium, model.RiskLevelHigh:
		return true
	}
	return false
}

func ValidateCreatePortfolio(req request.CreatePortfolioRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.Name) == "" {
		errors["name"] = "name is required"
	}
	if strings.TrimSpace(req.Type) == "" {
		errors["type"] = "type is required"
	}
	if req.UserID != "" {
		if err := ValidateUUID(req.UserID); err != nil {
			errors["userId"] = "userId must be a valid UUID"
		}
	}
	if req.Value != nil && *req.Value < 0 {
		errors["value"] = "value cannot be negative"
	}
	if req.RiskLevel != "" && !validRiskLevel(req.RiskLevel) {
		errors["riskLevel"] = "riskLevel must be Low, Medium, or High"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdatePortfolio(req request.UpdatePortfolioRequest) error {
	errors := make(map[string]string)

	// Only validate provided fields
	if req.Name != nil && strings.TrimSpace(*req.Name) == "" {
		errors["name"] = "name cannot be empty"
	}
	if req.Type != nil && strings.TrimSpace(*req.Type) == "" {
		errors["type"] = "type cannot be empty"
	}
	if req.Value != nil && *req.Value < 0 {
		errors["value"] = "value cannot be negative"
	}
	if req.RiskLevel != nil && !validRiskLevel(*req.RiskLevel) {
		errors["riskLevel"] = "riskLevel must be Low, Medium, or High"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
