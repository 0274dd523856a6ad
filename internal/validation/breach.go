package validation

import (
	"strings"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/request"
)

func ValidateCreateBreach(req request.CreateBreachRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.BreachCondition) == "" {
		errors["breachCondition"] = "breachCondition is required"
	}
	if req.PortfolioID != "" {
		if err := ValidateUUID(req.PortfolioID); err != nil {
			errors["portfolioId"] = "portfolioId must be a valid UUID"
		}
	}
	if req.MonitoringFieldID != "" {
		if err := ValidateUUID(req.MonitoringFieldID); err != nil {
			errors["monitoringFieldId"] = "monitoringFieldId must be a valid UUID"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateBreach(req request.UpdateBreachRequest) error {
	errors := make(map[string]string)

	if req.BreachCondition != nil && strings.TrimSpace(*req.BreachCondition) == "" {
		errors["breachCondition"] = "breachCondition cannot be empty"
	}
	if req.PortfolioID != nil {
		if err := ValidateUUID(*req.PortfolioID); err != nil {
			errors["portfolioId"] = "portfolioId must be a valid UUID"
		}
	}
	if req.MonitoringFieldID != nil {
		if err := ValidateUUID(*req.MonitoringFieldID); err != nil {
			errors["monitoringFieldId"] = "monitoringFieldId must be a valid UUID"
		}
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
