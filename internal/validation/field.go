package validation

import (
	"strings"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/api/request"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

func validAlertLevel(level string) bool {
	switch level {
	case model.AlertLevelInfo, model.AlertLevelWarning, model.AlertLevelCritical:
		return true
	}
	return false
}

func ValidateCreateField(req request.CreateFieldRequest) error {
	errors := make(map[string]string)

	if strings.TrimSpace(req.FieldName) == "" {
		errors["fieldName"] = "fieldName is required"
	}
	if req.UserID != "" {
		if err := ValidateUUID(req.UserID); err != nil {
			errors["userId"] = "userId must be a valid UUID"
		}
	}
	if req.AlertLevel != "" && !validAlertLevel(req.AlertLevel) {
		errors["alertLevel"] = "alertLevel must be Info, Warning, or Critical"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}

func ValidateUpdateField(req request.UpdateFieldRequest) error {
	errors := make(map[string]string)

	if req.FieldName != nil && strings.TrimSpace(*req.FieldName) == "" {
		errors["fieldName"] = "fieldName cannot be empty"
	}
	if req.AlertLevel != nil && !validAlertLevel(*req.AlertLevel) {
		errors["alertLevel"] = "alertLevel must be Info, Warning, or Critical"
	}

	if len(errors) > 0 {
		return &Error{Fields: errors}
	}
	return nil
}
