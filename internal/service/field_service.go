package service

import (
	"github.com/google/uuid"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/repository"
)

// FieldService handles monitoring-field business logic.
type FieldService struct {
	fieldRepo *repository.FieldRepository
}

// NewFieldService creates a new FieldService
func NewFieldService(fieldRepo *repository.FieldRepository) *FieldService {
	return &FieldService{fieldRepo: fieldRepo}
}

// List retrieves all monitoring fields owned by a user in insertion order.
func (s *FieldService) List(userID string) ([]model.MonitoringField, error) {
	return s.fieldRepo.ListByUserID(userID)
}

// CreateField holds the fields accepted when creating a monitoring field.
// IsEnabled defaults to true when not provided; Threshold may be absent.
type CreateField struct {
	UserID     string
	FieldName  string
	IsEnabled  *bool
	Threshold  *float64
	AlertLevel string
}

// Create stores a new monitoring field with a fresh id.
func (s *FieldService) Create(in CreateField) (model.MonitoringField, error) {
	isEnabled := true
	if in.IsEnabled != nil {
		isEnabled = *in.IsEnabled
	}

	field := model.MonitoringField{
		ID:         uuid.New().String(),
		UserID:     in.UserID,
		FieldName:  in.FieldName,
		IsEnabled:  isEnabled,
		Threshold:  in.Threshold,
		AlertLevel: in.AlertLevel,
	}

	if err := s.fieldRepo.Insert(field); err != nil {
		return model.MonitoringField{}, err
	}

	return field, nil
}

// FieldUpdate holds a partial update: nil fields are left unchanged.
type FieldUpdate struct {
	FieldName  *string
	IsEnabled  *bool
	Threshold  *float64
	AlertLevel *string
}

// Update merges the provided fields over the stored monitoring field.
func (s *FieldService) Update(id string, updates FieldUpdate) (model.MonitoringField, error) {
	field, err := s.fieldRepo.GetByID(id)
	if err != nil {
		return model.MonitoringField{}, err
	}

	if updates.FieldName != nil {
		field.FieldName = *updates.FieldName
	}
	if updates.IsEnabled != nil {
		field.IsEnabled = *updates.IsEnabled
	}
	if updates.Threshold != nil {
		field.Threshold = updates.Threshold
	}
	if updates.AlertLevel != nil {
		field.AlertLevel = *updates.AlertLevel
	}

	if err := s.fieldRepo.Update(field); err != nil {
		return model.MonitoringField{}, err
	}

	return field, nil
}

// Delete removes a monitoring field. Deleting an absent id reports false.
func (s *FieldService) Delete(id string) (bool, error) {
	return s.fieldRepo.Delete(id)
}
