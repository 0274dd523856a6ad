package service

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/repository"
)

// RuleService handles suitability-rule business logic. Rule condition and
// action documents are stored opaquely; nothing evaluates them against live
// portfolio data.
type RuleService struct {
	ruleRepo *repository.RuleRepository
}

// NewRuleService creates a new RuleService
func NewRuleService(ruleRepo *repository.RuleRepository) *RuleService {
	return &RuleService{ruleRepo: ruleRepo}
}

// List retrieves all suitability rules owned by a user in insertion order.
func (s *RuleService) List(userID string) ([]model.SuitabilityRule, error) {
	return s.ruleRepo.ListByUserID(userID)
}

// CreateRule holds the fields accepted when creating a rule. IsActive defaults
// to true when not provided.
type CreateRule struct {
	UserID     string
	Name       string
	IsActive   *bool
	Conditions json.RawMessage
	Actions    json.RawMessage
}

// Create stores a new suitability rule with a fresh id.
func (s *RuleService) Create(in CreateRule) (model.SuitabilityRule, error) {
	isActive := true
	if in.IsActive != nil {
		isActive = *in.IsActive
	}

	// Omitted documents are stored as empty objects so they round-trip as
	// valid JSON.
	conditions := in.Conditions
	if len(conditions) == 0 {
		conditions = json.RawMessage(`{}`)
	}
	actions := in.Actions
	if len(actions) == 0 {
		actions = json.RawMessage(`{}`)
	}

	rule := model.SuitabilityRule{
		ID:         uuid.New().String(),
		UserID:     in.UserID,
		Name:       in.Name,
		IsActive:   isActive,
		Conditions: conditions,
		Actions:    actions,
	}

	if err := s.ruleRepo.Insert(rule); err != nil {
		return model.SuitabilityRule{}, err
	}

	return rule, nil
}

// RuleUpdate holds a partial update: nil fields are left unchanged.
type RuleUpdate struct {
	Name       *string
	IsActive   *bool
	Conditions json.RawMessage
	Actions    json.RawMessage
}

// Update merges the provided fields over the stored rule.
func (s *RuleService) Update(id string, updates RuleUpdate) (model.SuitabilityRule, error) {
	rule, err := s.ruleRepo.GetByID(id)
	if err != nil {
		return model.SuitabilityRule{}, err
	}

	if updates.Name != nil {
		rule.Name = *updates.Name
	}
	if updates.IsActive != nil {
		rule.IsActive = *updates.IsActive
	}
	if updates.Conditions != nil {
		rule.Conditions = updates.Conditions
	}
	if updates.Actions != nil {
		rule.Actions = updates.Actions
	}

	if err := s.ruleRepo.Update(rule); err != nil {
		return model.SuitabilityRule{}, err
	}

	return rule, nil
}

// Delete removes a suitability rule. Deleting an absent id reports false and
// is otherwise a no-op, so repeated deletes are safe.
func (s *RuleService) Delete(id string) (bool, error) {
	return s.ruleRepo.Delete(id)
}
