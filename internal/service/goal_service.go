package service

import (
	"github.com/google/uuid"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/repository"
)

// GoalService handles goal-related business logic. One active goal record is
// expected per user; lookups take the first match in insertion order.
type GoalService struct {
	goalRepo *repository.GoalRepository
}

// NewGoalService creates a new GoalService
func NewGoalService(goalRepo *repository.GoalRepository) *GoalService {
	return &GoalService{goalRepo: goalRepo}
}

// FirstForUser retrieves the user's active goal record.
func (s *GoalService) FirstForUser(userID string) (model.Goal, error) {
	goals, err := s.goalRepo.ListByUserID(userID)
	if err != nil {
		return model.Goal{}, err
	}
	if len(goals) == 0 {
		return model.Goal{}, apperrors.ErrGoalNotFound
	}
	return goals[0], nil
}

// CreateGoal holds the fields accepted when creating a goal record.
type CreateGoal struct {
	UserID         string
	TotalAssets    float64
	TargetProgress float64
	MonthlyIncome  float64
	RiskScore      float64
	AssetsChange   float64
	IncomeChange   float64
}

// Create stores a new goal record with a fresh id.
func (s *GoalService) Create(in CreateGoal) (model.Goal, error) {
	goal := model.Goal{
		ID:             uuid.New().String(),
		UserID:         in.UserID,
		TotalAssets:    in.TotalAssets,
		TargetProgress: in.TargetProgress,
		MonthlyIncome:  in.MonthlyIncome,
		RiskScore:      in.RiskScore,
		AssetsChange:   in.AssetsChange,
		IncomeChange:   in.IncomeChange,
	}

	if err := s.goalRepo.Insert(goal); err != nil {
		return model.Goal{}, err
	}

	return goal, nil
}

// GoalUpdate holds a partial update: nil fields are left unchanged.
type GoalUpdate struct {
	TotalAssets    *float64
	TargetProgress *float64
	MonthlyIncome  *float64
	RiskScore      *float64
	AssetsChange   *float64
	IncomeChange   *float64
}

// UpdateForUser merges the provided fields over the user's first goal record.
func (s *GoalService) UpdateForUser(userID string, updates GoalUpdate) (model.Goal, error) {
	goal, err := s.FirstForUser(userID)
	if err != nil {
		return model.Goal{}, err
	}

	if updates.TotalAssets != nil {
		goal.TotalAssets = *updates.TotalAssets
	}
	if updates.TargetProgress != nil {
		goal.TargetProgress = *updates.TargetProgress
	}
	if updates.MonthlyIncome != nil {
		goal.MonthlyIncome = *updates.MonthlyIncome
	}
	if updates.RiskScore != nil {
		goal.RiskScore = *updates.RiskScore
	}
	if updates.AssetsChange != nil {
		goal.AssetsChange = *updates.AssetsChange
	}
	if updates.IncomeChange != nil {
		goal.IncomeChange = *updates.IncomeChange
	}

	if err := s.goalRepo.Update(goal); err != nil {
		return model.Goal{}, err
	}

	return goal, nil
}
