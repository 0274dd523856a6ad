package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/repository"
)

// AtrqService handles Attitude-To-Risk Questionnaire results. One result is
// expected per user; lastUpdated refreshes whenever it changes.
type AtrqService struct {
	atrqRepo *repository.AtrqRepository
}

// NewAtrqService creates a new AtrqService
func NewAtrqService(atrqRepo *repository.AtrqRepository) *AtrqService {
	return &AtrqService{atrqRepo: atrqRepo}
}

// GetForUser retrieves the user's ATRQ result.
func (s *AtrqService) GetForUser(userID string) (model.AtrqResult, error) {
	return s.atrqRepo.GetByUserID(userID)
}

// CreateAtrqResult holds the fields accepted when recording an ATRQ result.
type CreateAtrqResult struct {
	UserID            string
	OverallScore      float64
	RiskProfile       string
	TimeHorizon       float64
	FinancialCapacity float64
	LossTolerance     float64
	RiskExperience    float64
}

// Create stores a new ATRQ result with a fresh id and lastUpdated = now.
func (s *AtrqService) Create(in CreateAtrqResult) (model.AtrqResult, error) {
	result := model.AtrqResult{
		ID:                uuid.New().String(),
		UserID:            in.UserID,
		OverallScore:      in.OverallScore,
		RiskProfile:       in.RiskProfile,
		TimeHorizon:       in.TimeHorizon,
		FinancialCapacity: in.FinancialCapacity,
		LossTolerance:     in.LossTolerance,
		RiskExperience:    in.RiskExperience,
		LastUpdated:       time.Now().UTC(),
	}

	if err := s.atrqRepo.Insert(result); err != nil {
		return model.AtrqResult{}, err
	}

	return result, nil
}

// AtrqUpdate holds a partial update: nil fields are left unchanged.
type AtrqUpdate struct {
	OverallScore      *float64
	RiskProfile       *string
	TimeHorizon       *float64
	FinancialCapacity *float64
	LossTolerance     *float64
	RiskExperience    *float64
}

// UpdateForUser merges the provided fields over the user's ATRQ result and
// refreshes lastUpdated.
func (s *AtrqService) UpdateForUser(userID string, updates AtrqUpdate) (model.AtrqResult, error) {
	result, err := s.atrqRepo.GetByUserID(userID)
	if err != nil {
		return model.AtrqResult{}, err
	}

	if updates.OverallScore != nil {
		result.OverallScore = *updates.OverallScore
	}
	if updates.RiskProfile != nil {
		result.RiskProfile = *updates.RiskProfile
	}
	if updates.TimeHorizon != nil {
		result.TimeHorizon = *updates.TimeHorizon
	}
	if updates.FinancialCapacity != nil {
		result.FinancialCapacity = *updates.FinancialCapacity
	}
	if updates.LossTolerance != nil {
		result.LossTolerance = *updates.LossTolerance
	}
	if updates.RiskExperience != nil {
		result.RiskExperience = *updates.RiskExperience
	}
	result.LastUpdated = time.Now().UTC()

	if err := s.atrqRepo.Update(result); err != nil {
		return model.AtrqResult{}, err
	}

	return result, nil
}
