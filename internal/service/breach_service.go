package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/repository"
)

// BreachService handles the portfolio-breach lifecycle. A breach starts
// Pending; an advisor decision moves it to a resolution status and stamps
// resolvedAt exactly once. Moving a breach back to Pending clears resolvedAt,
// keeping the invariant that resolvedAt is non-nil iff the breach is resolved.
//
// Status values are not validated: the recognized set is a display convention,
// and the store deliberately accepts free text.
type BreachService struct {
	breachRepo    *repository.BreachRepository
	portfolioRepo *repository.PortfolioRepository
}

// NewBreachService creates a new BreachService
func NewBreachService(breachRepo *repository.BreachRepository, portfolioRepo *repository.PortfolioRepository) *BreachService {
	return &BreachService{
		breachRepo:    breachRepo,
		portfolioRepo: portfolioRepo,
	}
}

// ListForUser retrieves the breaches visible to a user. Breaches carry no user
// id, so this is a two-stage read: resolve the user's portfolio ids, then
// filter breaches on membership in that set.
func (s *BreachService) ListForUser(userID string) ([]model.PortfolioBreach, error) {
	portfolioIDs, err := s.portfolioRepo.IDsByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.breachRepo.ListByPortfolioIDs(portfolioIDs)
}

// ListForPortfolio retrieves the breaches recorded against a single portfolio.
func (s *BreachService) ListForPortfolio(portfolioID string) ([]model.PortfolioBreach, error) {
	return s.breachRepo.ListByPortfolioIDs([]string{portfolioID})
}

// Get retrieves a single breach by id.
func (s *BreachService) Get(id string) (model.PortfolioBreach, error) {
	return s.breachRepo.GetByID(id)
}

// PendingCount returns the number of breaches still awaiting a decision.
func (s *BreachService) PendingCount() (int, error) {
	return s.breachRepo.CountPending()
}

// CreateBreach holds the fields accepted when recording a breach. Status
// defaults to Pending when empty.
type CreateBreach struct {
	PortfolioID       string
	MonitoringFieldID string
	BreachCondition   string
	BreachValue       float64
	Status            string
}

// Create stores a new breach with a fresh id and detectedAt = now. A breach
// created directly in a resolved status is stamped immediately so the
// resolution invariant holds from birth.
func (s *BreachService) Create(in CreateBreach) (model.PortfolioBreach, error) {
	status := in.Status
	if status == "" {
		status = model.BreachStatusPending
	}

	breach := model.PortfolioBreach{
		ID:                uuid.New().String(),
		PortfolioID:       in.PortfolioID,
		MonitoringFieldID: in.MonitoringFieldID,
		BreachCondition:   in.BreachCondition,
		BreachValue:       in.BreachValue,
		Status:            status,
		DetectedAt:        time.Now().UTC(),
	}
	if breach.Resolved() {
		now := time.Now().UTC()
		breach.ResolvedAt = &now
	}

	if err := s.breachRepo.Insert(breach); err != nil {
		return model.PortfolioBreach{}, err
	}

	return breach, nil
}

// BreachUpdate holds a partial update: nil fields are left unchanged.
type BreachUpdate struct {
	PortfolioID       *string
	MonitoringFieldID *string
	BreachCondition   *string
	BreachValue       *float64
	Status            *string
}

// Update merges the provided fields over the stored breach and applies the
// resolution rule: the first transition out of Pending stamps resolvedAt, a
// later change between resolution statuses leaves the stamp untouched, and a
// transition back to Pending clears it.
func (s *BreachService) Update(id string, updates BreachUpdate) (model.PortfolioBreach, error) {
	breach, err := s.breachRepo.GetByID(id)
	if err != nil {
		return model.PortfolioBreach{}, err
	}

	if updates.PortfolioID != nil {
		breach.PortfolioID = *updates.PortfolioID
	}
	if updates.MonitoringFieldID != nil {
		breach.MonitoringFieldID = *updates.MonitoringFieldID
	}
	if updates.BreachCondition != nil {
		breach.BreachCondition = *updates.BreachCondition
	}
	if updates.BreachValue != nil {
		breach.BreachValue = *updates.BreachValue
	}
	if updates.Status != nil {
		breach.Status = *updates.Status
		switch {
		case breach.Status == model.BreachStatusPending:
			breach.ResolvedAt = nil
		case breach.ResolvedAt == nil:
			now := time.Now().UTC()
			breach.ResolvedAt = &now
		}
	}

	if err := s.breachRepo.Update(breach); err != nil {
		return model.PortfolioBreach{}, err
	}

	return breach, nil
}

// Delete removes a breach. Deleting an absent id reports false.
func (s *BreachService) Delete(id string) (bool, error) {
	return s.breachRepo.Delete(id)
}
