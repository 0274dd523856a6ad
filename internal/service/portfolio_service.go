package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/repository"
)

// PortfolioService handles portfolio-related business logic. It owns id
// assignment and the lastUpdated stamp, which is refreshed on every mutation.
type PortfolioService struct {
	portfolioRepo *repository.PortfolioRepository
}

// NewPortfolioService creates a new PortfolioService
func NewPortfolioService(portfolioRepo *repository.PortfolioRepository) *PortfolioService {
	return &PortfolioService{portfolioRepo: portfolioRepo}
}

// List retrieves all portfolios owned by a user in insertion order.
func (s *PortfolioService) List(userID string) ([]model.Portfolio, error) {
	return s.portfolioRepo.ListByUserID(userID)
}

// Get retrieves a single portfolio by id.
func (s *PortfolioService) Get(id string) (model.Portfolio, error) {
	return s.portfolioRepo.GetByID(id)
}

// CreatePortfolio holds the fields accepted when creating a portfolio.
// The id and lastUpdated stamp are assigned by the service.
type CreatePortfolio struct {
	UserID      string
	Name        string
	Type        string
	Value       float64
	Performance float64
	RiskLevel   string
}

// Create stores a new portfolio with a fresh id and lastUpdated = now.
func (s *PortfolioService) Create(in CreatePortfolio) (model.Portfolio, error) {
	portfolio := model.Portfolio{
		ID:          uuid.New().String(),
		UserID:      in.UserID,
		Name:        in.Name,
		Type:        in.Type,
		Value:       in.Value,
		Performance: in.Performance,
		RiskLevel:   in.RiskLevel,
		LastUpdated: time.Now().UTC(),
	}

	if err := s.portfolioRepo.Insert(portfolio); err != nil {
		return model.Portfolio{}, err
	}

	return portfolio, nil
}

// PortfolioUpdate holds a partial update: nil fields are left unchanged.
type PortfolioUpdate struct {
	Name        *string
	Type        *string
	Value       *float64
	Performance *float64
	RiskLevel   *string
}

// Update merges the provided fields over the stored portfolio and refreshes
// lastUpdated. Missing portfolios surface as ErrPortfolioNotFound.
func (s *PortfolioService) Update(id string, updates PortfolioUpdate) (model.Portfolio, error) {
	portfolio, err := s.portfolioRepo.GetByID(id)
	if err != nil {
		return model.Portfolio{}, err
	}

	if updates.Name != nil {
		portfolio.Name = *updates.Name
	}
	if updates.Type != nil {
		portfolio.Type = *updates.Type
	}
	if updates.Value != nil {
		portfolio.Value = *updates.Value
	}
	if updates.Performance != nil {
		portfolio.Performance = *updates.Performance
	}
	if updates.RiskLevel != nil {
		portfolio.RiskLevel = *updates.RiskLevel
	}
	portfolio.LastUpdated = time.Now().UTC()

	if err := s.portfolioRepo.Update(portfolio); err != nil {
		return model.Portfolio{}, err
	}

	return portfolio, nil
}

// Delete removes a portfolio. Deleting an absent id reports false. Breaches,
// rules and monitoring fields referencing the portfolio are left in place;
// there is no cascading delete.
func (s *PortfolioService) Delete(id string) (bool, error) {
	return s.portfolioRepo.Delete(id)
}
