package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

// AtrqRepository provides data access methods for the atrq_result table.
type AtrqRepository struct {
	db *sql.DB
}

// NewAtrqRepository creates a new AtrqRepository with the provided database connection.
func NewAtrqRepository(db *sql.DB) *AtrqRepository {
	return &AtrqRepository{db: db}
}

// Insert stores a new ATRQ result row.
func (r *AtrqRepository) Insert(a model.AtrqResult) error {
	query := `
		INSERT INTO atrq_result (id, user_id, overall_score, risk_profile, time_horizon, financial_capacity, loss_tolerance, risk_experience, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		a.ID,
		a.UserID,
		a.OverallScore,
		a.RiskProfile,
		a.TimeHorizon,
		a.FinancialCapacity,
		a.LossTolerance,
		a.RiskExperience,
		a.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("failed to insert atrq result: %w", err)
	}
	return nil
}

// GetByUserID retrieves the first ATRQ result for a user in insertion order.
// One result per user is the expected shape.
func (r *AtrqRepository) GetByUserID(userID string) (model.AtrqResult, error) {
	query := `
		SELECT id, user_id, overall_score, risk_profile, time_horizon, financial_capacity, loss_tolerance, risk_experience, last_updated
		FROM atrq_result
		WHERE user_id = ?
		ORDER BY rowid
		LIMIT 1
	`
	var a model.AtrqResult

	err := r.db.QueryRow(query, userID).Scan(
		&a.ID,
		&a.UserID,
		&a.OverallScore,
		&a.RiskProfile,
		&a.TimeHorizon,
		&a.FinancialCapacity,
		&a.LossTolerance,
		&a.RiskExperience,
		&a.LastUpdated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.AtrqResult{}, apperrors.ErrAtrqResultNotFound
	}
	if err != nil {
		return model.AtrqResult{}, fmt.Errorf("failed to query atrq result: %w", err)
	}

	return a, nil
}

// Update rewrites an ATRQ result row with the complete merged record.
func (r *AtrqRepository) Update(a model.AtrqResult) error {
	query := `
		UPDATE atrq_result
		SET user_id = ?, overall_score = ?, risk_profile = ?, time_horizon = ?, financial_capacity = ?, loss_tolerance = ?, risk_experience = ?, last_updated = ?
		WHERE id = ?
	`
	result, err := r.db.Exec(query,
		a.UserID,
		a.OverallScore,
		a.RiskProfile,
		a.TimeHorizon,
		a.FinancialCapacity,
		a.LossTolerance,
		a.RiskExperience,
		a.LastUpdated,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update atrq result: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrAtrqResultNotFound
	}

	return nil
}
