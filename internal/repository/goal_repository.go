package repository

import (
	"database/sql"
	"fmt"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

// GoalRepository provides data access methods for the goal table.
type GoalRepository struct {
	db *sql.DB
}

// NewGoalRepository creates a new GoalRepository with the provided database connection.
func NewGoalRepository(db *sql.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

// Insert stores a new goal row.
func (r *GoalRepository) Insert(g model.Goal) error {
	query := `
		INSERT INTO goal (id, user_id, total_assets, target_progress, monthly_income, risk_score, assets_change, income_change)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, g.ID, g.UserID, g.TotalAssets, g.TargetProgress, g.MonthlyIncome, g.RiskScore, g.AssetsChange, g.IncomeChange)
	if err != nil {
		return fmt.Errorf("failed to insert goal: %w", err)
	}
	return nil
}

// ListByUserID retrieves all goal records for a user in insertion order.
// The store allows multiple records per user; callers wanting the active goal
// take the first.
func (r *GoalRepository) ListByUserID(userID string) ([]model.Goal, error) {
	query := `
		SELECT id, user_id, total_assets, target_progress, monthly_income, risk_score, assets_change, income_change
		FROM goal
		WHERE user_id = ?
		ORDER BY rowid
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal table: %w", err)
	}
	defer rows.Close()

	goals := []model.Goal{}

	for rows.Next() {
		var g model.Goal

		err := rows.Scan(
			&g.ID,
			&g.UserID,
			&g.TotalAssets,
			&g.TargetProgress,
			&g.MonthlyIncome,
			&g.RiskScore,
			&g.AssetsChange,
			&g.IncomeChange,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan goal table results: %w", err)
		}

		goals = append(goals, g)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal table: %w", err)
	}

	return goals, nil
}

// Update rewrites a goal row with the complete merged record.
func (r *GoalRepository) Update(g model.Goal) error {
	query := `
		UPDATE goal
		SET user_id = ?, total_assets = ?, target_progress = ?, monthly_income = ?, risk_score = ?, assets_change = ?, income_change = ?
		WHERE id = ?
	`
	result, err := r.db.Exec(query, g.UserID, g.TotalAssets, g.TargetProgress, g.MonthlyIncome, g.RiskScore, g.AssetsChange, g.IncomeChange, g.ID)
	if err != nil {
		return fmt.Errorf("failed to update goal: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrGoalNotFound
	}

	return nil
}
