package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

// RuleRepository provides data access methods for the suitability_rule table.
// Conditions and actions are stored as raw JSON text and round-tripped without
// interpretation.
type RuleRepository struct {
	db *sql.DB
}

// NewRuleRepository creates a new RuleRepository with the provided database connection.
func NewRuleRepository(db *sql.DB) *RuleRepository {
	return &RuleRepository{db: db}
}

// Insert stores a new suitability rule row.
func (r *RuleRepository) Insert(rule model.SuitabilityRule) error {
	query := `
		INSERT INTO suitability_rule (id, user_id, name, is_active, conditions, actions)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		rule.ID,
		rule.UserID,
		rule.Name,
		rule.IsActive,
		string(rule.Conditions),
		string(rule.Actions),
	)
	if err != nil {
		return fmt.Errorf("failed to insert suitability rule: %w", err)
	}
	return nil
}

// GetByID retrieves a suitability rule by its ID.
func (r *RuleRepository) GetByID(id string) (model.SuitabilityRule, error) {
	query := `
		SELECT id, user_id, name, is_active, conditions, actions
		FROM suitability_rule
		WHERE id = ?
	`
	var rule model.SuitabilityRule
	var conditions, actions string

	err := r.db.QueryRow(query, id).Scan(
		&rule.ID,
		&rule.UserID,
		&rule.Name,
		&rule.IsActive,
		&conditions,
		&actions,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.SuitabilityRule{}, apperrors.ErrRuleNotFound
	}
	if err != nil {
		return model.SuitabilityRule{}, fmt.Errorf("failed to query suitability rule: %w", err)
	}

	rule.Conditions = []byte(conditions)
	rule.Actions = []byte(actions)
	return rule, nil
}

// ListByUserID retrieves all suitability rules owned by a user in insertion order.
func (r *RuleRepository) ListByUserID(userID string) ([]model.SuitabilityRule, error) {
	query := `
		SELECT id, user_id, name, is_active, conditions, actions
		FROM suitability_rule
		WHERE user_id = ?
		ORDER BY rowid
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query suitability_rule table: %w", err)
	}
	defer rows.Close()

	rules := []model.SuitabilityRule{}

	for rows.Next() {
		var rule model.SuitabilityRule
		var conditions, actions string

		err := rows.Scan(
			&rule.ID,
			&rule.UserID,
			&rule.Name,
			&rule.IsActive,
			&conditions,
			&actions,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan suitability_rule table results: %w", err)
		}

		rule.Conditions = []byte(conditions)
		rule.Actions = []byte(actions)
		rules = append(rules, rule)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating suitability_rule table: %w", err)
	}

	return rules, nil
}

// Update rewrites a suitability rule row with the complete merged record.
func (r *RuleRepository) Update(rule model.SuitabilityRule) error {
	query := `
		UPDATE suitability_rule
		SET user_id = ?, name = ?, is_active = ?, conditions = ?, actions = ?
		WHERE id = ?
	`
	result, err := r.db.Exec(query,
		rule.UserID,
		rule.Name,
		rule.IsActive,
		string(rule.Conditions),
		string(rule.Actions),
		rule.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update suitability rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrRuleNotFound
	}

	return nil
}

// Delete removes a suitability rule row. It reports whether a row was present.
func (r *RuleRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM suitability_rule WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete suitability rule: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected > 0, nil
}
