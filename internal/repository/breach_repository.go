package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

// BreachRepository provides data access methods for the portfolio_breach
// table. Breaches carry no user id; visibility for a user is derived by first
// resolving the user's portfolio ids and then filtering on membership, which
// is why the list method takes a set of portfolio ids rather than a user.
type BreachRepository struct {
	db *sql.DB
}

// NewBreachRepository creates a new BreachRepository with the provided database connection.
func NewBreachRepository(db *sql.DB) *BreachRepository {
	return &BreachRepository{db: db}
}

// Insert stores a new breach row.
func (r *BreachRepository) Insert(b model.PortfolioBreach) error {
	query := `
		INSERT INTO portfolio_breach (id, portfolio_id, monitoring_field_id, breach_condition, breach_value, status, detected_at, resolved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query,
		b.ID,
		b.PortfolioID,
		b.MonitoringFieldID,
		b.BreachCondition,
		b.BreachValue,
		b.Status,
		b.DetectedAt,
		b.ResolvedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert portfolio breach: %w", err)
	}
	return nil
}

// GetByID retrieves a breach by its ID.
func (r *BreachRepository) GetByID(id string) (model.PortfolioBreach, error) {
	query := `
		SELECT id, portfolio_id, monitoring_field_id, breach_condition, breach_value, status, detected_at, resolved_at
		FROM portfolio_breach
		WHERE id = ?
	`
	var b model.PortfolioBreach
	var resolvedAt sql.NullTime

	err := r.db.QueryRow(query, id).Scan(
		&b.ID,
		&b.PortfolioID,
		&b.MonitoringFieldID,
		&b.BreachCondition,
		&b.BreachValue,
		&b.Status,
		&b.DetectedAt,
		&resolvedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.PortfolioBreach{}, apperrors.ErrBreachNotFound
	}
	if err != nil {
		return model.PortfolioBreach{}, fmt.Errorf("failed to query portfolio breach: %w", err)
	}

	if resolvedAt.Valid {
		b.ResolvedAt = &resolvedAt.Time
	}
	return b, nil
}

// ListByPortfolioIDs retrieves all breaches whose portfolio id is in the given
// set, in insertion order. This is the second stage of the two-stage breach
// visibility query. An empty set yields an empty slice.
func (r *BreachRepository) ListByPortfolioIDs(portfolioIDs []string) ([]model.PortfolioBreach, error) {
	if len(portfolioIDs) == 0 {
		return []model.PortfolioBreach{}, nil
	}

	//#nosec G202 -- Safe: placeholders are generated programmatically, not from user input
	query := `
		SELECT id, portfolio_id, monitoring_field_id, breach_condition, breach_value, status, detected_at, resolved_at
		FROM portfolio_breach
		WHERE portfolio_id IN (` + placeholders(len(portfolioIDs)) + `)
		ORDER BY rowid
	`

	args := make([]any, len(portfolioIDs))
	for i, id := range portfolioIDs {
		args[i] = id
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio_breach table: %w", err)
	}
	defer rows.Close()

	breaches := []model.PortfolioBreach{}

	for rows.Next() {
		var b model.PortfolioBreach
		var resolvedAt sql.NullTime

		err := rows.Scan(
			&b.ID,
			&b.PortfolioID,
			&b.MonitoringFieldID,
			&b.BreachCondition,
			&b.BreachValue,
			&b.Status,
			&b.DetectedAt,
			&resolvedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio_breach table results: %w", err)
		}

		if resolvedAt.Valid {
			t := resolvedAt.Time
			b.ResolvedAt = &t
		}
		breaches = append(breaches, b)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio_breach table: %w", err)
	}

	return breaches, nil
}

// CountPending returns the number of breaches still awaiting an advisor
// decision. Used by the scheduled digest job.
func (r *BreachRepository) CountPending() (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM portfolio_breach WHERE status = ?`, model.BreachStatusPending).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending breaches: %w", err)
	}
	return count, nil
}

// Update rewrites a breach row with the complete merged record. Resolution
// stamping is the breach service's responsibility; the repository writes what
// it is given.
func (r *BreachRepository) Update(b model.PortfolioBreach) error {
	query := `
		UPDATE portfolio_breach
		SET portfolio_id = ?, monitoring_field_id = ?, breach_condition = ?, breach_value = ?, status = ?, detected_at = ?, resolved_at = ?
		WHERE id = ?
	`
	result, err := r.db.Exec(query,
		b.PortfolioID,
		b.MonitoringFieldID,
		b.BreachCondition,
		b.BreachValue,
		b.Status,
		b.DetectedAt,
		b.ResolvedAt,
		b.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update portfolio breach: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrBreachNotFound
	}

	return nil
}

// Delete removes a breach row. It reports whether a row was present.
func (r *BreachRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM portfolio_breach WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete portfolio breach: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected > 0, nil
}
