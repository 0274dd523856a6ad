package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

// PortfolioRepository provides data access methods for the portfolio table.
type PortfolioRepository struct {
	db *sql.DB
}

// NewPortfolioRepository creates a new PortfolioRepository with the provided database connection.
func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// Insert stores a new portfolio row.
func (r *PortfolioRepository) Insert(p model.Portfolio) error {
	query := `
		INSERT INTO portfolio (id, user_id, name, type, value, performance, risk_level, last_updated)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, p.ID, p.UserID, p.Name, p.Type, p.Value, p.Performance, p.RiskLevel, p.LastUpdated)
	if err != nil {
		return fmt.Errorf("failed to insert portfolio: %w", err)
	}
	return nil
}

// GetByID retrieves a portfolio by its ID.
func (r *PortfolioRepository) GetByID(id string) (model.Portfolio, error) {
	query := `
		SELECT id, user_id, name, type, value, performance, risk_level, last_updated
		FROM portfolio
		WHERE id = ?
	`
	var p model.Portfolio

	err := r.db.QueryRow(query, id).Scan(
		&p.ID,
		&p.UserID,
		&p.Name,
		&p.Type,
		&p.Value,
		&p.Performance,
		&p.RiskLevel,
		&p.LastUpdated,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Portfolio{}, apperrors.ErrPortfolioNotFound
	}
	if err != nil {
		return model.Portfolio{}, fmt.Errorf("failed to query portfolio: %w", err)
	}

	return p, nil
}

// ListByUserID retrieves all portfolios owned by a user in insertion order.
// Returns an empty slice when the user owns none.
func (r *PortfolioRepository) ListByUserID(userID string) ([]model.Portfolio, error) {
	query := `
		SELECT id, user_id, name, type, value, performance, risk_level, last_updated
		FROM portfolio
		WHERE user_id = ?
		ORDER BY rowid
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio table: %w", err)
	}
	defer rows.Close()

	portfolios := []model.Portfolio{}

	for rows.Next() {
		var p model.Portfolio

		err := rows.Scan(
			&p.ID,
			&p.UserID,
			&p.Name,
			&p.Type,
			&p.Value,
			&p.Performance,
			&p.RiskLevel,
			&p.LastUpdated,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan portfolio table results: %w", err)
		}

		portfolios = append(portfolios, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio table: %w", err)
	}

	return portfolios, nil
}

// IDsByUserID retrieves the ids of all portfolios owned by a user. This is the
// first stage of the two-stage breach visibility query.
func (r *PortfolioRepository) IDsByUserID(userID string) ([]string, error) {
	query := `
		SELECT id
		FROM portfolio
		WHERE user_id = ?
		ORDER BY rowid
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query portfolio ids: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan portfolio id: %w", err)
		}
		ids = append(ids, id)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating portfolio ids: %w", err)
	}

	return ids, nil
}

// Update rewrites a portfolio row. The caller provides the complete merged
// record; missing rows surface as ErrPortfolioNotFound.
func (r *PortfolioRepository) Update(p model.Portfolio) error {
	query := `
		UPDATE portfolio
		SET user_id = ?, name = ?, type = ?, value = ?, performance = ?, risk_level = ?, last_updated = ?
		WHERE id = ?
	`
	result, err := r.db.Exec(query, p.UserID, p.Name, p.Type, p.Value, p.Performance, p.RiskLevel, p.LastUpdated, p.ID)
	if err != nil {
		return fmt.Errorf("failed to update portfolio: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrPortfolioNotFound
	}

	return nil
}

// Delete removes a portfolio row. It reports whether a row was present;
// deleting an absent id is a no-op signaled as false.
func (r *PortfolioRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM portfolio WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete portfolio: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected > 0, nil
}
