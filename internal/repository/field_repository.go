package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

// FieldRepository provides data access methods for the monitoring_field table.
type FieldRepository struct {
	db *sql.DB
}

// NewFieldRepository creates a new FieldRepository with the provided database connection.
func NewFieldRepository(db *sql.DB) *FieldRepository {
	return &FieldRepository{db: db}
}

// Insert stores a new monitoring field row.
func (r *FieldRepository) Insert(f model.MonitoringField) error {
	query := `
		INSERT INTO monitoring_field (id, user_id, field_name, is_enabled, threshold, alert_level)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, f.ID, f.UserID, f.FieldName, f.IsEnabled, f.Threshold, f.AlertLevel)
	if err != nil {
		return fmt.Errorf("failed to insert monitoring field: %w", err)
	}
	return nil
}

// GetByID retrieves a monitoring field by its ID.
func (r *FieldRepository) GetByID(id string) (model.MonitoringField, error) {
	query := `
		SELECT id, user_id, field_name, is_enabled, threshold, alert_level
		FROM monitoring_field
		WHERE id = ?
	`
	var f model.MonitoringField
	var threshold sql.NullFloat64

	err := r.db.QueryRow(query, id).Scan(
		&f.ID,
		&f.UserID,
		&f.FieldName,
		&f.IsEnabled,
		&threshold,
		&f.AlertLevel,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return model.MonitoringField{}, apperrors.ErrMonitoringFieldNotFound
	}
	if err != nil {
		return model.MonitoringField{}, fmt.Errorf("failed to query monitoring field: %w", err)
	}

	if threshold.Valid {
		f.Threshold = &threshold.Float64
	}
	return f, nil
}

// ListByUserID retrieves all monitoring fields owned by a user in insertion order.
func (r *FieldRepository) ListByUserID(userID string) ([]model.MonitoringField, error) {
	query := `
		SELECT id, user_id, field_name, is_enabled, threshold, alert_level
		FROM monitoring_field
		WHERE user_id = ?
		ORDER BY rowid
	`
	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query monitoring_field table: %w", err)
	}
	defer rows.Close()

	fields := []model.MonitoringField{}

	for rows.Next() {
		var f model.MonitoringField
		var threshold sql.NullFloat64

		err := rows.Scan(
			&f.ID,
			&f.UserID,
			&f.FieldName,
			&f.IsEnabled,
			&threshold,
			&f.AlertLevel,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan monitoring_field table results: %w", err)
		}

		if threshold.Valid {
			v := threshold.Float64
			f.Threshold = &v
		}
		fields = append(fields, f)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating monitoring_field table: %w", err)
	}

	return fields, nil
}

// Update rewrites a monitoring field row with the complete merged record.
func (r *FieldRepository) Update(f model.MonitoringField) error {
	query := `
		UPDATE monitoring_field
		SET user_id = ?, field_name = ?, is_enabled = ?, threshold = ?, alert_level = ?
		WHERE id = ?
	`
	result, err := r.db.Exec(query, f.UserID, f.FieldName, f.IsEnabled, f.Threshold, f.AlertLevel, f.ID)
	if err != nil {
		return fmt.Errorf("failed to update monitoring field: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrMonitoringFieldNotFound
	}

	return nil
}

// Delete removes a monitoring field row. It reports whether a row was present.
func (r *FieldRepository) Delete(id string) (bool, error) {
	result, err := r.db.Exec(`DELETE FROM monitoring_field WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete monitoring field: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read delete result: %w", err)
	}

	return affected > 0, nil
}
