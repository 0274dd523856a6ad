package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/apperrors"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

// UserRepository provides data access methods for the user table.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository with the provided database connection.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Insert stores a new user row.
func (r *UserRepository) Insert(u model.User) error {
	query := `
		INSERT INTO user (id, username, password, name)
		VALUES (?, ?, ?, ?)
	`
	if _, err := r.db.Exec(query, u.ID, u.Username, u.Password, u.Name); err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

// GetByID retrieves a user by its ID.
func (r *UserRepository) GetByID(id string) (model.User, error) {
	query := `
		SELECT id, username, password, name
		FROM user
		WHERE id = ?
	`
	var u model.User

	err := r.db.QueryRow(query, id).Scan(&u.ID, &u.Username, &u.Password, &u.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user: %w", err)
	}

	return u, nil
}

// GetByUsername retrieves a user by username.
func (r *UserRepository) GetByUsername(username string) (model.User, error) {
	query := `
		SELECT id, username, password, name
		FROM user
		WHERE username = ?
	`
	var u model.User

	err := r.db.QueryRow(query, username).Scan(&u.ID, &u.Username, &u.Password, &u.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query user by username: %w", err)
	}

	return u, nil
}

// First retrieves the first seeded user in insertion order. The dashboard has
// no session model; this is how "the current user" is resolved.
func (r *UserRepository) First() (model.User, error) {
	query := `
		SELECT id, username, password, name
		FROM user
		ORDER BY rowid
		LIMIT 1
	`
	var u model.User

	err := r.db.QueryRow(query).Scan(&u.ID, &u.Username, &u.Password, &u.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, apperrors.ErrUserNotFound
	}
	if err != nil {
		return model.User{}, fmt.Errorf("failed to query first user: %w", err)
	}

	return u, nil
}
