// Package apperrors defines sentinel errors shared across the repository,
// service, and handler layers. Repositories signal absence with these rather
// than raw sql.ErrNoRows so callers can map them to HTTP statuses.
package apperrors

import "errors"

// Domain entity errors represent missing entities in the system.
var (
	// ErrUserNotFound indicates that no user is present in the store.
	ErrUserNotFound = errors.New("user not found")

	// ErrPortfolioNotFound indicates that a portfolio with the given ID does not exist.
	ErrPortfolioNotFound = errors.New("portfolio not found")

	// ErrGoalNotFound indicates that no goal record exists for the user.
	ErrGoalNotFound = errors.New("goal not found")

	// ErrAtrqResultNotFound indicates that no ATRQ result exists for the user.
	ErrAtrqResultNotFound = errors.New("atrq result not found")

	// ErrRuleNotFound indicates that a suitability rule with the given ID does not exist.
	ErrRuleNotFound = errors.New("suitability rule not found")

	// ErrMonitoringFieldNotFound indicates that a monitoring field with the given ID does not exist.
	ErrMonitoringFieldNotFound = errors.New("monitoring field not found")

	// ErrBreachNotFound indicates that a portfolio breach with the given ID does not exist.
	ErrBreachNotFound = errors.New("portfolio breach not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrDuplicateUsername indicates that a user with the same username already exists.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrNegativeValue indicates that a monetary field has an invalid negative value.
	ErrNegativeValue = errors.New("value cannot be negative")
)

// Configuration errors.
var (
	// ErrExternalLinkNotConfigured indicates the external portfolio-management
	// link has not been set up in the environment.
	ErrExternalLinkNotConfigured = errors.New("external portfolio link not configured")
)
