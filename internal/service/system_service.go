package service

import (
	"database/sql"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/database"
	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/version"
)

// SystemService handles system-related operations
type SystemService struct {
	db *sql.DB
}

// NewSystemService creates a new SystemService
func NewSystemService(db *sql.DB) *SystemService {
	return &SystemService{db: db}
}

// Health reports whether the store is reachable.
func (s *SystemService) Health() error {
	return database.HealthCheck(s.db)
}

// Version returns the running build's metadata.
func (s *SystemService) Version() version.Info {
	return version.Get()
}
