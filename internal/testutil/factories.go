package testutil

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/advisersuite/Suitability-Dashboard-Backend/internal/model"
)

// UserBuilder provides a fluent interface for creating test users.
//
// Example usage:
//
//	user := testutil.NewUser().WithUsername("jane.doe").Build(t, db)
type UserBuilder struct {
	ID       string
	Username string
	Password string
	Name     string
}

// NewUser creates a UserBuilder with sensible defaults.
func NewUser() *UserBuilder {
	return &UserBuilder{
		ID:       MakeID(),
		Username: MakeUsername("advisor"),
		Password: "password",
		Name:     "Test Advisor",
	}
}

// WithUsername sets a custom username.
func (b *UserBuilder) WithUsername(username string) *UserBuilder {
	b.Username = username
	return b
}

// WithName sets a custom display name.
func (b *UserBuilder) WithName(name string) *UserBuilder {
	b.Name = name
	return b
}

// Build creates the user in the store and returns it.
func (b *UserBuilder) Build(t *testing.T, db *sql.DB) model.User {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO user (id, username, password, name) VALUES (?, ?, ?, ?)`,
		b.ID, b.Username, b.Password, b.Name,
	)
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	return model.User{
		ID:       b.ID,
		Username: b.Username,
		Password: b.Password,
		Name:     b.Name,
	}
}

// PortfolioBuilder provides a fluent interface for creating test portfolios.
//
// Example usage:
//
//	portfolio := testutil.NewPortfolio(user.ID).
//	    WithName("Growth Fund").
//	    WithValue(1000).
//	    WithRiskLevel(model.RiskLevelHigh).
//	    Build(t, db)
type PortfolioBuilder struct {
	ID          string
	UserID      string
	Name        string
	Type        string
	Value       float64
	Performance float64
	RiskLevel   string
	LastUpdated time.Time
}

// NewPortfolio creates a PortfolioBuilder with sensible defaults, owned by
// the given user.
func NewPortfolio(userID string) *PortfolioBuilder {
	return &PortfolioBuilder{
		ID:          MakeID(),
		UserID:      userID,
		Name:        MakeName("Test Portfolio"),
		Type:        "Mutual Fund",
		Value:       100000,
		Performance: 5.0,
		RiskLevel:   model.RiskLevelMedium,
		LastUpdated: time.Now().UTC(),
	}
}

// WithName sets a custom name.
func (b *PortfolioBuilder) WithName(name string) *PortfolioBuilder {
	b.Name = name
	return b
}

// WithValue sets the portfolio value.
func (b *PortfolioBuilder) WithValue(value float64) *PortfolioBuilder {
	b.Value = value
	return b
}

// WithRiskLevel sets the risk level.
func (b *PortfolioBuilder) WithRiskLevel(level string) *PortfolioBuilder {
	b.RiskLevel = level
	return b
}

// Build creates the portfolio in the store and returns it.
func (b *PortfolioBuilder) Build(t *testing.T, db *sql.DB) model.Portfolio {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO portfolio (id, user_id, name, type, value, performance, risk_level, last_updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.UserID, b.Name, b.Type, b.Value, b.Performance, b.RiskLevel, b.LastUpdated,
	)
	if err != nil {
		t.Fatalf("Failed to create test portfolio: %v", err)
	}

	return model.Portfolio{
		ID:          b.ID,
		UserID:      b.UserID,
		Name:        b.Name,
		Type:        b.Type,
		Value:       b.Value,
		Performance: b.Performance,
		RiskLevel:   b.RiskLevel,
		LastUpdated: b.LastUpdated,
	}
}

// FieldBuilder provides a fluent interface for creating test monitoring
// fields.
type FieldBuilder struct {
	ID         string
	UserID     string
	FieldName  string
	IsEnabled  bool
	Threshold  *float64
	AlertLevel string
}

// NewField creates a FieldBuilder with sensible defaults, owned by the given
// user.
func NewField(userID string) *FieldBuilder {
	threshold := 5.0
	return &FieldBuilder{
		ID:         MakeID(),
		UserID:     userID,
		FieldName:  MakeName("Test Field"),
		IsEnabled:  true,
		Threshold:  &threshold,
		AlertLevel: model.AlertLevelWarning,
	}
}

// WithAlertLevel sets the alert level.
func (b *FieldBuilder) WithAlertLevel(level string) *FieldBuilder {
	b.AlertLevel = level
	return b
}

// Disabled marks the field as disabled.
func (b *FieldBuilder) Disabled() *FieldBuilder {
	b.IsEnabled = false
	return b
}

// Build creates the monitoring field in the store and returns it.
func (b *FieldBuilder) Build(t *testing.T, db *sql.DB) model.MonitoringField {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO monitoring_field (id, user_id, field_name, is_enabled, threshold, alert_level)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.UserID, b.FieldName, b.IsEnabled, b.Threshold, b.AlertLevel,
	)
	if err != nil {
		t.Fatalf("Failed to create test monitoring field: %v", err)
	}

	return model.MonitoringField{
		ID:         b.ID,
		UserID:     b.UserID,
		FieldName:  b.FieldName,
		IsEnabled:  b.IsEnabled,
		Threshold:  b.Threshold,
		AlertLevel: b.AlertLevel,
	}
}

// RuleBuilder provides a fluent interface for creating test suitability
// rules.
type RuleBuilder struct {
	ID         string
	UserID     string
	Name       string
	IsActive   bool
	Conditions json.RawMessage
	Actions    json.RawMessage
}

// NewRule creates a RuleBuilder with sensible defaults, owned by the given
// user.
func NewRule(userID string) *RuleBuilder {
	return &RuleBuilder{
		ID:         MakeID(),
		UserID:     userID,
		Name:       MakeName("Test Rule"),
		IsActive:   true,
		Conditions: json.RawMessage(`{"allocationDrift": {"operator": ">", "value": 5}}`),
		Actions:    json.RawMessage(`{"alertLevel": "Warning", "message": "Review allocation"}`),
	}
}

// WithConditions sets the conditions document.
func (b *RuleBuilder) WithConditions(doc string) *RuleBuilder {
	b.Conditions = json.RawMessage(doc)
	return b
}

// WithActions sets the actions document.
func (b *RuleBuilder) WithActions(doc string) *RuleBuilder {
	b.Actions = json.RawMessage(doc)
	return b
}

// Build creates the rule in the store and returns it.
func (b *RuleBuilder) Build(t *testing.T, db *sql.DB) model.SuitabilityRule {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO suitability_rule (id, user_id, name, is_active, conditions, actions)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		b.ID, b.UserID, b.Name, b.IsActive, string(b.Conditions), string(b.Actions),
	)
	if err != nil {
		t.Fatalf("Failed to create test rule: %v", err)
	}

	return model.SuitabilityRule{
		ID:         b.ID,
		UserID:     b.UserID,
		Name:       b.Name,
		IsActive:   b.IsActive,
		Conditions: b.Conditions,
		Actions:    b.Actions,
	}
}

// BreachBuilder provides a fluent interface for creating test breaches.
//
// Example usage:
//
//	breach := testutil.NewBreach(portfolio.ID, field.ID).
//	    WithStatus(model.BreachStatusReject).
//	    Build(t, db)
type BreachBuilder struct {
	ID                string
	PortfolioID       string
	MonitoringFieldID string
	BreachCondition   string
	BreachValue       float64
	Status            string
	DetectedAt        time.Time
	ResolvedAt        *time.Time
}

// NewBreach creates a BreachBuilder with sensible defaults, pending against
// the given portfolio and monitoring field.
func NewBreach(portfolioID, fieldID string) *BreachBuilder {
	return &BreachBuilder{
		ID:                MakeID(),
		PortfolioID:       portfolioID,
		MonitoringFieldID: fieldID,
		BreachCondition:   "Allocation drift exceeds threshold",
		BreachValue:       7.2,
		Status:            model.BreachStatusPending,
		DetectedAt:        time.Now().UTC(),
	}
}

// WithStatus sets the status. A non-Pending status gets a resolvedAt stamp so
// the built record honors the lifecycle invariant.
func (b *BreachBuilder) WithStatus(status string) *BreachBuilder {
	b.Status = status
	if status != model.BreachStatusPending {
		now := time.Now().UTC()
		b.ResolvedAt = &now
	} else {
		b.ResolvedAt = nil
	}
	return b
}

// WithBreachValue sets the breach value.
func (b *BreachBuilder) WithBreachValue(value float64) *BreachBuilder {
	b.BreachValue = value
	return b
}

// Build creates the breach in the store and returns it.
func (b *BreachBuilder) Build(t *testing.T, db *sql.DB) model.PortfolioBreach {
	t.Helper()

	_, err := db.Exec(
		`INSERT INTO portfolio_breach (id, portfolio_id, monitoring_field_id, breach_condition, breach_value, status, detected_at, resolved_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		b.ID, b.PortfolioID, b.MonitoringFieldID, b.BreachCondition, b.BreachValue, b.Status, b.DetectedAt, b.ResolvedAt,
	)
	if err != nil {
		t.Fatalf("Failed to create test breach: %v", err)
	}

	return model.PortfolioBreach{
		ID:                b.ID,
		PortfolioID:       b.PortfolioID,
		MonitoringFieldID: b.MonitoringFieldID,
		BreachCondition:   b.BreachCondition,
		BreachValue:       b.BreachValue,
		Status:            b.Status,
		DetectedAt:        b.DetectedAt,
		ResolvedAt:        b.ResolvedAt,
	}
}
