package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SeedDemoData loads the demo dataset the dashboard renders on first start:
// one advisor user owning three portfolios, a goal, an ATRQ result, three
// monitoring fields, two rules, and three breaches in the three triage states.
// The exact values are demo fixtures; the shape (a single user owning every
// portfolio, with one pending and two resolved breaches) is what the UI
// depends on. Seeding is skipped when a user already exists.
func SeedDemoData(db *sql.DB) error {
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM user`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check for existing users: %w", err)
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	userID := uuid.New().String()

	_, err := db.Exec(
		`INSERT INTO user (id, username, password, name) VALUES (?, ?, ?, ?)`,
		userID, "john.smith", "password", "John Smith",
	)
	if err != nil {
		return fmt.Errorf("failed to seed user: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO goal (id, user_id, total_assets, target_progress, monthly_income, risk_score, assets_change, income_change)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), userID, 2450000.00, 87.3, 18750.00, 6.8, 12.5, 3.2,
	)
	if err != nil {
		return fmt.Errorf("failed to seed goal: %w", err)
	}

	_, err = db.Exec(
		`INSERT INTO atrq_result (id, user_id, overall_score, risk_profile, time_horizon, financial_capacity, loss_tolerance, risk_experience, last_updated)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		uuid.New().String(), userID, 6.8, "Moderate", 8.2, 7.1, 5.9, 6.3, now,
	)
	if err != nil {
		return fmt.Errorf("failed to seed atrq result: %w", err)
	}

	portfolios := []struct {
		id          string
		name        string
		ptype       string
		value       float64
		performance float64
		riskLevel   string
		updatedAgo  time.Duration
	}{
		{uuid.New().String(), "Conservative Growth Fund", "Mutual Fund", 450200.00, 8.7, "Medium", 2 * time.Hour},
		{uuid.New().String(), "Aggressive Growth Portfolio", "ETF Portfolio", 1250800.00, 15.2, "High", 1 * time.Hour},
		{uuid.New().String(), "Balanced Income Fund", "Bond Fund", 750500.00, 4.1, "Low", 3 * time.Hour},
	}
	for _, p := range portfolios {
		_, err = db.Exec(
			`INSERT INTO portfolio (id, user_id, name, type, value, performance, risk_level, last_updated)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			p.id, userID, p.name, p.ptype, p.value, p.performance, p.riskLevel, now.Add(-p.updatedAgo),
		)
		if err != nil {
			return fmt.Errorf("failed to seed portfolio %q: %w", p.name, err)
		}
	}

	fields := []struct {
		id        string
		name      string
		enabled   bool
		threshold float64
		level     string
	}{
		{uuid.New().String(), "Portfolio Allocation Drift", true, 5.0, "Warning"},
		{uuid.New().String(), "Risk Profile Mismatch", true, 1.5, "Critical"},
		{uuid.New().String(), "Concentration Risk", false, 20.0, "Warning"},
	}
	for _, f := range fields {
		_, err = db.Exec(
			`INSERT INTO monitoring_field (id, user_id, field_name, is_enabled, threshold, alert_level)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			f.id, userID, f.name, f.enabled, f.threshold, f.level,
		)
		if err != nil {
			return fmt.Errorf("failed to seed monitoring field %q: %w", f.name, err)
		}
	}

	rules := []struct {
		name       string
		isActive   bool
		conditions string
		actions    string
	}{
		{
			name:       "Rule #1",
			isActive:   true,
			conditions: `{"Portfolio Allocation Drift":{"operator":">","value":5},"Risk Score Mismatch":{"operator":">","value":1.5}}`,
			actions:    `{"alertLevel":"Warning","message":"Generate Warning Alert"}`,
		},
		{
			name:       "Rule #2",
			isActive:   false,
			conditions: `{"Concentration Risk":{"operator":">","value":20}}`,
			actions:    `{"alertLevel":"Critical","message":"Generate Critical Alert"}`,
		},
	}
	for _, r := range rules {
		_, err = db.Exec(
			`INSERT INTO suitability_rule (id, user_id, name, is_active, conditions, actions)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), userID, r.name, r.isActive, r.conditions, r.actions,
		)
		if err != nil {
			return fmt.Errorf("failed to seed rule %q: %w", r.name, err)
		}
	}

	breaches := []struct {
		portfolioID string
		fieldID     string
		condition   string
		value       float64
		status      string
		detectedAgo time.Duration
		resolvedAgo time.Duration // zero means unresolved
	}{
		{portfolios[0].id, fields[0].id, "Portfolio Allocation Drift > 5.0%", 7.2, "Pending", 2 * 24 * time.Hour, 0},
		{portfolios[1].id, fields[1].id, "Risk Score Mismatch > 1.5", 2.1, "Accept and change", 5 * 24 * time.Hour, 3 * 24 * time.Hour},
		{portfolios[2].id, fields[2].id, "Concentration Risk > 20.0%", 25.8, "Reject", 7 * 24 * time.Hour, 4 * 24 * time.Hour},
	}
	for _, b := range breaches {
		var resolvedAt *time.Time
		if b.resolvedAgo > 0 {
			t := now.Add(-b.resolvedAgo)
			resolvedAt = &t
		}
		_, err = db.Exec(
			`INSERT INTO portfolio_breach (id, portfolio_id, monitoring_field_id, breach_condition, breach_value, status, detected_at, resolved_at)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			uuid.New().String(), b.portfolioID, b.fieldID, b.condition, b.value, b.status, now.Add(-b.detectedAgo), resolvedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to seed breach %q: %w", b.condition, err)
		}
	}

	return nil
}
