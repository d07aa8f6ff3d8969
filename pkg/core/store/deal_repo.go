package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"deal_underwriting/pkg/core/analysis"
	"deal_underwriting/pkg/models"
)

// ErrDealNotFound is returned when a deal id has no row.
var ErrDealNotFound = errors.New("deal not found")

// DealRepo stores deals and their latest computed underwriting report.
//
// Schema assumption (managed by migrations elsewhere):
//
//	CREATE TABLE IF NOT EXISTS deals (
//	  id UUID PRIMARY KEY,
//	  name TEXT NOT NULL,
//	  deal_json JSONB NOT NULL,
//	  report_json JSONB,
//	  updated_at TIMESTAMPTZ NOT NULL
//	);
type DealRepo struct{}

// NewDealRepo creates a new repository instance.
func NewDealRepo() *DealRepo {
	return &DealRepo{}
}

// Save upserts the deal and its report. A missing ID is assigned here so
// callers can submit new deals without minting identifiers.
func (r *DealRepo) Save(ctx context.Context, deal *models.Deal, report *analysis.UnderwritingReport) error {
	pool := GetPool()
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}

	if deal.ID == "" {
		deal.ID = uuid.NewString()
	}
	now := time.Now()
	if deal.CreatedAt.IsZero() {
		deal.CreatedAt = now
	}
	deal.UpdatedAt = now

	dealJSON, err := json.Marshal(deal)
	if err != nil {
		return fmt.Errorf("failed to marshal deal: %w", err)
	}
	var reportJSON []byte
	if report != nil {
		reportJSON, err = json.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
	}

	query := `
		INSERT INTO deals (id, name, deal_json, report_json, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id)
		DO UPDATE SET
			name = EXCLUDED.name,
			deal_json = EXCLUDED.deal_json,
			report_json = EXCLUDED.report_json,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := pool.Exec(ctx, query, deal.ID, deal.Name, dealJSON, reportJSON, now); err != nil {
		return fmt.Errorf("failed to save deal: %w", err)
	}
	return nil
}

// Load retrieves a deal and its stored report by id.
func (r *DealRepo) Load(ctx context.Context, id string) (*models.Deal, *analysis.UnderwritingReport, error) {
	pool := GetPool()
	if pool == nil {
		return nil, nil, fmt.Errorf("database pool not initialized")
	}

	var dealJSON, reportJSON []byte
	query := `SELECT deal_json, report_json FROM deals WHERE id = $1`
	err := pool.QueryRow(ctx, query, id).Scan(&dealJSON, &reportJSON)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil, ErrDealNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load deal: %w", err)
	}

	var deal models.Deal
	if err := json.Unmarshal(dealJSON, &deal); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal deal: %w", err)
	}
	var report *analysis.UnderwritingReport
	if len(reportJSON) > 0 {
		report = &analysis.UnderwritingReport{}
		if err := json.Unmarshal(reportJSON, report); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal report: %w", err)
		}
	}
	return &deal, report, nil
}

// List returns the most recently updated deals, newest first.
func (r *DealRepo) List(ctx context.Context, limit int) ([]models.Deal, error) {
	pool := GetPool()
	if pool == nil {
		return nil, fmt.Errorf("database pool not initialized")
	}
	if limit <= 0 {
		limit = 50
	}

	rows, err := pool.Query(ctx,
		`SELECT deal_json FROM deals ORDER BY updated_at DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list deals: %w", err)
	}
	defer rows.Close()

	var deals []models.Deal
	for rows.Next() {
		var dealJSON []byte
		if err := rows.Scan(&dealJSON); err != nil {
			return nil, fmt.Errorf("failed to scan deal row: %w", err)
		}
		var deal models.Deal
		if err := json.Unmarshal(dealJSON, &deal); err != nil {
			return nil, fmt.Errorf("failed to unmarshal deal: %w", err)
		}
		deals = append(deals, deal)
	}
	return deals, rows.Err()
}
