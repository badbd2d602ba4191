package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// InsertFindings stores findings discovered by one scan.
func (r *Repository) InsertFindings(ctx context.Context, findings []model.Finding) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_findings", err, start)
	}()

	const query = `
INSERT INTO findings (id, scan_id, type, severity, title, description, file_path, line, function_selector, confidence, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`

	for _, f := range findings {
		if _, err = r.db.Exec(ctx, query,
			f.ID, f.ScanID, string(f.Type), string(f.Severity), f.Title, f.Description,
			f.FilePath, f.Line, f.FunctionSelector, f.Confidence, string(f.Status),
		); err != nil {
			return fmt.Errorf("insert finding %s: %w", f.ID, err)
		}
	}
	return nil
}

// GetFinding fetches one finding by id.
func (r *Repository) GetFinding(ctx context.Context, id string) (*model.Finding, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_finding", err, start)
	}()

	const query = `
SELECT id, scan_id, type, severity, title, description, file_path, line, function_selector, confidence, status, created_at
FROM findings
WHERE id = $1`

	var f model.Finding
	var typ, severity, status string
	err = r.db.QueryRow(ctx, query, id).Scan(
		&f.ID, &f.ScanID, &typ, &severity, &f.Title, &f.Description,
		&f.FilePath, &f.Line, &f.FunctionSelector, &f.Confidence, &status, &f.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("finding %s: %w", id, ErrNotFound)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get finding: %w", err)
	}
	f.Type = model.VulnerabilityType(typ)
	f.Severity = model.Severity(severity)
	f.Status = model.FindingStatus(status)
	return &f, nil
}

// UpdateFindingStatus is called by the validation pipeline only.
func (r *Repository) UpdateFindingStatus(ctx context.Context, id string, status model.FindingStatus) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_finding_status", err, start)
	}()

	const query = `
UPDATE findings
SET status = $2
WHERE id = $1`

	if _, err = r.db.Exec(ctx, query, id, string(status)); err != nil {
		return fmt.Errorf("update finding status: %w", err)
	}
	return nil
}
