package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// CreateScan inserts a scan in QUEUED state.
func (r *Repository) CreateScan(ctx context.Context, s model.Scan) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("create_scan", err, start)
	}()

	const query = `
INSERT INTO scans (id, protocol_id, agent_id, branch, commit_hash, state, current_step, progress)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	if _, err = r.db.Exec(ctx, query,
		s.ID, s.ProtocolID, s.AgentID, s.Branch, s.CommitHash,
		string(s.State), string(s.CurrentStep), s.Progress,
	); err != nil {
		return fmt.Errorf("insert scan: %w", err)
	}
	return nil
}

// GetScan fetches one scan by id.
func (r *Repository) GetScan(ctx context.Context, id string) (*model.Scan, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_scan", err, start)
	}()

	const query = `
SELECT id, protocol_id, agent_id, branch, commit_hash, state, current_step, progress, failure_reason, created_at, updated_at
FROM scans
WHERE id = $1`

	var s model.Scan
	var state, step string
	err = r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.ProtocolID, &s.AgentID, &s.Branch, &s.CommitHash,
		&state, &step, &s.Progress, &s.FailureReason, &s.CreatedAt, &s.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("scan %s: %w", id, ErrNotFound)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get scan: %w", err)
	}
	s.State = model.ScanState(state)
	s.CurrentStep = model.ScanStep(step)
	return &s, nil
}

// UpdateScanStep persists the current step and progress percentage so a
// crashed scan can be inspected at its last checkpoint.
func (r *Repository) UpdateScanStep(ctx context.Context, id string, step model.ScanStep, progress int) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_scan_step", err, start)
	}()

	const query = `
UPDATE scans
SET state = $2, current_step = $3, progress = $4, updated_at = now()
WHERE id = $1`

	if _, err = r.db.Exec(ctx, query, id, string(model.ScanRunning), string(step), progress); err != nil {
		return fmt.Errorf("update scan step: %w", err)
	}
	return nil
}

// CompleteScan marks a scan COMPLETED.
func (r *Repository) CompleteScan(ctx context.Context, id string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("complete_scan", err, start)
	}()

	const query = `
UPDATE scans
SET state = $2, progress = 100, updated_at = now()
WHERE id = $1`

	if _, err = r.db.Exec(ctx, query, id, string(model.ScanCompleted)); err != nil {
		return fmt.Errorf("complete scan: %w", err)
	}
	return nil
}

// FailScan marks a scan FAILED with the step it failed on and a
// human-readable reason.
func (r *Repository) FailScan(ctx context.Context, id string, step model.ScanStep, reason string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("fail_scan", err, start)
	}()

	const query = `
UPDATE scans
SET state = $2, current_step = $3, failure_reason = $4, updated_at = now()
WHERE id = $1`

	if _, err = r.db.Exec(ctx, query, id, string(model.ScanFailed), string(step), reason); err != nil {
		return fmt.Errorf("fail scan: %w", err)
	}
	return nil
}
