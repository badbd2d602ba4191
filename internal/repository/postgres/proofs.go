package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// InsertProof stores a generated proof in PENDING status.
func (r *Repository) InsertProof(ctx context.Context, p model.Proof) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_proof", err, start)
	}()

	steps, err := json.Marshal(p.Steps)
	if err != nil {
		return fmt.Errorf("marshal proof steps: %w", err)
	}

	const query = `
INSERT INTO proofs (id, finding_id, scan_id, steps, expected_outcome, actual_outcome, encrypted_payload, signature, status)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if _, err = r.db.Exec(ctx, query,
		p.ID, p.FindingID, p.ScanID, steps, p.ExpectedOutcome, p.ActualOutcome,
		p.EncryptedPayload, p.Signature, string(p.Status),
	); err != nil {
		return fmt.Errorf("insert proof: %w", err)
	}
	return nil
}

// GetProof fetches one proof by id.
func (r *Repository) GetProof(ctx context.Context, id string) (*model.Proof, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_proof", err, start)
	}()

	const query = `
SELECT id, finding_id, scan_id, steps, expected_outcome, actual_outcome, encrypted_payload, signature, status, created_at, updated_at
FROM proofs
WHERE id = $1`

	var p model.Proof
	var steps []byte
	var status string
	err = r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.FindingID, &p.ScanID, &steps, &p.ExpectedOutcome, &p.ActualOutcome,
		&p.EncryptedPayload, &p.Signature, &status, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("proof %s: %w", id, ErrNotFound)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get proof: %w", err)
	}
	if len(steps) > 0 {
		if err = json.Unmarshal(steps, &p.Steps); err != nil {
			return nil, fmt.Errorf("unmarshal proof steps: %w", err)
		}
	}
	p.Status = model.ProofStatus(status)
	return &p, nil
}

// UpdateProofStatus advances a proof through submission and validation.
func (r *Repository) UpdateProofStatus(ctx context.Context, id string, status model.ProofStatus) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_proof_status", err, start)
	}()

	const query = `
UPDATE proofs
SET status = $2, updated_at = now()
WHERE id = $1`

	if _, err = r.db.Exec(ctx, query, id, string(status)); err != nil {
		return fmt.Errorf("update proof status: %w", err)
	}
	return nil
}
