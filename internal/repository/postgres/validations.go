package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// InsertValidation stores a validation outcome. Validations are append-only,
// and the unique index on proof_id turns a duplicate verdict for the same
// proof into an insert error instead of a second row.
func (r *Repository) InsertValidation(ctx context.Context, v model.Validation) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_validation", err, start)
	}()

	const query = `
INSERT INTO validations (id, proof_id, finding_id, scan_id, protocol_id, outcome, execution_log, proof_hash, tx_hash)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if _, err = r.db.Exec(ctx, query,
		v.ID, v.ProofID, v.FindingID, v.ScanID, v.ProtocolID,
		string(v.Outcome), v.ExecutionLog, v.ProofHash, v.TxHash,
	); err != nil {
		return fmt.Errorf("insert validation: %w", err)
	}
	return nil
}

// GetValidation fetches one validation by id.
func (r *Repository) GetValidation(ctx context.Context, id string) (*model.Validation, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_validation", err, start)
	}()

	const query = `
SELECT id, proof_id, finding_id, scan_id, protocol_id, outcome, execution_log, proof_hash, tx_hash, created_at
FROM validations
WHERE id = $1`

	var v model.Validation
	var outcome string
	err = r.db.QueryRow(ctx, query, id).Scan(
		&v.ID, &v.ProofID, &v.FindingID, &v.ScanID, &v.ProtocolID,
		&outcome, &v.ExecutionLog, &v.ProofHash, &v.TxHash, &v.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("validation %s: %w", id, ErrNotFound)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get validation: %w", err)
	}
	v.Outcome = model.ValidationOutcome(outcome)
	return &v, nil
}

// ValidationByProof fetches the validation recorded for a proof, or nil when
// the proof has not been validated yet.
func (r *Repository) ValidationByProof(ctx context.Context, proofID string) (*model.Validation, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("validation_by_proof", err, start)
	}()

	const query = `
SELECT id, proof_id, finding_id, scan_id, protocol_id, outcome, execution_log, proof_hash, tx_hash, created_at
FROM validations
WHERE proof_id = $1`

	var v model.Validation
	var outcome string
	err = r.db.QueryRow(ctx, query, proofID).Scan(
		&v.ID, &v.ProofID, &v.FindingID, &v.ScanID, &v.ProtocolID,
		&outcome, &v.ExecutionLog, &v.ProofHash, &v.TxHash, &v.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get validation by proof: %w", err)
	}
	v.Outcome = model.ValidationOutcome(outcome)
	return &v, nil
}

// ConfirmedValidationsOlderThan lists CONFIRMED validations created before
// the cutoff, for the reconciliation grace-period check.
func (r *Repository) ConfirmedValidationsOlderThan(ctx context.Context, cutoff time.Time) ([]model.Validation, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("confirmed_validations_older_than", err, start)
	}()

	const query = `
SELECT id, proof_id, finding_id, scan_id, protocol_id, outcome, execution_log, proof_hash, tx_hash, created_at
FROM validations
WHERE outcome = $1 AND created_at < $2`

	rows, err := r.db.Query(ctx, query, string(model.OutcomeConfirmed), cutoff)
	if err != nil {
		return nil, fmt.Errorf("query confirmed validations: %w", err)
	}
	defer rows.Close()

	var out []model.Validation
	for rows.Next() {
		var v model.Validation
		var outcome string
		if err = rows.Scan(
			&v.ID, &v.ProofID, &v.FindingID, &v.ScanID, &v.ProtocolID,
			&outcome, &v.ExecutionLog, &v.ProofHash, &v.TxHash, &v.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan validation: %w", err)
		}
		v.Outcome = model.ValidationOutcome(outcome)
		out = append(out, v)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate validations: %w", err)
	}
	return out, nil
}
