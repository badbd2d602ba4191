package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// CompletedPaymentsSince lists payments that claim COMPLETED after the given
// time, for the reconciliation three-way diff.
func (r *Repository) CompletedPaymentsSince(ctx context.Context, since time.Time) ([]model.Payment, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("completed_payments_since", err, start)
	}()

	const query = `
SELECT id, validation_id, protocol_id, researcher_address, amount_wei, idempotency_key, status, retry_count, tx_hash, onchain_bounty_id, reconciled, failure_reason, created_at, updated_at
FROM payments
WHERE status = $1 AND updated_at >= $2`

	rows, err := r.db.Query(ctx, query, string(model.PaymentCompleted), since)
	if err != nil {
		return nil, fmt.Errorf("query completed payments: %w", err)
	}
	defer rows.Close()

	var out []model.Payment
	for rows.Next() {
		p, scanErr := scanPayment(rows)
		if scanErr != nil {
			err = fmt.Errorf("scan payment: %w", scanErr)
			return nil, err
		}
		out = append(out, *p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate payments: %w", err)
	}
	return out, nil
}

// PaymentByValidation fetches the payment created for a validation, if any.
func (r *Repository) PaymentByValidation(ctx context.Context, validationID string) (*model.Payment, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("payment_by_validation", err, start)
	}()

	const query = `
SELECT id, validation_id, protocol_id, researcher_address, amount_wei, idempotency_key, status, retry_count, tx_hash, onchain_bounty_id, reconciled, failure_reason, created_at, updated_at
FROM payments
WHERE validation_id = $1`

	rows, err := r.db.Query(ctx, query, validationID)
	if err != nil {
		return nil, fmt.Errorf("query payment by validation: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate payment by validation: %w", err)
		}
		return nil, nil
	}
	p, err := scanPayment(rows)
	if err != nil {
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}
