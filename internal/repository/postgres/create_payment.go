package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// CreatePayment inserts a payment in PENDING status. The idempotency key is
// unique, so creating a payment twice for the same validation is a no-op.
func (r *Repository) CreatePayment(ctx context.Context, p model.Payment) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("create_payment", err, start)
	}()

	const query = `
INSERT INTO payments (id, validation_id, protocol_id, researcher_address, amount_wei, idempotency_key, status, retry_count)
VALUES ($1, $2, $3, $4, $5, $6, $7, 0)
ON CONFLICT (idempotency_key) DO NOTHING`

	if _, err = r.db.Exec(ctx, query,
		p.ID, p.ValidationID, p.ProtocolID, p.ResearcherAddress,
		p.AmountWei, p.IdempotencyKey, string(p.Status),
	); err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}
	return nil
}

// PaymentByIdempotencyKey fetches the payment that won the insert for a key,
// or nil when none exists. Callers that lose the CreatePayment conflict use
// this to find the surviving row.
func (r *Repository) PaymentByIdempotencyKey(ctx context.Context, key string) (*model.Payment, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("payment_by_idempotency_key", err, start)
	}()

	const query = `
SELECT id, validation_id, protocol_id, researcher_address, amount_wei, idempotency_key, status, retry_count, tx_hash, onchain_bounty_id, reconciled, failure_reason, created_at, updated_at
FROM payments
WHERE idempotency_key = $1`

	rows, err := r.db.Query(ctx, query, key)
	if err != nil {
		return nil, fmt.Errorf("query payment by idempotency key: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate payment by idempotency key: %w", err)
		}
		return nil, nil
	}
	p, err := scanPayment(rows)
	if err != nil {
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}
