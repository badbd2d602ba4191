package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// PaymentByBountyID fetches the payment that recorded the given on-chain
// bounty id, or nil when no local record claims it.
func (r *Repository) PaymentByBountyID(ctx context.Context, bountyID string) (*model.Payment, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("payment_by_bounty_id", err, start)
	}()

	const query = `
SELECT id, validation_id, protocol_id, researcher_address, amount_wei, idempotency_key, status, retry_count, tx_hash, onchain_bounty_id, reconciled, failure_reason, created_at, updated_at
FROM payments
WHERE onchain_bounty_id = $1`

	rows, err := r.db.Query(ctx, query, bountyID)
	if err != nil {
		return nil, fmt.Errorf("query payment by bounty id: %w", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return nil, fmt.Errorf("iterate payment by bounty id: %w", err)
		}
		return nil, nil
	}
	p, err := scanPayment(rows)
	if err != nil {
		return nil, fmt.Errorf("scan payment: %w", err)
	}
	return p, nil
}
