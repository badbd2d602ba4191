package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// ClaimPayment atomically flips PENDING -> PROCESSING for the exact payment
// id. It reports false when zero rows were affected, meaning another worker
// already holds the claim or the payment is not pending. This conditional
// update is the sole concurrency gate for settlement; no lock manager exists.
func (r *Repository) ClaimPayment(ctx context.Context, id string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("claim_payment", err, start)
	}()

	const query = `
UPDATE payments
SET status = $2, updated_at = now()
WHERE id = $1 AND status = $3`

	tag, err := r.db.Exec(ctx, query, id, string(model.PaymentProcessing), string(model.PaymentPending))
	if err != nil {
		return false, fmt.Errorf("claim payment: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
