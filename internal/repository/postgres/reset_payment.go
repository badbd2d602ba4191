package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// ResetPayment returns a claimed payment to PENDING and increments its retry
// count so the next queue attempt can re-claim it.
func (r *Repository) ResetPayment(ctx context.Context, id, reason string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("reset_payment", err, start)
	}()

	const query = `
UPDATE payments
SET status = $2, retry_count = retry_count + 1, failure_reason = $3, updated_at = now()
WHERE id = $1 AND status = $4`

	if _, err = r.db.Exec(ctx, query, id, string(model.PaymentPending), reason, string(model.PaymentProcessing)); err != nil {
		return fmt.Errorf("reset payment: %w", err)
	}
	return nil
}
