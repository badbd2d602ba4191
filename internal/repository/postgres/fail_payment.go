package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// FailPayment marks a claimed payment FAILED with a terminal reason. Used on
// the final configured attempt only.
func (r *Repository) FailPayment(ctx context.Context, id, reason string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("fail_payment", err, start)
	}()

	const query = `
UPDATE payments
SET status = $2, failure_reason = $3, updated_at = now()
WHERE id = $1 AND status = $4`

	if _, err = r.db.Exec(ctx, query, id, string(model.PaymentFailed), reason, string(model.PaymentProcessing)); err != nil {
		return fmt.Errorf("fail payment: %w", err)
	}
	return nil
}
