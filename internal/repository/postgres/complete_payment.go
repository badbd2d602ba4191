package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// CompletePayment moves a claimed payment to COMPLETED with its transaction
// hash and on-chain bounty id. Conditional on PROCESSING so a payment can
// never complete twice. Reconciled is set immediately: the confirmed
// transaction is the settlement truth.
func (r *Repository) CompletePayment(ctx context.Context, id, txHash, onChainBountyID, amountWei string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("complete_payment", err, start)
	}()

	const query = `
UPDATE payments
SET status = $2, tx_hash = $3, onchain_bounty_id = $4, amount_wei = $5, reconciled = true, updated_at = now()
WHERE id = $1 AND status = $6`

	tag, err := r.db.Exec(ctx, query,
		id, string(model.PaymentCompleted), txHash, onChainBountyID, amountWei,
		string(model.PaymentProcessing),
	)
	if err != nil {
		return false, fmt.Errorf("complete payment: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
