package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// GetPayment fetches one payment by id.
func (r *Repository) GetPayment(ctx context.Context, id string) (*model.Payment, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_payment", err, start)
	}()

	const query = `
SELECT id, validation_id, protocol_id, researcher_address, amount_wei, idempotency_key, status, retry_count, tx_hash, onchain_bounty_id, reconciled, failure_reason, created_at, updated_at
FROM payments
WHERE id = $1`

	p, err := scanPayment(r.db.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("payment %s: %w", id, ErrNotFound)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get payment: %w", err)
	}
	return p, nil
}

func scanPayment(row pgx.Row) (*model.Payment, error) {
	var p model.Payment
	var status string
	if err := row.Scan(
		&p.ID, &p.ValidationID, &p.ProtocolID, &p.ResearcherAddress, &p.AmountWei,
		&p.IdempotencyKey, &status, &p.RetryCount, &p.TxHash, &p.OnChainBountyID,
		&p.Reconciled, &p.FailureReason, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return nil, err
	}
	p.Status = model.PaymentStatus(status)
	return &p, nil
}
