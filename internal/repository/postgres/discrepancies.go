package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// InsertDiscrepancies persists reconciliation findings for operator review.
func (r *Repository) InsertDiscrepancies(ctx context.Context, items []model.Discrepancy) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_discrepancies", err, start)
	}()

	const query = `
INSERT INTO discrepancies (id, category, payment_id, tx_hash, detail, detected_at)
VALUES ($1, $2, $3, $4, $5, now())
ON CONFLICT (category, payment_id, tx_hash) DO NOTHING`

	for _, d := range items {
		if _, err = r.db.Exec(ctx, query,
			d.ID, string(d.Category), d.PaymentID, d.TxHash, d.Detail,
		); err != nil {
			return fmt.Errorf("insert discrepancy %s: %w", d.ID, err)
		}
	}
	return nil
}
