package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/pkg/safe"
)

// InsertChainEvents stores observed on-chain events. Keyed by
// (tx_hash, log_index), so at-least-once redelivery is idempotent.
func (r *Repository) InsertChainEvents(ctx context.Context, events []model.ChainEvent) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_chain_events", err, start)
	}()

	const query = `
INSERT INTO chain_events (name, tx_hash, log_index, block_number, onchain_id, protocol_id, recipient, amount_wei, observed_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, now())
ON CONFLICT (tx_hash, log_index) DO NOTHING`

	for _, e := range events {
		if _, err = r.db.Exec(ctx, query,
			e.Name, e.TxHash, e.LogIndex, e.BlockNumber,
			e.OnChainID, e.ProtocolID, e.Recipient, e.AmountWei,
		); err != nil {
			return fmt.Errorf("insert chain event %s/%d: %w", e.TxHash, e.LogIndex, err)
		}
	}
	return nil
}

// ChainEventsByName lists stored events for one event name at or after the
// given block.
func (r *Repository) ChainEventsByName(ctx context.Context, name string, fromBlock uint64) ([]model.ChainEvent, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("chain_events_by_name", err, start)
	}()

	const query = `
SELECT name, tx_hash, log_index, block_number, onchain_id, protocol_id, recipient, amount_wei, observed_at
FROM chain_events
WHERE name = $1 AND block_number >= $2
ORDER BY block_number, log_index`

	rows, err := r.db.Query(ctx, query, name, fromBlock)
	if err != nil {
		return nil, fmt.Errorf("query chain events: %w", err)
	}
	defer rows.Close()

	var out []model.ChainEvent
	for rows.Next() {
		var (
			e        model.ChainEvent
			logIndex int32
			block    int64
		)
		if err = rows.Scan(
			&e.Name, &e.TxHash, &logIndex, &block,
			&e.OnChainID, &e.ProtocolID, &e.Recipient, &e.AmountWei, &e.ObservedAt,
		); err != nil {
			return nil, fmt.Errorf("scan chain event: %w", err)
		}
		idx, convErr := safe.Uint32(logIndex)
		if convErr != nil {
			err = convErr
			return nil, fmt.Errorf("chain event %s log index: %w", e.TxHash, err)
		}
		blockNumber, convErr := safe.Uint64(block)
		if convErr != nil {
			err = convErr
			return nil, fmt.Errorf("chain event %s block number: %w", e.TxHash, err)
		}
		e.LogIndex = uint(idx)
		e.BlockNumber = blockNumber
		out = append(out, e)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate chain events: %w", err)
	}
	return out, nil
}
