package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/jul1angr1s/bugbounty-backend/pkg/safe"
)

// GetCheckpoint returns the cursor for one event name, or zero when the
// listener has never run for that event.
func (r *Repository) GetCheckpoint(ctx context.Context, eventName string) (uint64, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_checkpoint", err, start)
	}()

	const query = `
SELECT last_block
FROM event_checkpoints
WHERE event_name = $1`

	var stored int64
	err = r.db.QueryRow(ctx, query, eventName).Scan(&stored)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("get checkpoint: %w", err)
	}

	block, err := safe.Uint64(stored)
	if err != nil {
		return 0, fmt.Errorf("checkpoint for %s: %w", eventName, err)
	}
	return block, nil
}

// AdvanceCheckpoint moves the cursor forward. Called only after a batch has
// been fully handled; events between the old and new cursor may be replayed
// after a crash, which handlers tolerate.
func (r *Repository) AdvanceCheckpoint(ctx context.Context, eventName string, block uint64) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("advance_checkpoint", err, start)
	}()

	const query = `
INSERT INTO event_checkpoints (event_name, last_block, updated_at)
VALUES ($1, $2, now())
ON CONFLICT (event_name) DO UPDATE SET last_block = EXCLUDED.last_block, updated_at = now()`

	if _, err = r.db.Exec(ctx, query, eventName, block); err != nil {
		return fmt.Errorf("advance checkpoint: %w", err)
	}
	return nil
}
