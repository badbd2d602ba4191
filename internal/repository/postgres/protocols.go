package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// CreateProtocol inserts a protocol in PENDING registration state.
func (r *Repository) CreateProtocol(ctx context.Context, p model.Protocol) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("create_protocol", err, start)
	}()

	const query = `
INSERT INTO protocols (id, name, repo_url, branch, contract_path, contract_name, registration_state, onchain_id, bounty_balance_wei)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if _, err = r.db.Exec(ctx, query,
		p.ID, p.Name, p.RepoURL, p.Branch, p.ContractPath, p.ContractName,
		string(p.RegistrationState), p.OnChainID, p.BountyBalanceWei,
	); err != nil {
		return fmt.Errorf("insert protocol: %w", err)
	}
	return nil
}

// GetProtocol fetches one protocol by id.
func (r *Repository) GetProtocol(ctx context.Context, id string) (*model.Protocol, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("get_protocol", err, start)
	}()

	const query = `
SELECT id, name, repo_url, branch, contract_path, contract_name, registration_state, onchain_id, bounty_balance_wei, failure_reason, created_at, updated_at
FROM protocols
WHERE id = $1`

	var p model.Protocol
	var state string
	err = r.db.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.RepoURL, &p.Branch, &p.ContractPath, &p.ContractName,
		&state, &p.OnChainID, &p.BountyBalanceWei, &p.FailureReason, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		err = fmt.Errorf("protocol %s: %w", id, ErrNotFound)
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("get protocol: %w", err)
	}
	p.RegistrationState = model.RegistrationState(state)
	return &p, nil
}

// UpdateProtocolRegistration moves a protocol through the registration
// workflow and records the on-chain identifier once assigned.
func (r *Repository) UpdateProtocolRegistration(ctx context.Context, id string, state model.RegistrationState, onChainID, failureReason string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_protocol_registration", err, start)
	}()

	const query = `
UPDATE protocols
SET registration_state = $2, onchain_id = $3, failure_reason = $4, updated_at = now()
WHERE id = $1`

	if _, err = r.db.Exec(ctx, query, id, string(state), onChainID, failureReason); err != nil {
		return fmt.Errorf("update protocol registration: %w", err)
	}
	return nil
}

// UpdateProtocolBalance refreshes the bounty-pool balance snapshot.
func (r *Repository) UpdateProtocolBalance(ctx context.Context, id, balanceWei string) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("update_protocol_balance", err, start)
	}()

	const query = `
UPDATE protocols
SET bounty_balance_wei = $2, updated_at = now()
WHERE id = $1`

	if _, err = r.db.Exec(ctx, query, id, balanceWei); err != nil {
		return fmt.Errorf("update protocol balance: %w", err)
	}
	return nil
}
