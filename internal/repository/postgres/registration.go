package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// ProtocolsByRegistrationState lists protocols in one registration state,
// oldest first.
func (r *Repository) ProtocolsByRegistrationState(ctx context.Context, state model.RegistrationState) ([]model.Protocol, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("protocols_by_registration_state", err, start)
	}()

	const query = `
SELECT id, name, repo_url, branch, contract_path, contract_name, registration_state, onchain_id, bounty_balance_wei, failure_reason, created_at, updated_at
FROM protocols
WHERE registration_state = $1
ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, string(state))
	if err != nil {
		return nil, fmt.Errorf("query protocols by state: %w", err)
	}
	defer rows.Close()

	var out []model.Protocol
	for rows.Next() {
		var p model.Protocol
		var st string
		if err = rows.Scan(
			&p.ID, &p.Name, &p.RepoURL, &p.Branch, &p.ContractPath, &p.ContractName,
			&st, &p.OnChainID, &p.BountyBalanceWei, &p.FailureReason, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan protocol: %w", err)
		}
		p.RegistrationState = model.RegistrationState(st)
		out = append(out, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate protocols: %w", err)
	}
	return out, nil
}

// ClaimProtocolRegistration atomically flips a protocol PENDING -> PROCESSING
// so only one registrar submits its on-chain registration.
func (r *Repository) ClaimProtocolRegistration(ctx context.Context, id string) (bool, error) {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("claim_protocol_registration", err, start)
	}()

	const query = `
UPDATE protocols
SET registration_state = $2, updated_at = now()
WHERE id = $1 AND registration_state = $3`

	tag, err := r.db.Exec(ctx, query, id, string(model.RegistrationProcessing), string(model.RegistrationPending))
	if err != nil {
		return false, fmt.Errorf("claim protocol registration: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}
