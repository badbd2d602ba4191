package chain

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// Outcome codes as the validation registry contract encodes them.
func outcomeCode(o model.ValidationOutcome) uint8 {
	switch o {
	case model.OutcomeConfirmed:
		return 1
	case model.OutcomeRejected:
		return 2
	default:
		return 3
	}
}

// RegisterProtocol registers a protocol on-chain and returns the assigned
// on-chain protocol id.
func (c *Client) RegisterProtocol(ctx context.Context, name, repoURL string) (string, error) {
	started := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("register_protocol", err, started)
	}()

	opts, err := c.transactor(ctx)
	if err != nil {
		return "", err
	}

	tx, err := c.registry.Transact(opts, "registerProtocol", name, repoURL)
	if err != nil {
		return "", fmt.Errorf("register protocol: %w", err)
	}

	receipt, err := c.waitReceipt(ctx, tx)
	if err != nil {
		return "", err
	}

	for _, lg := range receipt.Logs {
		if len(lg.Topics) >= 2 && lg.Topics[0] == registryABI.Events["ProtocolRegistered"].ID {
			return common.Hash(lg.Topics[1]).Hex(), nil
		}
	}
	err = fmt.Errorf("register protocol: ProtocolRegistered event not found in receipt %s", tx.Hash().Hex())
	return "", err
}

// RecordValidation records a validation outcome on the on-chain registry and
// returns the transaction hash.
func (c *Client) RecordValidation(ctx context.Context, protocolOnChainID string, proofHash [32]byte, outcome model.ValidationOutcome) (string, error) {
	started := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("record_validation", err, started)
	}()

	opts, err := c.transactor(ctx)
	if err != nil {
		return "", err
	}

	tx, err := c.validation.Transact(opts, "recordValidation",
		common.HexToHash(protocolOnChainID), proofHash, outcomeCode(outcome))
	if err != nil {
		return "", fmt.Errorf("record validation: %w", err)
	}

	if _, err = c.waitReceipt(ctx, tx); err != nil {
		return "", err
	}
	return tx.Hash().Hex(), nil
}

// GetValidation reads a recorded validation back from the registry.
func (c *Client) GetValidation(ctx context.Context, validationID string) ([32]byte, uint8, error) {
	started := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("get_validation", err, started)
	}()

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var out []any
	err = c.validation.Call(&bind.CallOpts{Context: ctx}, &out, "getValidation", common.HexToHash(validationID))
	if err != nil {
		return [32]byte{}, 0, fmt.Errorf("get validation: %w", err)
	}
	proofHash, ok := out[0].([32]byte)
	if !ok {
		err = fmt.Errorf("get validation: unexpected proof hash type %T", out[0])
		return [32]byte{}, 0, err
	}
	outcome, ok := out[1].(uint8)
	if !ok {
		err = fmt.Errorf("get validation: unexpected outcome type %T", out[1])
		return [32]byte{}, 0, err
	}
	return proofHash, outcome, nil
}
