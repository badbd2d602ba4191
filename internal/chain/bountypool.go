package chain

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// Severity codes as the bounty pool contract encodes them; the contract's
// own calculateBountyAmount maps these to wei, never this client.
func severityCode(s model.Severity) uint8 {
	switch s {
	case model.SeverityCritical:
		return 0
	case model.SeverityHigh:
		return 1
	case model.SeverityMedium:
		return 2
	case model.SeverityLow:
		return 3
	default:
		return 4
	}
}

// ReleasedBounty is the outcome of a successful on-chain release.
type ReleasedBounty struct {
	TxHash    string
	BountyID  string
	AmountWei *big.Int
}

// DepositBounty funds a protocol's bounty pool with the given value.
func (c *Client) DepositBounty(ctx context.Context, protocolOnChainID string, amountWei *big.Int) (string, error) {
	started := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("deposit_bounty", err, started)
	}()

	opts, err := c.transactor(ctx)
	if err != nil {
		return "", err
	}
	opts.Value = amountWei

	tx, err := c.pool.Transact(opts, "depositBounty", common.HexToHash(protocolOnChainID))
	if err != nil {
		return "", fmt.Errorf("deposit bounty: %w", err)
	}
	if _, err = c.waitReceipt(ctx, tx); err != nil {
		return "", err
	}
	return tx.Hash().Hex(), nil
}

// CalculateBountyAmount asks the contract how much a finding of the given
// severity pays. Computed on-chain so the client can never drift from the
// pool's own logic.
func (c *Client) CalculateBountyAmount(ctx context.Context, protocolOnChainID string, severity model.Severity) (*big.Int, error) {
	started := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("calculate_bounty_amount", err, started)
	}()

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var out []any
	err = c.pool.Call(&bind.CallOpts{Context: ctx}, &out, "calculateBountyAmount",
		common.HexToHash(protocolOnChainID), severityCode(severity))
	if err != nil {
		return nil, fmt.Errorf("calculate bounty amount: %w", err)
	}
	amount, ok := out[0].(*big.Int)
	if !ok {
		err = fmt.Errorf("calculate bounty amount: unexpected type %T", out[0])
		return nil, err
	}
	return amount, nil
}

// GetProtocolBalance reads a protocol's current on-chain pool balance.
func (c *Client) GetProtocolBalance(ctx context.Context, protocolOnChainID string) (*big.Int, error) {
	started := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("get_protocol_balance", err, started)
	}()

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	var out []any
	err = c.pool.Call(&bind.CallOpts{Context: ctx}, &out, "getProtocolBalance", common.HexToHash(protocolOnChainID))
	if err != nil {
		return nil, fmt.Errorf("get protocol balance: %w", err)
	}
	balance, ok := out[0].(*big.Int)
	if !ok {
		err = fmt.Errorf("get protocol balance: unexpected type %T", out[0])
		return nil, err
	}
	return balance, nil
}

// ReleaseBounty submits the release transaction and extracts the on-chain
// bounty id and amount from the BountyReleased event.
func (c *Client) ReleaseBounty(ctx context.Context, protocolOnChainID, recipient string, severity model.Severity) (*ReleasedBounty, error) {
	started := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("release_bounty", err, started)
	}()

	opts, err := c.transactor(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := c.pool.Transact(opts, "releaseBounty",
		common.HexToHash(protocolOnChainID), common.HexToAddress(recipient), severityCode(severity))
	if err != nil {
		return nil, fmt.Errorf("release bounty: %w", err)
	}

	receipt, err := c.waitReceipt(ctx, tx)
	if err != nil {
		return nil, err
	}

	for _, lg := range receipt.Logs {
		if len(lg.Topics) >= 2 && lg.Topics[0] == poolABI.Events["BountyReleased"].ID {
			var ev struct {
				Recipient common.Address
				Amount    *big.Int
			}
			if err = c.pool.UnpackLog(&ev, "BountyReleased", *lg); err != nil {
				return nil, fmt.Errorf("unpack BountyReleased: %w", err)
			}
			return &ReleasedBounty{
				TxHash:    tx.Hash().Hex(),
				BountyID:  common.Hash(lg.Topics[1]).Hex(),
				AmountWei: ev.Amount,
			}, nil
		}
	}
	err = fmt.Errorf("release bounty: BountyReleased event not found in receipt %s", tx.Hash().Hex())
	return nil, err
}
