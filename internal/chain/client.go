// Package chain is the typed client over the three settlement contracts:
// protocol registry, validation registry and bounty pool.
package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

type (
	Metrics interface {
		Observe(operation string, err error, started time.Time)
	}
)

const (
	callTimeout    = 15 * time.Second
	receiptTimeout = 2 * time.Minute
)

// Config locates the settlement contracts and the settlement wallet.
type Config struct {
	RPCURL                 string
	SettlementKeyHex       string
	ProtocolRegistryAddr   string
	ValidationRegistryAddr string
	BountyPoolAddr         string
}

type Client struct {
	eth     *ethclient.Client
	metrics Metrics

	key     *ecdsa.PrivateKey
	chainID *big.Int

	registry   *bind.BoundContract
	validation *bind.BoundContract
	pool       *bind.BoundContract

	poolAddr common.Address
	valAddr  common.Address
}

// NewClient dials the settlement RPC endpoint and binds the three contracts.
func NewClient(ctx context.Context, cfg Config, metrics Metrics) (*Client, error) {
	if cfg.RPCURL == "" {
		return nil, errors.New("settlement rpc url is required")
	}
	if metrics == nil {
		return nil, errors.New("chain client metrics is required")
	}

	// The key is optional: read-only consumers (the event listener) never
	// transact.
	var key *ecdsa.PrivateKey
	if cfg.SettlementKeyHex != "" {
		var err error
		key, err = crypto.HexToECDSA(cfg.SettlementKeyHex)
		if err != nil {
			return nil, fmt.Errorf("parse settlement wallet key: %w", err)
		}
	}

	eth, err := ethclient.DialContext(ctx, cfg.RPCURL)
	if err != nil {
		return nil, fmt.Errorf("dial settlement rpc: %w", err)
	}

	chainID, err := eth.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch settlement chain id: %w", err)
	}

	registryAddr := common.HexToAddress(cfg.ProtocolRegistryAddr)
	valAddr := common.HexToAddress(cfg.ValidationRegistryAddr)
	poolAddr := common.HexToAddress(cfg.BountyPoolAddr)

	return &Client{
		eth:        eth,
		metrics:    metrics,
		key:        key,
		chainID:    chainID,
		registry:   bind.NewBoundContract(registryAddr, registryABI, eth, eth, eth),
		validation: bind.NewBoundContract(valAddr, validationABI, eth, eth, eth),
		pool:       bind.NewBoundContract(poolAddr, poolABI, eth, eth, eth),
		poolAddr:   poolAddr,
		valAddr:    valAddr,
	}, nil
}

// Close releases the underlying RPC connection.
func (c *Client) Close() {
	c.eth.Close()
}

// BountyPoolAddress returns the bounty pool contract address, used by the
// event listener's log filter.
func (c *Client) BountyPoolAddress() common.Address {
	return c.poolAddr
}

// ValidationRegistryAddress returns the validation registry contract address.
func (c *Client) ValidationRegistryAddress() common.Address {
	return c.valAddr
}

// BlockNumber returns the current head block of the settlement chain.
func (c *Client) BlockNumber(ctx context.Context) (uint64, error) {
	started := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("block_number", err, started)
	}()

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	n, err := c.eth.BlockNumber(ctx)
	if err != nil {
		return 0, fmt.Errorf("fetch block number: %w", err)
	}
	return n, nil
}

// FilterLogs proxies an event-log filter query to the settlement RPC.
func (c *Client) FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error) {
	started := time.Now()
	var err error
	defer func() {
		c.metrics.Observe("filter_logs", err, started)
	}()

	logs, err := c.eth.FilterLogs(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("filter logs: %w", err)
	}
	return logs, nil
}

func (c *Client) transactor(ctx context.Context) (*bind.TransactOpts, error) {
	if c.key == nil {
		return nil, errors.New("chain client has no settlement wallet key")
	}
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, c.chainID)
	if err != nil {
		return nil, fmt.Errorf("build transactor: %w", err)
	}
	opts.Context = ctx
	return opts, nil
}

func (c *Client) waitReceipt(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	ctx, cancel := context.WithTimeout(ctx, receiptTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(ctx, c.eth, tx)
	if err != nil {
		return nil, fmt.Errorf("await receipt: %w", err)
	}
	if receipt.Status != types.ReceiptStatusSuccessful {
		return nil, fmt.Errorf("transaction %s reverted", tx.Hash().Hex())
	}
	return receipt, nil
}
