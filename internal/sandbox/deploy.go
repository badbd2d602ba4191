package sandbox

import (
	"context"
	"crypto/ecdsa"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// Anvil's deterministic dev accounts. The deployer and executor keys are kept
// distinct so privilege-dependent bugs surface during replay.
const (
	DeployerKeyHex = "ac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80"
	ExecutorKeyHex = "59c6995e998f97a5a0044966f0945389dc9e86dae88c7a8412f4603b6b78690d"
)

const (
	deployGasLimit = 5_000_000
	callGasLimit   = 1_000_000
	txWaitTimeout  = 30 * time.Second
)

// DeployerKey parses the sandbox deployer account key.
func DeployerKey() (*ecdsa.PrivateKey, error) {
	return crypto.HexToECDSA(DeployerKeyHex)
}

// ExecutorKey parses the sandbox executor (attacker) account key.
func ExecutorKey() (*ecdsa.PrivateKey, error) {
	return crypto.HexToECDSA(ExecutorKeyHex)
}

// Deploy submits the compiled bytecode as a contract-creation transaction
// from the deployer account and returns the deployed address.
func (i *Instance) Deploy(ctx context.Context, bytecodeHex string) (common.Address, error) {
	key, err := DeployerKey()
	if err != nil {
		return common.Address{}, fmt.Errorf("parse deployer key: %w", err)
	}

	data, err := hex.DecodeString(strings.TrimPrefix(bytecodeHex, "0x"))
	if err != nil {
		return common.Address{}, fmt.Errorf("decode bytecode: %w", err)
	}

	tx, err := i.sendTx(ctx, key, nil, big.NewInt(0), data, deployGasLimit)
	if err != nil {
		return common.Address{}, fmt.Errorf("send deploy tx: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, txWaitTimeout)
	defer cancel()

	addr, err := bind.WaitDeployed(waitCtx, i.Client, tx)
	if err != nil {
		return common.Address{}, fmt.Errorf("await deployment: %w", err)
	}

	i.logger.Info("contract deployed", zap.String("address", addr.Hex()))
	return addr, nil
}

// Call sends a transaction from the given key to the contract and waits for
// its receipt.
func (i *Instance) Call(ctx context.Context, key *ecdsa.PrivateKey, to common.Address, calldata []byte, value *big.Int) (*types.Receipt, error) {
	tx, err := i.sendTx(ctx, key, &to, value, calldata, callGasLimit)
	if err != nil {
		return nil, fmt.Errorf("send call tx: %w", err)
	}

	waitCtx, cancel := context.WithTimeout(ctx, txWaitTimeout)
	defer cancel()

	receipt, err := bind.WaitMined(waitCtx, i.Client, tx)
	if err != nil {
		return nil, fmt.Errorf("await call receipt: %w", err)
	}
	return receipt, nil
}

// Balance returns the current balance of an account in the sandbox.
func (i *Instance) Balance(ctx context.Context, addr common.Address) (*big.Int, error) {
	balance, err := i.Client.BalanceAt(ctx, addr, nil)
	if err != nil {
		return nil, fmt.Errorf("query sandbox balance: %w", err)
	}
	return balance, nil
}

func (i *Instance) sendTx(ctx context.Context, key *ecdsa.PrivateKey, to *common.Address, value *big.Int, data []byte, gasLimit uint64) (*types.Transaction, error) {
	from := crypto.PubkeyToAddress(key.PublicKey)

	nonce, err := i.Client.PendingNonceAt(ctx, from)
	if err != nil {
		return nil, fmt.Errorf("fetch nonce: %w", err)
	}
	gasPrice, err := i.Client.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("suggest gas price: %w", err)
	}
	chainID, err := i.Client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch chain id: %w", err)
	}

	var tx *types.Transaction
	if to == nil {
		tx = types.NewContractCreation(nonce, value, gasLimit, gasPrice, data)
	} else {
		tx = types.NewTransaction(nonce, *to, value, gasLimit, gasPrice, data)
	}

	signed, err := types.SignTx(tx, types.LatestSignerForChainID(chainID), key)
	if err != nil {
		return nil, fmt.Errorf("sign tx: %w", err)
	}
	if err := i.Client.SendTransaction(ctx, signed); err != nil {
		return nil, fmt.Errorf("send tx: %w", err)
	}
	return signed, nil
}
