package validation

import (
	"context"
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
	"time"

	ethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/sandbox"
	"go.uber.org/zap"
)

// replayResult captures what actually happened when the proof's transaction
// sequence ran against a fresh deployment.
type replayResult struct {
	log           string
	balanceBefore *big.Int
	balanceAfter  *big.Int
	reverted      int
}

// stepExecute stages the protocol source at the scanned commit, deploys it to
// a fresh sandbox and replays the reproduction steps from the executor
// account. The executor is never the deployer, so privilege-dependent bugs
// cannot confirm by accident.
func (p *Pipeline) stepExecute(ctx context.Context, msg model.ValidationJob, protocol *model.Protocol, ev evidence) (*replayResult, error) {
	started := time.Now()
	var err error
	defer func() {
		p.metrics.ObserveStep("execute", err, started)
	}()

	// Namespaced by proof id so a concurrent re-scan of the same protocol
	// never shares a working directory with the validator.
	stageID := "validate-" + msg.ProofID
	dir, err := p.stager.Stage(ctx, protocol.RepoURL, protocol.Branch, msg.CommitHash, msg.ProtocolID, stageID)
	if err != nil {
		return nil, fmt.Errorf("stage source: %w", err)
	}
	defer func() {
		if cleanupErr := p.stager.Cleanup(msg.ProtocolID, stageID); cleanupErr != nil {
			p.logger.Warn("validation staging cleanup failed", zap.Error(cleanupErr))
		}
	}()

	artifact, err := p.toolchain.Compile(ctx, dir, protocol.ContractPath, protocol.ContractName)
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", protocol.ContractPath, err)
	}

	inst, err := p.sandboxes.Start(ctx)
	if err != nil {
		return nil, fmt.Errorf("start sandbox: %w", err)
	}
	defer func() {
		if tdErr := inst.Teardown(); tdErr != nil {
			p.logger.Warn("validation sandbox teardown failed", zap.Error(tdErr))
		}
	}()

	target, err := inst.Deploy(ctx, artifact.Bytecode)
	if err != nil {
		return nil, fmt.Errorf("deploy %s: %w", artifact.ContractName, err)
	}

	executorKey, err := sandbox.ExecutorKey()
	if err != nil {
		return nil, fmt.Errorf("parse executor key: %w", err)
	}
	executor := crypto.PubkeyToAddress(executorKey.PublicKey)

	before, err := inst.Balance(ctx, executor)
	if err != nil {
		return nil, fmt.Errorf("executor balance before replay: %w", err)
	}

	result := &replayResult{balanceBefore: before}
	var log strings.Builder
	fmt.Fprintf(&log, "target=%s executor=%s balance_before=%s\n", target.Hex(), executor.Hex(), before.String())

	for i, step := range ev.payload.Steps {
		calldata, decodeErr := hex.DecodeString(strings.TrimPrefix(step.CallData, "0x"))
		if decodeErr != nil {
			err = fmt.Errorf("step %d calldata: %w", i+1, decodeErr)
			return nil, err
		}
		value := big.NewInt(0)
		if step.ValueWei != "" {
			if _, ok := value.SetString(step.ValueWei, 10); !ok {
				err = fmt.Errorf("step %d value %q is not a decimal wei amount", i+1, step.ValueWei)
				return nil, err
			}
		}

		receipt, callErr := inst.Call(ctx, executorKey, target, calldata, value)
		if callErr != nil {
			// A failed transaction is evidence, not an infrastructure
			// problem; record it and keep replaying.
			result.reverted++
			fmt.Fprintf(&log, "step %d (%s): error: %v\n", i+1, step.Description, callErr)
			continue
		}
		if receipt.Status != ethtypes.ReceiptStatusSuccessful {
			result.reverted++
		}
		fmt.Fprintf(&log, "step %d (%s): tx=%s status=%d gas=%d\n",
			i+1, step.Description, receipt.TxHash.Hex(), receipt.Status, receipt.GasUsed)
	}

	after, err := inst.Balance(ctx, executor)
	if err != nil {
		return nil, fmt.Errorf("executor balance after replay: %w", err)
	}
	result.balanceAfter = after
	fmt.Fprintf(&log, "balance_after=%s\n", after.String())

	result.log = log.String()
	return result, nil
}
