package validation

import (
	"context"
	"crypto/ecdsa"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/toolchain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		GetProof(ctx context.Context, id string) (*model.Proof, error)
		GetFinding(ctx context.Context, id string) (*model.Finding, error)
		GetProtocol(ctx context.Context, id string) (*model.Protocol, error)
		InsertValidation(ctx context.Context, v model.Validation) error
		ValidationByProof(ctx context.Context, proofID string) (*model.Validation, error)
		UpdateProofStatus(ctx context.Context, id string, status model.ProofStatus) error
		UpdateFindingStatus(ctx context.Context, id string, status model.FindingStatus) error
		CreatePayment(ctx context.Context, p model.Payment) error
		PaymentByIdempotencyKey(ctx context.Context, key string) (*model.Payment, error)
	}

	Stager interface {
		Stage(ctx context.Context, repoURL, branch, commitHash, protocolID, scanID string) (string, error)
		Cleanup(protocolID, scanID string) error
	}

	Toolchain interface {
		Compile(ctx context.Context, sourceDir, contractPath, contractName string) (*toolchain.Artifact, error)
	}

	SandboxRunner interface {
		Start(ctx context.Context) (SandboxInstance, error)
	}

	// SandboxInstance is the validator's view of a sandbox: deploy as the
	// deployer account, replay as the executor, observe balances.
	SandboxInstance interface {
		Deploy(ctx context.Context, bytecodeHex string) (common.Address, error)
		Call(ctx context.Context, key *ecdsa.PrivateKey, to common.Address, calldata []byte, value *big.Int) (*types.Receipt, error)
		Balance(ctx context.Context, addr common.Address) (*big.Int, error)
		Teardown() error
	}

	Chain interface {
		RecordValidation(ctx context.Context, protocolOnChainID string, proofHash [32]byte, outcome model.ValidationOutcome) (string, error)
	}

	Enqueuer interface {
		Enqueue(ctx context.Context, queue string, payload any) (string, error)
	}

	Progress interface {
		Publish(jobID, step string, percent int, message string)
	}

	Metrics interface {
		ObserveStep(step string, err error, started time.Time)
		ObserveValidation(outcome string, err error, started time.Time)
	}
)
