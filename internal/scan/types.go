package scan

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/toolchain"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		GetProtocol(ctx context.Context, id string) (*model.Protocol, error)
		UpdateScanStep(ctx context.Context, id string, step model.ScanStep, progress int) error
		CompleteScan(ctx context.Context, id string) error
		FailScan(ctx context.Context, id string, step model.ScanStep, reason string) error
		InsertFindings(ctx context.Context, findings []model.Finding) error
		InsertProof(ctx context.Context, p model.Proof) error
		UpdateProofStatus(ctx context.Context, id string, status model.ProofStatus) error
	}

	Stager interface {
		Stage(ctx context.Context, repoURL, branch, commitHash, protocolID, scanID string) (string, error)
		Cleanup(protocolID, scanID string) error
	}

	Toolchain interface {
		Compile(ctx context.Context, sourceDir, contractPath, contractName string) (*toolchain.Artifact, error)
		Analyze(ctx context.Context, sourceDir, contractPath, scanID string, confidenceFloor float64) ([]model.Finding, error)
	}

	SandboxRunner interface {
		Start(ctx context.Context) (SandboxInstance, error)
	}

	SandboxInstance interface {
		Deploy(ctx context.Context, bytecodeHex string) (common.Address, error)
		Teardown() error
	}

	Enqueuer interface {
		Enqueue(ctx context.Context, queue string, payload any) (string, error)
	}

	Progress interface {
		Publish(jobID, step string, percent int, message string)
	}

	Metrics interface {
		ObserveStep(step string, err error, started time.Time)
		ObserveScan(err error, started time.Time)
	}
)
