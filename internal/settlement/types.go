package settlement

import (
	"context"
	"math/big"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/chain"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		GetPayment(ctx context.Context, id string) (*model.Payment, error)
		ClaimPayment(ctx context.Context, id string) (bool, error)
		CompletePayment(ctx context.Context, id, txHash, onChainBountyID, amountWei string) (bool, error)
		ResetPayment(ctx context.Context, id, reason string) error
		FailPayment(ctx context.Context, id, reason string) error
		GetValidation(ctx context.Context, id string) (*model.Validation, error)
		GetFinding(ctx context.Context, id string) (*model.Finding, error)
		GetProtocol(ctx context.Context, id string) (*model.Protocol, error)
	}

	Chain interface {
		CalculateBountyAmount(ctx context.Context, protocolOnChainID string, severity model.Severity) (*big.Int, error)
		GetProtocolBalance(ctx context.Context, protocolOnChainID string) (*big.Int, error)
		ReleaseBounty(ctx context.Context, protocolOnChainID, recipient string, severity model.Severity) (*chain.ReleasedBounty, error)
	}

	Metrics interface {
		ObserveSettlement(err error, started time.Time)
	}
)
