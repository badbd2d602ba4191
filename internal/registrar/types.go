package registrar

import (
	"context"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		ProtocolsByRegistrationState(ctx context.Context, state model.RegistrationState) ([]model.Protocol, error)
		ClaimProtocolRegistration(ctx context.Context, id string) (bool, error)
		UpdateProtocolRegistration(ctx context.Context, id string, state model.RegistrationState, onChainID, failureReason string) error
		CreateScan(ctx context.Context, s model.Scan) error
	}

	Chain interface {
		RegisterProtocol(ctx context.Context, name, repoURL string) (string, error)
	}

	Enqueuer interface {
		Enqueue(ctx context.Context, queue string, payload any) (string, error)
	}

	Metrics interface {
		ObserveRegistration(err error, started time.Time)
	}
)
