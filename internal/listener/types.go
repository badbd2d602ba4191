package listener

import (
	"context"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		GetCheckpoint(ctx context.Context, eventName string) (uint64, error)
		AdvanceCheckpoint(ctx context.Context, eventName string, block uint64) error
		InsertChainEvents(ctx context.Context, events []model.ChainEvent) error
	}

	Chain interface {
		BlockNumber(ctx context.Context) (uint64, error)
		FilterLogs(ctx context.Context, q ethereum.FilterQuery) ([]types.Log, error)
		BountyPoolAddress() common.Address
		ValidationRegistryAddress() common.Address
	}

	Metrics interface {
		ObservePoll(eventName string, err error, started time.Time)
		AddEvents(eventName string, count int)
	}
)
