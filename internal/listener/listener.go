// Package listener tails the settlement contracts for events and persists
// them as the on-chain side of reconciliation. It never writes payment state.
package listener

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/jul1angr1s/bugbounty-backend/internal/chain"
	"github.com/jul1angr1s/bugbounty-backend/internal/clock"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"go.uber.org/zap"
)

const (
	defaultPollInterval = 15 * time.Second
	defaultInsertBatch  = 100

	// maxBlockRange bounds one FilterLogs call so a long-idle listener
	// catches up in chunks instead of one unbounded query.
	maxBlockRange = 5000
)

// source is one contract event the listener tracks, each with its own
// durable checkpoint.
type source struct {
	eventName string
	address   common.Address
	topic     common.Hash
}

type Listener struct {
	logger  *zap.Logger
	repo    Repository
	chain   Chain
	metrics Metrics

	sources      []source
	pollInterval time.Duration
	insertBatch  int
	sleep        func(context.Context, time.Duration) error
}

// NewListener builds a listener over the validation registry and bounty pool
// contracts.
func NewListener(repo Repository, ch Chain, metrics Metrics, pollInterval time.Duration, logger *zap.Logger) (*Listener, error) {
	if metrics == nil {
		return nil, errors.New("listener metrics is required")
	}
	if pollInterval <= 0 {
		pollInterval = defaultPollInterval
	}
	return &Listener{
		logger:  logger.Named("listener"),
		repo:    repo,
		chain:   ch,
		metrics: metrics,
		sources: []source{
			{
				eventName: model.EventValidationRecorded,
				address:   ch.ValidationRegistryAddress(),
				topic:     chain.ValidationRecordedTopic(),
			},
			{
				eventName: model.EventBountyReleased,
				address:   ch.BountyPoolAddress(),
				topic:     chain.BountyReleasedTopic(),
			},
		},
		pollInterval: pollInterval,
		insertBatch:  defaultInsertBatch,
		sleep:        clock.SleepWithContext,
	}, nil
}

// Run polls until the context is canceled.
func (l *Listener) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		for _, src := range l.sources {
			if err := l.poll(ctx, src); err != nil {
				l.logger.Warn("poll failed",
					zap.String("event", src.eventName),
					zap.Error(err),
				)
			}
		}
		if err := l.sleep(ctx, l.pollInterval); err != nil {
			return err
		}
	}
}

// poll advances one event source by at most maxBlockRange blocks. The
// checkpoint moves only after every event in the range is persisted, so a
// crash replays the range; the (tx hash, log index) key makes that a no-op.
func (l *Listener) poll(ctx context.Context, src source) error {
	started := time.Now()
	var err error
	defer func() {
		l.metrics.ObservePoll(src.eventName, err, started)
	}()

	checkpoint, err := l.repo.GetCheckpoint(ctx, src.eventName)
	if err != nil {
		return err
	}

	head, err := l.chain.BlockNumber(ctx)
	if err != nil {
		return err
	}
	if head <= checkpoint {
		return nil
	}

	from := checkpoint + 1
	to := head
	if to-from >= maxBlockRange {
		to = from + maxBlockRange - 1
	}

	logs, err := l.chain.FilterLogs(ctx, ethereum.FilterQuery{
		FromBlock: new(big.Int).SetUint64(from),
		ToBlock:   new(big.Int).SetUint64(to),
		Addresses: []common.Address{src.address},
		Topics:    [][]common.Hash{{src.topic}},
	})
	if err != nil {
		return err
	}

	events := make([]model.ChainEvent, 0, len(logs))
	for _, lg := range logs {
		event, ok, decodeErr := chain.DecodeLog(lg)
		if decodeErr != nil {
			err = fmt.Errorf("decode log: %w", decodeErr)
			return err
		}
		if ok {
			events = append(events, event)
		}
	}

	for start := 0; start < len(events); start += l.insertBatch {
		end := start + l.insertBatch
		if end > len(events) {
			end = len(events)
		}
		if err = l.repo.InsertChainEvents(ctx, events[start:end]); err != nil {
			return err
		}
	}
	l.metrics.AddEvents(src.eventName, len(events))

	if err = l.repo.AdvanceCheckpoint(ctx, src.eventName, to); err != nil {
		return err
	}

	if len(events) > 0 {
		l.logger.Info("chain events persisted",
			zap.String("event", src.eventName),
			zap.Int("count", len(events)),
			zap.Uint64("from", from),
			zap.Uint64("to", to),
		)
	}
	return nil
}
