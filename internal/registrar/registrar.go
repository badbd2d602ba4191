// Package registrar drives the protocol registration workflow: PENDING
// protocols are registered on the protocol registry contract, activated, and
// given their first scan.
package registrar

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jul1angr1s/bugbounty-backend/internal/clock"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"go.uber.org/zap"
)

const defaultInterval = 30 * time.Second

type Registrar struct {
	logger   *zap.Logger
	repo     Repository
	chain    Chain
	enqueuer Enqueuer
	metrics  Metrics

	agentID  string
	interval time.Duration
	sleep    func(context.Context, time.Duration) error
}

// NewRegistrar builds the registration loop. agentID is stamped on the
// initial scan of every activated protocol.
func NewRegistrar(repo Repository, ch Chain, enqueuer Enqueuer, metrics Metrics, agentID string, interval time.Duration, logger *zap.Logger) (*Registrar, error) {
	if metrics == nil {
		return nil, errors.New("registrar metrics is required")
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Registrar{
		logger:   logger.Named("registrar"),
		repo:     repo,
		chain:    ch,
		enqueuer: enqueuer,
		metrics:  metrics,
		agentID:  agentID,
		interval: interval,
		sleep:    clock.SleepWithContext,
	}, nil
}

// Run processes pending registrations until the context is canceled.
func (r *Registrar) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := r.run(ctx); err != nil {
			r.logger.Warn("registration sweep failed", zap.Error(err))
		}
		if err := r.sleep(ctx, r.interval); err != nil {
			return err
		}
	}
}

func (r *Registrar) run(ctx context.Context) error {
	pending, err := r.repo.ProtocolsByRegistrationState(ctx, model.RegistrationPending)
	if err != nil {
		return fmt.Errorf("list pending protocols: %w", err)
	}

	for _, protocol := range pending {
		claimed, err := r.repo.ClaimProtocolRegistration(ctx, protocol.ID)
		if err != nil {
			return fmt.Errorf("claim registration %s: %w", protocol.ID, err)
		}
		if !claimed {
			continue
		}
		r.register(ctx, protocol)
	}
	return nil
}

// register submits one claimed protocol to the registry contract. Failures
// are terminal for the registration; re-registering means resetting the
// protocol to PENDING by hand.
func (r *Registrar) register(ctx context.Context, protocol model.Protocol) {
	started := time.Now()
	logger := r.logger.With(zap.String("protocol_id", protocol.ID), zap.String("name", protocol.Name))

	onChainID, err := r.chain.RegisterProtocol(ctx, protocol.Name, protocol.RepoURL)
	r.metrics.ObserveRegistration(err, started)
	if err != nil {
		logger.Error("on-chain registration failed", zap.Error(err))
		if updErr := r.repo.UpdateProtocolRegistration(ctx, protocol.ID, model.RegistrationFailed, "", err.Error()); updErr != nil {
			logger.Error("persist registration failure", zap.Error(updErr))
		}
		return
	}

	if err := r.repo.UpdateProtocolRegistration(ctx, protocol.ID, model.RegistrationActive, onChainID, ""); err != nil {
		logger.Error("persist registration activation", zap.Error(err))
		return
	}
	logger.Info("protocol activated", zap.String("onchain_id", onChainID))

	if err := r.kickoffScan(ctx, protocol); err != nil {
		// The protocol is ACTIVE; the first scan can be queued manually.
		logger.Error("initial scan not queued", zap.Error(err))
	}
}

func (r *Registrar) kickoffScan(ctx context.Context, protocol model.Protocol) error {
	scan := model.Scan{
		ID:         uuid.NewString(),
		ProtocolID: protocol.ID,
		AgentID:    r.agentID,
		Branch:     protocol.Branch,
		State:      model.ScanQueued,
		Progress:   0,
	}
	if err := r.repo.CreateScan(ctx, scan); err != nil {
		return fmt.Errorf("create scan: %w", err)
	}

	job := model.ScanJob{
		Version:    model.ScanJobVersion,
		ScanID:     scan.ID,
		ProtocolID: protocol.ID,
		Branch:     protocol.Branch,
	}
	if _, err := r.enqueuer.Enqueue(ctx, model.QueueScan, job); err != nil {
		return fmt.Errorf("enqueue scan: %w", err)
	}

	r.logger.Info("initial scan queued",
		zap.String("protocol_id", protocol.ID),
		zap.String("scan_id", scan.ID),
	)
	return nil
}
