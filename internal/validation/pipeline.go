// Package validation replays researcher proofs in a fresh sandbox and issues
// an independent verdict: decrypt, sandbox, execute, verdict.
package validation

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/queue"
	"go.uber.org/zap"
)

type Pipeline struct {
	logger    *zap.Logger
	repo      Repository
	stager    Stager
	toolchain Toolchain
	sandboxes SandboxRunner
	chain     Chain
	enqueuer  Enqueuer
	progress  Progress
	metrics   Metrics

	// Decryption key for sealed proofs. When nil, payloads are expected in
	// the clear.
	validatorKey *ecdsa.PrivateKey

	// allowPlaintext accepts proofs without a sealed payload and falls back
	// to the stored reproduction steps. Transitional; on by default while
	// researcher agents roll out encryption.
	allowPlaintext bool

	// payoutAddress receives bounties for proofs without a recoverable
	// researcher signature.
	payoutAddress string
}

type Option func(*Pipeline)

// WithDecryptionKey installs the validator's ECIES key for sealed proofs.
func WithDecryptionKey(key *ecdsa.PrivateKey) Option {
	return func(p *Pipeline) {
		p.validatorKey = key
	}
}

// WithPlaintextFallback controls whether proofs lacking a sealed payload are
// still replayed from their stored steps.
func WithPlaintextFallback(allow bool) Option {
	return func(p *Pipeline) {
		p.allowPlaintext = allow
	}
}

// NewPipeline builds the validator pipeline with its dependencies.
func NewPipeline(
	repo Repository,
	stager Stager,
	tc Toolchain,
	sandboxes SandboxRunner,
	chain Chain,
	enqueuer Enqueuer,
	prog Progress,
	metrics Metrics,
	payoutAddress string,
	logger *zap.Logger,
	opts ...Option,
) (*Pipeline, error) {
	if metrics == nil {
		return nil, errors.New("validation pipeline metrics is required")
	}

	p := &Pipeline{
		logger:         logger.Named("validation"),
		repo:           repo,
		stager:         stager,
		toolchain:      tc,
		sandboxes:      sandboxes,
		chain:          chain,
		enqueuer:       enqueuer,
		progress:       prog,
		metrics:        metrics,
		allowPlaintext: true,
		payoutAddress:  payoutAddress,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Handle consumes one validation job. Environmental failures (staging,
// compilation, sandbox) are surfaced for queue retry; evidence problems
// produce a REJECTED verdict and never retry.
func (p *Pipeline) Handle(ctx context.Context, job *model.Job) error {
	msg, err := queue.DecodeValidationJob(job.Payload)
	if err != nil {
		p.logger.Error("rejecting validation job payload", zap.Error(err))
		return fmt.Errorf("%w: %v", queue.ErrUnprocessable, err)
	}

	logger := p.logger.With(zap.String("proof_id", msg.ProofID))

	proofRec, err := p.repo.GetProof(ctx, msg.ProofID)
	if err != nil {
		return fmt.Errorf("load proof %s: %w", msg.ProofID, err)
	}
	finding, err := p.repo.GetFinding(ctx, msg.FindingID)
	if err != nil {
		return fmt.Errorf("load finding %s: %w", msg.FindingID, err)
	}
	protocol, err := p.repo.GetProtocol(ctx, msg.ProtocolID)
	if err != nil {
		return fmt.Errorf("load protocol %s: %w", msg.ProtocolID, err)
	}

	// A redelivered job may have died between recording its verdict and
	// queueing the payment. One verdict per proof: never replay or touch the
	// registry again, just finish the payment hand-off.
	prior, err := p.repo.ValidationByProof(ctx, msg.ProofID)
	if err != nil {
		return fmt.Errorf("check prior validation for proof %s: %w", msg.ProofID, err)
	}
	if prior != nil {
		logger.Info("proof already validated",
			zap.String("validation_id", prior.ID),
			zap.String("outcome", string(prior.Outcome)),
		)
		if prior.Outcome != model.OutcomeConfirmed {
			return nil
		}
		ev, _ := p.stepDecrypt(proofRec, finding)
		return p.createPayment(ctx, msg, *prior, ev)
	}

	started := time.Now()
	p.progress.Publish(msg.ProofID, "DECRYPT", 20, "")

	ev, reject := p.stepDecrypt(proofRec, finding)
	if reject != "" {
		logger.Warn("proof rejected before replay", zap.String("reason", reject))
		outcome := model.OutcomeRejected
		p.metrics.ObserveValidation(string(outcome), nil, started)
		p.progress.Publish(msg.ProofID, string(outcome), 100, reject)
		return p.record(ctx, msg, ev, protocol, outcome, reject)
	}

	p.progress.Publish(msg.ProofID, "EXECUTE", 60, "")
	replay, err := p.stepExecute(ctx, msg, protocol, ev)
	if err != nil {
		p.metrics.ObserveValidation("", err, started)
		return fmt.Errorf("replay proof %s: %w", msg.ProofID, err)
	}

	outcome, why := verdict(ev.payload.VulnType, replay)
	logger.Info("verdict reached",
		zap.String("outcome", string(outcome)),
		zap.String("reason", why),
	)

	execLog := replay.log + "\nverdict: " + why
	p.metrics.ObserveValidation(string(outcome), nil, started)
	p.progress.Publish(msg.ProofID, string(outcome), 100, why)
	return p.record(ctx, msg, ev, protocol, outcome, execLog)
}
