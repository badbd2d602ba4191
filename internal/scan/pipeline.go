// Package scan drives the researcher pipeline: clone, compile, deploy,
// analyze, generate proofs, submit for validation.
package scan

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/queue"
	"github.com/jul1angr1s/bugbounty-backend/internal/toolchain"
	"go.uber.org/zap"
)

// stepFailure is the typed result of a failed pipeline step. Steps never
// panic or throw; the orchestrator inspects the failure and aborts.
type stepFailure struct {
	step   model.ScanStep
	reason string
}

func failure(step model.ScanStep, format string, args ...any) *stepFailure {
	return &stepFailure{step: step, reason: fmt.Sprintf(format, args...)}
}

// Progress percentages persisted after each step so an interrupted scan can
// be inspected at its last checkpoint.
var stepProgress = map[model.ScanStep]int{
	model.StepClone:           10,
	model.StepCompile:         25,
	model.StepDeploy:          40,
	model.StepAnalyze:         60,
	model.StepProofGeneration: 75,
	model.StepSubmit:          90,
}

type Pipeline struct {
	logger    *zap.Logger
	repo      Repository
	stager    Stager
	toolchain Toolchain
	sandboxes SandboxRunner
	enqueuer  Enqueuer
	progress  Progress
	metrics   Metrics

	agentID         string
	confidenceFloor float64

	// Proof encryption. When validatorPub is nil proofs are submitted in
	// the clear; the validator side tolerates that during rollout.
	validatorPub  *ecdsa.PublicKey
	researcherKey *ecdsa.PrivateKey

	enhancer toolchain.Enhancer
}

type Option func(*Pipeline)

// WithProofEncryption enables ECIES encryption and signing of proof payloads.
func WithProofEncryption(validatorPub *ecdsa.PublicKey, researcherKey *ecdsa.PrivateKey) Option {
	return func(p *Pipeline) {
		p.validatorPub = validatorPub
		p.researcherKey = researcherKey
	}
}

// WithEnhancer installs an analysis enhancement step.
func WithEnhancer(e toolchain.Enhancer) Option {
	return func(p *Pipeline) {
		p.enhancer = e
	}
}

// NewPipeline builds the researcher pipeline with its dependencies.
func NewPipeline(
	repo Repository,
	stager Stager,
	tc Toolchain,
	sandboxes SandboxRunner,
	enqueuer Enqueuer,
	prog Progress,
	metrics Metrics,
	agentID string,
	confidenceFloor float64,
	logger *zap.Logger,
	opts ...Option,
) (*Pipeline, error) {
	if metrics == nil {
		return nil, errors.New("scan pipeline metrics is required")
	}

	p := &Pipeline{
		logger:          logger.Named("scan").With(zap.String("agent", agentID)),
		repo:            repo,
		stager:          stager,
		toolchain:       tc,
		sandboxes:       sandboxes,
		enqueuer:        enqueuer,
		progress:        prog,
		metrics:         metrics,
		agentID:         agentID,
		confidenceFloor: confidenceFloor,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p, nil
}

// Handle consumes one scan job. Step failures are terminal for the scan (a
// re-scan is a new Scan entity), so they complete the job instead of feeding
// the queue's retry schedule; only infrastructure errors before the pipeline
// starts are surfaced for retry.
func (p *Pipeline) Handle(ctx context.Context, job *model.Job) error {
	msg, err := queue.DecodeScanJob(job.Payload)
	if err != nil {
		// Malformed payloads never become valid; bury instead of retrying.
		p.logger.Error("rejecting scan job payload", zap.Error(err))
		return fmt.Errorf("%w: %v", queue.ErrUnprocessable, err)
	}

	protocol, err := p.repo.GetProtocol(ctx, msg.ProtocolID)
	if err != nil {
		return fmt.Errorf("load protocol %s: %w", msg.ProtocolID, err)
	}

	started := time.Now()
	fail := p.run(ctx, msg, protocol)
	if fail != nil {
		p.metrics.ObserveScan(errors.New(fail.reason), started)
		p.logger.Warn("scan failed",
			zap.String("scan_id", msg.ScanID),
			zap.String("step", string(fail.step)),
			zap.String("reason", fail.reason),
		)
		p.progress.Publish(msg.ScanID, string(fail.step), 100, fail.reason)
		if err := p.repo.FailScan(ctx, msg.ScanID, fail.step, fail.reason); err != nil {
			return fmt.Errorf("persist scan failure: %w", err)
		}
		return nil
	}

	p.metrics.ObserveScan(nil, started)
	if err := p.repo.CompleteScan(ctx, msg.ScanID); err != nil {
		return fmt.Errorf("persist scan completion: %w", err)
	}
	p.progress.Publish(msg.ScanID, "COMPLETED", 100, "scan completed")
	return nil
}

// run executes the step sequence. Cleanup of the clone directory and sandbox
// is guaranteed on every exit path.
func (p *Pipeline) run(ctx context.Context, msg model.ScanJob, protocol *model.Protocol) *stepFailure {
	defer func() {
		if err := p.stager.Cleanup(msg.ProtocolID, msg.ScanID); err != nil {
			p.logger.Warn("staging cleanup failed", zap.String("scan_id", msg.ScanID), zap.Error(err))
		}
	}()

	dir, fail := p.stepClone(ctx, msg, protocol)
	if fail != nil {
		return fail
	}

	artifact, fail := p.stepCompile(ctx, msg, protocol, dir)
	if fail != nil {
		return fail
	}

	inst, fail := p.stepDeploy(ctx, msg, artifact)
	if fail != nil {
		return fail
	}
	defer func() {
		// Best-effort: an orphaned sandbox process cannot affect protocol
		// state.
		if err := inst.Teardown(); err != nil {
			p.logger.Warn("sandbox teardown failed", zap.String("scan_id", msg.ScanID), zap.Error(err))
		}
	}()

	findings, fail := p.stepAnalyze(ctx, msg, protocol, dir)
	if fail != nil {
		return fail
	}

	proofs, fail := p.stepProofGeneration(ctx, msg, findings)
	if fail != nil {
		return fail
	}

	return p.stepSubmit(ctx, msg, proofs)
}

func (p *Pipeline) advance(ctx context.Context, scanID string, step model.ScanStep) {
	pct := stepProgress[step]
	if err := p.repo.UpdateScanStep(ctx, scanID, step, pct); err != nil {
		p.logger.Warn("persist scan step failed", zap.String("scan_id", scanID), zap.Error(err))
	}
	p.progress.Publish(scanID, string(step), pct, "")
}
