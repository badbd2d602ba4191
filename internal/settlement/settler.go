// Package settlement releases bounties for confirmed validations. The
// database claim is the only concurrency gate: whichever worker flips the
// payment PENDING -> PROCESSING settles it, everyone else no-ops.
package settlement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/queue"
	"github.com/jul1angr1s/bugbounty-backend/internal/repository/postgres"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

type Settler struct {
	logger  *zap.Logger
	repo    Repository
	chain   Chain
	limiter ratelimit.Limiter
	metrics Metrics
}

// NewSettler builds the settlement handler. releasesPerMinute caps how fast
// bounty transactions leave the wallet regardless of queue depth.
func NewSettler(repo Repository, ch Chain, releasesPerMinute int, metrics Metrics, logger *zap.Logger) (*Settler, error) {
	if metrics == nil {
		return nil, errors.New("settler metrics is required")
	}
	if releasesPerMinute <= 0 {
		return nil, fmt.Errorf("releases per minute must be positive, got %d", releasesPerMinute)
	}
	return &Settler{
		logger:  logger.Named("settlement"),
		repo:    repo,
		chain:   ch,
		limiter: ratelimit.New(releasesPerMinute, ratelimit.Per(time.Minute)),
		metrics: metrics,
	}, nil
}

// Handle consumes one payment job.
func (s *Settler) Handle(ctx context.Context, job *model.Job) error {
	msg, err := queue.DecodePaymentJob(job.Payload)
	if err != nil {
		s.logger.Error("rejecting payment job payload", zap.Error(err))
		return fmt.Errorf("%w: %v", queue.ErrUnprocessable, err)
	}

	logger := s.logger.With(zap.String("payment_id", msg.PaymentID))

	payment, err := s.repo.GetPayment(ctx, msg.PaymentID)
	if errors.Is(err, postgres.ErrNotFound) {
		// The idempotency key deduplicated this payment at creation; the
		// surviving row has its own job.
		logger.Info("payment row does not exist, skipping")
		return queue.ErrSkip
	}
	if err != nil {
		return fmt.Errorf("load payment %s: %w", msg.PaymentID, err)
	}

	claimed, err := s.repo.ClaimPayment(ctx, payment.ID)
	if err != nil {
		return fmt.Errorf("claim payment %s: %w", payment.ID, err)
	}
	if !claimed {
		// Already PROCESSING elsewhere, COMPLETED, or FAILED. All are
		// benign: COMPLETED is terminal and must never settle twice.
		logger.Info("payment not claimable, skipping", zap.String("status", string(payment.Status)))
		return queue.ErrSkip
	}

	started := time.Now()
	err = s.settle(ctx, payment)
	s.metrics.ObserveSettlement(err, started)
	if err == nil {
		return nil
	}

	logger.Warn("settlement attempt failed", zap.Error(err), zap.Int("attempt", job.Attempts))

	if job.Attempts >= job.MaxAttempts {
		if failErr := s.repo.FailPayment(ctx, payment.ID, err.Error()); failErr != nil {
			return fmt.Errorf("mark payment failed after %v: %w", err, failErr)
		}
		return err
	}
	if resetErr := s.repo.ResetPayment(ctx, payment.ID, err.Error()); resetErr != nil {
		return fmt.Errorf("reset payment after %v: %w", err, resetErr)
	}
	return err
}

// settle performs the on-chain release for a payment this worker has claimed.
// Everything is re-fetched after the claim; the job payload is a hint, never
// the settlement input.
func (s *Settler) settle(ctx context.Context, payment *model.Payment) error {
	validation, err := s.repo.GetValidation(ctx, payment.ValidationID)
	if err != nil {
		return fmt.Errorf("load validation %s: %w", payment.ValidationID, err)
	}
	if validation.Outcome != model.OutcomeConfirmed {
		return fmt.Errorf("validation %s is %s, refusing to settle", validation.ID, validation.Outcome)
	}

	finding, err := s.repo.GetFinding(ctx, validation.FindingID)
	if err != nil {
		return fmt.Errorf("load finding %s: %w", validation.FindingID, err)
	}

	protocol, err := s.repo.GetProtocol(ctx, payment.ProtocolID)
	if err != nil {
		return fmt.Errorf("load protocol %s: %w", payment.ProtocolID, err)
	}
	if protocol.OnChainID == "" {
		return fmt.Errorf("protocol %s has no on-chain id", protocol.ID)
	}

	s.limiter.Take()

	// The pool contract owns the severity -> amount schedule; asking it
	// here keeps this worker incapable of drifting from on-chain truth.
	amount, err := s.chain.CalculateBountyAmount(ctx, protocol.OnChainID, finding.Severity)
	if err != nil {
		return fmt.Errorf("calculate bounty amount: %w", err)
	}

	balance, err := s.chain.GetProtocolBalance(ctx, protocol.OnChainID)
	if err != nil {
		return fmt.Errorf("check pool balance: %w", err)
	}
	if balance.Cmp(amount) < 0 {
		return fmt.Errorf("insufficient pool balance for protocol %s: have %s, need %s wei",
			protocol.ID, balance, amount)
	}

	released, err := s.chain.ReleaseBounty(ctx, protocol.OnChainID, payment.ResearcherAddress, finding.Severity)
	if err != nil {
		return fmt.Errorf("release bounty: %w", err)
	}

	completed, err := s.repo.CompletePayment(ctx, payment.ID, released.TxHash, released.BountyID, released.AmountWei.String())
	if err != nil {
		return fmt.Errorf("complete payment: %w", err)
	}
	if !completed {
		// The release transaction is on-chain but our claim vanished.
		// Reconciliation surfaces this; retrying would double-pay.
		s.logger.Error("payment claim lost after release",
			zap.String("payment_id", payment.ID),
			zap.String("tx_hash", released.TxHash),
		)
		return nil
	}

	s.logger.Info("bounty released",
		zap.String("payment_id", payment.ID),
		zap.String("tx_hash", released.TxHash),
		zap.String("bounty_id", released.BountyID),
		zap.String("amount_wei", released.AmountWei.String()),
		zap.String("recipient", payment.ResearcherAddress),
	)
	return nil
}
