// Package reconcile cross-checks local payment state against observed
// on-chain events on a fixed interval. It only ever reports: financial state
// is never auto-corrected, an operator resolves every discrepancy by hand.
package reconcile

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

const (
	defaultInterval = 5 * time.Minute
	defaultLookback = 24 * time.Hour
	defaultGrace    = time.Hour
)

type Reconciler struct {
	logger  *zap.Logger
	repo    Repository
	sink    Sink
	metrics Metrics

	interval time.Duration
	lookback time.Duration
	grace    time.Duration
	sleep    func(context.Context, time.Duration) error
	now      func() time.Time
}

// NewReconciler builds the reconciliation loop. grace is how long a confirmed
// validation may wait for its payment before being flagged.
func NewReconciler(repo Repository, sink Sink, metrics Metrics, interval, grace time.Duration, logger *zap.Logger) (*Reconciler, error) {
	if metrics == nil {
		return nil, errors.New("reconciler metrics is required")
	}
	if interval <= 0 {
		interval = defaultInterval
	}
	if grace <= 0 {
		grace = defaultGrace
	}
	return &Reconciler{
		logger:   logger.Named("reconcile"),
		repo:     repo,
		sink:     sink,
		metrics:  metrics,
		interval: interval,
		lookback: defaultLookback,
		grace:    grace,
		sleep:    clock.SleepWithContext,
		now:      time.Now,
	}, nil
}

// Run executes reconciliation cycles until the context is canceled.
func (r *Reconciler) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		started := time.Now()
		err := r.cycle(ctx)
		r.metrics.ObserveCycle(err, started)
		if err != nil {
			r.logger.Warn("reconciliation cycle failed", zap.Error(err))
		}

		if err := r.sleep(ctx, r.interval); err != nil {
			return err
		}
	}
}

// cycle runs the three-way diff between COMPLETED payments, BountyReleased
// events and CONFIRMED validations.
func (r *Reconciler) cycle(ctx context.Context) error {
	payments, err := r.repo.CompletedPaymentsSince(ctx, r.now().Add(-r.lookback))
	if err != nil {
		return fmt.Errorf("load completed payments: %w", err)
	}

	events, err := r.repo.ChainEventsByName(ctx, model.EventBountyReleased, 0)
	if err != nil {
		return fmt.Errorf("load bounty events: %w", err)
	}

	eventsByBounty := make(map[string]model.ChainEvent, len(events))
	for _, e := range events {
		eventsByBounty[e.OnChainID] = e
	}

	if err := r.checkPayments(ctx, payments, eventsByBounty); err != nil {
		return err
	}
	if err := r.checkOrphanedEvents(ctx, events); err != nil {
		return err
	}
	return r.checkStalledValidations(ctx)
}

// checkPayments flags COMPLETED payments the chain does not corroborate.
func (r *Reconciler) checkPayments(ctx context.Context, payments []model.Payment, eventsByBounty map[string]model.ChainEvent) error {
	for _, p := range payments {
		event, seen := eventsByBounty[p.OnChainBountyID]
		if !seen {
			if err := r.report(ctx, model.DiscrepancyMissingOnChain, p.ID, p.TxHash,
				fmt.Sprintf("payment %s is COMPLETED but no BountyReleased event was observed for bounty %s", p.ID, p.OnChainBountyID),
			); err != nil {
				return err
			}
			continue
		}
		if event.AmountWei != p.AmountWei {
			if err := r.report(ctx, model.DiscrepancyAmountMismatch, p.ID, event.TxHash,
				fmt.Sprintf("payment %s recorded %s wei but the chain released %s wei", p.ID, p.AmountWei, event.AmountWei),
			); err != nil {
				return err
			}
		}
	}
	return nil
}

// checkOrphanedEvents flags on-chain releases with no local payment record.
func (r *Reconciler) checkOrphanedEvents(ctx context.Context, events []model.ChainEvent) error {
	for _, e := range events {
		payment, err := r.repo.PaymentByBountyID(ctx, e.OnChainID)
		if err != nil {
			return fmt.Errorf("lookup payment for bounty %s: %w", e.OnChainID, err)
		}
		if payment != nil {
			continue
		}
		if err := r.report(ctx, model.DiscrepancyOrphanedOnChain, "", e.TxHash,
			fmt.Sprintf("bounty %s released on-chain to %s (%s wei) with no local payment", e.OnChainID, e.Recipient, e.AmountWei),
		); err != nil {
			return err
		}
	}
	return nil
}

// checkStalledValidations flags confirmed validations whose payment has not
// completed within the grace period.
func (r *Reconciler) checkStalledValidations(ctx context.Context) error {
	validations, err := r.repo.ConfirmedValidationsOlderThan(ctx, r.now().Add(-r.grace))
	if err != nil {
		return fmt.Errorf("load confirmed validations: %w", err)
	}

	for _, v := range validations {
		payment, err := r.repo.PaymentByValidation(ctx, v.ID)
		if err != nil {
			return fmt.Errorf("lookup payment for validation %s: %w", v.ID, err)
		}
		if payment != nil && payment.Status == model.PaymentCompleted {
			continue
		}

		paymentID := ""
		detail := fmt.Sprintf("validation %s confirmed at %s has no payment", v.ID, v.CreatedAt.Format(time.RFC3339))
		if payment != nil {
			paymentID = payment.ID
			detail = fmt.Sprintf("validation %s confirmed at %s has payment %s still %s",
				v.ID, v.CreatedAt.Format(time.RFC3339), payment.ID, payment.Status)
		}
		if err := r.report(ctx, model.DiscrepancyUnconfirmedAfterGrace, paymentID, v.TxHash, detail); err != nil {
			return err
		}
	}
	return nil
}

func (r *Reconciler) report(ctx context.Context, category model.DiscrepancyCategory, paymentID, txHash, detail string) error {
	r.logger.Warn("discrepancy detected",
		zap.String("category", string(category)),
		zap.String("payment_id", paymentID),
		zap.String("tx_hash", txHash),
		zap.String("detail", detail),
	)
	r.metrics.AddDiscrepancies(string(category), 1)
	return r.sink.Add(ctx, model.Discrepancy{
		ID:        uuid.NewString(),
		Category:  category,
		PaymentID: paymentID,
		TxHash:    txHash,
		Detail:    detail,
	})
}
