package validation

import (
	"context"
	"fmt"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/proof"
	"go.uber.org/zap"
)

// record persists the verdict and its downstream effects. CONFIRMED verdicts
// are written to the on-chain registry before the payment exists, so a bounty
// can never reference an unrecorded validation.
func (p *Pipeline) record(ctx context.Context, msg model.ValidationJob, ev evidence, protocol *model.Protocol, outcome model.ValidationOutcome, execLog string) error {
	started := time.Now()
	var err error
	defer func() {
		p.metrics.ObserveStep("record", err, started)
	}()

	v := model.Validation{
		ID:           uuid.NewString(),
		ProofID:      msg.ProofID,
		FindingID:    msg.FindingID,
		ScanID:       msg.ScanID,
		ProtocolID:   msg.ProtocolID,
		Outcome:      outcome,
		ExecutionLog: execLog,
	}

	var digest [32]byte
	if len(ev.plaintext) > 0 {
		copy(digest[:], proof.Hash(ev.plaintext))
		v.ProofHash = common.Hash(digest).Hex()
	}

	if outcome == model.OutcomeConfirmed {
		if protocol.OnChainID == "" {
			err = fmt.Errorf("protocol %s has no on-chain id, cannot record validation", msg.ProtocolID)
			return err
		}
		var txHash string
		txHash, err = p.chain.RecordValidation(ctx, protocol.OnChainID, digest, outcome)
		if err != nil {
			return fmt.Errorf("record validation on-chain: %w", err)
		}
		v.TxHash = txHash
	}

	if err = p.repo.InsertValidation(ctx, v); err != nil {
		return err
	}

	switch outcome {
	case model.OutcomeConfirmed:
		if err = p.repo.UpdateProofStatus(ctx, msg.ProofID, model.ProofValidated); err != nil {
			return err
		}
		if err = p.repo.UpdateFindingStatus(ctx, msg.FindingID, model.FindingValidated); err != nil {
			return err
		}
		return p.createPayment(ctx, msg, v, ev)
	case model.OutcomeRejected:
		if err = p.repo.UpdateProofStatus(ctx, msg.ProofID, model.ProofRejected); err != nil {
			return err
		}
		if err = p.repo.UpdateFindingStatus(ctx, msg.FindingID, model.FindingRejected); err != nil {
			return err
		}
	}
	// INCONCLUSIVE leaves proof and finding untouched for manual review.
	return nil
}

// createPayment opens a PENDING payment for a confirmed validation and queues
// its settlement. The idempotency key is the proof id: even if this job is
// redelivered and confirms twice, only one payment row can exist. The insert
// silently loses against an earlier row, so the settlement job is always built
// from the row the database kept, not the one this attempt proposed.
func (p *Pipeline) createPayment(ctx context.Context, msg model.ValidationJob, v model.Validation, ev evidence) error {
	recipient := ev.researcher
	if recipient == "" {
		recipient = p.payoutAddress
	}

	payment := model.Payment{
		ID:                uuid.NewString(),
		ValidationID:      v.ID,
		ProtocolID:        msg.ProtocolID,
		ResearcherAddress: recipient,
		AmountWei:         "0",
		IdempotencyKey:    msg.ProofID,
		Status:            model.PaymentPending,
	}
	if err := p.repo.CreatePayment(ctx, payment); err != nil {
		return err
	}

	stored, err := p.repo.PaymentByIdempotencyKey(ctx, msg.ProofID)
	if err != nil {
		return fmt.Errorf("load payment for proof %s: %w", msg.ProofID, err)
	}
	if stored == nil {
		return fmt.Errorf("payment for proof %s missing after insert", msg.ProofID)
	}
	if stored.Status == model.PaymentCompleted {
		p.logger.Info("payment already settled", zap.String("payment_id", stored.ID))
		return nil
	}

	job := model.PaymentJob{
		Version:      model.PaymentJobVersion,
		PaymentID:    stored.ID,
		ValidationID: stored.ValidationID,
		ProtocolID:   msg.ProtocolID,
	}
	if _, err := p.enqueuer.Enqueue(ctx, model.QueuePayment, job); err != nil {
		return fmt.Errorf("enqueue payment: %w", err)
	}

	p.logger.Info("payment queued",
		zap.String("payment_id", stored.ID),
		zap.String("validation_id", stored.ValidationID),
		zap.String("recipient", stored.ResearcherAddress),
	)
	return nil
}
