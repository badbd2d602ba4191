package scan

import (
	"context"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

func (p *Pipeline) stepSubmit(ctx context.Context, msg model.ScanJob, proofs []model.Proof) *stepFailure {
	p.advance(ctx, msg.ScanID, model.StepSubmit)
	started := time.Now()

	for _, pr := range proofs {
		job := model.ValidationJob{
			Version:    model.ValidationJobVersion,
			ProofID:    pr.ID,
			FindingID:  pr.FindingID,
			ScanID:     msg.ScanID,
			ProtocolID: msg.ProtocolID,
			CommitHash: msg.CommitHash,
		}
		if _, err := p.enqueuer.Enqueue(ctx, model.QueueValidation, job); err != nil {
			p.metrics.ObserveStep(string(model.StepSubmit), err, started)
			return failure(model.StepSubmit, "enqueue validation for proof %s: %v", pr.ID, err)
		}
		if err := p.repo.UpdateProofStatus(ctx, pr.ID, model.ProofSubmitted); err != nil {
			p.metrics.ObserveStep(string(model.StepSubmit), err, started)
			return failure(model.StepSubmit, "mark proof %s submitted: %v", pr.ID, err)
		}
	}

	p.metrics.ObserveStep(string(model.StepSubmit), nil, started)
	return nil
}
