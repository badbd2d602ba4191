package scan

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/proof"
	"go.uber.org/zap"
)

func (p *Pipeline) stepProofGeneration(ctx context.Context, msg model.ScanJob, findings []model.Finding) ([]model.Proof, *stepFailure) {
	p.advance(ctx, msg.ScanID, model.StepProofGeneration)
	started := time.Now()

	proofs := make([]model.Proof, 0, len(findings))
	for _, f := range findings {
		pr, err := p.buildProof(msg.ScanID, f)
		if err != nil {
			p.metrics.ObserveStep(string(model.StepProofGeneration), err, started)
			return nil, failure(model.StepProofGeneration, "build proof for finding %s: %v", f.ID, err)
		}
		if err := p.repo.InsertProof(ctx, pr); err != nil {
			p.metrics.ObserveStep(string(model.StepProofGeneration), err, started)
			return nil, failure(model.StepProofGeneration, "persist proof for finding %s: %v", f.ID, err)
		}
		proofs = append(proofs, pr)
	}

	p.metrics.ObserveStep(string(model.StepProofGeneration), nil, started)
	p.logger.Info("proofs generated",
		zap.String("scan_id", msg.ScanID),
		zap.Int("count", len(proofs)),
	)
	return proofs, nil
}

// buildProof derives a deterministic reproduction sequence from the finding
// and seals it for the validator when encryption is configured.
func (p *Pipeline) buildProof(scanID string, f model.Finding) (model.Proof, error) {
	steps, expected := reproductionPlan(f)

	payload := proof.Payload{
		FindingID:       f.ID,
		VulnType:        f.Type,
		Steps:           steps,
		ExpectedOutcome: expected,
	}
	encoded, err := payload.Encode()
	if err != nil {
		return model.Proof{}, err
	}

	pr := model.Proof{
		ID:              uuid.NewString(),
		FindingID:       f.ID,
		ScanID:          scanID,
		Steps:           steps,
		ExpectedOutcome: expected,
		Status:          model.ProofPending,
	}

	if p.validatorPub != nil {
		sealed, err := proof.Encrypt(p.validatorPub, encoded)
		if err != nil {
			return model.Proof{}, err
		}
		pr.EncryptedPayload = sealed
	} else {
		pr.EncryptedPayload = encoded
	}

	if p.researcherKey != nil {
		sig, err := proof.Sign(p.researcherKey, encoded)
		if err != nil {
			return model.Proof{}, err
		}
		pr.Signature = sig
	}
	return pr, nil
}

// reproductionPlan maps a finding to the transaction sequence a validator
// replays against a fresh sandbox. The plan depends only on the finding, so
// two runs over the same finding produce the same evidence.
func reproductionPlan(f model.Finding) ([]model.ReproductionStep, string) {
	selector := f.FunctionSelector
	if selector == "" {
		selector = "0x00000000"
	}

	switch f.Type {
	case model.VulnReentrancy:
		return []model.ReproductionStep{
			{
				Description: "seed the contract with attacker-recoverable value",
				Selector:    selector,
				CallData:    selector,
				ValueWei:    "1000000000000000000",
			},
			{
				Description: fmt.Sprintf("re-enter %s before state settles at %s:%d", selector, f.FilePath, f.Line),
				Selector:    selector,
				CallData:    selector,
				ValueWei:    "0",
			},
		}, "attacker balance increases beyond gas cost"
	case model.VulnFundTheft:
		return []model.ReproductionStep{
			{
				Description: fmt.Sprintf("drain value through %s at %s:%d", selector, f.FilePath, f.Line),
				Selector:    selector,
				CallData:    selector,
				ValueWei:    "0",
			},
		}, "attacker balance increases beyond gas cost"
	case model.VulnOverflow:
		return []model.ReproductionStep{
			{
				Description: fmt.Sprintf("call %s with boundary operands at %s:%d", selector, f.FilePath, f.Line),
				Selector:    selector,
				CallData:    selector + "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff",
				ValueWei:    "0",
			},
		}, "arithmetic wraps without revert"
	case model.VulnAccessControl:
		return []model.ReproductionStep{
			{
				Description: fmt.Sprintf("invoke privileged %s from an unprivileged account at %s:%d", selector, f.FilePath, f.Line),
				Selector:    selector,
				CallData:    selector,
				ValueWei:    "0",
			},
		}, "call succeeds without authorization"
	default:
		return []model.ReproductionStep{
			{
				Description: fmt.Sprintf("exercise %s at %s:%d", selector, f.FilePath, f.Line),
				Selector:    selector,
				CallData:    selector,
				ValueWei:    "0",
			},
		}, "observable state deviates from contract intent"
	}
}
