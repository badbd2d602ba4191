package validation

import (
	"time"

	"github.com/ethereum/go-ethereum/crypto"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"github.com/jul1angr1s/bugbounty-backend/internal/proof"
)

// evidence is the decrypted, authenticated proof material the replay runs on.
type evidence struct {
	payload proof.Payload

	// plaintext is the canonical encoded payload; its keccak256 digest is
	// the proof hash recorded on-chain.
	plaintext []byte

	// researcher is the payout address recovered from the proof signature,
	// empty when the proof was unsigned.
	researcher string
}

// stepDecrypt recovers the proof payload. It returns a non-empty rejection
// reason when the evidence itself is unusable; rejection is a verdict, not an
// error, so these jobs never retry.
func (p *Pipeline) stepDecrypt(proofRec *model.Proof, finding *model.Finding) (evidence, string) {
	started := time.Now()

	ev, reject := p.recoverPayload(proofRec, finding)
	if reject != "" {
		p.metrics.ObserveStep("decrypt", nil, started)
		return ev, reject
	}

	if len(proofRec.Signature) > 0 {
		signer, err := crypto.SigToPub(proof.Hash(ev.plaintext), proofRec.Signature)
		if err != nil {
			p.metrics.ObserveStep("decrypt", err, started)
			return ev, "proof signature does not verify against payload"
		}
		ev.researcher = crypto.PubkeyToAddress(*signer).Hex()
	}

	p.metrics.ObserveStep("decrypt", nil, started)
	return ev, ""
}

func (p *Pipeline) recoverPayload(proofRec *model.Proof, finding *model.Finding) (evidence, string) {
	raw := proofRec.EncryptedPayload

	if len(raw) == 0 {
		if !p.allowPlaintext {
			return evidence{}, "proof carries no payload and plaintext fallback is disabled"
		}
		return p.reconstruct(proofRec, finding)
	}

	if p.validatorKey != nil {
		plaintext, err := proof.Decrypt(p.validatorKey, raw)
		if err == nil {
			return decodeEvidence(plaintext)
		}
		// Not sealed for our key. During rollout researchers may still
		// submit the payload in the clear.
		if !p.allowPlaintext {
			return evidence{}, "proof payload failed authentication"
		}
	}

	return decodeEvidence(raw)
}

// reconstruct rebuilds a payload from the proof's stored columns when no
// serialized payload was submitted.
func (p *Pipeline) reconstruct(proofRec *model.Proof, finding *model.Finding) (evidence, string) {
	if len(proofRec.Steps) == 0 {
		return evidence{}, "proof has neither payload nor reproduction steps"
	}
	payload := proof.Payload{
		FindingID:       proofRec.FindingID,
		VulnType:        finding.Type,
		Steps:           proofRec.Steps,
		ExpectedOutcome: proofRec.ExpectedOutcome,
	}
	plaintext, err := payload.Encode()
	if err != nil {
		return evidence{}, "proof payload could not be reconstructed: " + err.Error()
	}
	return evidence{payload: payload, plaintext: plaintext}, ""
}

func decodeEvidence(plaintext []byte) (evidence, string) {
	payload, err := proof.DecodePayload(plaintext)
	if err != nil {
		return evidence{}, "proof payload is not decodable: " + err.Error()
	}
	if len(payload.Steps) == 0 {
		return evidence{}, "proof payload contains no reproduction steps"
	}
	return evidence{payload: payload, plaintext: plaintext}, ""
}
