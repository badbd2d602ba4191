// Package proof builds, encrypts and verifies exploit proofs.
package proof

import (
	"encoding/json"
	"fmt"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// Payload is the evidence the researcher hands to the validator: the
// reproduction steps plus the outcome the exploit is expected to produce.
type Payload struct {
	FindingID       string                   `json:"finding_id"`
	VulnType        model.VulnerabilityType  `json:"vuln_type"`
	Steps           []model.ReproductionStep `json:"steps"`
	ExpectedOutcome string                   `json:"expected_outcome"`
	ActualOutcome   string                   `json:"actual_outcome"`
}

// Encode serializes the payload for encryption and hashing.
func (p Payload) Encode() ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("encode proof payload: %w", err)
	}
	return data, nil
}

// DecodePayload parses a serialized proof payload.
func DecodePayload(data []byte) (Payload, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return Payload{}, fmt.Errorf("decode proof payload: %w", err)
	}
	return p, nil
}
