package model

import "time"

// ProofStatus tracks a proof from generation through validation.
type ProofStatus string

var (
	ProofPending   ProofStatus = "PENDING"
	ProofSubmitted ProofStatus = "SUBMITTED"
	ProofValidated ProofStatus = "VALIDATED"
	ProofRejected  ProofStatus = "REJECTED"
)

// ReproductionStep is one transaction of a deterministic exploit replay.
type ReproductionStep struct {
	Description string `json:"description"`
	Selector    string `json:"selector"`
	CallData    string `json:"call_data"`
	ValueWei    string `json:"value_wei"`
}

// Proof is the structured evidence tied 1:1 to a finding.
type Proof struct {
	ID               string
	FindingID        string
	ScanID           string
	Steps            []ReproductionStep
	ExpectedOutcome  string
	ActualOutcome    string
	EncryptedPayload []byte
	Signature        []byte
	Status           ProofStatus
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
