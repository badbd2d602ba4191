package model

import "time"

// ValidationOutcome is the independent verdict on a proof.
type ValidationOutcome string

var (
	OutcomeConfirmed    ValidationOutcome = "CONFIRMED"
	OutcomeRejected     ValidationOutcome = "REJECTED"
	OutcomeInconclusive ValidationOutcome = "INCONCLUSIVE"
)

// Validation records the outcome of replaying a proof in a fresh sandbox.
// Append-only once written.
type Validation struct {
	ID           string
	ProofID      string
	FindingID    string
	ScanID       string
	ProtocolID   string
	Outcome      ValidationOutcome
	ExecutionLog string
	ProofHash    string
	TxHash       string
	CreatedAt    time.Time
}
