package model

import "time"

// PaymentStatus tracks a bounty disbursement. PROCESSING is held by at most
// one worker at a time; COMPLETED is terminal and reached at most once.
type PaymentStatus string

var (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentProcessing PaymentStatus = "PROCESSING"
	PaymentCompleted  PaymentStatus = "COMPLETED"
	PaymentFailed     PaymentStatus = "FAILED"
)

// Payment is a bounty disbursement request tied to a confirmed validation.
type Payment struct {
	ID                string
	ValidationID      string
	ProtocolID        string
	ResearcherAddress string
	AmountWei         string
	IdempotencyKey    string
	Status            PaymentStatus
	RetryCount        int
	TxHash            string
	OnChainBountyID   string
	Reconciled        bool
	FailureReason     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
