package model

import "time"

// DiscrepancyCategory classifies a reconciliation mismatch.
type DiscrepancyCategory string

var (
	// DiscrepancyOrphanedOnChain marks an on-chain bounty release with no
	// local payment record.
	DiscrepancyOrphanedOnChain DiscrepancyCategory = "ORPHANED_ONCHAIN"
	// DiscrepancyMissingOnChain marks a local COMPLETED payment with no
	// corresponding on-chain event.
	DiscrepancyMissingOnChain DiscrepancyCategory = "MISSING_ONCHAIN"
	// DiscrepancyAmountMismatch marks an amount disagreement between the
	// local record and the on-chain event.
	DiscrepancyAmountMismatch DiscrepancyCategory = "AMOUNT_MISMATCH"
	// DiscrepancyUnconfirmedAfterGrace marks a confirmed validation whose
	// payment has not completed within the grace period.
	DiscrepancyUnconfirmedAfterGrace DiscrepancyCategory = "UNCONFIRMED_AFTER_GRACE"
)

// Discrepancy is a reconciliation finding persisted for operator review.
// The reconciler never auto-corrects financial state.
type Discrepancy struct {
	ID         string
	Category   DiscrepancyCategory
	PaymentID  string
	TxHash     string
	Detail     string
	DetectedAt time.Time
}
