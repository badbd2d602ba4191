package validation

import (
	"fmt"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// verdict applies the type-aware confirmation policy. Balance movement on the
// executor account is the only oracle trusted for automatic confirmation:
// vulnerability classes it cannot witness stay INCONCLUSIVE for manual review
// rather than guessing.
func verdict(vulnType model.VulnerabilityType, replay *replayResult) (model.ValidationOutcome, string) {
	switch vulnType {
	case model.VulnReentrancy, model.VulnFundTheft:
		gain := replay.balanceAfter.Cmp(replay.balanceBefore)
		if gain > 0 {
			return model.OutcomeConfirmed, fmt.Sprintf(
				"executor balance increased from %s to %s wei despite paying gas",
				replay.balanceBefore, replay.balanceAfter)
		}
		return model.OutcomeRejected, fmt.Sprintf(
			"executor balance did not increase (%s -> %s wei)",
			replay.balanceBefore, replay.balanceAfter)
	case model.VulnOverflow, model.VulnAccessControl, model.VulnUncheckedCall:
		return model.OutcomeInconclusive, fmt.Sprintf(
			"%s has no balance oracle; %d of replayed steps reverted, manual review required",
			vulnType, replay.reverted)
	default:
		return model.OutcomeInconclusive, "unrecognized vulnerability type, manual review required"
	}
}
