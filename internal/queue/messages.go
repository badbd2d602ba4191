package queue

import (
	"encoding/json"
	"fmt"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

// Job payloads form a closed set of tagged variants, one per queue, each with
// a schema version. Unknown or stale versions are rejected, never coerced.

func DecodeScanJob(payload []byte) (model.ScanJob, error) {
	var j model.ScanJob
	if err := json.Unmarshal(payload, &j); err != nil {
		return model.ScanJob{}, fmt.Errorf("decode scan job: %w", err)
	}
	if j.Version != model.ScanJobVersion {
		return model.ScanJob{}, fmt.Errorf("scan job schema version %d not supported", j.Version)
	}
	return j, nil
}

func DecodeValidationJob(payload []byte) (model.ValidationJob, error) {
	var j model.ValidationJob
	if err := json.Unmarshal(payload, &j); err != nil {
		return model.ValidationJob{}, fmt.Errorf("decode validation job: %w", err)
	}
	if j.Version != model.ValidationJobVersion {
		return model.ValidationJob{}, fmt.Errorf("validation job schema version %d not supported", j.Version)
	}
	return j, nil
}

func DecodePaymentJob(payload []byte) (model.PaymentJob, error) {
	var j model.PaymentJob
	if err := json.Unmarshal(payload, &j); err != nil {
		return model.PaymentJob{}, fmt.Errorf("decode payment job: %w", err)
	}
	if j.Version != model.PaymentJobVersion {
		return model.PaymentJob{}, fmt.Errorf("payment job schema version %d not supported", j.Version)
	}
	return j, nil
}
