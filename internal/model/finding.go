package model

import "time"

// Severity is the fixed five-level severity scale for findings.
type Severity string

var (
	SeverityCritical Severity = "CRITICAL"
	SeverityHigh     Severity = "HIGH"
	SeverityMedium   Severity = "MEDIUM"
	SeverityLow      Severity = "LOW"
	SeverityInfo     Severity = "INFO"
)

// SeverityRank orders severities with CRITICAL highest. Unknown severities
// rank below INFO.
func SeverityRank(s Severity) int {
	switch s {
	case SeverityCritical:
		return 5
	case SeverityHigh:
		return 4
	case SeverityMedium:
		return 3
	case SeverityLow:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// VulnerabilityType classifies a finding for verdict policy purposes.
type VulnerabilityType string

var (
	VulnReentrancy    VulnerabilityType = "REENTRANCY"
	VulnFundTheft     VulnerabilityType = "FUND_THEFT"
	VulnOverflow      VulnerabilityType = "INTEGER_OVERFLOW"
	VulnAccessControl VulnerabilityType = "ACCESS_CONTROL"
	VulnUncheckedCall VulnerabilityType = "UNCHECKED_CALL"
	VulnGeneric       VulnerabilityType = "GENERIC"
)

// FindingStatus tracks whether a finding survived independent validation.
type FindingStatus string

var (
	FindingPending   FindingStatus = "PENDING"
	FindingValidated FindingStatus = "VALIDATED"
	FindingRejected  FindingStatus = "REJECTED"
)

// Finding is a candidate vulnerability surfaced during a scan. Owned by the
// scan that produced it; status mutated only by the validation pipeline.
type Finding struct {
	ID               string
	ScanID           string
	Type             VulnerabilityType
	Severity         Severity
	Title            string
	Description      string
	FilePath         string
	Line             int
	FunctionSelector string
	Confidence       float64
	Status           FindingStatus
	CreatedAt        time.Time
}
