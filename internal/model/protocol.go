// Package model defines domain entities for the bug-bounty pipeline.
package model

import "time"

// RegistrationState describes where a protocol is in the registration workflow.
type RegistrationState string

var (
	RegistrationPending    RegistrationState = "PENDING"
	RegistrationProcessing RegistrationState = "PROCESSING"
	RegistrationActive     RegistrationState = "ACTIVE"
	RegistrationFailed     RegistrationState = "FAILED"
)

// Protocol is a registered smart-contract project under bounty coverage.
// Immutable once ACTIVE except for balance and funding fields.
type Protocol struct {
	ID                string
	Name              string
	RepoURL           string
	Branch            string
	ContractPath      string
	ContractName      string
	RegistrationState RegistrationState
	OnChainID         string
	BountyBalanceWei  string
	FailureReason     string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
