package model

import "time"

// ScanState is the terminal-level state of a researcher scan.
type ScanState string

var (
	ScanQueued    ScanState = "QUEUED"
	ScanRunning   ScanState = "RUNNING"
	ScanCompleted ScanState = "COMPLETED"
	ScanFailed    ScanState = "FAILED"
)

// ScanStep names a stage of the researcher pipeline.
type ScanStep string

var (
	StepClone           ScanStep = "CLONE"
	StepCompile         ScanStep = "COMPILE"
	StepDeploy          ScanStep = "DEPLOY"
	StepAnalyze         ScanStep = "ANALYZE"
	StepProofGeneration ScanStep = "PROOF_GENERATION"
	StepSubmit          ScanStep = "SUBMIT"
)

// Scan is one execution of the researcher pipeline against a protocol.
type Scan struct {
	ID            string
	ProtocolID    string
	AgentID       string
	Branch        string
	CommitHash    string
	State         ScanState
	CurrentStep   ScanStep
	Progress      int
	FailureReason string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
