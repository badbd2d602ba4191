package model

import (
	"encoding/json"
	"time"
)

// JobStatus tracks a durable queue row.
type JobStatus string

var (
	JobQueued  JobStatus = "QUEUED"
	JobRunning JobStatus = "RUNNING"
	JobDone    JobStatus = "DONE"
	JobDead    JobStatus = "DEAD"
)

// Queue names; one durable queue per pipeline stage.
const (
	QueueScan       = "scan"
	QueueValidation = "validation"
	QueuePayment    = "payment"
)

// Job is one durable queue row with at-least-once delivery semantics.
type Job struct {
	ID          string
	Queue       string
	Payload     json.RawMessage
	Attempts    int
	MaxAttempts int
	RunAt       time.Time
	Status      JobStatus
	LastError   string
	CreatedAt   time.Time
}

// Job payload schema versions. Decoders reject unknown versions instead of
// coercing them.
const (
	ScanJobVersion       = 1
	ValidationJobVersion = 1
	PaymentJobVersion    = 1
)

// ScanJob asks the researcher pipeline to scan a protocol.
type ScanJob struct {
	Version    int    `json:"version"`
	ScanID     string `json:"scan_id"`
	ProtocolID string `json:"protocol_id"`
	Branch     string `json:"branch"`
	CommitHash string `json:"commit_hash,omitempty"`
}

// ValidationJob asks the validator pipeline to replay one proof.
type ValidationJob struct {
	Version    int    `json:"version"`
	ProofID    string `json:"proof_id"`
	FindingID  string `json:"finding_id"`
	ScanID     string `json:"scan_id"`
	ProtocolID string `json:"protocol_id"`
	CommitHash string `json:"commit_hash,omitempty"`
}

// PaymentJob asks the settlement worker to release one bounty.
type PaymentJob struct {
	Version      int    `json:"version"`
	PaymentID    string `json:"payment_id"`
	ValidationID string `json:"validation_id"`
	ProtocolID   string `json:"protocol_id"`
}
