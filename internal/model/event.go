package model

import "time"

// Chain event names the listener subscribes to.
const (
	EventValidationRecorded = "ValidationRecorded"
	EventBountyReleased     = "BountyReleased"
)

// ChainEvent is a persisted observation of an on-chain event. Unique on
// (tx hash, log index) so replayed deliveries are no-ops.
type ChainEvent struct {
	Name        string
	TxHash      string
	LogIndex    uint
	BlockNumber uint64
	OnChainID   string
	ProtocolID  string
	Recipient   string
	AmountWei   string
	ObservedAt  time.Time
}

// EventListenerCheckpoint is the durable cursor marking the last block fully
// handled for one event name.
type EventListenerCheckpoint struct {
	EventName string
	LastBlock uint64
	UpdatedAt time.Time
}
