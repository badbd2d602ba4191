package reconcile

import (
	"context"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Repository interface {
		CompletedPaymentsSince(ctx context.Context, since time.Time) ([]model.Payment, error)
		ChainEventsByName(ctx context.Context, name string, fromBlock uint64) ([]model.ChainEvent, error)
		ConfirmedValidationsOlderThan(ctx context.Context, cutoff time.Time) ([]model.Validation, error)
		PaymentByValidation(ctx context.Context, validationID string) (*model.Payment, error)
		PaymentByBountyID(ctx context.Context, bountyID string) (*model.Payment, error)
	}

	// Sink receives discrepancy rows; writes are buffered and flushed in
	// batches behind this interface.
	Sink interface {
		Add(ctx context.Context, d model.Discrepancy) error
	}

	Metrics interface {
		ObserveCycle(err error, started time.Time)
		AddDiscrepancies(category string, count int)
	}
)
