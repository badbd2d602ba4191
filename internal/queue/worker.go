package queue

import (
	"context"
	"errors"
	"time"

	"github.com/jul1angr1s/bugbounty-backend/internal/clock"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
	"go.uber.org/zap"
)

type (
	// JobSource is the queue surface a worker consumes.
	JobSource interface {
		Dequeue(ctx context.Context, queue string) (*model.Job, error)
		Complete(ctx context.Context, job *model.Job) error
		Retry(ctx context.Context, job *model.Job, cause error) error
		Fail(ctx context.Context, job *model.Job, cause error) error
	}

	// Handler processes one claimed job. A returned error sends the job back
	// through the queue's retry/backoff schedule.
	Handler interface {
		Handle(ctx context.Context, job *model.Job) error
	}
)

// ErrSkip tells the worker a job is a benign no-op (already claimed
// elsewhere); the job completes without a retry.
var ErrSkip = errors.New("job skipped")

// ErrUnprocessable tells the worker a job can never be handled, no matter how
// often it is retried (malformed payload, unknown schema version). The job is
// buried with the cause instead of rescheduled.
var ErrUnprocessable = errors.New("job unprocessable")

const (
	idleSleepDuration  = 2 * time.Second
	errorSleepDuration = 5 * time.Second
)

// Worker pulls jobs from one named queue and hands them to a handler.
type Worker struct {
	logger     *zap.Logger
	source     JobSource
	queueName  string
	handler    Handler
	sleep      func(context.Context, time.Duration) error
	idleSleep  time.Duration
	errorSleep time.Duration
}

// NewWorker builds a Worker for one queue.
func NewWorker(source JobSource, queueName string, handler Handler, logger *zap.Logger) (*Worker, error) {
	if source == nil {
		return nil, errors.New("worker job source is required")
	}
	if handler == nil {
		return nil, errors.New("worker handler is required")
	}
	return &Worker{
		logger:     logger.With(zap.String("queue", queueName)),
		source:     source,
		queueName:  queueName,
		handler:    handler,
		sleep:      clock.SleepWithContext,
		idleSleep:  idleSleepDuration,
		errorSleep: errorSleepDuration,
	}, nil
}

// Run consumes jobs until the context is canceled.
func (w *Worker) Run(ctx context.Context) error {
	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err := w.run(ctx); err != nil {
			w.logger.Warn("worker iteration failed, backing off", zap.Error(err), zap.Duration("sleep", w.errorSleep))
			if sleepErr := w.sleep(ctx, w.errorSleep); sleepErr != nil {
				return sleepErr
			}
		}
	}
}

func (w *Worker) run(ctx context.Context) error {
	job, err := w.source.Dequeue(ctx, w.queueName)
	if err != nil {
		return err
	}
	if job == nil {
		return w.sleep(ctx, w.idleSleep)
	}

	logger := w.logger.With(zap.String("job_id", job.ID), zap.Int("attempt", job.Attempts))
	logger.Info("handling job")

	if err := w.handler.Handle(ctx, job); err != nil {
		if errors.Is(err, ErrSkip) {
			logger.Info("job skipped")
			return w.source.Complete(ctx, job)
		}
		if errors.Is(err, ErrUnprocessable) {
			logger.Error("job unprocessable, burying", zap.Error(err))
			return w.source.Fail(ctx, job, err)
		}
		logger.Error("job failed", zap.Error(err))
		return w.source.Retry(ctx, job, err)
	}

	logger.Info("job done")
	return w.source.Complete(ctx, job)
}
