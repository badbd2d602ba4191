// Package queue implements a durable Postgres-backed job queue with
// at-least-once delivery, per-job retry counts and exponential backoff.
package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jul1angr1s/bugbounty-backend/internal/clock"
	"github.com/jul1angr1s/bugbounty-backend/internal/model"
)

type (
	// Querier is the subset of pgxpool.Pool the queue needs.
	Querier interface {
		Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
		QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	}

	Metrics interface {
		Observe(operation string, queue string, err error, started time.Time)
	}
)

const (
	defaultMaxAttempts = 5
	defaultBackoffBase = 30 * time.Second
	defaultBackoffMax  = 30 * time.Minute
)

type Queue struct {
	db          Querier
	metrics     Metrics
	maxAttempts int
	backoffBase time.Duration
	backoffMax  time.Duration
}

// New builds a Queue over an open pgx pool.
func New(db Querier, metrics Metrics) (*Queue, error) {
	if db == nil {
		return nil, errors.New("queue db is required")
	}
	if metrics == nil {
		return nil, errors.New("queue metrics is required")
	}
	return &Queue{
		db:          db,
		metrics:     metrics,
		maxAttempts: defaultMaxAttempts,
		backoffBase: defaultBackoffBase,
		backoffMax:  defaultBackoffMax,
	}, nil
}

// Enqueue inserts one job and returns its id.
func (q *Queue) Enqueue(ctx context.Context, queue string, payload any) (string, error) {
	start := time.Now()
	var err error
	defer func() {
		q.metrics.Observe("enqueue", queue, err, start)
	}()

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal job payload: %w", err)
	}

	const query = `
INSERT INTO jobs (id, queue, payload, attempts, max_attempts, run_at, status)
VALUES ($1, $2, $3, 0, $4, now(), $5)`

	id := uuid.NewString()
	if _, err = q.db.Exec(ctx, query, id, queue, body, q.maxAttempts, string(model.JobQueued)); err != nil {
		return "", fmt.Errorf("enqueue job: %w", err)
	}
	return id, nil
}

// Dequeue claims one due job from the queue, or returns nil when the queue is
// empty. The claim uses FOR UPDATE SKIP LOCKED so concurrent workers never
// receive the same row.
func (q *Queue) Dequeue(ctx context.Context, queue string) (*model.Job, error) {
	start := time.Now()
	var err error
	defer func() {
		q.metrics.Observe("dequeue", queue, err, start)
	}()

	const query = `
UPDATE jobs
SET status = $2, attempts = attempts + 1
WHERE id = (
	SELECT id FROM jobs
	WHERE queue = $1 AND status = $3 AND run_at <= now()
	ORDER BY run_at
	LIMIT 1
	FOR UPDATE SKIP LOCKED
)
RETURNING id, queue, payload, attempts, max_attempts, run_at, status, last_error, created_at`

	var j model.Job
	var status string
	err = q.db.QueryRow(ctx, query, queue, string(model.JobRunning), string(model.JobQueued)).Scan(
		&j.ID, &j.Queue, &j.Payload, &j.Attempts, &j.MaxAttempts,
		&j.RunAt, &status, &j.LastError, &j.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		err = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("dequeue job: %w", err)
	}
	j.Status = model.JobStatus(status)
	return &j, nil
}

// Complete marks a job done.
func (q *Queue) Complete(ctx context.Context, job *model.Job) error {
	start := time.Now()
	var err error
	defer func() {
		q.metrics.Observe("complete", job.Queue, err, start)
	}()

	const query = `
UPDATE jobs
SET status = $2
WHERE id = $1`

	if _, err = q.db.Exec(ctx, query, job.ID, string(model.JobDone)); err != nil {
		return fmt.Errorf("complete job: %w", err)
	}
	return nil
}

// Fail buries a job immediately, recording the cause as its last error. Used
// for jobs that can never succeed regardless of remaining attempts.
func (q *Queue) Fail(ctx context.Context, job *model.Job, cause error) error {
	start := time.Now()
	var err error
	defer func() {
		q.metrics.Observe("fail", job.Queue, err, start)
	}()

	reason := ""
	if cause != nil {
		reason = cause.Error()
	}

	const query = `
UPDATE jobs
SET status = $2, last_error = $3
WHERE id = $1`

	if _, err = q.db.Exec(ctx, query, job.ID, string(model.JobDead), reason); err != nil {
		return fmt.Errorf("bury job: %w", err)
	}
	return nil
}

// Retry schedules the next attempt with exponential backoff, or marks the job
// dead once the attempt cap is reached.
func (q *Queue) Retry(ctx context.Context, job *model.Job, cause error) error {
	start := time.Now()
	var err error
	defer func() {
		q.metrics.Observe("retry", job.Queue, err, start)
	}()

	reason := ""
	if cause != nil {
		reason = cause.Error()
	}

	if job.Attempts >= job.MaxAttempts {
		const query = `
UPDATE jobs
SET status = $2, last_error = $3
WHERE id = $1`
		if _, err = q.db.Exec(ctx, query, job.ID, string(model.JobDead), reason); err != nil {
			return fmt.Errorf("bury job: %w", err)
		}
		return nil
	}

	delay := clock.Backoff(q.backoffBase, job.Attempts, q.backoffMax)

	const query = `
UPDATE jobs
SET status = $2, last_error = $3, run_at = now() + $4
WHERE id = $1`

	if _, err = q.db.Exec(ctx, query, job.ID, string(model.JobQueued), reason, delay); err != nil {
		return fmt.Errorf("reschedule job: %w", err)
	}
	return nil
}
