// Package queue holds test-send jobs in a goqite queue backed by the application database.
package queue

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"maragu.dev/goqite"
)

// DefaultName is the queue used for test sends.
const DefaultName = "test-sends"

// DefaultMaxAttempts applies when a job does not set MaxAttempts.
const DefaultMaxAttempts = 3

// SendJob asks for one stored template to be rendered and mailed to one recipient.
type SendJob struct {
	ID          string    `json:"id"`
	TemplateID  int64     `json:"template_id"`
	Recipient   string    `json:"recipient"`
	Attempts    int       `json:"attempts"`
	MaxAttempts int       `json:"max_attempts"`
	Error       string    `json:"error,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Queue manages send jobs using goqite.
type Queue struct {
	db    *sql.DB
	queue *goqite.Queue
	name  string

	// Events records job lifecycle events. May be nil.
	Events *EventRecorder
}

// NewQueue creates the goqite schema if needed and opens the named queue.
func NewQueue(ctx context.Context, db *sql.DB, name string) (*Queue, error) {
	exists, err := schemaExists(ctx, db)
	if err != nil {
		return nil, fmt.Errorf("inspect goqite schema: %w", err)
	}
	if !exists {
		if err := goqite.Setup(ctx, db); err != nil {
			return nil, fmt.Errorf("setup goqite: %w", err)
		}
	}

	q := goqite.New(goqite.NewOpts{
		DB:   db,
		Name: name,
	})

	return &Queue{
		db:    db,
		queue: q,
		name:  name,
	}, nil
}

// Enqueue adds a job and records a queued event.
func (q *Queue) Enqueue(ctx context.Context, job SendJob) (string, error) {
	if job.ID == "" {
		job.ID = uuid.NewString()
	}
	if job.MaxAttempts <= 0 {
		job.MaxAttempts = DefaultMaxAttempts
	}
	job.CreatedAt = time.Now()

	if err := q.send(ctx, job, 0); err != nil {
		return "", err
	}

	q.record(job, EventQueued, "")
	return job.ID, nil
}

// Receive gets the next job from the queue. Both results are nil when the queue is empty.
func (q *Queue) Receive(ctx context.Context) (*SendJob, *goqite.Message, error) {
	msg, err := q.queue.Receive(ctx)
	if err != nil {
		return nil, nil, err
	}
	if msg == nil {
		return nil, nil, nil
	}

	var job SendJob
	if err := json.Unmarshal(msg.Body, &job); err != nil {
		return nil, msg, fmt.Errorf("unmarshal job: %w", err)
	}

	return &job, msg, nil
}

// Delete removes a message from the queue (job completed).
func (q *Queue) Delete(ctx context.Context, msg *goqite.Message) error {
	return q.queue.Delete(ctx, msg.ID)
}

// MarkSent completes a job.
func (q *Queue) MarkSent(ctx context.Context, job *SendJob, msg *goqite.Message) error {
	if err := q.Delete(ctx, msg); err != nil {
		return err
	}
	q.record(*job, EventSent, "")
	return nil
}

// MarkRetry replaces the message with a copy of job that becomes visible after delay.
func (q *Queue) MarkRetry(ctx context.Context, job *SendJob, msg *goqite.Message, delay time.Duration, cause error) error {
	job.Error = cause.Error()
	if err := q.send(ctx, *job, delay); err != nil {
		return err
	}
	if err := q.Delete(ctx, msg); err != nil {
		return err
	}
	q.record(*job, EventRetry, fmt.Sprintf("attempt %d, backoff %s: %v", job.Attempts, delay, cause))
	return nil
}

// MarkFailed drops a job that will not be retried.
func (q *Queue) MarkFailed(ctx context.Context, job *SendJob, msg *goqite.Message, cause error) error {
	var err error
	if msg != nil {
		err = q.Delete(ctx, msg)
	}
	q.record(*job, EventFailed, cause.Error())
	return err
}

// Depth returns the number of messages waiting in this queue.
func (q *Queue) Depth(ctx context.Context) (int, error) {
	var n int
	err := q.db.QueryRowContext(ctx, "select count(*) from goqite where queue = ?", q.name).Scan(&n)
	return n, err
}

func (q *Queue) send(ctx context.Context, job SendJob, delay time.Duration) error {
	body, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("marshal job: %w", err)
	}

	if err := q.queue.Send(ctx, goqite.Message{
		Body:  body,
		Delay: delay,
	}); err != nil {
		return fmt.Errorf("send to queue: %w", err)
	}
	return nil
}

func (q *Queue) record(job SendJob, eventType, details string) {
	if q.Events != nil {
		q.Events.RecordEvent(job, eventType, details)
	}
}

func schemaExists(ctx context.Context, db *sql.DB) (bool, error) {
	var name string
	err := db.QueryRowContext(ctx,
		"select name from sqlite_master where type = 'table' and name = 'goqite'").Scan(&name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	default:
		return false, err
	}
}
