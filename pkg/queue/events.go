package queue

import (
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/core/stores/sqlx"
)

// Event types written to send_events.
const (
	EventQueued = "queued"
	EventSent   = "sent"
	EventRetry  = "retry"
	EventFailed = "failed"
)

// BulkInserter inlines values using MySQL backslash escapes, which SQLite does not
// understand, so characters that would need escaping are replaced.
var inlineSafe = strings.NewReplacer(
	"'", "`",
	"\\", "/",
	"\"", "`",
	"\n", " ",
	"\r", " ",
	"\x00", "",
	"\x1a", "",
)

// EventRecorder batches send event writes using go-zero's BulkInserter.
type EventRecorder struct {
	inserter *sqlx.BulkInserter
}

// NewEventRecorder creates a new event recorder that batches inserts.
func NewEventRecorder(conn sqlx.SqlConn) (*EventRecorder, error) {
	inserter, err := sqlx.NewBulkInserter(conn,
		"insert into `send_events` (`id`, `job_id`, `template_id`, `event_type`, `recipient`, `details`) values (?, ?, ?, ?, ?, ?)")
	if err != nil {
		return nil, err
	}

	inserter.SetResultHandler(func(_ sql.Result, err error) {
		if err != nil {
			logx.Errorf("BulkInserter send_events error: %v", err)
		}
	})

	return &EventRecorder{inserter: inserter}, nil
}

// RecordEvent batches a send event insert.
func (r *EventRecorder) RecordEvent(job SendJob, eventType, details string) {
	if err := r.inserter.Insert(
		uuid.NewString(),
		job.ID,
		job.TemplateID,
		eventType,
		inlineSafe.Replace(job.Recipient),
		inlineSafe.Replace(details),
	); err != nil {
		logx.Errorf("Failed to record event: %v", err)
	}
}

// Flush forces all pending events to be written.
func (r *EventRecorder) Flush() {
	r.inserter.Flush()
}
