package queue

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/joeblew999/plat-mailcraft/pkg/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestQueue(t *testing.T) (*Queue, *db.DB) {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "queue.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	q, err := NewQueue(context.Background(), database.DB, DefaultName)
	require.NoError(t, err)

	events, err := NewEventRecorder(database.SqlConn())
	require.NoError(t, err)
	q.Events = events
	return q, database
}

func eventTypes(t *testing.T, database *db.DB, jobID string) []string {
	t.Helper()
	rows, err := database.Query("select event_type from send_events where job_id = ? order by rowid", jobID)
	require.NoError(t, err)
	defer rows.Close()

	var types []string
	for rows.Next() {
		var et string
		require.NoError(t, rows.Scan(&et))
		types = append(types, et)
	}
	return types
}

func TestNewQueueTwice(t *testing.T) {
	_, database := newTestQueue(t)
	_, err := NewQueue(context.Background(), database.DB, DefaultName)
	assert.NoError(t, err)
}

func TestEnqueueReceive(t *testing.T) {
	ctx := context.Background()
	q, database := newTestQueue(t)

	id, err := q.Enqueue(ctx, SendJob{TemplateID: 7, Recipient: "ada@example.com"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	depth, err := q.Depth(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, depth)

	job, msg, err := q.Receive(ctx)
	require.NoError(t, err)
	require.NotNil(t, job)
	assert.Equal(t, id, job.ID)
	assert.Equal(t, int64(7), job.TemplateID)
	assert.Equal(t, DefaultMaxAttempts, job.MaxAttempts)

	require.NoError(t, q.MarkSent(ctx, job, msg))
	q.Events.Flush()

	empty, _, err := q.Receive(ctx)
	require.NoError(t, err)
	assert.Nil(t, empty)
	assert.Equal(t, []string{EventQueued, EventSent}, eventTypes(t, database, id))
}

func TestMarkRetry(t *testing.T) {
	ctx := context.Background()
	q, database := newTestQueue(t)

	id, err := q.Enqueue(ctx, SendJob{TemplateID: 1, Recipient: "ada@example.com"})
	require.NoError(t, err)

	job, msg, err := q.Receive(ctx)
	require.NoError(t, err)
	job.Attempts++
	require.NoError(t, q.MarkRetry(ctx, job, msg, 0, errors.New("421 it's busy")))

	again, msg, err := q.Receive(ctx)
	require.NoError(t, err)
	require.NotNil(t, again)
	assert.Equal(t, 1, again.Attempts)
	assert.Equal(t, "421 it's busy", again.Error)

	require.NoError(t, q.MarkFailed(ctx, again, msg, errors.New("gave up")))
	q.Events.Flush()

	assert.Equal(t, []string{EventQueued, EventRetry, EventFailed}, eventTypes(t, database, id))
	depth, err := q.Depth(ctx)
	require.NoError(t, err)
	assert.Zero(t, depth)
}
