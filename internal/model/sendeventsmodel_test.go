package model

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendEventsListByTemplate(t *testing.T) {
	ctx := context.Background()
	m := NewSendEventsModel(newTestConn(t))

	insert := func(templateID int64, eventType string) {
		_, err := m.Insert(ctx, &SendEvents{
			Id:         uuid.NewString(),
			JobId:      "job-1",
			TemplateId: templateID,
			EventType:  eventType,
			Recipient:  "ada@example.com",
		})
		require.NoError(t, err)
	}
	insert(1, "queued")
	insert(1, "sent")
	insert(2, "queued")

	events, err := m.ListByTemplate(ctx, 1, 10)
	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "sent", events[0].EventType)
	assert.Equal(t, "queued", events[1].EventType)

	limited, err := m.ListByTemplate(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)

	require.NoError(t, m.DeleteByTemplate(ctx, 1))
	events, err = m.ListByTemplate(ctx, 1, 10)
	require.NoError(t, err)
	assert.Empty(t, events)

	others, err := m.ListByTemplate(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, others, 1)
}
