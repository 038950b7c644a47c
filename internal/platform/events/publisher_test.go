package events

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type recordingConn struct {
	subjects []string
	payloads [][]byte
	err      error
}

func (c *recordingConn) Publish(subj string, data []byte) error {
	c.subjects = append(c.subjects, subj)
	c.payloads = append(c.payloads, data)
	return c.err
}

func TestPublish_Envelope(t *testing.T) {
	conn := &recordingConn{}
	p := New(conn, nil)
	p.now = func() time.Time { return time.Date(2024, 4, 1, 12, 0, 0, 0, time.FixedZone("x", 3600)) }

	p.Publish(SubjectAnimeViewed, "anime_viewed", "req-1", map[string]any{"mal_id": 1})

	require.Len(t, conn.payloads, 1)
	assert.Equal(t, SubjectAnimeViewed, conn.subjects[0])

	var ev Event
	require.NoError(t, json.Unmarshal(conn.payloads[0], &ev))
	assert.NotEmpty(t, ev.EventID)
	assert.Equal(t, "anime_viewed", ev.EventName)
	assert.Equal(t, "req-1", ev.RequestID)
	assert.Equal(t, time.UTC, ev.OccurredAt.Location())
	assert.Equal(t, 11, ev.OccurredAt.Hour())
	assert.EqualValues(t, 1, ev.Properties["mal_id"])
}

func TestPublish_NilSafe(t *testing.T) {
	var p *Publisher
	p.Publish(SubjectSearchPerformed, "search", "", nil)
	New(nil, nil).Publish(SubjectSearchPerformed, "search", "", nil)
}

func TestPublish_FailureIsLogged(t *testing.T) {
	core, logs := observer.New(zap.WarnLevel)
	p := New(&recordingConn{err: errors.New("nats: connection closed")}, zap.New(core))

	p.Publish(SubjectCacheFlushed, "cache_flushed", "", nil)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "events: publish failed", logs.All()[0].Message)
}
