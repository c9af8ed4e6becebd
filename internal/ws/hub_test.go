package ws

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"talent-align/internal/domain/action"
)

func startHub(t *testing.T) *Hub {
	t.Helper()
	h := NewHub(nil)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go h.Run(ctx)
	return h
}

func receive(t *testing.T, c *Client) []byte {
	t.Helper()
	select {
	case msg, ok := <-c.send:
		require.True(t, ok, "client channel closed")
		return msg
	case <-time.After(time.Second):
		t.Fatal("no message delivered")
		return nil
	}
}

func TestHub_BroadcastReachesRegisteredClients(t *testing.T) {
	h := startHub(t)
	a := &Client{hub: h, send: make(chan []byte, 4)}
	b := &Client{hub: h, send: make(chan []byte, 4)}
	h.Register(a)
	h.Register(b)
	require.Eventually(t, func() bool { return h.ClientCount() == 2 }, time.Second, 5*time.Millisecond)

	h.Broadcast([]byte("hello"))
	assert.Equal(t, "hello", string(receive(t, a)))
	assert.Equal(t, "hello", string(receive(t, b)))

	h.Unregister(a)
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 5*time.Millisecond)
	_, open := <-a.send
	assert.False(t, open)
}

func TestHub_DropsSlowClient(t *testing.T) {
	h := startHub(t)
	slow := &Client{hub: h, send: make(chan []byte)}
	h.Register(slow)
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	h.Broadcast([]byte("x"))
	require.Eventually(t, func() bool { return h.ClientCount() == 0 }, time.Second, 5*time.Millisecond)
}

func TestNotifier_ActionCreatedEvent(t *testing.T) {
	h := startHub(t)
	c := &Client{hub: h, send: make(chan []byte, 4)}
	h.Register(c)
	require.Eventually(t, func() bool { return h.ClientCount() == 1 }, time.Second, 5*time.Millisecond)

	n := NewNotifier(h)
	n.now = func() time.Time { return time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC) }
	n.ActionCreated(action.Action{ID: "a1", Status: action.StatusDraft})

	var evt ActionEvent
	require.NoError(t, json.Unmarshal(receive(t, c), &evt))
	assert.Equal(t, EventActionCreated, evt.Type)
	assert.Equal(t, "a1", evt.ActionID)
	assert.Equal(t, action.StatusDraft, evt.Data.Status)
	assert.Equal(t, "2026-03-01T08:00:00Z", evt.Timestamp)
}

func TestNotifier_NilHubIsNoop(t *testing.T) {
	var n *Notifier
	n.ActionUpdated(action.Action{ID: "a1"})
	NewNotifier(nil).ActionCreated(action.Action{ID: "a1"})
}
