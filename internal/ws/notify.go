package ws

import (
	"encoding/json"
	"time"

	"talent-align/internal/domain/action"
)

const (
	EventActionCreated = "action_created"
	EventActionUpdated = "action_updated"
)

type ActionEvent struct {
	Type      string        `json:"type"`
	ActionID  string        `json:"action_id"`
	Data      action.Action `json:"data"`
	Timestamp string        `json:"timestamp"`
}

// Notifier publishes action lifecycle events to every connected subscriber.
type Notifier struct {
	hub *Hub
	now func() time.Time
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub, now: time.Now}
}

func (n *Notifier) ActionCreated(a action.Action) {
	n.publish(EventActionCreated, a)
}

func (n *Notifier) ActionUpdated(a action.Action) {
	n.publish(EventActionUpdated, a)
}

func (n *Notifier) publish(kind string, a action.Action) {
	if n == nil || n.hub == nil {
		return
	}
	b, err := json.Marshal(ActionEvent{
		Type:      kind,
		ActionID:  a.ID,
		Data:      a,
		Timestamp: n.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		n.hub.log.Error("encode action event failed")
		return
	}
	n.hub.Broadcast(b)
}
