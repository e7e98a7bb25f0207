package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"internhub/internal/domain/notification"
)

type notificationEvent struct {
	Type      string `json:"type"`
	ID        string `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Kind      string `json:"kind"`
	ActionURL string `json:"action_url,omitempty"`
	CreatedAt string `json:"created_at"`
}

// Pusher adapts the hub to the notifier's push interface.
type Pusher struct {
	hub *Hub
}

func NewPusher(hub *Hub) *Pusher {
	return &Pusher{hub: hub}
}

func (p *Pusher) Push(userID uuid.UUID, n notification.Notification) {
	if p == nil || p.hub == nil {
		return
	}

	evt := notificationEvent{
		Type:      "notification",
		ID:        n.ID.String(),
		Title:     n.Title,
		Message:   n.Message,
		Kind:      n.Type,
		ActionURL: n.ActionURL,
		CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}
	p.hub.Send(userID, b)
}
