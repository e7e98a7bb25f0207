package dto

import (
	"time"

	"internhub/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationResponse struct {
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	Read      bool      `json:"read"`
	ActionURL string    `json:"action_url,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func FromNotifications(items []notification.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NotificationResponse{
			ID:        it.ID,
			Title:     it.Title,
			Message:   it.Message,
			Type:      it.Type,
			Read:      it.Read,
			ActionURL: it.ActionURL,
			CreatedAt: it.CreatedAt,
		})
	}
	return out
}
