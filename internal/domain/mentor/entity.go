package mentor

import (
	"time"

	"github.com/google/uuid"
)

const (
	SenderUser   = "user"
	SenderMentor = "mentor"
)

type Session struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Messages  []Message
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Message struct {
	ID        uuid.UUID `json:"id"`
	Content   string    `json:"content"`
	Sender    string    `json:"sender"`
	Timestamp time.Time `json:"timestamp"`
}
