package dto

import (
	"time"

	"internhub/internal/domain/mentor"

	"github.com/google/uuid"
)

type MentorSessionResponse struct {
	ID        uuid.UUID        `json:"id"`
	Messages  []mentor.Message `json:"messages"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func FromMentorSession(s mentor.Session) MentorSessionResponse {
	messages := s.Messages
	if messages == nil {
		messages = []mentor.Message{}
	}
	return MentorSessionResponse{
		ID:        s.ID,
		Messages:  messages,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}
