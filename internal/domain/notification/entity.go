package notification

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeApplication    = "application"
	TypeDeadline       = "deadline"
	TypeRecommendation = "recommendation"
	TypeSkill          = "skill"
	TypeMentor         = "mentor"
)

type Notification struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Title     string
	Message   string
	Type      string
	Read      bool
	ActionURL string
	CreatedAt time.Time
}
