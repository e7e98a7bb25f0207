package application

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusApplied     = "Applied"
	StatusUnderReview = "Under Review"
	StatusInterview   = "Interview"
	StatusRejected    = "Rejected"
	StatusAccepted    = "Accepted"
)

type Application struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	InternshipID uuid.UUID
	Status       string
	AppliedAt    time.Time
	Notes        string
}
