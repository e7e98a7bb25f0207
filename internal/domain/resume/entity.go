package resume

import (
	"time"

	"github.com/google/uuid"
)

type Resume struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	FileName      string
	FileURL       string
	AnalysisScore int
	Strengths     []string
	Weaknesses    []string
	Suggestions   []string
	Keywords      []string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
