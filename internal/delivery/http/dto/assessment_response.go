package dto

import (
	"time"

	"internhub/internal/domain/assessment"

	"github.com/google/uuid"
)

type AssessmentResponse struct {
	ID          uuid.UUID `json:"id"`
	Skill       string    `json:"skill"`
	Level       string    `json:"level"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

func FromAssessment(a assessment.SkillAssessment) AssessmentResponse {
	return AssessmentResponse{
		ID:          a.ID,
		Skill:       a.Skill,
		Level:       a.Level,
		Score:       a.Score,
		CompletedAt: a.CompletedAt,
	}
}

func FromAssessments(items []assessment.SkillAssessment) []AssessmentResponse {
	out := make([]AssessmentResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromAssessment(it))
	}
	return out
}
