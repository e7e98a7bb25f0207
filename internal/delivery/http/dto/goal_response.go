package dto

import (
	"time"

	"internhub/internal/domain/goal"

	"github.com/google/uuid"
)

type GoalResponse struct {
	ID             uuid.UUID        `json:"id"`
	Title          string           `json:"title"`
	Description    string           `json:"description"`
	TargetRole     string           `json:"target_role"`
	Timeline       string           `json:"timeline"`
	RequiredSkills []string         `json:"required_skills"`
	Progress       int              `json:"progress"`
	Milestones     []goal.Milestone `json:"milestones"`
	CreatedAt      time.Time        `json:"created_at"`
}

func FromGoal(g goal.CareerGoal) GoalResponse {
	milestones := g.Milestones
	if milestones == nil {
		milestones = []goal.Milestone{}
	}
	return GoalResponse{
		ID:             g.ID,
		Title:          g.Title,
		Description:    g.Description,
		TargetRole:     g.TargetRole,
		Timeline:       g.Timeline,
		RequiredSkills: emptyIfNil(g.RequiredSkills),
		Progress:       g.Progress,
		Milestones:     milestones,
		CreatedAt:      g.CreatedAt,
	}
}

func FromGoals(items []goal.CareerGoal) []GoalResponse {
	out := make([]GoalResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromGoal(it))
	}
	return out
}
