package goal

import (
	"math"
	"time"

	"github.com/google/uuid"
)

type CareerGoal struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Title          string
	Description    string
	TargetRole     string
	Timeline       string
	RequiredSkills []string
	Progress       int
	Milestones     []Milestone
	CreatedAt      time.Time
}

type Milestone struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Completed   bool       `json:"completed"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// RecalcProgress recomputes Progress as the rounded percentage of
// completed milestones. A goal without milestones has zero progress.
func (g *CareerGoal) RecalcProgress() {
	if len(g.Milestones) == 0 {
		g.Progress = 0
		return
	}
	done := 0
	for _, m := range g.Milestones {
		if m.Completed {
			done++
		}
	}
	g.Progress = int(math.Round(float64(done) / float64(len(g.Milestones)) * 100))
}
