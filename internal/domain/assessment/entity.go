package assessment

import (
	"time"

	"github.com/google/uuid"
)

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
	LevelExpert       = "Expert"
)

// SkillAssessment holds the current assessment for a (user, skill) pair;
// re-assessing a skill replaces the prior record.
type SkillAssessment struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Skill       string
	Level       string
	Score       int
	CompletedAt time.Time
}
