package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"internhub/internal/domain/assessment"
)

type SkillAssessmentRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]assessment.SkillAssessment
}

func NewSkillAssessmentRepository() *SkillAssessmentRepository {
	return &SkillAssessmentRepository{byUser: make(map[uuid.UUID][]assessment.SkillAssessment)}
}

func (r *SkillAssessmentRepository) Replace(ctx context.Context, a assessment.SkillAssessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byUser[a.UserID]
	for i := range list {
		if list[i].Skill == a.Skill {
			a.ID = list[i].ID
			list[i] = a
			return nil
		}
	}
	r.byUser[a.UserID] = append(list, a)
	return nil
}

func (r *SkillAssessmentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]assessment.SkillAssessment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]assessment.SkillAssessment, len(r.byUser[userID]))
	copy(out, r.byUser[userID])
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CompletedAt.After(out[j].CompletedAt)
	})
	return out, nil
}
