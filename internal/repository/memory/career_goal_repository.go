package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"internhub/internal/domain/goal"
	"internhub/internal/repository"
)

type CareerGoalRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]goal.CareerGoal
}

func NewCareerGoalRepository() *CareerGoalRepository {
	return &CareerGoalRepository{byID: make(map[uuid.UUID]goal.CareerGoal)}
}

func (r *CareerGoalRepository) Create(ctx context.Context, g goal.CareerGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[g.ID]; ok {
		return repository.ErrDuplicate
	}
	r.byID[g.ID] = copyGoal(g)
	return nil
}

func (r *CareerGoalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]goal.CareerGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []goal.CareerGoal
	for _, g := range r.byID {
		if g.UserID == userID {
			out = append(out, copyGoal(g))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *CareerGoalRepository) GetByID(ctx context.Context, id uuid.UUID) (goal.CareerGoal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.byID[id]
	if !ok {
		return goal.CareerGoal{}, repository.ErrNotFound
	}
	return copyGoal(g), nil
}

func (r *CareerGoalRepository) Update(ctx context.Context, g goal.CareerGoal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	cur, ok := r.byID[g.ID]
	if !ok {
		return repository.ErrNotFound
	}
	cur.Progress = g.Progress
	cur.Milestones = copyGoal(g).Milestones
	r.byID[g.ID] = cur
	return nil
}

func copyGoal(g goal.CareerGoal) goal.CareerGoal {
	g.RequiredSkills = cloneStrings(g.RequiredSkills)
	if g.Milestones != nil {
		ms := make([]goal.Milestone, len(g.Milestones))
		copy(ms, g.Milestones)
		g.Milestones = ms
	}
	return g
}
