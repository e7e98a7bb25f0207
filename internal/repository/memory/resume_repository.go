package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"internhub/internal/domain/resume"
	"internhub/internal/repository"
)

type ResumeRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]resume.Resume
}

func NewResumeRepository() *ResumeRepository {
	return &ResumeRepository{byID: make(map[uuid.UUID]resume.Resume)}
}

func (r *ResumeRepository) Create(ctx context.Context, res resume.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[res.ID]; ok {
		return repository.ErrDuplicate
	}
	r.byID[res.ID] = copyResume(res)
	return nil
}

func (r *ResumeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []resume.Resume
	for _, res := range r.byID {
		if res.UserID == userID {
			out = append(out, copyResume(res))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *ResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	res, ok := r.byID[id]
	if !ok {
		return resume.Resume{}, repository.ErrNotFound
	}
	return copyResume(res), nil
}

func (r *ResumeRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, res := range r.byID {
		if res.UserID == userID {
			n++
		}
	}
	return n, nil
}

func copyResume(res resume.Resume) resume.Resume {
	res.Strengths = cloneStrings(res.Strengths)
	res.Weaknesses = cloneStrings(res.Weaknesses)
	res.Suggestions = cloneStrings(res.Suggestions)
	res.Keywords = cloneStrings(res.Keywords)
	return res
}
