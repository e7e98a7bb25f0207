package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"internhub/internal/domain/internship"
	"internhub/internal/repository"
)

type InternshipRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]internship.Internship
}

func NewInternshipRepository() *InternshipRepository {
	return &InternshipRepository{byID: make(map[uuid.UUID]internship.Internship)}
}

func (r *InternshipRepository) ListAll(ctx context.Context) ([]internship.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]internship.Internship, 0, len(r.byID))
	for _, in := range r.byID {
		out = append(out, copyInternship(in))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].PostedAt.After(out[j].PostedAt)
	})
	return out, nil
}

func (r *InternshipRepository) GetByID(ctx context.Context, id uuid.UUID) (internship.Internship, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	in, ok := r.byID[id]
	if !ok {
		return internship.Internship{}, repository.ErrNotFound
	}
	return copyInternship(in), nil
}

func (r *InternshipRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byID[id]
	return ok, nil
}

func (r *InternshipRepository) Create(ctx context.Context, in internship.Internship) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[in.ID]; ok {
		return repository.ErrDuplicate
	}
	r.byID[in.ID] = copyInternship(in)
	return nil
}

func copyInternship(in internship.Internship) internship.Internship {
	in.Requirements = cloneStrings(in.Requirements)
	in.Skills = cloneStrings(in.Skills)
	return in
}
