package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"internhub/internal/domain/application"
	"internhub/internal/repository"
)

type ApplicationRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]application.Application
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{byUser: make(map[uuid.UUID][]application.Application)}
}

func (r *ApplicationRepository) Create(ctx context.Context, a application.Application) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, prev := range r.byUser[a.UserID] {
		if prev.InternshipID == a.InternshipID {
			return repository.ErrDuplicate
		}
	}
	r.byUser[a.UserID] = append(r.byUser[a.UserID], a)
	return nil
}

func (r *ApplicationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]application.Application, len(r.byUser[userID]))
	copy(out, r.byUser[userID])
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].AppliedAt.After(out[j].AppliedAt)
	})
	return out, nil
}

func (r *ApplicationRepository) ExistsByUserAndInternship(ctx context.Context, userID, internshipID uuid.UUID) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.byUser[userID] {
		if a.InternshipID == internshipID {
			return true, nil
		}
	}
	return false, nil
}
