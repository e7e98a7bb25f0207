package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"internhub/internal/domain/portfolio"
	"internhub/internal/repository"
)

type PortfolioRepository struct {
	mu   sync.RWMutex
	byID map[uuid.UUID]portfolio.Portfolio
}

func NewPortfolioRepository() *PortfolioRepository {
	return &PortfolioRepository{byID: make(map[uuid.UUID]portfolio.Portfolio)}
}

func (r *PortfolioRepository) Create(ctx context.Context, p portfolio.Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; ok {
		return repository.ErrDuplicate
	}
	r.byID[p.ID] = copyPortfolio(p)
	return nil
}

func (r *PortfolioRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]portfolio.Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []portfolio.Portfolio
	for _, p := range r.byID {
		if p.UserID == userID {
			out = append(out, copyPortfolio(p))
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *PortfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.Portfolio, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return portfolio.Portfolio{}, repository.ErrNotFound
	}
	return copyPortfolio(p), nil
}

func (r *PortfolioRepository) Update(ctx context.Context, p portfolio.Portfolio) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		return repository.ErrNotFound
	}
	r.byID[p.ID] = copyPortfolio(p)
	return nil
}

func (r *PortfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(r.byID, id)
	return nil
}

func (r *PortfolioRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, p := range r.byID {
		if p.UserID == userID {
			n++
		}
	}
	return n, nil
}

func copyPortfolio(p portfolio.Portfolio) portfolio.Portfolio {
	if p.Projects != nil {
		projects := make([]portfolio.Project, len(p.Projects))
		copy(projects, p.Projects)
		for i := range projects {
			projects[i].Technologies = cloneStrings(projects[i].Technologies)
		}
		p.Projects = projects
	}
	return p
}
