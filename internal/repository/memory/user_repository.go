package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"internhub/internal/domain/user"
	"internhub/internal/repository"
)

type UserRepository struct {
	mu      sync.RWMutex
	byID    map[uuid.UUID]user.User
	byEmail map[string]uuid.UUID
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		byID:    make(map[uuid.UUID]user.User),
		byEmail: make(map[string]uuid.UUID),
	}
}

func (r *UserRepository) Create(ctx context.Context, u user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := strings.ToLower(u.Email)
	if _, ok := r.byEmail[key]; ok {
		return repository.ErrDuplicate
	}
	r.byID[u.ID] = copyUser(u)
	r.byEmail[key] = u.ID
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.byID[id]
	if !ok {
		return user.User{}, repository.ErrNotFound
	}
	return copyUser(u), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[strings.ToLower(email)]
	if !ok {
		return user.User{}, repository.ErrNotFound
	}
	return copyUser(r.byID[id]), nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.byEmail[strings.ToLower(email)]
	return ok, nil
}

func (r *UserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[u.ID]; !ok {
		return user.User{}, repository.ErrNotFound
	}
	r.byID[u.ID] = copyUser(u)
	return copyUser(u), nil
}

func copyUser(u user.User) user.User {
	u.Skills = cloneStrings(u.Skills)
	u.Interests = cloneStrings(u.Interests)
	if u.GraduationYear != nil {
		y := *u.GraduationYear
		u.GraduationYear = &y
	}
	return u
}
