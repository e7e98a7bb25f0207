package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"internhub/internal/domain/notification"
	"internhub/internal/repository"
)

type NotificationRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID][]notification.Notification
}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{byUser: make(map[uuid.UUID][]notification.Notification)}
}

func (r *NotificationRepository) Create(ctx context.Context, n notification.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[n.UserID] = append(r.byUser[n.UserID], n)
	return nil
}

func (r *NotificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]notification.Notification, len(r.byUser[userID]))
	copy(out, r.byUser[userID])
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.byUser[userID]
	for i := range list {
		if list[i].ID == id {
			list[i].Read = true
			return nil
		}
	}
	return repository.ErrNotFound
}
