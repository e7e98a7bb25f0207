package usecase

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"internhub/internal/domain/notification"
	"internhub/internal/repository"
)

// NotificationSender is the side-effect surface the orchestrating
// usecases depend on.
type NotificationSender interface {
	Notify(ctx context.Context, userID uuid.UUID, title, message, typ, actionURL string)
}

// NotificationPusher delivers a notification to any live connection
// the user has open. Implemented by the websocket hub.
type NotificationPusher interface {
	Push(userID uuid.UUID, n notification.Notification)
}

// Notifier appends notifications and pushes them to connected
// clients. Delivery is best effort: a failed append is logged, never
// propagated, so side-effect notifications cannot fail the primary
// operation.
type Notifier struct {
	notifications repository.NotificationRepository
	pusher        NotificationPusher
	logger        *log.Logger

	newID func() uuid.UUID
	now   func() time.Time
}

func NewNotifier(notifications repository.NotificationRepository, pusher NotificationPusher, logger *log.Logger) *Notifier {
	return &Notifier{
		notifications: notifications,
		pusher:        pusher,
		logger:        logger,
		newID:         uuid.New,
		now:           time.Now,
	}
}

func (s *Notifier) Notify(ctx context.Context, userID uuid.UUID, title, message, typ, actionURL string) {
	n := notification.Notification{
		ID:        s.newID(),
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      typ,
		Read:      false,
		ActionURL: actionURL,
		CreatedAt: s.now(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		if s.logger != nil {
			s.logger.Printf("[Notifier] append failed user=%s title=%q err=%v", userID, title, err)
		}
		return
	}
	if s.pusher != nil {
		s.pusher.Push(userID, n)
	}
}
