package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"internhub/internal/domain/notification"
	"internhub/internal/repository"
)

type NotificationUsecase interface {
	List(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error)
	MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error
}

type Notifications struct {
	notifications repository.NotificationRepository
}

func NewNotificationUsecase(notifications repository.NotificationRepository) *Notifications {
	return &Notifications{notifications: notifications}
}

func (u *Notifications) List(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	list, err := u.notifications.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

func (u *Notifications) MarkRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	err := u.notifications.MarkRead(ctx, userID, notificationID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotificationNotFound
		}
		return ErrInternal
	}
	return nil
}
