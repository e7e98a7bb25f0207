package repository

import (
	"context"

	"internhub/internal/database"
	"internhub/internal/domain/notification"

	"github.com/google/uuid"
)

type NotificationRepository interface {
	Create(ctx context.Context, n notification.Notification) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error)
	// MarkRead flips read to true; ErrNotFound when the user has no such
	// notification.
	MarkRead(ctx context.Context, userID, id uuid.UUID) error
}

type PostgresNotificationRepository struct {
	db database.DB
}

func NewPostgresNotificationRepository(db database.DB) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{db: db}
}

func (r *PostgresNotificationRepository) Create(ctx context.Context, n notification.Notification) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO notifications (id, user_id, title, message, type, read, action_url, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.Read, n.ActionURL, n.CreatedAt,
	)
	return err
}

func (r *PostgresNotificationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, message, type, read, action_url, created_at
		 FROM notifications WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]notification.Notification, 0)
	for rows.Next() {
		var n notification.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.Read, &n.ActionURL, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *PostgresNotificationRepository) MarkRead(ctx context.Context, userID, id uuid.UUID) error {
	n, err := r.db.Exec(ctx,
		`UPDATE notifications SET read = true WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
