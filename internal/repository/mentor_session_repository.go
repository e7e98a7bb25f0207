package repository

import (
	"context"
	"encoding/json"
	"errors"

	"internhub/internal/database"
	"internhub/internal/domain/mentor"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type MentorSessionRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (mentor.Session, error)
	// Save upserts the user's single session.
	Save(ctx context.Context, s mentor.Session) error
}

type PostgresMentorSessionRepository struct {
	db database.DB
}

func NewPostgresMentorSessionRepository(db database.DB) *PostgresMentorSessionRepository {
	return &PostgresMentorSessionRepository{db: db}
}

func (r *PostgresMentorSessionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (mentor.Session, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, messages, created_at, updated_at FROM mentor_sessions WHERE user_id = $1`,
		userID,
	)

	var s mentor.Session
	var messages []byte
	if err := row.Scan(&s.ID, &s.UserID, &messages, &s.CreatedAt, &s.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return mentor.Session{}, ErrNotFound
		}
		return mentor.Session{}, err
	}
	if err := json.Unmarshal(messages, &s.Messages); err != nil {
		return mentor.Session{}, err
	}
	return s, nil
}

func (r *PostgresMentorSessionRepository) Save(ctx context.Context, s mentor.Session) error {
	messages, err := json.Marshal(s.Messages)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO mentor_sessions (id, user_id, messages, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5)
		 ON CONFLICT (user_id) DO UPDATE
		 SET messages = EXCLUDED.messages, updated_at = EXCLUDED.updated_at`,
		s.ID, s.UserID, messages, s.CreatedAt, s.UpdatedAt,
	)
	return err
}
