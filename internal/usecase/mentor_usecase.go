package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"internhub/internal/advisor"
	"internhub/internal/domain/mentor"
	"internhub/internal/repository"
)

const mentorWelcomeMessage = "Hello! I'm your AI career mentor. I'm here to help you with resume tips, interview preparation, skill development, and career planning. What would you like to discuss today?"

type MentorUsecase interface {
	Session(ctx context.Context, userID uuid.UUID) (mentor.Session, error)
	SendMessage(ctx context.Context, userID uuid.UUID, message string) (mentor.Session, error)
}

type Mentor struct {
	sessions repository.MentorSessionRepository

	newID func() uuid.UUID
	now   func() time.Time
}

func NewMentorUsecase(sessions repository.MentorSessionRepository) *Mentor {
	return &Mentor{sessions: sessions, newID: uuid.New, now: time.Now}
}

// Session returns the user's chat session, creating one seeded with
// the mentor's welcome message on first access.
func (u *Mentor) Session(ctx context.Context, userID uuid.UUID) (mentor.Session, error) {
	s, err := u.sessions.GetByUserID(ctx, userID)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return mentor.Session{}, ErrInternal
	}

	now := u.now()
	s = mentor.Session{
		ID:     u.newID(),
		UserID: userID,
		Messages: []mentor.Message{{
			ID:        u.newID(),
			Content:   mentorWelcomeMessage,
			Sender:    mentor.SenderMentor,
			Timestamp: now,
		}},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := u.sessions.Save(ctx, s); err != nil {
		return mentor.Session{}, ErrInternal
	}
	return s, nil
}

// SendMessage appends the user's message and the generated mentor
// reply to the session.
func (u *Mentor) SendMessage(ctx context.Context, userID uuid.UUID, message string) (mentor.Session, error) {
	if strings.TrimSpace(message) == "" {
		return mentor.Session{}, missingField("message")
	}

	s, err := u.sessions.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return mentor.Session{}, ErrInternal
		}
		now := u.now()
		s = mentor.Session{
			ID:        u.newID(),
			UserID:    userID,
			Messages:  []mentor.Message{},
			CreatedAt: now,
			UpdatedAt: now,
		}
	}

	now := u.now()
	s.Messages = append(s.Messages,
		mentor.Message{
			ID:        u.newID(),
			Content:   message,
			Sender:    mentor.SenderUser,
			Timestamp: now,
		},
		mentor.Message{
			ID:        u.newID(),
			Content:   advisor.Reply(message),
			Sender:    mentor.SenderMentor,
			Timestamp: now,
		},
	)
	s.UpdatedAt = now

	if err := u.sessions.Save(ctx, s); err != nil {
		return mentor.Session{}, ErrInternal
	}
	return s, nil
}
