package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"internhub/internal/domain/mentor"
	"internhub/internal/repository"
)

type MentorSessionRepository struct {
	mu     sync.RWMutex
	byUser map[uuid.UUID]mentor.Session
}

func NewMentorSessionRepository() *MentorSessionRepository {
	return &MentorSessionRepository{byUser: make(map[uuid.UUID]mentor.Session)}
}

func (r *MentorSessionRepository) GetByUserID(ctx context.Context, userID uuid.UUID) (mentor.Session, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.byUser[userID]
	if !ok {
		return mentor.Session{}, repository.ErrNotFound
	}
	return copySession(s), nil
}

func (r *MentorSessionRepository) Save(ctx context.Context, s mentor.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.byUser[s.UserID] = copySession(s)
	return nil
}

func copySession(s mentor.Session) mentor.Session {
	if s.Messages != nil {
		msgs := make([]mentor.Message, len(s.Messages))
		copy(msgs, s.Messages)
		s.Messages = msgs
	}
	return s
}
