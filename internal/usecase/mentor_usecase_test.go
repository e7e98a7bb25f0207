package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"internhub/internal/domain/mentor"
	"internhub/internal/repository/memory"
)

func newMentorFixture(t *testing.T) *Mentor {
	t.Helper()
	uc := NewMentorUsecase(memory.NewMentorSessionRepository())
	uc.now = func() time.Time { return fixedNow }
	return uc
}

func TestMentorSessionSeededWithWelcome(t *testing.T) {
	uc := newMentorFixture(t)
	userID := uuid.New()

	s, err := uc.Session(context.Background(), userID)
	if err != nil {
		t.Fatalf("session: %v", err)
	}
	if len(s.Messages) != 1 {
		t.Fatalf("expected single welcome message, got %d", len(s.Messages))
	}
	if s.Messages[0].Sender != mentor.SenderMentor {
		t.Fatalf("welcome must come from the mentor, got %q", s.Messages[0].Sender)
	}

	again, err := uc.Session(context.Background(), userID)
	if err != nil {
		t.Fatalf("second session fetch: %v", err)
	}
	if len(again.Messages) != 1 {
		t.Fatalf("refetching must not duplicate the welcome, got %d", len(again.Messages))
	}
}

func TestMentorSendMessageAppendsPair(t *testing.T) {
	uc := newMentorFixture(t)
	userID := uuid.New()

	s, err := uc.SendMessage(context.Background(), userID, "How should I prepare for an interview?")
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if len(s.Messages) != 2 {
		t.Fatalf("expected user + mentor messages, got %d", len(s.Messages))
	}
	if s.Messages[0].Sender != mentor.SenderUser || s.Messages[1].Sender != mentor.SenderMentor {
		t.Fatalf("unexpected sender order: %+v", s.Messages)
	}
	if !strings.Contains(s.Messages[1].Content, "Research the company") {
		t.Fatalf("reply not topical: %q", s.Messages[1].Content)
	}

	s, err = uc.SendMessage(context.Background(), userID, "thanks")
	if err != nil {
		t.Fatalf("second send: %v", err)
	}
	if len(s.Messages) != 4 {
		t.Fatalf("history must accumulate, got %d messages", len(s.Messages))
	}
}

func TestMentorSendEmptyMessage(t *testing.T) {
	uc := newMentorFixture(t)

	_, err := uc.SendMessage(context.Background(), uuid.New(), "   ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
