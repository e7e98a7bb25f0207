package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"internhub/internal/repository/memory"
)

func TestInternshipDetail(t *testing.T) {
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()
	applications := memory.NewApplicationRepository()

	u := seedUser(t, users, []string{"React", "TypeScript"}, nil)
	in := seedInternship(t, internships, "Frontend Intern", []string{"React", "TypeScript", "Node.js", "SQL"}, 1, 30)

	uc := NewInternshipUsecase(internships, applications, users)

	detail, err := uc.Detail(context.Background(), u.ID, in.ID)
	if err != nil {
		t.Fatalf("detail: %v", err)
	}
	if detail.HasApplied {
		t.Fatal("no application yet")
	}
	if detail.MatchScore != 50 {
		t.Fatalf("expected 50%% match, got %d", detail.MatchScore)
	}
	if len(detail.SkillMatches) != 2 || detail.SkillMatches[0] != "React" {
		t.Fatalf("unexpected skill matches: %v", detail.SkillMatches)
	}

	au := NewApplicationUsecase(applications, internships, &stubNotifier{})
	au.now = func() time.Time { return fixedNow }
	if _, err := au.Apply(context.Background(), u.ID, in.ID, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}

	detail, _ = uc.Detail(context.Background(), u.ID, in.ID)
	if !detail.HasApplied {
		t.Fatal("application not reflected in detail")
	}
}

func TestInternshipDetailNotFound(t *testing.T) {
	uc := NewInternshipUsecase(memory.NewInternshipRepository(), memory.NewApplicationRepository(), memory.NewUserRepository())

	_, err := uc.Detail(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrInternshipNotFound) {
		t.Fatalf("expected ErrInternshipNotFound, got %v", err)
	}
}

func TestNotificationMarkReadUnknown(t *testing.T) {
	uc := NewNotificationUsecase(memory.NewNotificationRepository())

	err := uc.MarkRead(context.Background(), uuid.New(), uuid.New())
	if !errors.Is(err, ErrNotificationNotFound) {
		t.Fatalf("expected ErrNotificationNotFound, got %v", err)
	}
}
