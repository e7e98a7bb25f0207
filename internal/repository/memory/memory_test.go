package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"internhub/internal/domain/application"
	"internhub/internal/domain/assessment"
	"internhub/internal/domain/goal"
	"internhub/internal/domain/notification"
	"internhub/internal/domain/user"
	"internhub/internal/repository"
)

func TestUserRepositoryDuplicateEmail(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	first := user.User{ID: uuid.New(), Email: "jane@campus.edu"}
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("create: %v", err)
	}
	second := user.User{ID: uuid.New(), Email: "Jane@Campus.edu"}
	if err := repo.Create(ctx, second); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	got, err := repo.GetByEmail(ctx, "JANE@campus.edu")
	if err != nil {
		t.Fatalf("get by email: %v", err)
	}
	if got.ID != first.ID {
		t.Fatalf("lookup returned wrong user")
	}
}

func TestUserRepositoryUpdateIsolation(t *testing.T) {
	repo := NewUserRepository()
	ctx := context.Background()

	u := user.User{ID: uuid.New(), Email: "a@b.c", Skills: []string{"Go"}}
	if err := repo.Create(ctx, u); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, _ := repo.GetByID(ctx, u.ID)
	got.Skills[0] = "mutated"

	again, _ := repo.GetByID(ctx, u.ID)
	if again.Skills[0] != "Go" {
		t.Fatalf("stored user aliases caller slice")
	}
}

func TestApplicationRepositoryRejectsDouble(t *testing.T) {
	repo := NewApplicationRepository()
	ctx := context.Background()
	userID, internshipID := uuid.New(), uuid.New()

	a := application.Application{ID: uuid.New(), UserID: userID, InternshipID: internshipID, Status: application.StatusApplied}
	if err := repo.Create(ctx, a); err != nil {
		t.Fatalf("create: %v", err)
	}
	a.ID = uuid.New()
	if err := repo.Create(ctx, a); !errors.Is(err, repository.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	ok, err := repo.ExistsByUserAndInternship(ctx, userID, internshipID)
	if err != nil || !ok {
		t.Fatalf("expected existing application, ok=%v err=%v", ok, err)
	}
}

func TestNotificationRepositoryOrderAndMarkRead(t *testing.T) {
	repo := NewNotificationRepository()
	ctx := context.Background()
	userID := uuid.New()
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	old := notification.Notification{ID: uuid.New(), UserID: userID, Title: "old", CreatedAt: base}
	recent := notification.Notification{ID: uuid.New(), UserID: userID, Title: "recent", CreatedAt: base.Add(time.Hour)}
	repo.Create(ctx, old)
	repo.Create(ctx, recent)

	list, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(list) != 2 || list[0].Title != "recent" {
		t.Fatalf("expected newest first, got %+v", list)
	}

	if err := repo.MarkRead(ctx, userID, old.ID); err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if err := repo.MarkRead(ctx, uuid.New(), old.ID); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("foreign user must not see the notification, got %v", err)
	}

	list, _ = repo.FindByUserID(ctx, userID)
	for _, n := range list {
		if n.ID == old.ID && !n.Read {
			t.Fatalf("notification not marked read")
		}
	}
}

func TestSkillAssessmentRepositoryReplace(t *testing.T) {
	repo := NewSkillAssessmentRepository()
	ctx := context.Background()
	userID := uuid.New()

	first := assessment.SkillAssessment{ID: uuid.New(), UserID: userID, Skill: "React", Level: assessment.LevelBeginner, Score: 40}
	repo.Replace(ctx, first)

	second := assessment.SkillAssessment{ID: uuid.New(), UserID: userID, Skill: "React", Level: assessment.LevelAdvanced, Score: 85}
	repo.Replace(ctx, second)

	list, err := repo.FindByUserID(ctx, userID)
	if err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected single record per skill, got %d", len(list))
	}
	if list[0].Score != 85 || list[0].ID != first.ID {
		t.Fatalf("replace must keep the original id and take the new score, got %+v", list[0])
	}
}

func TestCareerGoalRepositoryUpdateTouchesProgressOnly(t *testing.T) {
	repo := NewCareerGoalRepository()
	ctx := context.Background()

	g := goal.CareerGoal{
		ID:         uuid.New(),
		UserID:     uuid.New(),
		Title:      "Become a Backend Engineer",
		Milestones: []goal.Milestone{{ID: uuid.New(), Title: "Learn SQL"}},
	}
	if err := repo.Create(ctx, g); err != nil {
		t.Fatalf("create: %v", err)
	}

	g.Title = "renamed"
	g.Milestones[0].Completed = true
	g.Progress = 100
	if err := repo.Update(ctx, g); err != nil {
		t.Fatalf("update: %v", err)
	}

	got, _ := repo.GetByID(ctx, g.ID)
	if got.Title != "Become a Backend Engineer" {
		t.Fatalf("update must not change the title")
	}
	if got.Progress != 100 || !got.Milestones[0].Completed {
		t.Fatalf("milestones/progress not persisted: %+v", got)
	}
}
