package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"internhub/internal/repository/memory"
)

func TestApplyOncePerInternship(t *testing.T) {
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()
	applications := memory.NewApplicationRepository()
	notifier := &stubNotifier{}

	u := seedUser(t, users, nil, nil)
	in := seedInternship(t, internships, "Backend Intern", []string{"Go"}, 1, 30)

	uc := NewApplicationUsecase(applications, internships, notifier)
	uc.now = func() time.Time { return fixedNow }

	app, err := uc.Apply(context.Background(), u.ID, in.ID, "excited to join")
	if err != nil {
		t.Fatalf("first apply: %v", err)
	}
	if app.Status != "Applied" {
		t.Fatalf("unexpected status %q", app.Status)
	}

	if _, err := uc.Apply(context.Background(), u.ID, in.ID, ""); !errors.Is(err, ErrAlreadyApplied) {
		t.Fatalf("expected ErrAlreadyApplied, got %v", err)
	}

	list, err := uc.List(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("application count must stay 1, got %d", len(list))
	}
	if list[0].Internship.Title != "Backend Intern" {
		t.Fatalf("listing not enriched with internship: %+v", list[0])
	}
}

func TestApplyUnknownInternship(t *testing.T) {
	uc := NewApplicationUsecase(memory.NewApplicationRepository(), memory.NewInternshipRepository(), &stubNotifier{})

	_, err := uc.Apply(context.Background(), uuid.New(), uuid.New(), "")
	if !errors.Is(err, ErrInternshipNotFound) {
		t.Fatalf("expected ErrInternshipNotFound, got %v", err)
	}
}

func TestApplyDeadlineReminder(t *testing.T) {
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()
	applications := memory.NewApplicationRepository()
	notifier := &stubNotifier{}

	u := seedUser(t, users, nil, nil)
	soon := seedInternship(t, internships, "Urgent Intern", []string{"Go"}, 1, 5)

	uc := NewApplicationUsecase(applications, internships, notifier)
	uc.now = func() time.Time { return fixedNow }

	if _, err := uc.Apply(context.Background(), u.ID, soon.ID, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}

	if len(notifier.sent) != 2 {
		t.Fatalf("expected submission + deadline notifications, got %d", len(notifier.sent))
	}
	if notifier.sent[1].Title != "Application Deadline Reminder" {
		t.Fatalf("unexpected second notification %q", notifier.sent[1].Title)
	}
}

func TestApplyDistantDeadlineNoReminder(t *testing.T) {
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()
	notifier := &stubNotifier{}

	u := seedUser(t, users, nil, nil)
	in := seedInternship(t, internships, "Relaxed Intern", []string{"Go"}, 1, 45)

	uc := NewApplicationUsecase(memory.NewApplicationRepository(), internships, notifier)
	uc.now = func() time.Time { return fixedNow }

	if _, err := uc.Apply(context.Background(), u.ID, in.ID, ""); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected only the submission notification, got %d", len(notifier.sent))
	}
}
