package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"internhub/internal/domain/internship"
	"internhub/internal/domain/user"
	"internhub/internal/repository/memory"
)

type sentNotification struct {
	UserID  uuid.UUID
	Title   string
	Message string
	Type    string
}

type stubNotifier struct {
	sent []sentNotification
}

func (s *stubNotifier) Notify(_ context.Context, userID uuid.UUID, title, message, typ, _ string) {
	s.sent = append(s.sent, sentNotification{UserID: userID, Title: title, Message: message, Type: typ})
}

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func seedUser(t *testing.T, users *memory.UserRepository, skills, interests []string) user.User {
	t.Helper()
	u := user.User{
		ID:        uuid.New(),
		Email:     "student@campus.edu",
		FirstName: "Sam",
		LastName:  "Lee",
		Major:     "Computer Science",
		Skills:    skills,
		Interests: interests,
	}
	if err := users.Create(context.Background(), u); err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedInternship(t *testing.T, repo *memory.InternshipRepository, title string, skills []string, postedDaysAgo, deadlineInDays int) internship.Internship {
	t.Helper()
	in := internship.Internship{
		ID:                  uuid.New(),
		Title:               title,
		Company:             "TechCorp",
		Location:            "Remote",
		Type:                internship.TypeRemote,
		Description:         "Work on production systems",
		Skills:              skills,
		Industry:            "Technology",
		PostedAt:            fixedNow.AddDate(0, 0, -postedDaysAgo),
		ApplicationDeadline: fixedNow.AddDate(0, 0, deadlineInDays),
	}
	if err := repo.Create(context.Background(), in); err != nil {
		t.Fatalf("seed internship: %v", err)
	}
	return in
}

func TestRecommendationsFilterSortLimit(t *testing.T) {
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()
	notifier := &stubNotifier{}

	u := seedUser(t, users, []string{"React", "TypeScript", "Node.js"}, []string{"web"})
	seedInternship(t, internships, "Frontend Intern", []string{"React", "TypeScript"}, 1, 20)
	seedInternship(t, internships, "Fullstack Intern", []string{"React", "Node.js", "SQL"}, 2, 20)
	// Nothing in common: scores at or below the floor get dropped.
	seedInternship(t, internships, "Embedded Intern", []string{"C", "Rust"}, 100, 100)

	uc := NewRecommendationUsecase(users, internships, notifier)
	uc.now = func() time.Time { return fixedNow }

	recs, err := uc.Recommendations(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}

	if len(recs) != 2 {
		t.Fatalf("expected 2 recommendations, got %d", len(recs))
	}
	for i, r := range recs {
		if r.RecommendationScore <= recommendationMinScore {
			t.Fatalf("entry %d below floor: %d", i, r.RecommendationScore)
		}
		if i > 0 && recs[i-1].RecommendationScore < r.RecommendationScore {
			t.Fatalf("not sorted descending at %d", i)
		}
	}

	if len(notifier.sent) != 1 {
		t.Fatalf("expected one notification, got %d", len(notifier.sent))
	}
	if notifier.sent[0].Title != "New Internship Recommendations" {
		t.Fatalf("unexpected notification title %q", notifier.sent[0].Title)
	}
}

func TestRecommendationsCapAtTen(t *testing.T) {
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()
	notifier := &stubNotifier{}

	u := seedUser(t, users, []string{"Go"}, nil)
	for i := 0; i < 15; i++ {
		seedInternship(t, internships, "Backend Intern", []string{"Go"}, i, 20)
	}

	uc := NewRecommendationUsecase(users, internships, notifier)
	uc.now = func() time.Time { return fixedNow }

	recs, err := uc.Recommendations(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if len(recs) != recommendationLimit {
		t.Fatalf("expected %d recommendations, got %d", recommendationLimit, len(recs))
	}
}

func TestRecommendationsUnknownUser(t *testing.T) {
	uc := NewRecommendationUsecase(memory.NewUserRepository(), memory.NewInternshipRepository(), &stubNotifier{})

	_, err := uc.Recommendations(context.Background(), uuid.New())
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestRecommendationsEmptyResultNoNotification(t *testing.T) {
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()
	notifier := &stubNotifier{}

	u := seedUser(t, users, []string{"COBOL"}, nil)
	seedInternship(t, internships, "Design Intern", []string{"Figma"}, 90, 120)

	uc := NewRecommendationUsecase(users, internships, notifier)
	uc.now = func() time.Time { return fixedNow }

	recs, err := uc.Recommendations(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}
	if len(recs) != 0 {
		t.Fatalf("expected no recommendations, got %d", len(recs))
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("no notification expected, got %d", len(notifier.sent))
	}
}
