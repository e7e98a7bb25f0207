package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"internhub/internal/repository/memory"
)

func newSkillFixture(t *testing.T) (*Skills, *memory.UserRepository, *memory.InternshipRepository, *stubNotifier) {
	t.Helper()
	users := memory.NewUserRepository()
	internships := memory.NewInternshipRepository()
	notifier := &stubNotifier{}

	uc := NewSkillUsecase(users, memory.NewSkillAssessmentRepository(), internships, notifier)
	uc.now = func() time.Time { return fixedNow }
	return uc, users, internships, notifier
}

func TestAssessGradesAndAddsSkill(t *testing.T) {
	uc, users, _, notifier := newSkillFixture(t)
	u := seedUser(t, users, []string{"React"}, nil)

	a, err := uc.Assess(context.Background(), u.ID, "SQL", []bool{true, true, true, false})
	if err != nil {
		t.Fatalf("assess: %v", err)
	}
	if a.Score != 75 {
		t.Fatalf("expected score 75, got %d", a.Score)
	}
	if a.Level != "Advanced" {
		t.Fatalf("expected Advanced for 75, got %q", a.Level)
	}

	updated, _ := users.GetByID(context.Background(), u.ID)
	if !updated.HasSkill("SQL") {
		t.Fatal("assessed skill not added to profile")
	}

	if len(notifier.sent) != 1 || notifier.sent[0].Title != "Skill Assessment Complete" {
		t.Fatalf("missing assessment notification: %+v", notifier.sent)
	}
}

func TestAssessReplacesPriorRecord(t *testing.T) {
	uc, users, _, _ := newSkillFixture(t)
	u := seedUser(t, users, nil, nil)

	if _, err := uc.Assess(context.Background(), u.ID, "Go", []bool{false, false, true}); err != nil {
		t.Fatalf("first assess: %v", err)
	}
	if _, err := uc.Assess(context.Background(), u.ID, "Go", []bool{true, true, true}); err != nil {
		t.Fatalf("second assess: %v", err)
	}

	list, err := uc.ListAssessments(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("re-assessment must replace, got %d records", len(list))
	}
	if list[0].Score != 100 {
		t.Fatalf("expected replaced score 100, got %d", list[0].Score)
	}
}

func TestAssessValidation(t *testing.T) {
	uc, users, _, _ := newSkillFixture(t)
	u := seedUser(t, users, nil, nil)

	if _, err := uc.Assess(context.Background(), u.ID, "", []bool{true}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("empty skill: expected ErrInvalidInput, got %v", err)
	}
	if _, err := uc.Assess(context.Background(), u.ID, "Go", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("no answers: expected ErrInvalidInput, got %v", err)
	}
}

func TestGapAnalysisRequiresSkills(t *testing.T) {
	uc, users, _, _ := newSkillFixture(t)
	u := seedUser(t, users, []string{"React"}, nil)

	if _, err := uc.GapAnalysis(context.Background(), u.ID, "Frontend Engineer", nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty required skills, got %v", err)
	}
}

func TestGapAnalysisNotifiesBelowThreshold(t *testing.T) {
	uc, users, _, notifier := newSkillFixture(t)
	u := seedUser(t, users, []string{"React"}, nil)

	report, err := uc.GapAnalysis(context.Background(), u.ID, "Fullstack Engineer", []string{"React", "Node.js", "SQL"})
	if err != nil {
		t.Fatalf("gap analysis: %v", err)
	}
	if report.MatchPercentage != 33 {
		t.Fatalf("expected 33%%, got %d", report.MatchPercentage)
	}
	if len(report.Missing) != 2 {
		t.Fatalf("expected 2 missing skills, got %v", report.Missing)
	}
	if len(notifier.sent) != 1 || notifier.sent[0].Title != "Skill Gap Identified" {
		t.Fatalf("expected gap notification: %+v", notifier.sent)
	}
}

func TestGapAnalysisNoNotificationAtThreshold(t *testing.T) {
	uc, users, _, notifier := newSkillFixture(t)
	u := seedUser(t, users, []string{"React", "Node.js", "SQL"}, nil)

	report, err := uc.GapAnalysis(context.Background(), u.ID, "Fullstack Engineer", []string{"React", "Node.js", "SQL", "Docker"})
	if err != nil {
		t.Fatalf("gap analysis: %v", err)
	}
	if report.MatchPercentage != 75 {
		t.Fatalf("expected 75%%, got %d", report.MatchPercentage)
	}
	if len(notifier.sent) != 0 {
		t.Fatalf("no notification expected at %d%%: %+v", report.MatchPercentage, notifier.sent)
	}
}

func TestSkillRecommendationsTrending(t *testing.T) {
	uc, users, internships, _ := newSkillFixture(t)
	u := seedUser(t, users, []string{"React"}, []string{"data"})

	for i := 0; i < 6; i++ {
		seedInternship(t, internships, "Intern", []string{"React", "Python"}, i, 30)
	}
	seedInternship(t, internships, "Intern", []string{"SQL"}, 1, 30)

	report, err := uc.Recommendations(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("recommendations: %v", err)
	}

	if len(report.TrendingSkills) == 0 {
		t.Fatal("expected trending skills")
	}
	top := report.TrendingSkills[0]
	if top.Frequency != 6 || top.Demand != "High" {
		t.Fatalf("unexpected top trend: %+v", top)
	}

	for _, s := range report.PersonalizedRecommendations {
		if s.Skill == "React" {
			t.Fatal("owned skill must not be recommended")
		}
		if s.EstimatedLearningTime == "" || len(s.Resources) != 3 {
			t.Fatalf("incomplete suggestion: %+v", s)
		}
	}
}
