package scoring

import "testing"

func TestProfileStrength_EmptyProfile(t *testing.T) {
	rep := ProfileStrength(Profile{}, 0, 0)
	if rep.OverallScore != 0 {
		t.Fatalf("expected 0, got %d", rep.OverallScore)
	}
	if len(rep.Factors) != 4 {
		t.Fatalf("expected 4 factors, got %d", len(rep.Factors))
	}
	if rep.Recommendations[0] != "Complete your basic profile information" {
		t.Fatalf("expected low-score recommendations, got %v", rep.Recommendations)
	}
}

func TestProfileStrength_BasicInfoOnly(t *testing.T) {
	p := Profile{
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Email:      "ada@example.com",
		University: "Cambridge",
		Major:      "Mathematics",
		Bio:        "First programmer.",
	}
	rep := ProfileStrength(p, 0, 0)
	if rep.OverallScore != 30 {
		t.Fatalf("expected 30 from basic info alone, got %d", rep.OverallScore)
	}
	if rep.Factors[0].Score != 30 || len(rep.Factors[0].Suggestions) != 0 {
		t.Fatalf("unexpected basic factor: %+v", rep.Factors[0])
	}
}

func TestProfileStrength_SkillsCapped(t *testing.T) {
	skills := make([]string, 20)
	for i := range skills {
		skills[i] = "skill"
	}
	rep := ProfileStrength(Profile{Skills: skills}, 0, 0)
	if rep.Factors[1].Score != 25 {
		t.Fatalf("skills category must cap at 25, got %d", rep.Factors[1].Score)
	}
}

func TestProfileStrength_NeverExceeds100(t *testing.T) {
	p := Profile{
		FirstName: "A", LastName: "B", Email: "a@b.c",
		University: "U", Major: "M", Bio: "bio",
		Skills: []string{"a", "b", "c", "d", "e", "f", "g", "h", "i"},
	}
	rep := ProfileStrength(p, 3, 2)
	if rep.OverallScore < 0 || rep.OverallScore > 100 {
		t.Fatalf("score out of range: %d", rep.OverallScore)
	}
	if rep.OverallScore != 100 {
		t.Fatalf("expected 100, got %d", rep.OverallScore)
	}
	if rep.Recommendations[0] != "Apply to relevant internships" {
		t.Fatalf("expected high-score recommendations, got %v", rep.Recommendations)
	}
}

func TestProfileStrength_MidBucket(t *testing.T) {
	p := Profile{
		FirstName: "A", LastName: "B", Email: "a@b.c",
		University: "U", Major: "M", Bio: "bio",
		Skills: []string{"Go", "SQL"},
	}
	rep := ProfileStrength(p, 1, 0) // 30 + 6 + 20 = 56
	if rep.OverallScore != 56 {
		t.Fatalf("expected 56, got %d", rep.OverallScore)
	}
	if rep.Recommendations[0] != "Add more skills and take assessments" {
		t.Fatalf("expected mid-score recommendations, got %v", rep.Recommendations)
	}
}
