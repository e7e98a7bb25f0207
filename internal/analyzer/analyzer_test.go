package analyzer

import (
	"context"
	"reflect"
	"testing"
)

func TestParseAnalysisPlainJSON(t *testing.T) {
	raw := `{"score": 82, "strengths": ["s1"], "weaknesses": ["w1"], "suggestions": ["g1"], "keywords": ["React"]}`

	a, err := parseAnalysis(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a.Score != 82 || len(a.Strengths) != 1 || a.Keywords[0] != "React" {
		t.Fatalf("unexpected analysis: %+v", a)
	}
}

func TestParseAnalysisFencedResponse(t *testing.T) {
	raw := "Here is the analysis:\n```json\n{\"score\": 150, \"strengths\": [\"a\",\"b\",\"c\",\"d\",\"e\",\"f\"]}\n```"

	a, err := parseAnalysis(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if a.Score != 100 {
		t.Fatalf("score not clamped to 100: %d", a.Score)
	}
	if len(a.Strengths) != maxStrengths {
		t.Fatalf("strengths not capped: %d", len(a.Strengths))
	}
	if a.Keywords == nil || a.Weaknesses == nil {
		t.Fatal("missing lists must come back empty, not nil")
	}
}

func TestParseAnalysisNoJSON(t *testing.T) {
	if _, err := parseAnalysis("I could not analyze this resume."); err == nil {
		t.Fatal("expected error for non-JSON reply")
	}
}

func TestHeuristicAnalyzerDeterministic(t *testing.T) {
	h := NewHeuristicAnalyzer()
	ctx := context.Background()

	first, err := h.Analyze(ctx, "Jane Doe\nReact developer, 3 years")
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}
	second, _ := h.Analyze(ctx, "Jane Doe\nReact developer, 3 years")
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("same text must yield the same analysis:\n%+v\n%+v", first, second)
	}

	if first.Score < 70 || first.Score > 99 {
		t.Fatalf("score out of heuristic range: %d", first.Score)
	}
	if len(first.Strengths) < 1 || len(first.Strengths) > 3 {
		t.Fatalf("strengths count out of range: %d", len(first.Strengths))
	}
}

func TestHeuristicAnalyzerVariesAcrossResumes(t *testing.T) {
	h := NewHeuristicAnalyzer()
	ctx := context.Background()

	a, _ := h.Analyze(ctx, "resume one")
	b, _ := h.Analyze(ctx, "a completely different resume")
	if reflect.DeepEqual(a, b) {
		t.Fatal("different resumes should not collide on every field")
	}
}
