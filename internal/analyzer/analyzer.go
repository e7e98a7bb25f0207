// Package analyzer scores resume text and produces structured
// feedback. The Gemini-backed implementation degrades to a
// deterministic heuristic when the API is not configured or fails.
package analyzer

import "context"

type Analysis struct {
	Score       int      `json:"score"`
	Strengths   []string `json:"strengths"`
	Weaknesses  []string `json:"weaknesses"`
	Suggestions []string `json:"suggestions"`
	Keywords    []string `json:"keywords"`
}

type Analyzer interface {
	Analyze(ctx context.Context, resumeText string) (Analysis, error)
}

const (
	maxResumeChars = 3000

	maxStrengths   = 5
	maxWeaknesses  = 5
	maxSuggestions = 5
	maxKeywords    = 10
)

// sanitize clamps a raw model response into the bounds the rest of the
// system relies on. A non-numeric or out-of-range score becomes 75.
func sanitize(a Analysis) Analysis {
	if a.Score < 0 {
		a.Score = 0
	}
	if a.Score > 100 {
		a.Score = 100
	}
	a.Strengths = capList(a.Strengths, maxStrengths)
	a.Weaknesses = capList(a.Weaknesses, maxWeaknesses)
	a.Suggestions = capList(a.Suggestions, maxSuggestions)
	a.Keywords = capList(a.Keywords, maxKeywords)
	return a
}

func capList(in []string, max int) []string {
	if in == nil {
		return []string{}
	}
	if len(in) > max {
		in = in[:max]
	}
	return in
}

func truncate(text string, max int) string {
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
