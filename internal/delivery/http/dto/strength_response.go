package dto

import "internhub/internal/domain/scoring"

type StrengthFactorResponse struct {
	Category    string   `json:"category"`
	Score       int      `json:"score"`
	MaxScore    int      `json:"max_score"`
	Suggestions []string `json:"suggestions"`
}

type StrengthResponse struct {
	OverallScore    int                      `json:"overall_score"`
	Factors         []StrengthFactorResponse `json:"factors"`
	Recommendations []string                 `json:"recommendations"`
}

func FromStrengthReport(r scoring.StrengthReport) StrengthResponse {
	factors := make([]StrengthFactorResponse, 0, len(r.Factors))
	for _, f := range r.Factors {
		factors = append(factors, StrengthFactorResponse{
			Category:    f.Category,
			Score:       f.Score,
			MaxScore:    f.MaxScore,
			Suggestions: emptyIfNil(f.Suggestions),
		})
	}
	return StrengthResponse{
		OverallScore:    r.OverallScore,
		Factors:         factors,
		Recommendations: emptyIfNil(r.Recommendations),
	}
}
