package dto

import (
	"time"

	"internhub/internal/domain/internship"
	"internhub/internal/usecase"

	"github.com/google/uuid"
)

type InternshipResponse struct {
	ID                  uuid.UUID `json:"id"`
	Title               string    `json:"title"`
	Company             string    `json:"company"`
	Location            string    `json:"location"`
	Type                string    `json:"type"`
	Duration            string    `json:"duration"`
	Description         string    `json:"description"`
	Requirements        []string  `json:"requirements"`
	Skills              []string  `json:"skills"`
	Salary              string    `json:"salary"`
	ApplicationDeadline time.Time `json:"application_deadline"`
	PostedAt            time.Time `json:"posted_at"`
	Industry            string    `json:"industry"`
}

func FromInternship(i internship.Internship) InternshipResponse {
	return InternshipResponse{
		ID:                  i.ID,
		Title:               i.Title,
		Company:             i.Company,
		Location:            i.Location,
		Type:                i.Type,
		Duration:            i.Duration,
		Description:         i.Description,
		Requirements:        emptyIfNil(i.Requirements),
		Skills:              emptyIfNil(i.Skills),
		Salary:              i.Salary,
		ApplicationDeadline: i.ApplicationDeadline,
		PostedAt:            i.PostedAt,
		Industry:            i.Industry,
	}
}

type InternshipDetailResponse struct {
	InternshipResponse

	HasApplied   bool     `json:"has_applied"`
	MatchScore   int      `json:"match_score"`
	SkillMatches []string `json:"skill_matches"`
}

func FromInternshipDetail(d usecase.InternshipDetail) InternshipDetailResponse {
	return InternshipDetailResponse{
		InternshipResponse: FromInternship(d.Internship),
		HasApplied:         d.HasApplied,
		MatchScore:         d.MatchScore,
		SkillMatches:       emptyIfNil(d.SkillMatches),
	}
}

type RecommendationResponse struct {
	InternshipResponse

	RecommendationScore int      `json:"recommendation_score"`
	MatchReasons        []string `json:"match_reasons"`
	SkillMatches        []string `json:"skill_matches"`
	DaysUntilDeadline   int      `json:"days_until_deadline"`
}

func FromRecommendations(items []usecase.RecommendedInternship) []RecommendationResponse {
	out := make([]RecommendationResponse, 0, len(items))
	for _, it := range items {
		out = append(out, RecommendationResponse{
			InternshipResponse:  FromInternship(it.Internship),
			RecommendationScore: it.RecommendationScore,
			MatchReasons:        emptyIfNil(it.MatchReasons),
			SkillMatches:        emptyIfNil(it.SkillMatches),
			DaysUntilDeadline:   it.DaysUntilDeadline,
		})
	}
	return out
}

type SearchItemResponse struct {
	InternshipResponse

	MatchScore int `json:"match_score"`
}

type SearchResponse struct {
	Internships []SearchItemResponse `json:"internships"`
	Pagination  usecase.Pagination   `json:"pagination"`
}

func FromSearchResult(res usecase.SearchResult) SearchResponse {
	items := make([]SearchItemResponse, 0, len(res.Items))
	for _, it := range res.Items {
		items = append(items, SearchItemResponse{
			InternshipResponse: FromInternship(it.Internship),
			MatchScore:         it.MatchScore,
		})
	}
	return SearchResponse{Internships: items, Pagination: res.Pagination}
}
