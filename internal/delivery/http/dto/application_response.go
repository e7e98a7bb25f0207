package dto

import (
	"time"

	"internhub/internal/domain/application"
	"internhub/internal/usecase"

	"github.com/google/uuid"
)

type ApplicationResponse struct {
	ID           uuid.UUID `json:"id"`
	InternshipID uuid.UUID `json:"internship_id"`
	Status       string    `json:"status"`
	AppliedAt    time.Time `json:"applied_at"`
	Notes        string    `json:"notes,omitempty"`
}

func FromApplication(a application.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:           a.ID,
		InternshipID: a.InternshipID,
		Status:       a.Status,
		AppliedAt:    a.AppliedAt,
		Notes:        a.Notes,
	}
}

type ApplicationWithInternshipResponse struct {
	ApplicationResponse

	Internship InternshipResponse `json:"internship"`
}

func FromApplicationList(items []usecase.ApplicationWithInternship) []ApplicationWithInternshipResponse {
	out := make([]ApplicationWithInternshipResponse, 0, len(items))
	for _, it := range items {
		out = append(out, ApplicationWithInternshipResponse{
			ApplicationResponse: FromApplication(it.Application),
			Internship:          FromInternship(it.Internship),
		})
	}
	return out
}
