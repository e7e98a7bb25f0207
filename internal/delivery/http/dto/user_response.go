package dto

import (
	"time"

	"internhub/internal/domain/user"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	University     string    `json:"university"`
	Major          string    `json:"major"`
	GraduationYear *int      `json:"graduation_year,omitempty"`
	Bio            string    `json:"bio"`
	Skills         []string  `json:"skills"`
	Interests      []string  `json:"interests"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func FromUser(u user.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Email:          u.Email,
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		University:     u.University,
		Major:          u.Major,
		GraduationYear: u.GraduationYear,
		Bio:            u.Bio,
		Skills:         emptyIfNil(u.Skills),
		Interests:      emptyIfNil(u.Interests),
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      u.UpdatedAt,
	}
}

// emptyIfNil keeps list fields rendering as [] instead of null.
func emptyIfNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
