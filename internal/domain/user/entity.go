package user

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID
	Email          string
	PasswordHash   string
	FirstName      string
	LastName       string
	University     string
	Major          string
	GraduationYear *int
	Bio            string
	Skills         []string
	Interests      []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AddSkill appends the skill unless already present and reports
// whether the set changed.
func (u *User) AddSkill(skill string) bool {
	for _, s := range u.Skills {
		if s == skill {
			return false
		}
	}
	u.Skills = append(u.Skills, skill)
	return true
}

func (u User) HasSkill(skill string) bool {
	for _, s := range u.Skills {
		if s == skill {
			return true
		}
	}
	return false
}
