package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"internhub/internal/domain/internship"
	"internhub/internal/domain/scoring"
	"internhub/internal/repository"
)

type InternshipDetail struct {
	Internship   internship.Internship
	HasApplied   bool
	MatchScore   int
	SkillMatches []string
}

type InternshipUsecase interface {
	Detail(ctx context.Context, userID, internshipID uuid.UUID) (InternshipDetail, error)
}

type Internship struct {
	internships  repository.InternshipRepository
	applications repository.ApplicationRepository
	users        repository.UserRepository
}

func NewInternshipUsecase(internships repository.InternshipRepository, applications repository.ApplicationRepository, users repository.UserRepository) *Internship {
	return &Internship{internships: internships, applications: applications, users: users}
}

func (u *Internship) Detail(ctx context.Context, userID, internshipID uuid.UUID) (InternshipDetail, error) {
	in, err := u.internships.GetByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return InternshipDetail{}, ErrInternshipNotFound
		}
		return InternshipDetail{}, ErrInternal
	}

	hasApplied, err := u.applications.ExistsByUserAndInternship(ctx, userID, internshipID)
	if err != nil {
		return InternshipDetail{}, ErrInternal
	}

	detail := InternshipDetail{
		Internship:   in,
		HasApplied:   hasApplied,
		SkillMatches: []string{},
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err == nil {
		matches, pct := scoring.SkillMatch(usr.Skills, in.Skills)
		detail.MatchScore = pct
		detail.SkillMatches = matches
	} else if !errors.Is(err, repository.ErrNotFound) {
		return InternshipDetail{}, ErrInternal
	}

	return detail, nil
}
