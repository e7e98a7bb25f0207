package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"internhub/internal/domain/scoring"
	"internhub/internal/domain/user"
	"internhub/internal/repository"
)

type ProfileUpdateInput struct {
	FirstName      string
	LastName       string
	University     string
	Major          string
	GraduationYear *int
	Bio            string
	Skills         []string
	Interests      []string
}

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (user.User, error)
	Update(ctx context.Context, userID uuid.UUID, in ProfileUpdateInput) (user.User, error)
	Strength(ctx context.Context, userID uuid.UUID) (scoring.StrengthReport, error)
}

type Profile struct {
	users      repository.UserRepository
	resumes    repository.ResumeRepository
	portfolios repository.PortfolioRepository

	now func() time.Time
}

func NewProfileUsecase(users repository.UserRepository, resumes repository.ResumeRepository, portfolios repository.PortfolioRepository) *Profile {
	return &Profile{users: users, resumes: resumes, portfolios: portfolios, now: time.Now}
}

func (u *Profile) Get(ctx context.Context, userID uuid.UUID) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}
	usr.PasswordHash = ""
	return usr, nil
}

// Update merges the supplied fields over the stored profile: empty
// strings and nil slices leave the current value untouched.
func (u *Profile) Update(ctx context.Context, userID uuid.UUID, in ProfileUpdateInput) (user.User, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return user.User{}, ErrUserNotFound
		}
		return user.User{}, ErrInternal
	}

	if in.FirstName != "" {
		usr.FirstName = in.FirstName
	}
	if in.LastName != "" {
		usr.LastName = in.LastName
	}
	if in.University != "" {
		usr.University = in.University
	}
	if in.Major != "" {
		usr.Major = in.Major
	}
	if in.GraduationYear != nil {
		usr.GraduationYear = in.GraduationYear
	}
	if in.Bio != "" {
		usr.Bio = in.Bio
	}
	if in.Skills != nil {
		usr.Skills = dedupe(in.Skills)
	}
	if in.Interests != nil {
		usr.Interests = dedupe(in.Interests)
	}
	usr.UpdatedAt = u.now()

	updated, err := u.users.Update(ctx, usr)
	if err != nil {
		return user.User{}, ErrInternal
	}
	updated.PasswordHash = ""
	return updated, nil
}

func (u *Profile) Strength(ctx context.Context, userID uuid.UUID) (scoring.StrengthReport, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return scoring.StrengthReport{}, ErrUserNotFound
		}
		return scoring.StrengthReport{}, ErrInternal
	}

	resumeCount, err := u.resumes.CountByUserID(ctx, userID)
	if err != nil {
		return scoring.StrengthReport{}, ErrInternal
	}
	portfolioCount, err := u.portfolios.CountByUserID(ctx, userID)
	if err != nil {
		return scoring.StrengthReport{}, ErrInternal
	}

	return scoring.ProfileStrength(profileOf(usr), resumeCount, portfolioCount), nil
}

func profileOf(u user.User) scoring.Profile {
	return scoring.Profile{
		Skills:     u.Skills,
		Interests:  u.Interests,
		Major:      u.Major,
		University: u.University,
		FirstName:  u.FirstName,
		LastName:   u.LastName,
		Email:      u.Email,
		Bio:        u.Bio,
	}
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
