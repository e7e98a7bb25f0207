package usecase

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"internhub/internal/domain/internship"
	"internhub/internal/domain/notification"
	"internhub/internal/domain/scoring"
	"internhub/internal/repository"
)

const (
	recommendationMinScore = 20
	recommendationLimit    = 10
)

type RecommendedInternship struct {
	Internship          internship.Internship
	RecommendationScore int
	MatchReasons        []string
	SkillMatches        []string
	DaysUntilDeadline   int
}

type RecommendationUsecase interface {
	Recommendations(ctx context.Context, userID uuid.UUID) ([]RecommendedInternship, error)
}

type Recommendation struct {
	users       repository.UserRepository
	internships repository.InternshipRepository
	notifier    NotificationSender

	now func() time.Time
}

func NewRecommendationUsecase(users repository.UserRepository, internships repository.InternshipRepository, notifier NotificationSender) *Recommendation {
	return &Recommendation{users: users, internships: internships, notifier: notifier, now: time.Now}
}

// Recommendations scores every posting for the user, keeps those above
// the relevance floor, and returns the top matches sorted by score.
// Equal scores keep the catalog order. A non-empty result emits one
// recommendation notification.
func (u *Recommendation) Recommendations(ctx context.Context, userID uuid.UUID) ([]RecommendedInternship, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, ErrInternal
	}

	all, err := u.internships.ListAll(ctx)
	if err != nil {
		return nil, ErrInternal
	}

	now := u.now()
	profile := profileOf(usr)

	out := make([]RecommendedInternship, 0, len(all))
	for _, in := range all {
		res := scoring.Recommendation(profile, postingOf(in), now)
		if res.Score <= recommendationMinScore {
			continue
		}
		out = append(out, RecommendedInternship{
			Internship:          in,
			RecommendationScore: res.Score,
			MatchReasons:        res.Reasons,
			SkillMatches:        res.SkillMatches,
			DaysUntilDeadline:   res.DaysUntilDeadline,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecommendationScore > out[j].RecommendationScore
	})
	if len(out) > recommendationLimit {
		out = out[:recommendationLimit]
	}

	if len(out) > 0 {
		top := out[0].Internship
		u.notifier.Notify(ctx, userID,
			"New Internship Recommendations",
			fmt.Sprintf("We found %d internships matching your profile. Top match: %s at %s", len(out), top.Title, top.Company),
			notification.TypeRecommendation,
			"/internship-search",
		)
	}

	return out, nil
}

func postingOf(in internship.Internship) scoring.Posting {
	return scoring.Posting{
		Title:               in.Title,
		Company:             in.Company,
		Description:         in.Description,
		Industry:            in.Industry,
		Location:            in.Location,
		Skills:              in.Skills,
		ApplicationDeadline: in.ApplicationDeadline,
		PostedAt:            in.PostedAt,
	}
}
