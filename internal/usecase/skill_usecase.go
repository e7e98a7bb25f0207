package usecase

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"internhub/internal/domain/assessment"
	"internhub/internal/domain/notification"
	"internhub/internal/domain/scoring"
	"internhub/internal/repository"
)

const gapNotificationThreshold = 70

type GapReport struct {
	TargetRole      string   `json:"target_role"`
	Matching        []string `json:"matching_skills"`
	Missing         []string `json:"missing_skills"`
	MatchPercentage int      `json:"match_percentage"`
}

type SkillTrend struct {
	Skill     string `json:"skill"`
	Demand    string `json:"demand"`
	Frequency int    `json:"frequency"`
}

type SkillSuggestion struct {
	Skill                 string   `json:"skill"`
	Reason                string   `json:"reason"`
	Demand                string   `json:"demand"`
	EstimatedLearningTime string   `json:"estimated_learning_time"`
	Resources             []string `json:"resources"`
}

type SkillRecommendationsReport struct {
	TrendingSkills              []SkillTrend      `json:"trending_skills"`
	PersonalizedRecommendations []SkillSuggestion `json:"personalized_recommendations"`
	UserSkills                  []string          `json:"user_skills"`
	GeneratedAt                 time.Time         `json:"generated_at"`
}

type SkillUsecase interface {
	Assess(ctx context.Context, userID uuid.UUID, skill string, answers []bool) (assessment.SkillAssessment, error)
	ListAssessments(ctx context.Context, userID uuid.UUID) ([]assessment.SkillAssessment, error)
	GapAnalysis(ctx context.Context, userID uuid.UUID, targetRole string, requiredSkills []string) (GapReport, error)
	Recommendations(ctx context.Context, userID uuid.UUID) (SkillRecommendationsReport, error)
}

type Skills struct {
	users       repository.UserRepository
	assessments repository.SkillAssessmentRepository
	internships repository.InternshipRepository
	notifier    NotificationSender

	newID func() uuid.UUID
	now   func() time.Time
}

func NewSkillUsecase(users repository.UserRepository, assessments repository.SkillAssessmentRepository, internships repository.InternshipRepository, notifier NotificationSender) *Skills {
	return &Skills{
		users:       users,
		assessments: assessments,
		internships: internships,
		notifier:    notifier,
		newID:       uuid.New,
		now:         time.Now,
	}
}

// Assess grades the quiz answers, replaces any prior assessment for
// the skill, and adds the skill to the user's profile.
func (u *Skills) Assess(ctx context.Context, userID uuid.UUID, skill string, answers []bool) (assessment.SkillAssessment, error) {
	skill = strings.TrimSpace(skill)
	if skill == "" {
		return assessment.SkillAssessment{}, missingField("skill")
	}
	if len(answers) == 0 {
		return assessment.SkillAssessment{}, missingField("answers")
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return assessment.SkillAssessment{}, ErrUserNotFound
		}
		return assessment.SkillAssessment{}, ErrInternal
	}

	correct := 0
	for _, ok := range answers {
		if ok {
			correct++
		}
	}
	score := int(math.Round(float64(correct) / float64(len(answers)) * 100))

	a := assessment.SkillAssessment{
		ID:          u.newID(),
		UserID:      userID,
		Skill:       skill,
		Level:       levelForScore(score),
		Score:       score,
		CompletedAt: u.now(),
	}
	if err := u.assessments.Replace(ctx, a); err != nil {
		return assessment.SkillAssessment{}, ErrInternal
	}

	if usr.AddSkill(skill) {
		if _, err := u.users.Update(ctx, usr); err != nil {
			return assessment.SkillAssessment{}, ErrInternal
		}
	}

	u.notifier.Notify(ctx, userID,
		"Skill Assessment Complete",
		fmt.Sprintf("You scored %d/100 in %s (%s level)", a.Score, a.Skill, a.Level),
		notification.TypeSkill,
		"/skill-analysis",
	)

	return a, nil
}

func (u *Skills) ListAssessments(ctx context.Context, userID uuid.UUID) ([]assessment.SkillAssessment, error) {
	list, err := u.assessments.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

// GapAnalysis requires a non-empty requiredSkills list; there is no
// sensible percentage for a role with no requirements.
func (u *Skills) GapAnalysis(ctx context.Context, userID uuid.UUID, targetRole string, requiredSkills []string) (GapReport, error) {
	targetRole = strings.TrimSpace(targetRole)
	if targetRole == "" {
		return GapReport{}, missingField("target_role")
	}
	if len(requiredSkills) == 0 {
		return GapReport{}, missingField("required_skills")
	}

	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return GapReport{}, ErrUserNotFound
		}
		return GapReport{}, ErrInternal
	}

	gap := scoring.SkillGap(usr.Skills, requiredSkills)
	report := GapReport{
		TargetRole:      targetRole,
		Matching:        gap.Matching,
		Missing:         gap.Missing,
		MatchPercentage: gap.MatchPercentage,
	}

	if report.MatchPercentage < gapNotificationThreshold {
		u.notifier.Notify(ctx, userID,
			"Skill Gap Identified",
			fmt.Sprintf("You match %d%% of skills for %s. Check your learning plan!", report.MatchPercentage, targetRole),
			notification.TypeSkill,
			"/skill-analysis",
		)
	}

	return report, nil
}

// Recommendations ranks skills by how often the catalog asks for them
// and suggests the trending ones the user does not have yet.
func (u *Skills) Recommendations(ctx context.Context, userID uuid.UUID) (SkillRecommendationsReport, error) {
	usr, err := u.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return SkillRecommendationsReport{}, ErrUserNotFound
		}
		return SkillRecommendationsReport{}, ErrInternal
	}

	all, err := u.internships.ListAll(ctx)
	if err != nil {
		return SkillRecommendationsReport{}, ErrInternal
	}

	frequency := make(map[string]int)
	order := make([]string, 0)
	for _, in := range all {
		for _, s := range in.Skills {
			if _, seen := frequency[s]; !seen {
				order = append(order, s)
			}
			frequency[s]++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		return frequency[order[i]] > frequency[order[j]]
	})

	trending := make([]SkillTrend, 0, 10)
	for _, s := range order {
		if len(trending) == 10 {
			break
		}
		trending = append(trending, SkillTrend{
			Skill:     s,
			Demand:    demandFor(frequency[s]),
			Frequency: frequency[s],
		})
	}

	owned := make(map[string]struct{}, len(usr.Skills))
	for _, s := range usr.Skills {
		owned[s] = struct{}{}
	}

	suggestions := make([]SkillSuggestion, 0, 6)
	for _, t := range trending {
		if len(suggestions) == 6 {
			break
		}
		if _, has := owned[t.Skill]; has {
			continue
		}
		suggestions = append(suggestions, SkillSuggestion{
			Skill:                 t.Skill,
			Reason:                suggestionReason(t.Skill, usr.Interests),
			Demand:                t.Demand,
			EstimatedLearningTime: estimatedLearningTime(t.Skill),
			Resources: []string{
				t.Skill + " Fundamentals Course",
				t.Skill + " Hands-on Projects",
				t.Skill + " Certification",
			},
		})
	}

	if len(trending) > 5 {
		trending = trending[:5]
	}

	return SkillRecommendationsReport{
		TrendingSkills:              trending,
		PersonalizedRecommendations: suggestions,
		UserSkills:                  usr.Skills,
		GeneratedAt:                 u.now(),
	}, nil
}

func levelForScore(score int) string {
	switch {
	case score >= 85:
		return assessment.LevelExpert
	case score >= 65:
		return assessment.LevelAdvanced
	case score >= 40:
		return assessment.LevelIntermediate
	default:
		return assessment.LevelBeginner
	}
}

func demandFor(frequency int) string {
	switch {
	case frequency > 5:
		return "High"
	case frequency > 2:
		return "Medium"
	default:
		return "Low"
	}
}

func suggestionReason(skill string, interests []string) string {
	for _, interest := range interests {
		if strings.Contains(strings.ToLower(skill), strings.ToLower(interest)) {
			return "Matches your interests"
		}
	}
	return "High demand in job market"
}

// estimatedLearningTime is derived from the skill name so repeated
// requests give stable estimates.
func estimatedLearningTime(skill string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(skill))
	weeks := 2 + int(h.Sum32()%8)
	return fmt.Sprintf("%d weeks", weeks)
}
