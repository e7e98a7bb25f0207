package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"internhub/internal/domain/goal"
	"internhub/internal/domain/notification"
	"internhub/internal/repository"
)

type GoalCreateInput struct {
	Title          string
	Description    string
	TargetRole     string
	Timeline       string
	RequiredSkills []string
}

type GoalUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, in GoalCreateInput) (goal.CareerGoal, error)
	List(ctx context.Context, userID uuid.UUID) ([]goal.CareerGoal, error)
	SetMilestoneCompleted(ctx context.Context, userID, goalID, milestoneID uuid.UUID, completed bool) (goal.CareerGoal, error)
}

type Goals struct {
	goals    repository.CareerGoalRepository
	notifier NotificationSender

	newID func() uuid.UUID
	now   func() time.Time
}

func NewGoalUsecase(goals repository.CareerGoalRepository, notifier NotificationSender) *Goals {
	return &Goals{goals: goals, notifier: notifier, newID: uuid.New, now: time.Now}
}

// Create stores the goal with three starter milestones due one week,
// one month and two months out.
func (u *Goals) Create(ctx context.Context, userID uuid.UUID, in GoalCreateInput) (goal.CareerGoal, error) {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return goal.CareerGoal{}, missingField("title")
	case strings.TrimSpace(in.Description) == "":
		return goal.CareerGoal{}, missingField("description")
	case strings.TrimSpace(in.TargetRole) == "":
		return goal.CareerGoal{}, missingField("target_role")
	case strings.TrimSpace(in.Timeline) == "":
		return goal.CareerGoal{}, missingField("timeline")
	}

	now := u.now()
	milestones := u.defaultMilestones(now)

	g := goal.CareerGoal{
		ID:             u.newID(),
		UserID:         userID,
		Title:          in.Title,
		Description:    in.Description,
		TargetRole:     in.TargetRole,
		Timeline:       in.Timeline,
		RequiredSkills: in.RequiredSkills,
		Progress:       0,
		Milestones:     milestones,
		CreatedAt:      now,
	}
	if g.RequiredSkills == nil {
		g.RequiredSkills = []string{}
	}

	if err := u.goals.Create(ctx, g); err != nil {
		return goal.CareerGoal{}, ErrInternal
	}

	u.notifier.Notify(ctx, userID,
		"Career Goal Created",
		fmt.Sprintf("Your career goal %q has been created with %d milestones.", g.Title, len(milestones)),
		notification.TypeSkill,
		"/career-roadmap",
	)

	return g, nil
}

func (u *Goals) List(ctx context.Context, userID uuid.UUID) ([]goal.CareerGoal, error) {
	list, err := u.goals.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

// SetMilestoneCompleted flips one milestone and recomputes the goal's
// derived progress.
func (u *Goals) SetMilestoneCompleted(ctx context.Context, userID, goalID, milestoneID uuid.UUID, completed bool) (goal.CareerGoal, error) {
	g, err := u.goals.GetByID(ctx, goalID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return goal.CareerGoal{}, ErrGoalNotFound
		}
		return goal.CareerGoal{}, ErrInternal
	}
	if g.UserID != userID {
		return goal.CareerGoal{}, ErrGoalNotFound
	}

	idx := -1
	for i := range g.Milestones {
		if g.Milestones[i].ID == milestoneID {
			idx = i
			break
		}
	}
	if idx == -1 {
		return goal.CareerGoal{}, ErrMilestoneNotFound
	}

	g.Milestones[idx].Completed = completed
	if completed {
		t := u.now()
		g.Milestones[idx].CompletedAt = &t
	} else {
		g.Milestones[idx].CompletedAt = nil
	}
	g.RecalcProgress()

	if err := u.goals.Update(ctx, g); err != nil {
		return goal.CareerGoal{}, ErrInternal
	}
	return g, nil
}

func (u *Goals) defaultMilestones(now time.Time) []goal.Milestone {
	week := now.AddDate(0, 0, 7)
	month := now.AddDate(0, 0, 30)
	twoMonths := now.AddDate(0, 0, 60)

	return []goal.Milestone{
		{
			ID:          u.newID(),
			Title:       "Complete skill assessments",
			Description: "Assess current skill levels",
			DueDate:     &week,
		},
		{
			ID:          u.newID(),
			Title:       "Build relevant projects",
			Description: "Create portfolio projects showcasing required skills",
			DueDate:     &month,
		},
		{
			ID:          u.newID(),
			Title:       "Apply to target positions",
			Description: "Start applying to relevant internships/jobs",
			DueDate:     &twoMonths,
		},
	}
}
