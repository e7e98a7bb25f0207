package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"internhub/internal/domain/application"
	"internhub/internal/domain/internship"
	"internhub/internal/domain/notification"
	"internhub/internal/repository"
)

type ApplicationWithInternship struct {
	Application application.Application
	Internship  internship.Internship
}

type ApplicationUsecase interface {
	Apply(ctx context.Context, userID, internshipID uuid.UUID, notes string) (application.Application, error)
	List(ctx context.Context, userID uuid.UUID) ([]ApplicationWithInternship, error)
}

type Applications struct {
	applications repository.ApplicationRepository
	internships  repository.InternshipRepository
	notifier     NotificationSender

	newID func() uuid.UUID
	now   func() time.Time
}

func NewApplicationUsecase(applications repository.ApplicationRepository, internships repository.InternshipRepository, notifier NotificationSender) *Applications {
	return &Applications{
		applications: applications,
		internships:  internships,
		notifier:     notifier,
		newID:        uuid.New,
		now:          time.Now,
	}
}

// Apply submits exactly one application per (user, internship) pair.
// The uniqueness check runs here and the store constraint backs it up,
// so a concurrent double submit still yields ErrAlreadyApplied.
func (u *Applications) Apply(ctx context.Context, userID, internshipID uuid.UUID, notes string) (application.Application, error) {
	in, err := u.internships.GetByID(ctx, internshipID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return application.Application{}, ErrInternshipNotFound
		}
		return application.Application{}, ErrInternal
	}

	applied, err := u.applications.ExistsByUserAndInternship(ctx, userID, internshipID)
	if err != nil {
		return application.Application{}, ErrInternal
	}
	if applied {
		return application.Application{}, ErrAlreadyApplied
	}

	now := u.now()
	app := application.Application{
		ID:           u.newID(),
		UserID:       userID,
		InternshipID: internshipID,
		Status:       application.StatusApplied,
		AppliedAt:    now,
		Notes:        notes,
	}
	if err := u.applications.Create(ctx, app); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return application.Application{}, ErrAlreadyApplied
		}
		return application.Application{}, ErrInternal
	}

	u.notifier.Notify(ctx, userID,
		"Application Submitted",
		fmt.Sprintf("Your application to %s at %s has been submitted successfully.", in.Title, in.Company),
		notification.TypeApplication,
		"/dashboard",
	)

	daysUntilDeadline := int(in.ApplicationDeadline.Sub(now).Hours() / 24)
	if daysUntilDeadline > 0 && daysUntilDeadline <= 7 {
		u.notifier.Notify(ctx, userID,
			"Application Deadline Reminder",
			fmt.Sprintf("The application deadline for %s is in %d days.", in.Title, daysUntilDeadline),
			notification.TypeDeadline,
			"/dashboard",
		)
	}

	return app, nil
}

func (u *Applications) List(ctx context.Context, userID uuid.UUID) ([]ApplicationWithInternship, error) {
	apps, err := u.applications.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}

	out := make([]ApplicationWithInternship, 0, len(apps))
	for _, app := range apps {
		in, err := u.internships.GetByID(ctx, app.InternshipID)
		if err != nil && !errors.Is(err, repository.ErrNotFound) {
			return nil, ErrInternal
		}
		out = append(out, ApplicationWithInternship{Application: app, Internship: in})
	}
	return out, nil
}
