package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"internhub/internal/domain/notification"
	"internhub/internal/domain/portfolio"
	"internhub/internal/repository"
)

type PortfolioCreateInput struct {
	Title       string
	Description string
	IsPublic    bool
}

type PortfolioUpdateInput struct {
	Title       string
	Description string
	IsPublic    *bool
}

type ProjectInput struct {
	Title        string
	Description  string
	Technologies []string
	ImageURL     string
	LiveURL      string
	GithubURL    string
	Category     string
	Featured     bool
}

type PortfolioUsecase interface {
	Create(ctx context.Context, userID uuid.UUID, in PortfolioCreateInput) (portfolio.Portfolio, error)
	List(ctx context.Context, userID uuid.UUID) ([]portfolio.Portfolio, error)
	Get(ctx context.Context, userID, portfolioID uuid.UUID) (portfolio.Portfolio, error)
	Update(ctx context.Context, userID, portfolioID uuid.UUID, in PortfolioUpdateInput) (portfolio.Portfolio, error)
	Delete(ctx context.Context, userID, portfolioID uuid.UUID) error
	AddProject(ctx context.Context, userID, portfolioID uuid.UUID, in ProjectInput) (portfolio.Project, error)
	UpdateProject(ctx context.Context, userID, portfolioID, projectID uuid.UUID, in ProjectInput) (portfolio.Project, error)
	RemoveProject(ctx context.Context, userID, portfolioID, projectID uuid.UUID) error
}

type Portfolios struct {
	portfolios repository.PortfolioRepository
	notifier   NotificationSender

	newID func() uuid.UUID
	now   func() time.Time
}

func NewPortfolioUsecase(portfolios repository.PortfolioRepository, notifier NotificationSender) *Portfolios {
	return &Portfolios{portfolios: portfolios, notifier: notifier, newID: uuid.New, now: time.Now}
}

func (u *Portfolios) Create(ctx context.Context, userID uuid.UUID, in PortfolioCreateInput) (portfolio.Portfolio, error) {
	if strings.TrimSpace(in.Title) == "" {
		return portfolio.Portfolio{}, missingField("title")
	}

	now := u.now()
	p := portfolio.Portfolio{
		ID:          u.newID(),
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		Projects:    []portfolio.Project{},
		IsPublic:    in.IsPublic,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := u.portfolios.Create(ctx, p); err != nil {
		return portfolio.Portfolio{}, ErrInternal
	}

	u.notifier.Notify(ctx, userID,
		"Portfolio Created",
		fmt.Sprintf("Your portfolio %q has been created. Start adding projects!", p.Title),
		notification.TypeSkill,
		"/portfolio-builder",
	)

	return p, nil
}

func (u *Portfolios) List(ctx context.Context, userID uuid.UUID) ([]portfolio.Portfolio, error) {
	list, err := u.portfolios.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

func (u *Portfolios) Get(ctx context.Context, userID, portfolioID uuid.UUID) (portfolio.Portfolio, error) {
	return u.owned(ctx, userID, portfolioID)
}

func (u *Portfolios) Update(ctx context.Context, userID, portfolioID uuid.UUID, in PortfolioUpdateInput) (portfolio.Portfolio, error) {
	p, err := u.owned(ctx, userID, portfolioID)
	if err != nil {
		return portfolio.Portfolio{}, err
	}

	if in.Title != "" {
		p.Title = in.Title
	}
	if in.Description != "" {
		p.Description = in.Description
	}
	if in.IsPublic != nil {
		p.IsPublic = *in.IsPublic
	}
	p.UpdatedAt = u.now()

	if err := u.portfolios.Update(ctx, p); err != nil {
		return portfolio.Portfolio{}, ErrInternal
	}
	return p, nil
}

func (u *Portfolios) Delete(ctx context.Context, userID, portfolioID uuid.UUID) error {
	if _, err := u.owned(ctx, userID, portfolioID); err != nil {
		return err
	}
	if err := u.portfolios.Delete(ctx, portfolioID); err != nil {
		return ErrInternal
	}
	return nil
}

func (u *Portfolios) AddProject(ctx context.Context, userID, portfolioID uuid.UUID, in ProjectInput) (portfolio.Project, error) {
	if strings.TrimSpace(in.Title) == "" {
		return portfolio.Project{}, missingField("title")
	}

	p, err := u.owned(ctx, userID, portfolioID)
	if err != nil {
		return portfolio.Project{}, err
	}

	project := projectFromInput(u.newID(), in)
	p.Projects = append(p.Projects, project)
	p.UpdatedAt = u.now()

	if err := u.portfolios.Update(ctx, p); err != nil {
		return portfolio.Project{}, ErrInternal
	}

	u.notifier.Notify(ctx, userID,
		"Project Added",
		fmt.Sprintf("Project %q has been added to your portfolio.", project.Title),
		notification.TypeSkill,
		"/portfolio-builder",
	)

	return project, nil
}

func (u *Portfolios) UpdateProject(ctx context.Context, userID, portfolioID, projectID uuid.UUID, in ProjectInput) (portfolio.Project, error) {
	p, err := u.owned(ctx, userID, portfolioID)
	if err != nil {
		return portfolio.Project{}, err
	}

	idx := projectIndex(p.Projects, projectID)
	if idx == -1 {
		return portfolio.Project{}, ErrProjectNotFound
	}

	project := p.Projects[idx]
	if in.Title != "" {
		project.Title = in.Title
	}
	if in.Description != "" {
		project.Description = in.Description
	}
	if in.Technologies != nil {
		project.Technologies = in.Technologies
	}
	if in.ImageURL != "" {
		project.ImageURL = in.ImageURL
	}
	if in.LiveURL != "" {
		project.LiveURL = in.LiveURL
	}
	if in.GithubURL != "" {
		project.GithubURL = in.GithubURL
	}
	if in.Category != "" {
		project.Category = in.Category
	}
	project.Featured = in.Featured

	p.Projects[idx] = project
	p.UpdatedAt = u.now()

	if err := u.portfolios.Update(ctx, p); err != nil {
		return portfolio.Project{}, ErrInternal
	}
	return project, nil
}

func (u *Portfolios) RemoveProject(ctx context.Context, userID, portfolioID, projectID uuid.UUID) error {
	p, err := u.owned(ctx, userID, portfolioID)
	if err != nil {
		return err
	}

	idx := projectIndex(p.Projects, projectID)
	if idx == -1 {
		return ErrProjectNotFound
	}

	p.Projects = append(p.Projects[:idx], p.Projects[idx+1:]...)
	p.UpdatedAt = u.now()

	if err := u.portfolios.Update(ctx, p); err != nil {
		return ErrInternal
	}
	return nil
}

// owned loads the portfolio and hides other users' portfolios behind
// not-found.
func (u *Portfolios) owned(ctx context.Context, userID, portfolioID uuid.UUID) (portfolio.Portfolio, error) {
	p, err := u.portfolios.GetByID(ctx, portfolioID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return portfolio.Portfolio{}, ErrPortfolioNotFound
		}
		return portfolio.Portfolio{}, ErrInternal
	}
	if p.UserID != userID {
		return portfolio.Portfolio{}, ErrPortfolioNotFound
	}
	return p, nil
}

func projectIndex(projects []portfolio.Project, projectID uuid.UUID) int {
	for i := range projects {
		if projects[i].ID == projectID {
			return i
		}
	}
	return -1
}

func projectFromInput(id uuid.UUID, in ProjectInput) portfolio.Project {
	technologies := in.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	return portfolio.Project{
		ID:           id,
		Title:        in.Title,
		Description:  in.Description,
		Technologies: technologies,
		ImageURL:     in.ImageURL,
		LiveURL:      in.LiveURL,
		GithubURL:    in.GithubURL,
		Category:     in.Category,
		Featured:     in.Featured,
	}
}
