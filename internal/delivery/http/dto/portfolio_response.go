package dto

import (
	"time"

	"internhub/internal/domain/portfolio"

	"github.com/google/uuid"
)

type PortfolioResponse struct {
	ID          uuid.UUID           `json:"id"`
	Title       string              `json:"title"`
	Description string              `json:"description"`
	Projects    []portfolio.Project `json:"projects"`
	IsPublic    bool                `json:"is_public"`
	CreatedAt   time.Time           `json:"created_at"`
	UpdatedAt   time.Time           `json:"updated_at"`
}

func FromPortfolio(p portfolio.Portfolio) PortfolioResponse {
	projects := p.Projects
	if projects == nil {
		projects = []portfolio.Project{}
	}
	return PortfolioResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Projects:    projects,
		IsPublic:    p.IsPublic,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func FromPortfolios(items []portfolio.Portfolio) []PortfolioResponse {
	out := make([]PortfolioResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromPortfolio(it))
	}
	return out
}
