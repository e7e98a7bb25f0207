package portfolio

import (
	"time"

	"github.com/google/uuid"
)

type Portfolio struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Projects    []Project
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Project struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	ImageURL     string    `json:"image_url,omitempty"`
	LiveURL      string    `json:"live_url,omitempty"`
	GithubURL    string    `json:"github_url,omitempty"`
	Category     string    `json:"category"`
	Featured     bool      `json:"featured"`
}
