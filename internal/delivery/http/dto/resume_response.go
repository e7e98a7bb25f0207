package dto

import (
	"time"

	"internhub/internal/domain/resume"

	"github.com/google/uuid"
)

type ResumeResponse struct {
	ID            uuid.UUID `json:"id"`
	FileName      string    `json:"file_name"`
	FileURL       string    `json:"file_url"`
	AnalysisScore int       `json:"analysis_score"`
	Strengths     []string  `json:"strengths"`
	Weaknesses    []string  `json:"weaknesses"`
	Suggestions   []string  `json:"suggestions"`
	Keywords      []string  `json:"keywords"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromResume(r resume.Resume) ResumeResponse {
	return ResumeResponse{
		ID:            r.ID,
		FileName:      r.FileName,
		FileURL:       r.FileURL,
		AnalysisScore: r.AnalysisScore,
		Strengths:     emptyIfNil(r.Strengths),
		Weaknesses:    emptyIfNil(r.Weaknesses),
		Suggestions:   emptyIfNil(r.Suggestions),
		Keywords:      emptyIfNil(r.Keywords),
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

func FromResumes(items []resume.Resume) []ResumeResponse {
	out := make([]ResumeResponse, 0, len(items))
	for _, it := range items {
		out = append(out, FromResume(it))
	}
	return out
}
