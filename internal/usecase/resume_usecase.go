package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"internhub/internal/analyzer"
	"internhub/internal/domain/notification"
	"internhub/internal/domain/resume"
	"internhub/internal/repository"
)

type ResumeUsecase interface {
	Upload(ctx context.Context, userID uuid.UUID, fileName, content string) (resume.Resume, error)
	List(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error)
	Get(ctx context.Context, userID, resumeID uuid.UUID) (resume.Resume, error)
}

type Resumes struct {
	resumes  repository.ResumeRepository
	analyzer analyzer.Analyzer
	notifier NotificationSender

	newID func() uuid.UUID
	now   func() time.Time
}

func NewResumeUsecase(resumes repository.ResumeRepository, az analyzer.Analyzer, notifier NotificationSender) *Resumes {
	return &Resumes{resumes: resumes, analyzer: az, notifier: notifier, newID: uuid.New, now: time.Now}
}

// Upload analyzes the resume text, stores the record with the analysis
// attached, and notifies the user. The analyzer never fails hard; it
// degrades to heuristic feedback, so an upload only errors on storage
// problems.
func (u *Resumes) Upload(ctx context.Context, userID uuid.UUID, fileName, content string) (resume.Resume, error) {
	fileName = strings.TrimSpace(fileName)
	if fileName == "" {
		return resume.Resume{}, missingField("file_name")
	}
	if strings.TrimSpace(content) == "" {
		return resume.Resume{}, missingField("content")
	}

	analysis, err := u.analyzer.Analyze(ctx, content)
	if err != nil {
		return resume.Resume{}, ErrInternal
	}

	now := u.now()
	r := resume.Resume{
		ID:            u.newID(),
		UserID:        userID,
		FileName:      fileName,
		FileURL:       fmt.Sprintf("/uploads/resumes/%s/%s", userID, fileName),
		AnalysisScore: analysis.Score,
		Strengths:     analysis.Strengths,
		Weaknesses:    analysis.Weaknesses,
		Suggestions:   analysis.Suggestions,
		Keywords:      analysis.Keywords,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := u.resumes.Create(ctx, r); err != nil {
		return resume.Resume{}, ErrInternal
	}

	u.notifier.Notify(ctx, userID,
		"Resume Analysis Complete",
		fmt.Sprintf("Your resume scored %d/100. Check out the detailed feedback!", analysis.Score),
		notification.TypeSkill,
		"/resume-analyzer",
	)

	return r, nil
}

func (u *Resumes) List(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error) {
	list, err := u.resumes.FindByUserID(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return list, nil
}

func (u *Resumes) Get(ctx context.Context, userID, resumeID uuid.UUID) (resume.Resume, error) {
	r, err := u.resumes.GetByID(ctx, resumeID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return resume.Resume{}, ErrResumeNotFound
		}
		return resume.Resume{}, ErrInternal
	}
	if r.UserID != userID {
		return resume.Resume{}, ErrResumeNotFound
	}
	return r, nil
}
