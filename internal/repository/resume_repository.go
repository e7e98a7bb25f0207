package repository

import (
	"context"
	"errors"

	"internhub/internal/database"
	"internhub/internal/domain/resume"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ResumeRepository interface {
	Create(ctx context.Context, r resume.Resume) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error)
	GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error)
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}

type PostgresResumeRepository struct {
	db database.DB
}

func NewPostgresResumeRepository(db database.DB) *PostgresResumeRepository {
	return &PostgresResumeRepository{db: db}
}

const resumeColumns = `id, user_id, file_name, file_url, analysis_score,
	strengths, weaknesses, suggestions, keywords, created_at, updated_at`

func (p *PostgresResumeRepository) Create(ctx context.Context, r resume.Resume) error {
	_, err := p.db.Exec(ctx,
		`INSERT INTO resumes (`+resumeColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		r.ID, r.UserID, r.FileName, r.FileURL, r.AnalysisScore,
		r.Strengths, r.Weaknesses, r.Suggestions, r.Keywords, r.CreatedAt, r.UpdatedAt,
	)
	return err
}

func (p *PostgresResumeRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]resume.Resume, error) {
	rows, err := p.db.Query(ctx,
		`SELECT `+resumeColumns+` FROM resumes WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]resume.Resume, 0)
	for rows.Next() {
		var r resume.Resume
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.FileName, &r.FileURL, &r.AnalysisScore,
			&r.Strengths, &r.Weaknesses, &r.Suggestions, &r.Keywords, &r.CreatedAt, &r.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *PostgresResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (resume.Resume, error) {
	row := p.db.QueryRow(ctx, `SELECT `+resumeColumns+` FROM resumes WHERE id = $1`, id)

	var r resume.Resume
	err := row.Scan(
		&r.ID, &r.UserID, &r.FileName, &r.FileURL, &r.AnalysisScore,
		&r.Strengths, &r.Weaknesses, &r.Suggestions, &r.Keywords, &r.CreatedAt, &r.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return resume.Resume{}, ErrNotFound
		}
		return resume.Resume{}, err
	}
	return r, nil
}

func (p *PostgresResumeRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := p.db.QueryRow(ctx, `SELECT COUNT(*) FROM resumes WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}
