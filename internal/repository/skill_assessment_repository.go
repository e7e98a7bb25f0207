package repository

import (
	"context"

	"internhub/internal/database"
	"internhub/internal/domain/assessment"

	"github.com/google/uuid"
)

type SkillAssessmentRepository interface {
	// Replace stores the assessment, displacing any prior record for the
	// same (user, skill) pair.
	Replace(ctx context.Context, a assessment.SkillAssessment) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]assessment.SkillAssessment, error)
}

type PostgresSkillAssessmentRepository struct {
	db database.DB
}

func NewPostgresSkillAssessmentRepository(db database.DB) *PostgresSkillAssessmentRepository {
	return &PostgresSkillAssessmentRepository{db: db}
}

func (r *PostgresSkillAssessmentRepository) Replace(ctx context.Context, a assessment.SkillAssessment) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skill_assessments (id, user_id, skill, level, score, completed_at)
		 VALUES ($1,$2,$3,$4,$5,$6)
		 ON CONFLICT (user_id, skill) DO UPDATE
		 SET id = EXCLUDED.id, level = EXCLUDED.level, score = EXCLUDED.score,
		     completed_at = EXCLUDED.completed_at`,
		a.ID, a.UserID, a.Skill, a.Level, a.Score, a.CompletedAt,
	)
	return err
}

func (r *PostgresSkillAssessmentRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]assessment.SkillAssessment, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, skill, level, score, completed_at
		 FROM skill_assessments WHERE user_id = $1 ORDER BY completed_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]assessment.SkillAssessment, 0)
	for rows.Next() {
		var a assessment.SkillAssessment
		if err := rows.Scan(&a.ID, &a.UserID, &a.Skill, &a.Level, &a.Score, &a.CompletedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
