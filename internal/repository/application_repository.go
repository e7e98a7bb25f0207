package repository

import (
	"context"

	"internhub/internal/database"
	"internhub/internal/domain/application"

	"github.com/google/uuid"
)

type ApplicationRepository interface {
	Create(ctx context.Context, a application.Application) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]application.Application, error)
	ExistsByUserAndInternship(ctx context.Context, userID, internshipID uuid.UUID) (bool, error)
}

type PostgresApplicationRepository struct {
	db database.DB
}

func NewPostgresApplicationRepository(db database.DB) *PostgresApplicationRepository {
	return &PostgresApplicationRepository{db: db}
}

func (r *PostgresApplicationRepository) Create(ctx context.Context, a application.Application) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO applications (id, user_id, internship_id, status, applied_at, notes)
		 VALUES ($1,$2,$3,$4,$5,$6)`,
		a.ID, a.UserID, a.InternshipID, a.Status, a.AppliedAt, a.Notes,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PostgresApplicationRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]application.Application, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, internship_id, status, applied_at, notes
		 FROM applications WHERE user_id = $1 ORDER BY applied_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]application.Application, 0)
	for rows.Next() {
		var a application.Application
		if err := rows.Scan(&a.ID, &a.UserID, &a.InternshipID, &a.Status, &a.AppliedAt, &a.Notes); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PostgresApplicationRepository) ExistsByUserAndInternship(ctx context.Context, userID, internshipID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM applications WHERE user_id = $1 AND internship_id = $2)`,
		userID, internshipID,
	).Scan(&exists)
	return exists, err
}
