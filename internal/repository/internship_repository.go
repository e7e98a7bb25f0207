package repository

import (
	"context"
	"errors"

	"internhub/internal/database"
	"internhub/internal/domain/internship"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type InternshipRepository interface {
	ListAll(ctx context.Context) ([]internship.Internship, error)
	GetByID(ctx context.Context, id uuid.UUID) (internship.Internship, error)
	ExistsByID(ctx context.Context, id uuid.UUID) (bool, error)
	Create(ctx context.Context, in internship.Internship) error
}

type PostgresInternshipRepository struct {
	db database.DB
}

func NewPostgresInternshipRepository(db database.DB) *PostgresInternshipRepository {
	return &PostgresInternshipRepository{db: db}
}

const internshipColumns = `id, title, company, location, type, duration, description,
	requirements, skills, salary, application_deadline, posted_at, industry`

func (r *PostgresInternshipRepository) ListAll(ctx context.Context) ([]internship.Internship, error) {
	rows, err := r.db.Query(ctx, `SELECT `+internshipColumns+` FROM internships ORDER BY posted_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]internship.Internship, 0)
	for rows.Next() {
		var in internship.Internship
		if err := rows.Scan(
			&in.ID, &in.Title, &in.Company, &in.Location, &in.Type, &in.Duration, &in.Description,
			&in.Requirements, &in.Skills, &in.Salary, &in.ApplicationDeadline, &in.PostedAt, &in.Industry,
		); err != nil {
			return nil, err
		}
		out = append(out, in)
	}
	return out, rows.Err()
}

func (r *PostgresInternshipRepository) GetByID(ctx context.Context, id uuid.UUID) (internship.Internship, error) {
	row := r.db.QueryRow(ctx, `SELECT `+internshipColumns+` FROM internships WHERE id = $1`, id)

	var in internship.Internship
	err := row.Scan(
		&in.ID, &in.Title, &in.Company, &in.Location, &in.Type, &in.Duration, &in.Description,
		&in.Requirements, &in.Skills, &in.Salary, &in.ApplicationDeadline, &in.PostedAt, &in.Industry,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return internship.Internship{}, ErrNotFound
		}
		return internship.Internship{}, err
	}
	return in, nil
}

func (r *PostgresInternshipRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM internships WHERE id = $1)`, id).Scan(&exists)
	return exists, err
}

func (r *PostgresInternshipRepository) Create(ctx context.Context, in internship.Internship) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO internships (`+internshipColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		in.ID, in.Title, in.Company, in.Location, in.Type, in.Duration, in.Description,
		in.Requirements, in.Skills, in.Salary, in.ApplicationDeadline, in.PostedAt, in.Industry,
	)
	return err
}
