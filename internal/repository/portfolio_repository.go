package repository

import (
	"context"
	"encoding/json"
	"errors"

	"internhub/internal/database"
	"internhub/internal/domain/portfolio"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PortfolioRepository interface {
	Create(ctx context.Context, p portfolio.Portfolio) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]portfolio.Portfolio, error)
	GetByID(ctx context.Context, id uuid.UUID) (portfolio.Portfolio, error)
	Update(ctx context.Context, p portfolio.Portfolio) error
	Delete(ctx context.Context, id uuid.UUID) error
	CountByUserID(ctx context.Context, userID uuid.UUID) (int, error)
}

type PostgresPortfolioRepository struct {
	db database.DB
}

func NewPostgresPortfolioRepository(db database.DB) *PostgresPortfolioRepository {
	return &PostgresPortfolioRepository{db: db}
}

func (r *PostgresPortfolioRepository) Create(ctx context.Context, p portfolio.Portfolio) error {
	projects, err := json.Marshal(projectsOrEmpty(p.Projects))
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO portfolios (id, user_id, title, description, projects, is_public, created_at, updated_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8)`,
		p.ID, p.UserID, p.Title, p.Description, projects, p.IsPublic, p.CreatedAt, p.UpdatedAt,
	)
	return err
}

func (r *PostgresPortfolioRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]portfolio.Portfolio, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, description, projects, is_public, created_at, updated_at
		 FROM portfolios WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]portfolio.Portfolio, 0)
	for rows.Next() {
		p, err := scanPortfolio(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PostgresPortfolioRepository) GetByID(ctx context.Context, id uuid.UUID) (portfolio.Portfolio, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, description, projects, is_public, created_at, updated_at
		 FROM portfolios WHERE id = $1`,
		id,
	)
	p, err := scanPortfolio(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return portfolio.Portfolio{}, ErrNotFound
		}
		return portfolio.Portfolio{}, err
	}
	return p, nil
}

func (r *PostgresPortfolioRepository) Update(ctx context.Context, p portfolio.Portfolio) error {
	projects, err := json.Marshal(projectsOrEmpty(p.Projects))
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE portfolios
		 SET title = $2, description = $3, projects = $4, is_public = $5, updated_at = $6
		 WHERE id = $1`,
		p.ID, p.Title, p.Description, projects, p.IsPublic, p.UpdatedAt,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPortfolioRepository) Delete(ctx context.Context, id uuid.UUID) error {
	n, err := r.db.Exec(ctx, `DELETE FROM portfolios WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostgresPortfolioRepository) CountByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	var n int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM portfolios WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}

func scanPortfolio(row database.Row) (portfolio.Portfolio, error) {
	var p portfolio.Portfolio
	var projects []byte
	if err := row.Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &projects, &p.IsPublic, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return portfolio.Portfolio{}, err
	}
	if err := json.Unmarshal(projects, &p.Projects); err != nil {
		return portfolio.Portfolio{}, err
	}
	return p, nil
}

func projectsOrEmpty(ps []portfolio.Project) []portfolio.Project {
	if ps == nil {
		return []portfolio.Project{}
	}
	return ps
}
