package repository

import (
	"context"
	"encoding/json"
	"errors"

	"internhub/internal/database"
	"internhub/internal/domain/goal"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type CareerGoalRepository interface {
	Create(ctx context.Context, g goal.CareerGoal) error
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]goal.CareerGoal, error)
	GetByID(ctx context.Context, id uuid.UUID) (goal.CareerGoal, error)
	Update(ctx context.Context, g goal.CareerGoal) error
}

type PostgresCareerGoalRepository struct {
	db database.DB
}

func NewPostgresCareerGoalRepository(db database.DB) *PostgresCareerGoalRepository {
	return &PostgresCareerGoalRepository{db: db}
}

func (r *PostgresCareerGoalRepository) Create(ctx context.Context, g goal.CareerGoal) error {
	milestones, err := json.Marshal(g.Milestones)
	if err != nil {
		return err
	}
	_, err = r.db.Exec(ctx,
		`INSERT INTO career_goals
			(id, user_id, title, description, target_role, timeline, required_skills, progress, milestones, created_at)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)`,
		g.ID, g.UserID, g.Title, g.Description, g.TargetRole, g.Timeline,
		g.RequiredSkills, g.Progress, milestones, g.CreatedAt,
	)
	return err
}

func (r *PostgresCareerGoalRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]goal.CareerGoal, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, user_id, title, description, target_role, timeline, required_skills, progress, milestones, created_at
		 FROM career_goals WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]goal.CareerGoal, 0)
	for rows.Next() {
		g, err := scanCareerGoal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *PostgresCareerGoalRepository) GetByID(ctx context.Context, id uuid.UUID) (goal.CareerGoal, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, description, target_role, timeline, required_skills, progress, milestones, created_at
		 FROM career_goals WHERE id = $1`,
		id,
	)
	g, err := scanCareerGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return goal.CareerGoal{}, ErrNotFound
		}
		return goal.CareerGoal{}, err
	}
	return g, nil
}

func (r *PostgresCareerGoalRepository) Update(ctx context.Context, g goal.CareerGoal) error {
	milestones, err := json.Marshal(g.Milestones)
	if err != nil {
		return err
	}
	n, err := r.db.Exec(ctx,
		`UPDATE career_goals SET progress = $2, milestones = $3 WHERE id = $1`,
		g.ID, g.Progress, milestones,
	)
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCareerGoal(row database.Row) (goal.CareerGoal, error) {
	var g goal.CareerGoal
	var milestones []byte
	err := row.Scan(
		&g.ID, &g.UserID, &g.Title, &g.Description, &g.TargetRole, &g.Timeline,
		&g.RequiredSkills, &g.Progress, &milestones, &g.CreatedAt,
	)
	if err != nil {
		return goal.CareerGoal{}, err
	}
	if err := json.Unmarshal(milestones, &g.Milestones); err != nil {
		return goal.CareerGoal{}, err
	}
	return g, nil
}
