package repository

import (
	"context"
	"errors"

	"internhub/internal/database"
	"internhub/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository interface {
	Create(ctx context.Context, u user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, u user.User) (user.User, error)
}

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

const userColumns = `id, email, password_hash, first_name, last_name, university, major,
	graduation_year, bio, skills, interests, created_at, updated_at`

func (r *PostgresUserRepository) Create(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (`+userColumns+`)
		 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.University, u.Major,
		u.GraduationYear, u.Bio, u.Skills, u.Interests, u.CreatedAt, u.UpdatedAt,
	)
	if isUniqueViolation(err) {
		return ErrDuplicate
	}
	return err
}

func (r *PostgresUserRepository) GetByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`, email).Scan(&exists)
	return exists, err
}

func (r *PostgresUserRepository) Update(ctx context.Context, u user.User) (user.User, error) {
	n, err := r.db.Exec(ctx,
		`UPDATE users SET
			first_name = $2, last_name = $3, university = $4, major = $5,
			graduation_year = $6, bio = $7, skills = $8, interests = $9, updated_at = $10
		 WHERE id = $1`,
		u.ID, u.FirstName, u.LastName, u.University, u.Major,
		u.GraduationYear, u.Bio, u.Skills, u.Interests, u.UpdatedAt,
	)
	if err != nil {
		return user.User{}, err
	}
	if n == 0 {
		return user.User{}, ErrNotFound
	}
	return r.GetByID(ctx, u.ID)
}

func scanUser(row database.Row) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.FirstName, &u.LastName, &u.University, &u.Major,
		&u.GraduationYear, &u.Bio, &u.Skills, &u.Interests, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
