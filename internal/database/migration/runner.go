package migration

import (
	"context"
	"fmt"

	"internhub/internal/database"
)

// statements are idempotent so the runner can be re-applied on every
// boot; the advisory lock serializes concurrent instances.
var statements = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id              UUID PRIMARY KEY,
		email           TEXT NOT NULL UNIQUE,
		password_hash   TEXT NOT NULL,
		first_name      TEXT NOT NULL DEFAULT '',
		last_name       TEXT NOT NULL DEFAULT '',
		university      TEXT NOT NULL DEFAULT '',
		major           TEXT NOT NULL DEFAULT '',
		graduation_year INT,
		bio             TEXT NOT NULL DEFAULT '',
		skills          TEXT[] NOT NULL DEFAULT '{}',
		interests       TEXT[] NOT NULL DEFAULT '{}',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS internships (
		id                   UUID PRIMARY KEY,
		title                TEXT NOT NULL,
		company              TEXT NOT NULL,
		location             TEXT NOT NULL DEFAULT '',
		type                 TEXT NOT NULL DEFAULT '',
		duration             TEXT NOT NULL DEFAULT '',
		description          TEXT NOT NULL DEFAULT '',
		requirements         TEXT[] NOT NULL DEFAULT '{}',
		skills               TEXT[] NOT NULL DEFAULT '{}',
		salary               TEXT NOT NULL DEFAULT '',
		application_deadline TIMESTAMPTZ NOT NULL,
		posted_at            TIMESTAMPTZ NOT NULL,
		industry             TEXT NOT NULL DEFAULT ''
	)`,
	`CREATE TABLE IF NOT EXISTS applications (
		id            UUID PRIMARY KEY,
		user_id       UUID NOT NULL REFERENCES users(id),
		internship_id UUID NOT NULL REFERENCES internships(id),
		status        TEXT NOT NULL,
		applied_at    TIMESTAMPTZ NOT NULL,
		notes         TEXT NOT NULL DEFAULT '',
		UNIQUE (user_id, internship_id)
	)`,
	`CREATE TABLE IF NOT EXISTS resumes (
		id             UUID PRIMARY KEY,
		user_id        UUID NOT NULL REFERENCES users(id),
		file_name      TEXT NOT NULL,
		file_url       TEXT NOT NULL DEFAULT '',
		analysis_score INT NOT NULL DEFAULT 0,
		strengths      TEXT[] NOT NULL DEFAULT '{}',
		weaknesses     TEXT[] NOT NULL DEFAULT '{}',
		suggestions    TEXT[] NOT NULL DEFAULT '{}',
		keywords       TEXT[] NOT NULL DEFAULT '{}',
		created_at     TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at     TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS portfolios (
		id          UUID PRIMARY KEY,
		user_id     UUID NOT NULL REFERENCES users(id),
		title       TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		projects    JSONB NOT NULL DEFAULT '[]',
		is_public   BOOLEAN NOT NULL DEFAULT false,
		created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS skill_assessments (
		id           UUID PRIMARY KEY,
		user_id      UUID NOT NULL REFERENCES users(id),
		skill        TEXT NOT NULL,
		level        TEXT NOT NULL,
		score        INT NOT NULL,
		completed_at TIMESTAMPTZ NOT NULL,
		UNIQUE (user_id, skill)
	)`,
	`CREATE TABLE IF NOT EXISTS career_goals (
		id              UUID PRIMARY KEY,
		user_id         UUID NOT NULL REFERENCES users(id),
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		target_role     TEXT NOT NULL DEFAULT '',
		timeline        TEXT NOT NULL DEFAULT '',
		required_skills TEXT[] NOT NULL DEFAULT '{}',
		progress        INT NOT NULL DEFAULT 0,
		milestones      JSONB NOT NULL DEFAULT '[]',
		created_at      TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
	`CREATE TABLE IF NOT EXISTS notifications (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL REFERENCES users(id),
		title      TEXT NOT NULL,
		message    TEXT NOT NULL,
		type       TEXT NOT NULL,
		read       BOOLEAN NOT NULL DEFAULT false,
		action_url TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMPTZ NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_notifications_user_created
		ON notifications (user_id, created_at DESC)`,
	`CREATE TABLE IF NOT EXISTS mentor_sessions (
		id         UUID PRIMARY KEY,
		user_id    UUID NOT NULL UNIQUE REFERENCES users(id),
		messages   JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
	)`,
}

const lockKey = 824109355

func Run(ctx context.Context, db database.DB) error {
	if db == nil {
		return fmt.Errorf("nil db")
	}

	if _, err := db.Exec(ctx, `SELECT pg_advisory_lock($1)`, lockKey); err != nil {
		return fmt.Errorf("advisory lock: %w", err)
	}
	defer func() {
		_, _ = db.Exec(context.Background(), `SELECT pg_advisory_unlock($1)`, lockKey)
	}()

	for i, stmt := range statements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration statement %d: %w", i, err)
		}
	}
	return nil
}
