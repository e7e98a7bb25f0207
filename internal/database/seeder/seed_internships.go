package seeder

import (
	"context"
	"time"

	"internhub/internal/database"
	"internhub/internal/domain/internship"

	"github.com/google/uuid"
)

// InternshipsSeeder loads a small catalogue of sample postings into an
// empty internships table so a fresh install has something to search.
type InternshipsSeeder struct{}

func (InternshipsSeeder) Name() string { return "internships" }

func (InternshipsSeeder) Run(ctx context.Context, db database.DB) error {
	var count int
	if err := db.QueryRow(ctx, `SELECT COUNT(*) FROM internships`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	items := SampleInternships(now)

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, it := range items {
		_, err := tx.Exec(ctx,
			`INSERT INTO internships
				(id, title, company, location, type, duration, description,
				 requirements, skills, salary, application_deadline, posted_at, industry)
			 VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13)`,
			it.ID, it.Title, it.Company, it.Location, it.Type, it.Duration, it.Description,
			it.Requirements, it.Skills, it.Salary, it.ApplicationDeadline, it.PostedAt, it.Industry,
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// SampleInternships is the default catalogue. The in-memory store
// seeds from it directly; the SQL seeder inserts it once.
func SampleInternships(now time.Time) []internship.Internship {
	return []internship.Internship{
		{
			ID:                  uuid.New(),
			Title:               "Software Engineering Intern",
			Company:             "TechCorp",
			Location:            "San Francisco, CA",
			Type:                internship.TypeHybrid,
			Duration:            "3 months",
			Description:         "Join our engineering team to build scalable web applications using React and Node.js.",
			Requirements:        []string{"Computer Science major", "3.0+ GPA", "JavaScript experience"},
			Skills:              []string{"React", "Node.js", "JavaScript", "Git"},
			Salary:              "$25/hour",
			ApplicationDeadline: now.AddDate(0, 0, 45),
			PostedAt:            now.AddDate(0, 0, -5),
			Industry:            "Technology",
		},
		{
			ID:                  uuid.New(),
			Title:               "Data Science Intern",
			Company:             "DataFlow Inc",
			Location:            "Remote",
			Type:                internship.TypeRemote,
			Duration:            "4 months",
			Description:         "Work with our data science team to analyze large datasets and build ML models.",
			Requirements:        []string{"Statistics or CS background", "Python experience", "SQL knowledge"},
			Skills:              []string{"Python", "SQL", "Machine Learning", "Pandas"},
			Salary:              "$22/hour",
			ApplicationDeadline: now.AddDate(0, 0, 30),
			PostedAt:            now.AddDate(0, 0, -10),
			Industry:            "Data & Analytics",
		},
		{
			ID:                  uuid.New(),
			Title:               "UX Design Intern",
			Company:             "DesignStudio",
			Location:            "New York, NY",
			Type:                internship.TypeOnSite,
			Duration:            "3 months",
			Description:         "Create user-centered designs for mobile and web applications.",
			Requirements:        []string{"Design portfolio", "Figma experience", "User research knowledge"},
			Skills:              []string{"Figma", "User Research", "Prototyping", "Design Systems"},
			Salary:              "$20/hour",
			ApplicationDeadline: now.AddDate(0, 0, 20),
			PostedAt:            now.AddDate(0, 0, -2),
			Industry:            "Design",
		},
	}
}
