package app

import (
	"context"
	"log"
	"time"

	"internhub/internal/analyzer"
	"internhub/internal/config"
	"internhub/internal/database"
	"internhub/internal/database/migration"
	dbpostgres "internhub/internal/database/postgres"
	"internhub/internal/database/seeder"
	"internhub/internal/infrastructure/cache"
	"internhub/internal/repository"
	"internhub/internal/repository/memory"
	"internhub/internal/usecase"

	"internhub/internal/pkg/jwt"
	"internhub/internal/ws"
)

// Repositories groups the per-aggregate stores behind their interfaces
// so the rest of the container never knows which backend is active.
type Repositories struct {
	Users          repository.UserRepository
	Internships    repository.InternshipRepository
	Applications   repository.ApplicationRepository
	Notifications  repository.NotificationRepository
	Resumes        repository.ResumeRepository
	Portfolios     repository.PortfolioRepository
	Assessments    repository.SkillAssessmentRepository
	Goals          repository.CareerGoalRepository
	MentorSessions repository.MentorSessionRepository
}

type Usecases struct {
	Auth            usecase.AuthUsecase
	Profile         usecase.ProfileUsecase
	Search          usecase.SearchUsecase
	Internship      usecase.InternshipUsecase
	Recommendations usecase.RecommendationUsecase
	Applications    usecase.ApplicationUsecase
	Skills          usecase.SkillUsecase
	Goals           usecase.GoalUsecase
	Resumes         usecase.ResumeUsecase
	Portfolios      usecase.PortfolioUsecase
	Mentor          usecase.MentorUsecase
	Notifications   usecase.NotificationUsecase
}

type Container struct {
	Config config.Config
	Logger *log.Logger

	DB    database.DB
	Cache *cache.Redis
	Hub   *ws.Hub
	JWT   jwt.Service

	Repos    Repositories
	Usecases Usecases
}

// NewContainer wires the whole dependency graph. With no database
// host configured everything runs against the in-memory store, which
// is also what local development uses.
func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	if cfg.Database.Enabled() {
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		db, err := dbpostgres.Connect(connectCtx, cfg.Database)
		if err != nil {
			return nil, err
		}
		c.DB = db

		if err := migration.Run(ctx, db); err != nil {
			c.Close()
			return nil, err
		}
		runner := seeder.Runner{Seeders: []seeder.Seeder{seeder.InternshipsSeeder{}}}
		if err := runner.Run(ctx, db); err != nil {
			c.Close()
			return nil, err
		}

		c.Repos = postgresRepositories(db)
		logger.Printf("store ready | backend=postgres host=%s db=%s", cfg.Database.Host, cfg.Database.Name)
	} else {
		repos, err := memoryRepositories(ctx)
		if err != nil {
			return nil, err
		}
		c.Repos = repos
		logger.Printf("store ready | backend=memory")
	}

	c.Cache = cache.NewRedis(cfg.Redis, logger)
	c.JWT = jwt.NewHMACService(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessExpiresIn,
		cfg.JWT.RefreshExpiresIn,
	)
	c.Hub = ws.NewHub(logger)

	notifier := usecase.NewNotifier(c.Repos.Notifications, ws.NewPusher(c.Hub), logger)
	resumeAnalyzer := analyzer.NewGeminiAnalyzer(ctx, cfg.Gemini, logger)

	c.Usecases = Usecases{
		Auth:            usecase.NewAuthUsecase(c.Repos.Users, c.JWT, notifier),
		Profile:         usecase.NewProfileUsecase(c.Repos.Users, c.Repos.Resumes, c.Repos.Portfolios),
		Search:          usecase.NewSearchUsecase(c.Repos.Users, c.Repos.Internships, c.Cache, logger),
		Internship:      usecase.NewInternshipUsecase(c.Repos.Internships, c.Repos.Applications, c.Repos.Users),
		Recommendations: usecase.NewRecommendationUsecase(c.Repos.Users, c.Repos.Internships, notifier),
		Applications:    usecase.NewApplicationUsecase(c.Repos.Applications, c.Repos.Internships, notifier),
		Skills:          usecase.NewSkillUsecase(c.Repos.Users, c.Repos.Assessments, c.Repos.Internships, notifier),
		Goals:           usecase.NewGoalUsecase(c.Repos.Goals, notifier),
		Resumes:         usecase.NewResumeUsecase(c.Repos.Resumes, resumeAnalyzer, notifier),
		Portfolios:      usecase.NewPortfolioUsecase(c.Repos.Portfolios, notifier),
		Mentor:          usecase.NewMentorUsecase(c.Repos.MentorSessions),
		Notifications:   usecase.NewNotificationUsecase(c.Repos.Notifications),
	}

	return c, nil
}

func postgresRepositories(db database.DB) Repositories {
	return Repositories{
		Users:          repository.NewPostgresUserRepository(db),
		Internships:    repository.NewPostgresInternshipRepository(db),
		Applications:   repository.NewPostgresApplicationRepository(db),
		Notifications:  repository.NewPostgresNotificationRepository(db),
		Resumes:        repository.NewPostgresResumeRepository(db),
		Portfolios:     repository.NewPostgresPortfolioRepository(db),
		Assessments:    repository.NewPostgresSkillAssessmentRepository(db),
		Goals:          repository.NewPostgresCareerGoalRepository(db),
		MentorSessions: repository.NewPostgresMentorSessionRepository(db),
	}
}

func memoryRepositories(ctx context.Context) (Repositories, error) {
	internships := memory.NewInternshipRepository()
	for _, it := range seeder.SampleInternships(time.Now().UTC()) {
		if err := internships.Create(ctx, it); err != nil {
			return Repositories{}, err
		}
	}

	return Repositories{
		Users:          memory.NewUserRepository(),
		Internships:    internships,
		Applications:   memory.NewApplicationRepository(),
		Notifications:  memory.NewNotificationRepository(),
		Resumes:        memory.NewResumeRepository(),
		Portfolios:     memory.NewPortfolioRepository(),
		Assessments:    memory.NewSkillAssessmentRepository(),
		Goals:          memory.NewCareerGoalRepository(),
		MentorSessions: memory.NewMentorSessionRepository(),
	}, nil
}

func (c *Container) Close() {
	if c == nil {
		return
	}
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			c.Logger.Printf("cache close error | error=%v", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.Logger.Printf("db close error | error=%v", err)
		}
	}
}
