package app

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/placement-service/internal/api/http"
	"github.com/spec-kit/placement-service/internal/api/http/handlers"
	"github.com/spec-kit/placement-service/internal/auth"
	"github.com/spec-kit/placement-service/internal/config"
	"github.com/spec-kit/placement-service/internal/events"
	"github.com/spec-kit/placement-service/internal/observability"
	"github.com/spec-kit/placement-service/internal/persistence"
	"github.com/spec-kit/placement-service/internal/repository"
	sqliterepo "github.com/spec-kit/placement-service/internal/repository/sqlite"
	"github.com/spec-kit/placement-service/internal/service"
	"github.com/spec-kit/placement-service/internal/worker"
)

// Services holds every initialized component.
type Services struct {
	Config       *config.Config
	Logger       *zap.Logger
	Store        *repository.Store
	Sessions     auth.SessionStore
	Auth         *service.AuthService
	Jobs         *service.JobService
	Applications *service.ApplicationService
	Employers    *service.EmployerService
	Stats        *service.StatsService
	Seeder       *service.Seeder
	Metrics      *observability.Metrics

	janitor  *worker.SessionJanitor
	postgres *persistence.Postgres
	sqlite   *persistence.SQLite
	redis    *persistence.Redis
}

// New opens the configured providers and builds the services on top of them.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Services, error) {
	s := &Services{Config: cfg, Logger: logger, Metrics: observability.NewMetrics()}

	if err := s.openStore(ctx); err != nil {
		s.Close()
		return nil, err
	}
	if err := s.openSessions(ctx); err != nil {
		s.Close()
		return nil, err
	}

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartActivityWorker(service.NewActivityService(dispatcher, logger))

	authService, err := service.NewAuthService(cfg.Auth, service.AuthDependencies{
		UserRepo:    s.Store.Users,
		ProfileRepo: s.Store.Profiles,
		Sessions:    s.Sessions,
		Dispatcher:  dispatcher,
		Logger:      logger,
	})
	if err != nil {
		s.Close()
		return nil, fmt.Errorf("failed to init auth service: %w", err)
	}

	s.Auth = authService
	s.Jobs = service.NewJobService(s.Store.Jobs, s.Store.Profiles, dispatcher, logger)
	s.Applications = service.NewApplicationService(s.Store.Applications, s.Store.Jobs, dispatcher, logger)
	s.Employers = service.NewEmployerService(s.Store.Profiles, dispatcher, logger)
	s.Stats = service.NewStatsService(s.Store.Stats)
	s.Seeder = service.NewSeeder(authService, s.Store.Users, s.Store.Jobs, logger)
	return s, nil
}

func (s *Services) openStore(ctx context.Context) error {
	switch s.Config.Database.Driver {
	case config.DriverPostgres:
		pg, err := persistence.NewPostgres(ctx, s.Config.Postgres, s.Logger)
		if err != nil {
			return fmt.Errorf("failed to connect postgres: %w", err)
		}
		s.postgres = pg
		if s.Config.Postgres.RunMigrations {
			if err := persistence.RunMigrations(ctx, pg.PoolHandle(), s.Config.Postgres.MigrationsDir, s.Logger); err != nil {
				return fmt.Errorf("failed to run migrations: %w", err)
			}
		}
		s.Store = repository.NewPostgresStore(pg.PoolHandle())
	case config.DriverSQLite:
		db, err := persistence.NewSQLite(s.Config.SQLite, s.Logger)
		if err != nil {
			return err
		}
		s.sqlite = db
		if err := sqliterepo.Migrate(ctx, db.DB); err != nil {
			return fmt.Errorf("failed to migrate sqlite: %w", err)
		}
		s.Store = sqliterepo.NewStore(db.DB)
	default:
		return fmt.Errorf("unsupported database driver %q", s.Config.Database.Driver)
	}
	return nil
}

func (s *Services) openSessions(ctx context.Context) error {
	ttl := s.Config.Auth.SessionTTL()
	switch s.Config.Auth.SessionStore {
	case config.SessionStoreRedis:
		rdb, err := persistence.NewRedis(ctx, s.Config.Redis, s.Logger)
		if err != nil {
			return err
		}
		s.redis = rdb
		s.Sessions = auth.NewRedisSessionStore(rdb.Client, ttl)
	default:
		store := auth.NewMemorySessionStore(ttl)
		s.Sessions = store
		s.janitor = worker.NewSessionJanitor(store, s.Config.Auth.SweepInterval(), s.Logger)
	}
	return nil
}

// StartWorkers launches background loops bound to ctx.
func (s *Services) StartWorkers(ctx context.Context) {
	if s.janitor != nil {
		go s.janitor.Run(ctx)
	}
}

// HTTP builds the Fiber application with every route mounted.
func (s *Services) HTTP() *fiber.App {
	cfg := s.Config
	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: true,
		ErrorHandler:          httptransport.ErrorHandler,
	})
	httptransport.RegisterMiddlewares(app, s.Logger, s.Metrics, cfg.App.RequestTimeout())

	dependencies := map[string]handlers.Pinger{}
	if s.postgres != nil {
		dependencies["postgres"] = s.postgres
	}
	if s.sqlite != nil {
		dependencies["sqlite"] = s.sqlite
	}
	if s.redis != nil {
		dependencies["redis"] = s.redis
	}

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, dependencies, s.Metrics),
		Auth: handlers.NewAuthHandler(s.Auth, handlers.CookieSettings{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.Auth.CookieSecure,
		}),
		Jobs:           handlers.NewJobsHandler(s.Jobs),
		Applications:   handlers.NewApplicationsHandler(s.Applications),
		Admin:          handlers.NewAdminHandler(s.Stats, s.Employers),
		AuthMiddleware: auth.NewAuthMiddleware(s.Auth, cfg.Auth.CookieName),
	})
	return app
}

// Close releases every opened resource.
func (s *Services) Close() {
	if s.Sessions != nil {
		_ = s.Sessions.Close()
	}
	s.redis.Close()
	s.sqlite.Close()
	s.postgres.Close()
}
