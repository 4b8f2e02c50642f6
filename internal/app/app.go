package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"habits-cli/internal/config"
	"habits-cli/internal/domain/repository"
	domainservice "habits-cli/internal/domain/service"
	infradb "habits-cli/internal/infrastructure/db"
	"habits-cli/internal/infrastructure/logger"
	"habits-cli/internal/infrastructure/postgres"
	"habits-cli/internal/infrastructure/sqlite"
	"habits-cli/internal/service"
	"habits-cli/internal/transport/cli"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// App represents the application
type App struct {
	config       *config.Config
	logger       *zap.Logger
	habitService domainservice.HabitService
	shell        *cli.Shell
	out          io.Writer

	sqliteDB *sql.DB
	pgPool   *pgxpool.Pool
}

// New creates a new application from configuration found in the environment
func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(context.Background(), cfg, cli.NewTeaPrompter(os.Stdin, os.Stdout), os.Stdout)
}

// NewWithConfig wires the application around an explicit config, prompter and output
func NewWithConfig(ctx context.Context, cfg *config.Config, prompter cli.Prompter, out io.Writer) (*App, error) {
	baseLogger, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	log := baseLogger.With(
		zap.String("service", cfg.Service.Name),
		zap.String("session_id", uuid.NewString()),
	)

	a := &App{
		config: cfg,
		logger: log,
		out:    out,
	}

	// Initialize repository
	var habitRepo repository.HabitRepository
	switch cfg.Database.Driver {
	case config.DriverPostgres:
		pool, err := infradb.NewPostgresPool(ctx, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize PostgreSQL: %w", err)
		}
		a.pgPool = pool
		habitRepo = postgres.NewHabitRepository(pool)
	default:
		db, err := infradb.NewSQLiteDB(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite: %w", err)
		}
		a.sqliteDB = db
		habitRepo = sqlite.NewHabitRepository(db, cfg.Database.Path)
	}
	log.Info("store initialized", zap.String("driver", cfg.Database.Driver))

	// Initialize services
	a.habitService = service.NewHabitService(habitRepo, log)
	analyticsService := service.NewAnalyticsService(habitRepo, log)

	a.shell = cli.NewShell(a.habitService, analyticsService, prompter, out, log)

	return a, nil
}

// Run seeds the store on first start and runs the interactive shell
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return a.RunContext(ctx)
}

// RunContext is Run with a caller-supplied context
func (a *App) RunContext(ctx context.Context) error {
	defer a.close()

	a.logger.Info("session started", zap.String("version", a.config.Service.Version))

	if a.config.Seed.Enabled {
		seeded, err := a.habitService.SeedIfAbsent(ctx)
		switch {
		case errors.Is(err, repository.ErrPersistenceUnavailable):
			a.logger.Warn("seeding skipped", zap.Error(err))
			fmt.Fprintf(a.out, "Persistence unavailable, predefined habits were not added: %v\n", err)
		case err != nil:
			return fmt.Errorf("failed to seed habits: %w", err)
		case seeded:
			fmt.Fprintln(a.out, "Added predefined habits to a new habit store")
		}
	}

	if err := a.shell.Run(ctx); err != nil {
		return fmt.Errorf("shell error: %w", err)
	}

	a.logger.Info("session ended")
	return nil
}

func (a *App) close() {
	if a.sqliteDB != nil {
		if err := a.sqliteDB.Close(); err != nil {
			a.logger.Warn("failed to close sqlite database", zap.Error(err))
		}
	}
	if a.pgPool != nil {
		a.pgPool.Close()
	}
	_ = a.logger.Sync()
}
