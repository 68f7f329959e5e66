// Package app wires the application's dependencies into a container.
package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/redis/go-redis/v9"

	calendarApp "github.com/felixgeelhaar/lifeflow/internal/calendar/application"
	habitCommands "github.com/felixgeelhaar/lifeflow/internal/habits/application/commands"
	habitQueries "github.com/felixgeelhaar/lifeflow/internal/habits/application/queries"
	habitsDomain "github.com/felixgeelhaar/lifeflow/internal/habits/domain"
	habitPersistence "github.com/felixgeelhaar/lifeflow/internal/habits/infrastructure/persistence"
	identitySettings "github.com/felixgeelhaar/lifeflow/internal/identity/application/settings"
	identityPersistence "github.com/felixgeelhaar/lifeflow/internal/identity/infrastructure/persistence"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/application/commands"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/application/queries"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/domain/task"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/infrastructure/persistence"
	scheduleCommands "github.com/felixgeelhaar/lifeflow/internal/scheduling/application/commands"
	scheduleQueries "github.com/felixgeelhaar/lifeflow/internal/scheduling/application/queries"
	schedulerServices "github.com/felixgeelhaar/lifeflow/internal/scheduling/application/services"
	schedulingDomain "github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/infrastructure/genai"
	schedulePersistence "github.com/felixgeelhaar/lifeflow/internal/scheduling/infrastructure/persistence"
	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/database"
	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/eventbus"
	"github.com/felixgeelhaar/lifeflow/internal/shared/infrastructure/migrations"
	wellnessCommands "github.com/felixgeelhaar/lifeflow/internal/wellness/application/commands"
	wellnessQueries "github.com/felixgeelhaar/lifeflow/internal/wellness/application/queries"
	wellnessDomain "github.com/felixgeelhaar/lifeflow/internal/wellness/domain"
	wellnessPersistence "github.com/felixgeelhaar/lifeflow/internal/wellness/infrastructure/persistence"
	"github.com/felixgeelhaar/lifeflow/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Database
	DB *sql.DB

	// Redis (nil when no mirror is configured)
	RedisClient *redis.Client

	// Repositories
	TaskRepo     task.Repository
	ScheduleRepo schedulingDomain.ScheduleRepository
	SleepRepo    wellnessDomain.Repository
	HabitRepo    habitsDomain.Repository
	SettingsRepo identitySettings.Repository

	// Mirror-layered schedule access, when Redis is configured
	MirroredSchedules *schedulePersistence.MirroredScheduleRepository

	// Publishers
	EventPublisher eventbus.Publisher

	// Task Handlers
	CreateTaskHandler *commands.CreateTaskHandler
	UpdateTaskHandler *commands.UpdateTaskHandler
	ToggleTaskHandler *commands.ToggleTaskHandler
	DeleteTaskHandler *commands.DeleteTaskHandler
	ListTasksHandler  *queries.ListTasksHandler

	// Schedule Handlers
	PlanDayHandler     *scheduleCommands.PlanDayHandler
	GetScheduleHandler *scheduleQueries.GetScheduleHandler
	Negotiator         *schedulerServices.Negotiator
	Concierge          *schedulerServices.Concierge
	PendingTasks       schedulerServices.PendingTaskProvider

	// Calendar
	Exporter calendarApp.Exporter

	// Wellness Handlers
	LogSleepHandler   *wellnessCommands.LogSleepHandler
	SleepStatsHandler *wellnessQueries.SleepStatsHandler

	// Habit Handlers
	HabitHandler      *habitCommands.HabitHandler
	ListHabitsHandler *habitQueries.ListHabitsHandler

	// Settings
	SettingsService *identitySettings.Service
}

// NewContainer creates and wires all application dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{Config: cfg, Logger: logger}

	if err := c.initDatabase(ctx); err != nil {
		return nil, err
	}
	c.initRedis()
	c.initEventPublisher()
	c.initRepositories()
	c.initHandlers()

	return c, nil
}

func (c *Container) initDatabase(ctx context.Context) error {
	switch c.Config.DatabaseDriver {
	case "", "sqlite":
		path := c.Config.SQLitePath
		if path == "" {
			path = database.DefaultSQLitePath()
		}
		db, err := database.OpenSQLite(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to open sqlite database: %w", err)
		}
		if err := migrations.RunSQLiteMigrations(ctx, db); err != nil {
			db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		c.DB = db
	case "postgres":
		db, err := database.OpenPostgres(ctx, c.Config.DatabaseURL)
		if err != nil {
			return fmt.Errorf("failed to open postgres database: %w", err)
		}
		if err := migrations.RunPostgresMigrations(ctx, db); err != nil {
			db.Close()
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		c.DB = db
	default:
		return fmt.Errorf("unsupported database driver %q", c.Config.DatabaseDriver)
	}
	return nil
}

func (c *Container) initRedis() {
	if c.Config.RedisURL == "" {
		return
	}
	opts, err := redis.ParseURL(c.Config.RedisURL)
	if err != nil {
		c.Logger.Warn("invalid REDIS_URL, running without schedule mirror", "error", err)
		return
	}
	c.RedisClient = redis.NewClient(opts)
}

func (c *Container) initEventPublisher() {
	if c.Config.RabbitMQURL != "" {
		publisher, err := eventbus.NewRabbitMQPublisher(c.Config.RabbitMQURL, c.Logger)
		if err != nil {
			c.Logger.Warn("failed to connect to RabbitMQ, falling back to in-process bus", "error", err)
		} else {
			c.EventPublisher = publisher
			return
		}
	}
	c.EventPublisher = eventbus.NewInProcessEventBus(c.Logger)
}

func (c *Container) initRepositories() {
	postgres := c.Config.DatabaseDriver == "postgres"

	if postgres {
		c.TaskRepo = persistence.NewPostgresTaskRepository(c.DB)
		c.ScheduleRepo = schedulePersistence.NewPostgresScheduleRepository(c.DB)
	} else {
		c.TaskRepo = persistence.NewSQLiteTaskRepository(c.DB)
		c.ScheduleRepo = schedulePersistence.NewSQLiteScheduleRepository(c.DB)
	}

	// Sleep, habit, and settings storage stay on SQLite features that both
	// engines share; the SQLite repos use portable SQL.
	c.SleepRepo = wellnessPersistence.NewSQLiteSleepRepository(c.DB)
	c.HabitRepo = habitPersistence.NewSQLiteHabitRepository(c.DB)
	c.SettingsRepo = envFallbackSettingsRepo{
		inner:  identityPersistence.NewSQLiteSettingsRepository(c.DB),
		apiKey: c.Config.GeminiAPIKey,
	}

	if c.RedisClient != nil {
		mirror := schedulePersistence.NewRedisScheduleMirror(c.RedisClient)
		c.MirroredSchedules = schedulePersistence.NewMirroredScheduleRepository(c.ScheduleRepo, mirror, c.Logger)
		c.ScheduleRepo = c.MirroredSchedules
	}
}

func (c *Container) initHandlers() {
	c.CreateTaskHandler = commands.NewCreateTaskHandler(c.TaskRepo, c.EventPublisher)
	c.UpdateTaskHandler = commands.NewUpdateTaskHandler(c.TaskRepo, c.EventPublisher)
	c.ToggleTaskHandler = commands.NewToggleTaskHandler(c.TaskRepo, c.EventPublisher)
	c.DeleteTaskHandler = commands.NewDeleteTaskHandler(c.TaskRepo, c.EventPublisher)
	c.ListTasksHandler = queries.NewListTasksHandler(c.TaskRepo)

	c.SettingsService = identitySettings.NewService(c.SettingsRepo)
	c.PendingTasks = pendingTaskProvider{repo: c.TaskRepo}

	c.PlanDayHandler = scheduleCommands.NewPlanDayHandler(
		c.ScheduleRepo, c.PendingTasks, c.SettingsService, c.EventPublisher, c.Logger)
	c.GetScheduleHandler = scheduleQueries.NewGetScheduleHandler(c.ScheduleRepo)

	generator := genai.NewClient(c.Config.GeminiTimeout, c.Logger, genai.WithModel(c.Config.GeminiModel))
	c.Negotiator = schedulerServices.NewNegotiator(c.ScheduleRepo, generator, c.EventPublisher, c.Logger)
	c.Concierge = schedulerServices.NewConcierge()

	c.Exporter = calendarApp.NewExporter()

	c.LogSleepHandler = wellnessCommands.NewLogSleepHandler(c.SleepRepo, c.EventPublisher, c.Logger)
	c.SleepStatsHandler = wellnessQueries.NewSleepStatsHandler(c.SleepRepo)

	c.HabitHandler = habitCommands.NewHabitHandler(c.HabitRepo, c.EventPublisher, c.Logger)
	c.ListHabitsHandler = habitQueries.NewListHabitsHandler(c.HabitRepo)
}

// Close releases all container resources.
func (c *Container) Close() {
	if c.EventPublisher != nil {
		if err := c.EventPublisher.Close(); err != nil {
			c.Logger.Warn("failed to close event publisher", "error", err)
		}
	}
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			c.Logger.Warn("failed to close redis client", "error", err)
		}
	}
	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			c.Logger.Warn("failed to close database", "error", err)
		}
	}
}

// pendingTaskProvider feeds the schedulers from the task repository.
type pendingTaskProvider struct {
	repo task.Repository
}

func (p pendingTaskProvider) PendingTasks(ctx context.Context) ([]schedulerServices.TaskSummary, error) {
	tasks, err := p.repo.FindPending(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]schedulerServices.TaskSummary, 0, len(tasks))
	for _, t := range tasks {
		summaries = append(summaries, schedulerServices.TaskSummary{
			ID:              t.ID(),
			Title:           t.Title(),
			EstimateMinutes: t.EstimateMinutes(),
			PriorityWeight:  t.Priority().Weight(),
			Priority:        t.Priority().String(),
			Deadline:        t.Deadline(),
		})
	}
	return summaries, nil
}

// envFallbackSettingsRepo fills the Gemini credential from the environment
// when the stored preferences have none.
type envFallbackSettingsRepo struct {
	inner  identitySettings.Repository
	apiKey string
}

func (r envFallbackSettingsRepo) Load(ctx context.Context) (identitySettings.Preferences, error) {
	prefs, err := r.inner.Load(ctx)
	if err != nil {
		return prefs, err
	}
	if prefs.GeminiAPIKey == "" {
		prefs.GeminiAPIKey = r.apiKey
	}
	return prefs, nil
}

func (r envFallbackSettingsRepo) Save(ctx context.Context, prefs identitySettings.Preferences) error {
	return r.inner.Save(ctx, prefs)
}
