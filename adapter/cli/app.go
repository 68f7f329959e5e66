package cli

import (
	calendarApp "github.com/felixgeelhaar/lifeflow/internal/calendar/application"
	habitCommands "github.com/felixgeelhaar/lifeflow/internal/habits/application/commands"
	habitQueries "github.com/felixgeelhaar/lifeflow/internal/habits/application/queries"
	identitySettings "github.com/felixgeelhaar/lifeflow/internal/identity/application/settings"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/application/commands"
	"github.com/felixgeelhaar/lifeflow/internal/productivity/application/queries"
	scheduleCommands "github.com/felixgeelhaar/lifeflow/internal/scheduling/application/commands"
	scheduleQueries "github.com/felixgeelhaar/lifeflow/internal/scheduling/application/queries"
	"github.com/felixgeelhaar/lifeflow/internal/scheduling/application/services"
	scheduleDomain "github.com/felixgeelhaar/lifeflow/internal/scheduling/domain"
	schedulePersistence "github.com/felixgeelhaar/lifeflow/internal/scheduling/infrastructure/persistence"
	wellnessCommands "github.com/felixgeelhaar/lifeflow/internal/wellness/application/commands"
	wellnessQueries "github.com/felixgeelhaar/lifeflow/internal/wellness/application/queries"
)

// App holds the CLI application dependencies.
type App struct {
	// Task Command Handlers
	CreateTaskHandler *commands.CreateTaskHandler
	UpdateTaskHandler *commands.UpdateTaskHandler
	ToggleTaskHandler *commands.ToggleTaskHandler
	DeleteTaskHandler *commands.DeleteTaskHandler

	// Task Query Handlers
	ListTasksHandler *queries.ListTasksHandler

	// Schedule Command Handlers
	PlanDayHandler *scheduleCommands.PlanDayHandler

	// Schedule Query Handlers
	GetScheduleHandler *scheduleQueries.GetScheduleHandler

	// Negotiation engine
	Negotiator *services.Negotiator

	// Pending-task feed for schedule generation
	PendingTasks services.PendingTaskProvider

	// Schedule storage, for raw aggregate loads
	Schedules scheduleDomain.ScheduleRepository

	// Mirror-backed reads; nil when no mirror is configured
	MirroredSchedules *schedulePersistence.MirroredScheduleRepository

	// Local fallback chat
	Concierge *services.Concierge

	// Calendar
	Exporter calendarApp.Exporter

	// Sleep Handlers
	LogSleepHandler   *wellnessCommands.LogSleepHandler
	SleepStatsHandler *wellnessQueries.SleepStatsHandler

	// Habit Handlers
	HabitHandler      *habitCommands.HabitHandler
	ListHabitsHandler *habitQueries.ListHabitsHandler

	// Settings
	SettingsService *identitySettings.Service
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
