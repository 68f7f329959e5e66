package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/lifeflow/adapter/cli"
	"github.com/felixgeelhaar/lifeflow/adapter/cli/habit"
	"github.com/felixgeelhaar/lifeflow/adapter/cli/schedule"
	cliSettings "github.com/felixgeelhaar/lifeflow/adapter/cli/settings"
	"github.com/felixgeelhaar/lifeflow/adapter/cli/sleep"
	"github.com/felixgeelhaar/lifeflow/adapter/cli/task"
	"github.com/felixgeelhaar/lifeflow/internal/app"
	"github.com/felixgeelhaar/lifeflow/pkg/config"
	"github.com/felixgeelhaar/lifeflow/pkg/observability"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		cfg = &config.Config{AppEnv: "development"}
	}

	logCfg := observability.DefaultLogConfig()
	logCfg.Level = observability.LogLevel(cfg.LogLevel)
	logCfg.Format = observability.LogFormat(cfg.LogFormat)
	logCfg.ServiceVersion = cli.Version
	logger := observability.NewLogger(logCfg)
	cli.SetLogger(logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(&cli.App{
		CreateTaskHandler:  container.CreateTaskHandler,
		UpdateTaskHandler:  container.UpdateTaskHandler,
		ToggleTaskHandler:  container.ToggleTaskHandler,
		DeleteTaskHandler:  container.DeleteTaskHandler,
		ListTasksHandler:   container.ListTasksHandler,
		PlanDayHandler:     container.PlanDayHandler,
		GetScheduleHandler: container.GetScheduleHandler,
		Negotiator:         container.Negotiator,
		PendingTasks:       container.PendingTasks,
		Schedules:          container.ScheduleRepo,
		MirroredSchedules:  container.MirroredSchedules,
		Concierge:          container.Concierge,
		Exporter:           container.Exporter,
		LogSleepHandler:    container.LogSleepHandler,
		SleepStatsHandler:  container.SleepStatsHandler,
		HabitHandler:       container.HabitHandler,
		ListHabitsHandler:  container.ListHabitsHandler,
		SettingsService:    container.SettingsService,
	})

	cli.AddCommand(task.Cmd)
	cli.AddCommand(schedule.Cmd)
	cli.AddCommand(sleep.Cmd)
	cli.AddCommand(habit.Cmd)
	cli.AddCommand(cliSettings.Cmd)

	cli.ExecuteContext(ctx)
}
