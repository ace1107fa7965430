package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/phrazzld/taskboard/internal/config"
	"github.com/phrazzld/taskboard/internal/events"
	"github.com/phrazzld/taskboard/internal/feed"
	"github.com/phrazzld/taskboard/internal/platform/memory"
	"github.com/phrazzld/taskboard/internal/service"
	"github.com/phrazzld/taskboard/internal/store"
	"github.com/phrazzld/taskboard/internal/sweep"
)

// EventLogHandler writes every task lifecycle event to the structured log.
type EventLogHandler struct {
	logger *slog.Logger
}

// HandleEvent implements events.EventHandler.
func (h *EventLogHandler) HandleEvent(ctx context.Context, event *events.TaskEvent) error {
	level := slog.LevelInfo
	if event.Type == events.TaskTimedOut {
		level = slog.LevelWarn
	}
	h.logger.Log(ctx, level, "task event",
		"event_id", event.ID,
		"event_type", event.Type,
		"task_id", event.TaskID,
		"category", event.Category,
		"occurred_at", event.OccurredAt)
	return nil
}

// application holds all the shared application dependencies.
type application struct {
	config *config.Config
	logger *slog.Logger

	taskStore    store.TaskStore
	eventEmitter events.EventEmitter
	taskService  service.TaskService
	feedSource   feed.Source
	sweeper      *sweep.Sweeper
}

// newApplication creates a new application instance with all dependencies
// initialized. serviceOpts are passed through to the task service.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	serviceOpts ...service.Option,
) (*application, error) {
	if logger == nil {
		logger = slog.Default()
	}

	app := &application{
		config: cfg,
		logger: logger,
	}

	taskStore := memory.NewTaskStore(logger)
	if cfg.Store.SeedSampleTasks {
		if err := taskStore.Seed(ctx, memory.SampleTasks(time.Now())); err != nil {
			return nil, fmt.Errorf("failed to seed task store: %w", err)
		}
	}
	app.taskStore = taskStore

	emitter := events.NewInMemoryEventEmitter(logger)
	emitter.RegisterHandler(&EventLogHandler{logger: logger.With("component", "event_log")})
	app.eventEmitter = emitter

	var err error
	app.taskService, err = service.NewTaskService(app.taskStore, app.eventEmitter, logger, serviceOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	app.feedSource = feed.NewStaticSource()

	app.sweeper = sweep.NewSweeper(app.taskService, sweep.SweeperConfig{
		Interval: cfg.Sweep.Interval(),
	}, logger)

	logger.Info("application initialized successfully")
	return app, nil
}

// Run starts the HTTP server and the timeout sweeper and blocks until ctx
// is cancelled or either of them fails.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}
