package app

import (
	"context"
	"errors"
	"time"

	"lunara/config"
	"lunara/internal/controllers"
	"lunara/internal/database"
	"lunara/internal/events"
	"lunara/internal/handlers/middleware"
	"lunara/internal/jobs"
	"lunara/internal/logger"
	"lunara/internal/repositories"
	"lunara/internal/services"
)

type App struct {
	Database    database.DB
	Middleware  middleware.Middleware
	EventBus    *events.EventBus
	Config      config.Config
	Services    services.Service
	Repos       repositories.Repository
	Controllers controllers.Controllers
}

func New() (*App, error) {
	log := logger.New("app").Function("New")

	config, err := config.InitConfig()
	if err != nil {
		return &App{}, log.Err("failed to initialize config", err)
	}

	db, err := database.New(config)
	if err != nil {
		return &App{}, log.Err("failed to create database", err)
	}

	eventBus := events.New(db.Cache.Events, config)

	repos := repositories.New(db)

	service, err := services.New(db, config, eventBus, repos)
	if err != nil {
		return &App{}, log.Err("failed to create services", err)
	}

	middleware := middleware.New(db, eventBus, config, repos)
	controllers := controllers.New(service, repos, eventBus, config, db)

	if err := subscribeActivityEvents(eventBus, service); err != nil {
		return &App{}, log.Err("failed to subscribe to activity events", err)
	}

	if config.SchedulerEnabled {
		if err := jobs.RegisterAllJobs(service.Scheduler, config, service); err != nil {
			return &App{}, log.Err("failed to register jobs", err)
		}

		if err := service.Scheduler.Start(context.Background()); err != nil {
			return &App{}, log.Err("failed to start scheduler", err)
		}
	}

	app := &App{
		Database:    db,
		Config:      config,
		Middleware:  middleware,
		EventBus:    eventBus,
		Services:    service,
		Repos:       repos,
		Controllers: controllers,
	}

	if err := app.validate(); err != nil {
		return &App{}, log.Err("failed to validate app", err)
	}

	return app, nil
}

// subscribeActivityEvents keeps the stored daily set aligned with reality:
// a new cycle entry or profile change invalidates the context today's set was
// generated under, so it is rebuilt in the background.
func subscribeActivityEvents(eventBus *events.EventBus, service services.Service) error {
	log := logger.New("app").Function("subscribeActivityEvents")

	return eventBus.Subscribe(events.ACTIVITY_CHANNEL, func(event events.Event) error {
		if event.UserID == nil {
			return nil
		}

		switch event.Type {
		case events.CYCLE_ENTRY_CREATED, events.PROFILE_UPDATED:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()

			if _, err := service.Recommendation.GenerateForUser(ctx, *event.UserID); err != nil {
				if errors.Is(err, services.ErrProfileNotFound) {
					return nil
				}
				return log.Err("failed to regenerate after activity event", err,
					"userID", *event.UserID, "eventType", event.Type)
			}
		}

		return nil
	})
}

func (a *App) validate() error {
	log := logger.New("app").Function("validate")
	if a.Database.SQL == nil {
		return log.ErrMsg("database is nil")
	}

	if a.Config == (config.Config{}) {
		return log.ErrMsg("config is nil")
	}

	nilChecks := []any{
		a.EventBus,
		a.Services.Auth,
		a.Services.Transaction,
		a.Services.Scheduler,
		a.Services.Recommendation,
		a.Controllers.Auth,
		a.Controllers.User,
		a.Controllers.CheckIn,
		a.Controllers.Content,
		a.Controllers.Recommendation,
		a.Repos.User,
		a.Repos.WellnessProfile,
		a.Repos.Content,
		a.Repos.CheckIn,
		a.Repos.Cycle,
		a.Repos.DailyRecommendation,
	}

	for _, check := range nilChecks {
		if check == nil {
			return log.ErrMsg("nil check failed")
		}
	}

	return nil
}

func (a *App) Close() (err error) {
	if a.EventBus != nil {
		if closeErr := a.EventBus.Close(); closeErr != nil {
			err = closeErr
		}
	}

	if a.Services.Scheduler != nil {
		if closeErr := a.Services.Scheduler.Stop(context.Background()); closeErr != nil {
			err = closeErr
		}
	}

	if dbErr := a.Database.Close(); dbErr != nil {
		err = dbErr
	}

	return err
}
