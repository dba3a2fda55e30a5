// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "fitlog-tracker/internal/api"
	"fitlog-tracker/internal/api/handler"
	"fitlog-tracker/internal/config"
	"fitlog-tracker/internal/metrics"
	"fitlog-tracker/internal/repository"
	"fitlog-tracker/internal/repository/postgres"
	"fitlog-tracker/internal/service"
	"fitlog-tracker/internal/util"
	"fitlog-tracker/pkg/db"
)

// Application holds all the initialized components of the application.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository     repository.UserRepository
	ExerciseRepository repository.ExerciseRepository

	// Services
	TrackerService service.TrackerService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance. The logger is set up
// front so initialization failures can still be reported.
func NewApplication() *Application {
	return &Application{Logger: util.GetLogger()}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg

	util.InitLogger()
	app.Logger = util.GetLogger()
	app.Logger.Info("Application configuration loaded successfully.")

	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if app.Config.Migrate {
		if err := db.RunMigrations(ctx, app.DB); err != nil {
			return fmt.Errorf("failed to run migrations: %w", err)
		}
		app.Logger.Info("Database migrations applied.")
	}

	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.ExerciseRepository = postgres.NewExerciseRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	app.TrackerService = service.NewTrackerService(app.DB, app.UserRepository, app.ExerciseRepository)
	app.Logger.Info("Services initialized.")

	metrics.Init()
	trackerHandler := handler.NewTrackerHandler(app.TrackerService, app.Logger)
	app.HTTPHandler = router.NewRouter(trackerHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
