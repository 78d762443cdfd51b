// Package app wires the export-go configuration, services, MongoDB log sink
// and HTTP router together.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/export-go/config"
	"github.com/guttosm/export-go/internal/http"
	"github.com/guttosm/export-go/internal/middleware"
)

// App is an initialized export-go service.
type App struct {
	Router   *http.Router
	database *DatabaseComponents
	cfg      config.Config
}

// InitializeApp validates cfg and creates and wires all application
// dependencies.
func InitializeApp(cfg config.Config) (*App, error) {
	// the logger comes first, every other component logs
	InitializeLogger(cfg.Log)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	services, err := InitializeServices(cfg)
	if err != nil {
		return nil, err
	}
	if services.Auth == nil {
		log.Info().Msg("ADMIN_EMAIL not set, admin routes are disabled")
	}

	db := InitializeDatabase(cfg.Database)
	if db != nil {
		middleware.InitAsyncLogger(db.LoggingService, middleware.DefaultAsyncLoggerConfig())
	}

	routerComponents := InitializeRouter(services, db, cfg)

	return &App{
		Router:   http.NewRouter(routerComponents.HealthHandler, routerComponents.Config),
		database: db,
		cfg:      cfg,
	}, nil
}

// Run serves HTTP until SIGINT or SIGTERM and then releases every resource.
func (a *App) Run() error {
	server := NewServer(a.Router, a.cfg.Server)
	server.OnShutdown(a.Close)
	return server.Run()
}

// Close stops the background workers, flushes pending log entries and
// disconnects from MongoDB.
func (a *App) Close(ctx context.Context) {
	a.Router.Close()
	middleware.StopAsyncLogger()
	a.database.Close(ctx)
}
