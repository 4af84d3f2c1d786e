package setup

import (
	"context"

	"github.com/reputo/reputo/internal/database"
	"github.com/reputo/reputo/internal/setup/config"
	"go.uber.org/zap"
)

// App bundles all core dependencies and services needed by the application.
// Each field represents a major subsystem that needs initialization and cleanup.
type App struct {
	Config      *config.Config  // Application configuration
	Logger      *zap.Logger     // Main application logger
	DBLogger    *zap.Logger     // Database-specific logger
	DB          database.Client // Database connection pool
	pprofServer *pprofServer    // Debug HTTP server for pprof
}

// InitializeApp bootstraps all application dependencies in the correct order,
// ensuring each component has its required dependencies available.
func InitializeApp(ctx context.Context, logDir string) (*App, error) {
	// Load app configuration
	cfg, configDir, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	// Logging system is initialized next to capture setup issues
	logger, dbLogger, err := GetLoggers(logDir, cfg.Debug.LogLevel, cfg.Debug.MaxLogsToKeep)
	if err != nil {
		return nil, err
	}

	logger.Info("Loaded configuration", zap.String("config_dir", configDir))

	// Initialize database connection and run migrations
	db, err := database.NewConnection(ctx, &cfg.PostgreSQL, dbLogger, true)
	if err != nil {
		return nil, err
	}

	// Start pprof server if enabled
	var pprofSrv *pprofServer

	if cfg.Debug.EnablePprof {
		srv, err := startPprofServer(cfg.Debug.PprofPort, logger)
		if err != nil {
			logger.Error("Failed to start pprof server", zap.Error(err))
		} else {
			pprofSrv = srv

			logger.Warn("pprof debugging endpoint enabled - this should not be used in production!")
		}
	}

	return &App{
		Config:      cfg,
		Logger:      logger,
		DBLogger:    dbLogger,
		DB:          db,
		pprofServer: pprofSrv,
	}, nil
}

// Cleanup ensures graceful shutdown of all components in reverse order
// of their initialization.
func (a *App) Cleanup(ctx context.Context) {
	if a.pprofServer != nil {
		if err := a.pprofServer.stop(ctx); err != nil {
			a.Logger.Error("Failed to stop pprof server", zap.Error(err))
		}
	}

	if err := a.DB.Close(); err != nil {
		a.Logger.Error("Failed to close database connection", zap.Error(err))
	}

	_ = a.Logger.Sync()
	_ = a.DBLogger.Sync()
}
