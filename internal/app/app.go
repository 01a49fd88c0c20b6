package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/srikanthsesetti/pdsnd-github/internal/cities"
	"github.com/srikanthsesetti/pdsnd-github/internal/ctxlog"
	"github.com/srikanthsesetti/pdsnd-github/internal/tripdata"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in       io.Reader
	outW     io.Writer
	logger   *slog.Logger
	config   *Config
	registry *cities.Registry
	loader   *tripdata.Loader
}

// NewApp is the constructor for the main application. Session prompts are
// read from in and all report output goes to outW; log records go to logW.
// It panics when the city registry cannot be built, as nothing useful can
// run without it.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	reg, err := loadRegistry(ctx, cfg)
	if err != nil {
		panic(fmt.Errorf("failed to load city registry: %w", err))
	}
	logger.Debug("City registry ready.", "cities", reg.Names(), "data_dir", reg.DataDir())

	return &App{
		in:       in,
		outW:     outW,
		logger:   logger,
		config:   cfg,
		registry: reg,
		loader:   tripdata.NewLoader(reg),
	}
}

// Registry returns the application's city registry. This is primarily for testing.
func (a *App) Registry() *cities.Registry {
	return a.registry
}
