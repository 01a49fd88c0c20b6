package app

import (
	"context"

	"github.com/srikanthsesetti/pdsnd-github/internal/cities"
	"github.com/srikanthsesetti/pdsnd-github/internal/ctxlog"
)

// loadRegistry returns the built-in registry, with the override file
// applied when one is configured.
func loadRegistry(ctx context.Context, cfg *Config) (*cities.Registry, error) {
	logger := ctxlog.FromContext(ctx)
	if cfg.CitiesPath == "" {
		logger.Debug("No city file configured, using built-in registry.")
		return cities.Default(cfg.DataDir), nil
	}
	logger.Debug("Loading city file...", "path", cfg.CitiesPath)
	return cities.Load(ctx, cfg.CitiesPath, cfg.DataDir)
}
