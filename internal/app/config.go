package app

import (
	"errors"
	"fmt"
	"os"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	DataDir    string // directory holding the city CSV files
	CitiesPath string // optional HCL file overriding city files
	PDFDir     string // when set, each pass is exported here as a PDF

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.DataDir == "" {
		return nil, errors.New("DataDir is a required configuration field and cannot be empty")
	}
	if err := requireDir(cfg.DataDir); err != nil {
		return nil, fmt.Errorf("data directory: %w", err)
	}
	if cfg.PDFDir != "" {
		if err := requireDir(cfg.PDFDir); err != nil {
			return nil, fmt.Errorf("pdf directory: %w", err)
		}
	}
	if cfg.CitiesPath != "" {
		if _, err := os.Stat(cfg.CitiesPath); err != nil {
			return nil, fmt.Errorf("cities file: %w", err)
		}
	}
	return &cfg, nil
}

func requireDir(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", path)
	}
	return nil
}
