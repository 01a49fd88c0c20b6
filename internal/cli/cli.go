package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/srikanthsesetti/pdsnd-github/internal/app"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Environment variables consulted for options not given on the command line.
const (
	EnvDataDir   = "BIKESHARE_DATA_DIR"
	EnvCities    = "BIKESHARE_CITIES"
	EnvPDFDir    = "BIKESHARE_PDF_DIR"
	EnvLogLevel  = "BIKESHARE_LOG_LEVEL"
	EnvLogFormat = "BIKESHARE_LOG_FORMAT"
)

const defaultEnvFile = ".env"

// Parse processes command-line arguments. Options missing from args are
// taken from getenv, then from the dotenv file, then from their defaults.
// It returns a populated Config, a boolean indicating if the program should
// exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer, getenv func(string) string) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("bikeshare", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
bikeshare - Explore US bikeshare trip data interactively.

Usage:
  bikeshare [options]

The program asks for a city (chicago, new york city, washington), a month
(january-june or all) and a day of week (or all), then prints statistics
for the matching trips.

Options:
`)
		flagSet.PrintDefaults()
	}

	dataDirFlag := flagSet.String("data-dir", ".", "Directory containing the city CSV files. Env: "+EnvDataDir)
	citiesFlag := flagSet.String("cities", "", "Optional HCL file overriding city data files. Env: "+EnvCities)
	pdfFlag := flagSet.String("pdf", "", "Directory to write a PDF report for every pass. Env: "+EnvPDFDir)
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'. Env: "+EnvLogFormat)
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Env: "+EnvLogLevel)
	envFileFlag := flagSet.String("env-file", defaultEnvFile, "Dotenv file providing environment defaults.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if flagSet.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected arguments: %s", strings.Join(flagSet.Args(), " "))}
	}
	slog.Debug("Arguments parsed successfully.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	dotenv, err := readEnvFile(*envFileFlag, explicit["env-file"])
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	lookup := func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}
	resolve := func(name, env string, value *string) {
		if explicit[name] {
			return
		}
		if v := lookup(env); v != "" {
			*value = v
		}
	}
	resolve("data-dir", EnvDataDir, dataDirFlag)
	resolve("cities", EnvCities, citiesFlag)
	resolve("pdf", EnvPDFDir, pdfFlag)
	resolve("log-format", EnvLogFormat, logFormatFlag)
	resolve("log-level", EnvLogLevel, logLevelFlag)

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(app.Config{
		DataDir:    *dataDirFlag,
		CitiesPath: *citiesFlag,
		PDFDir:     *pdfFlag,
		LogFormat:  logFormat,
		LogLevel:   logLevel,
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", config)
	return config, false, nil
}

// readEnvFile loads path as a dotenv file. A missing file is only an error
// when it was named explicitly.
func readEnvFile(path string, required bool) (map[string]string, error) {
	values, err := godotenv.Read(path)
	if err == nil {
		return values, nil
	}
	if errors.Is(err, fs.ErrNotExist) && !required {
		return map[string]string{}, nil
	}
	return nil, fmt.Errorf("env file %s: %w", path, err)
}
