package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/srikanthsesetti/pdsnd-github/internal/console"
	"github.com/srikanthsesetti/pdsnd-github/internal/ctxlog"
	"github.com/srikanthsesetti/pdsnd-github/internal/filters"
	"github.com/srikanthsesetti/pdsnd-github/internal/pager"
	"github.com/srikanthsesetti/pdsnd-github/internal/report"
	"github.com/srikanthsesetti/pdsnd-github/internal/tripdata"
)

const (
	greeting      = "Hello! Let's explore some US bikeshare data!"
	restartPrompt = "\nWould you like to restart? Enter yes or no.\n"
)

// Run executes session passes until the user declines to restart. Only
// errors that make further prompting impossible are returned.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")
	prompter := console.New(a.in, a.outW)

	for pass := 1; ; pass++ {
		if err := a.runPass(ctx, prompter, pass); err != nil {
			return err
		}

		answer, err := prompter.Ask(restartPrompt)
		if errors.Is(err, console.ErrInputClosed) {
			a.logger.Debug("Input closed at restart prompt.")
			return nil
		}
		if err != nil {
			return err
		}
		if !strings.EqualFold(answer, "yes") {
			break
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runPass performs one collect → load → page → report cycle. Load and
// report failures end the pass with a message; input failures are returned.
func (a *App) runPass(ctx context.Context, prompter *console.Prompter, pass int) error {
	passID := uuid.NewString()
	ctx, logger := ctxlog.With(ctx, "pass", pass, "pass_id", passID)

	fmt.Fprintln(a.outW, greeting)
	sel, err := filters.NewCollector(prompter, a.registry.Names()).Collect(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.outW, report.Rule)

	table, err := a.loader.Load(ctx, sel)
	if err != nil {
		if isDataError(err) {
			logger.Error("Failed to load trip data.", "selection", sel.String(), "error", err)
			fmt.Fprintf(a.outW, "Could not load data for %s: %v\n", sel.City, err)
			return nil
		}
		return err
	}

	if err := pager.New(prompter, a.outW).Run(table); err != nil {
		return err
	}

	sections := make([]report.Section, 0, len(report.Generators()))
	for _, gen := range report.Generators() {
		sec, err := gen.Run(a.outW, table)
		if err != nil {
			logger.Error("Report failed.", "report", gen.Title, "error", err)
			fmt.Fprintf(a.outW, "Could not finish the report: %v\n", err)
			return nil
		}
		sections = append(sections, sec)
	}
	logger.Info("Pass complete.", "selection", sel.String(), "rows", table.Len())

	if a.config.PDFDir != "" {
		a.exportPDF(ctx, passID, sel, sections)
	}
	return nil
}

func isDataError(err error) bool {
	return errors.Is(err, tripdata.ErrMissingResource) || errors.Is(err, tripdata.ErrMalformedData)
}

// exportPDF writes the pass to the configured PDF directory. Failures are
// reported but never end the session.
func (a *App) exportPDF(ctx context.Context, passID string, sel filters.Selection, sections []report.Section) {
	logger := ctxlog.FromContext(ctx)
	path := filepath.Join(a.config.PDFDir, fmt.Sprintf("bikeshare-%s.pdf", passID))

	err := func() error {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()

		err = report.WritePDF(f, report.Document{
			Title:     "US Bikeshare Data",
			Subtitle:  fmt.Sprintf("City: %s   Month: %s   Day: %s", sel.City, sel.Month, sel.Day),
			Generated: time.Now(),
			Sections:  sections,
		})
		if err != nil {
			return err
		}
		return f.Close()
	}()
	if err != nil {
		logger.Error("PDF export failed.", "path", path, "error", err)
		fmt.Fprintf(a.outW, "Could not write PDF report: %v\n", err)
		return
	}

	logger.Info("PDF report written.", "path", path)
	fmt.Fprintf(a.outW, "Report saved to %s\n", path)
}
