package report

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/srikanthsesetti/pdsnd-github/internal/stats"
	"github.com/srikanthsesetti/pdsnd-github/internal/tripdata"
)

// Rule separates the blocks of console output.
var Rule = strings.Repeat("-", 40)

// NoData is printed in place of statistics over an empty table.
const NoData = "No trips match the selected filters."

// Section is the printed result of one generator.
type Section struct {
	Title   string
	Lines   []string
	Elapsed time.Duration
}

// Generator computes one summary.
type Generator struct {
	Title string
	build func(t *tripdata.Table) ([]string, error)
}

// Generators returns the summaries in the order a session prints them.
func Generators() []Generator {
	return []Generator{
		{Title: "The Most Frequent Times of Travel", build: timeStats},
		{Title: "The Most Popular Stations and Trip", build: stationStats},
		{Title: "Trip Duration", build: durationStats},
		{Title: "User Stats", build: userStats},
	}
}

// Run computes the summary over t and prints it to w.
func (g Generator) Run(w io.Writer, t *tripdata.Table) (Section, error) {
	fmt.Fprintf(w, "\nCalculating %s...\n\n", g.Title)
	start := time.Now()

	var lines []string
	if t.Len() == 0 {
		lines = []string{NoData}
	} else {
		var err error
		if lines, err = g.build(t); err != nil {
			return Section{}, fmt.Errorf("%s: %w", strings.ToLower(g.Title), err)
		}
	}

	sec := Section{Title: g.Title, Lines: lines, Elapsed: time.Since(start)}
	for _, line := range sec.Lines {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "\nThis took %s seconds.\n", formatSeconds(sec.Elapsed))
	fmt.Fprintln(w, Rule)
	return sec, nil
}

func formatSeconds(d time.Duration) string {
	return fmt.Sprintf("%.6f", d.Seconds())
}

// orNone maps stats.ErrEmpty to a fallback line so a column without any
// values prints a notice instead of failing the report.
func orNone(line string, err error, none string) (string, error) {
	if errors.Is(err, stats.ErrEmpty) {
		return none, nil
	}
	return line, err
}
