package tripdata

import (
	"context"
	"encoding/csv"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/pkg/errors"
	"github.com/srikanthsesetti/pdsnd-github/internal/cities"
	"github.com/srikanthsesetti/pdsnd-github/internal/ctxlog"
	"github.com/srikanthsesetti/pdsnd-github/internal/filters"
	"github.com/srikanthsesetti/pdsnd-github/internal/fsutil"
)

// Loader turns a filter selection into a filtered Table.
type Loader struct {
	registry *cities.Registry
}

// NewLoader creates a loader resolving cities through reg.
func NewLoader(reg *cities.Registry) *Loader {
	return &Loader{registry: reg}
}

// Load reads the selected city's trip log and applies the month and day
// filters. A selection matching no rows yields an empty table.
func (l *Loader) Load(ctx context.Context, sel filters.Selection) (*Table, error) {
	logger := ctxlog.FromContext(ctx)

	path, err := l.resolve(sel.City)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(ErrMissingResource, "open %s: %v", path, err)
	}
	defer f.Close()

	table, err := Read(f)
	if err != nil {
		return nil, errors.WithMessage(err, path)
	}
	logger.Debug("Trip log loaded.", "path", path, "rows", table.Len())

	filtered, err := Apply(table, sel.Month, sel.Day)
	if err != nil {
		return nil, err
	}
	logger.Info("Trip data filtered.", "city", sel.City, "month", sel.Month, "day", sel.Day, "rows", filtered.Len())
	return filtered, nil
}

// resolve finds the file registered for city, falling back to a search of
// the data directory by file name.
func (l *Loader) resolve(city string) (string, error) {
	path, ok := l.registry.File(city)
	if !ok {
		return "", errors.Wrapf(ErrMissingResource, "no trip log registered for %q", city)
	}
	if _, err := os.Stat(path); err == nil {
		return path, nil
	}

	found, err := fsutil.FindFile(l.registry.DataDir(), filepath.Base(path))
	if err != nil {
		return "", errors.Wrapf(ErrMissingResource, "%s: %v", path, err)
	}
	if found == "" {
		return "", errors.Wrapf(ErrMissingResource, "%s", path)
	}
	return found, nil
}

// Read parses a trip log and derives the month and day-of-week columns.
// Any unparsable start time or trip duration aborts the read. A log holding
// only its header is an empty table.
func Read(r io.Reader) (*Table, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, errors.Wrapf(ErrMalformedData, "read csv: %v", err)
	}
	if len(records) == 0 {
		return nil, errors.Wrap(ErrMalformedData, "read csv: no header")
	}

	for _, col := range requiredColumns {
		if !slices.Contains(records[0], col) {
			return nil, errors.Wrapf(ErrMalformedData, "missing column %q", col)
		}
	}

	frame := loadFrame(records)
	if frame.Err != nil {
		return nil, errors.Wrapf(ErrMalformedData, "load records: %v", frame.Err)
	}

	table, err := newTable(frame)
	if err != nil {
		return nil, err
	}
	starts, err := table.StartTimes()
	if err != nil {
		return nil, err
	}
	if _, err := table.Numbers(ColTripDuration); err != nil {
		return nil, err
	}

	months := make([]int, len(starts))
	days := make([]string, len(starts))
	for i, ts := range starts {
		months[i] = int(ts.Month())
		days[i] = strings.ToLower(ts.Weekday().String())
	}

	table.frame = table.frame.
		Mutate(series.New(months, series.Int, ColMonth)).
		Mutate(series.New(days, series.String, ColDayOfWeek))
	if table.frame.Err != nil {
		return nil, errors.Wrap(table.frame.Err, "derive calendar columns")
	}
	return table, nil
}

// loadFrame keeps every cell as text; columns are parsed on demand. The
// records loader refuses a header without rows, so that case gets zero-length
// columns instead.
func loadFrame(records [][]string) dataframe.DataFrame {
	if len(records) > 1 {
		return dataframe.LoadRecords(records,
			dataframe.HasHeader(true),
			dataframe.DetectTypes(false),
			dataframe.DefaultType(series.String),
		)
	}

	columns := make([]series.Series, len(records[0]))
	for i, name := range records[0] {
		columns[i] = series.New([]string{}, series.String, name)
	}
	return dataframe.New(columns...)
}

// Apply filters table by month and day; filters.All disables either.
func Apply(table *Table, month, day string) (*Table, error) {
	if month != filters.All {
		idx, ok := filters.MonthIndex(month)
		if !ok {
			return nil, errors.Errorf("unsupported month %q", month)
		}
		want := strconv.Itoa(idx)
		filtered, err := table.Filter(ColMonth, func(cell string) bool { return cell == want })
		if err != nil {
			return nil, err
		}
		table = filtered
	}

	if day != filters.All {
		filtered, err := table.Filter(ColDayOfWeek, func(cell string) bool { return strings.EqualFold(cell, day) })
		if err != nil {
			return nil, err
		}
		table = filtered
	}
	return table, nil
}
