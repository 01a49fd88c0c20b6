package report

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-gota/gota/series"
	"github.com/srikanthsesetti/pdsnd-github/internal/stats"
	"github.com/srikanthsesetti/pdsnd-github/internal/tripdata"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var titleCase = cases.Title(language.English)

func timeStats(t *tripdata.Table) ([]string, error) {
	months, err := t.Values(tripdata.ColMonth)
	if err != nil {
		return nil, err
	}
	month, err := stats.Mode(months)
	if err != nil {
		return nil, err
	}
	monthIndex, err := strconv.Atoi(month.Value)
	if err != nil {
		return nil, fmt.Errorf("month %q: %w", month.Value, err)
	}

	days, err := t.Values(tripdata.ColDayOfWeek)
	if err != nil {
		return nil, err
	}
	day, err := stats.Mode(days)
	if err != nil {
		return nil, err
	}

	// Hours are only needed here, so they are derived on demand.
	starts, err := t.StartTimes()
	if err != nil {
		return nil, err
	}
	hours := make([]int, len(starts))
	for i, ts := range starts {
		hours[i] = ts.Hour()
	}
	hour, err := stats.Mode(series.New(hours, series.Int, "hour"))
	if err != nil {
		return nil, err
	}

	return []string{
		fmt.Sprintf("Most common month: %s", time.Month(monthIndex)),
		fmt.Sprintf("Most common day of week: %s", titleCase.String(day.Value)),
		fmt.Sprintf("Most common start hour: %s", hour.Value),
	}, nil
}
