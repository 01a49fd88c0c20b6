package report

import (
	"fmt"

	"github.com/srikanthsesetti/pdsnd-github/internal/stats"
	"github.com/srikanthsesetti/pdsnd-github/internal/tripdata"
)

func durationStats(t *tripdata.Table) ([]string, error) {
	durations, err := t.Numbers(tripdata.ColTripDuration)
	if err != nil {
		return nil, err
	}
	mean, err := stats.Mean(durations)
	if err != nil {
		return orNoneLines(err, "No trip durations recorded.")
	}
	return []string{
		fmt.Sprintf("Total travel time: %s", stats.FormatHMS(stats.Sum(durations))),
		fmt.Sprintf("Mean travel time: %s", stats.FormatHMS(mean)),
	}, nil
}

func orNoneLines(err error, none string) ([]string, error) {
	line, err := orNone("", err, none)
	if err != nil {
		return nil, err
	}
	return []string{line}, nil
}
