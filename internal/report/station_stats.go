package report

import (
	"fmt"

	"github.com/srikanthsesetti/pdsnd-github/internal/stats"
	"github.com/srikanthsesetti/pdsnd-github/internal/tripdata"
)

func stationStats(t *tripdata.Table) ([]string, error) {
	if !t.Has(tripdata.ColStartStation) || !t.Has(tripdata.ColEndStation) {
		return []string{"Station data is not available for this city."}, nil
	}

	var lines []string
	for _, c := range []struct{ col, label string }{
		{tripdata.ColStartStation, "start"},
		{tripdata.ColEndStation, "end"},
	} {
		values, err := t.Values(c.col)
		if err != nil {
			return nil, err
		}
		station, err := stats.Mode(values)
		line, err := orNone(
			fmt.Sprintf("Most commonly used %s station: %s", c.label, station.Value),
			err,
			fmt.Sprintf("No %s stations recorded.", c.label),
		)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}

	trips, err := t.Complete(tripdata.ColStartStation, tripdata.ColEndStation)
	if err != nil {
		return nil, err
	}
	pair, n, err := stats.PairMode(trips, tripdata.ColStartStation, tripdata.ColEndStation)
	line, err := orNone(
		fmt.Sprintf("Most frequent combination of start station and end station trip: %s -> %s (%s)", pair.Start, pair.End, plural(n, "trip")),
		err,
		"No complete station pairs recorded.",
	)
	if err != nil {
		return nil, err
	}
	return append(lines, line), nil
}
