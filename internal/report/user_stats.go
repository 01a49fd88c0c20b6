package report

import (
	"fmt"

	"github.com/go-gota/gota/series"
	"github.com/srikanthsesetti/pdsnd-github/internal/stats"
	"github.com/srikanthsesetti/pdsnd-github/internal/tripdata"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var counts = message.NewPrinter(language.English)

func userStats(t *tripdata.Table) ([]string, error) {
	lines, err := frequencyTable(t, tripdata.ColUserType, "Counts of user types:", "No user types recorded.")
	if err != nil {
		return nil, err
	}

	if t.Has(tripdata.ColGender) {
		genders, err := frequencyTable(t, tripdata.ColGender, "Counts of genders:", "No genders recorded.")
		if err != nil {
			return nil, err
		}
		lines = append(lines, genders...)
	}

	if t.Has(tripdata.ColBirthYear) {
		years, err := birthYears(t)
		if err != nil {
			return nil, err
		}
		lines = append(lines, years...)
	}
	return lines, nil
}

// frequencyTable renders the value counts of col, most frequent first, with
// the counts right-aligned.
func frequencyTable(t *tripdata.Table, col, heading, none string) ([]string, error) {
	values, err := t.Values(col)
	if err != nil {
		return nil, err
	}
	vc, err := stats.ValueCounts(values)
	if err != nil {
		return nil, err
	}
	if len(vc) == 0 {
		return []string{none}, nil
	}

	labelWidth, countWidth := 0, 0
	formatted := make([]string, len(vc))
	for i, c := range vc {
		formatted[i] = counts.Sprintf("%d", c.N)
		labelWidth = max(labelWidth, len(c.Value))
		countWidth = max(countWidth, len(formatted[i]))
	}

	lines := []string{heading}
	for i, c := range vc {
		lines = append(lines, fmt.Sprintf("  %-*s  %*s", labelWidth, c.Value, countWidth, formatted[i]))
	}
	return lines, nil
}

func birthYears(t *tripdata.Table) ([]string, error) {
	raw, err := t.Numbers(tripdata.ColBirthYear)
	if err != nil {
		return nil, err
	}
	earliest, latest, err := stats.MinMax(raw)
	if err != nil {
		return orNoneLines(err, "No birth years recorded.")
	}

	common, err := stats.Mode(series.New(raw.Float(), series.Int, tripdata.ColBirthYear))
	if err != nil {
		return nil, err
	}

	return []string{
		fmt.Sprintf("Earliest year of birth: %d", int(earliest)),
		fmt.Sprintf("Most recent year of birth: %d", int(latest)),
		fmt.Sprintf("Most common year of birth: %s", common.Value),
	}, nil
}

func plural(n int, noun string) string {
	if n == 1 {
		return counts.Sprintf("%d %s", n, noun)
	}
	return counts.Sprintf("%d %ss", n, noun)
}
