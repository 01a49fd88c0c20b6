package filters

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/srikanthsesetti/pdsnd-github/internal/ctxlog"
)

// Selection is the (city, month, day) triple one session pass is run with.
// Month and Day are lowercase names or All.
type Selection struct {
	City  string
	Month string
	Day   string
}

func (s Selection) String() string {
	return fmt.Sprintf("city=%s month=%s day=%s", s.City, s.Month, s.Day)
}

// Asker is the prompt/answer contract the collector depends on.
type Asker interface {
	Ask(question string) (string, error)
}

// Collector gathers a Selection from the user.
type Collector struct {
	asker  Asker
	cities []string
}

// NewCollector returns a collector that accepts exactly the given city
// names (lowercase).
func NewCollector(asker Asker, cities []string) *Collector {
	return &Collector{asker: asker, cities: cities}
}

// Collect asks for city, month and day in that order. Invalid answers are
// asked again indefinitely; only an input error ends collection early.
func (c *Collector) Collect(ctx context.Context) (Selection, error) {
	city, err := c.askUntil(ctx, "city",
		"Enter a city: ",
		fmt.Sprintf("Enter a city from - %s: ", strings.Join(c.cities, ", ")),
		func(s string) bool { return slices.Contains(c.cities, s) },
	)
	if err != nil {
		return Selection{}, err
	}

	monthPrompt := `Enter a month from January to June (Enter "all" to select all months): `
	month, err := c.askUntil(ctx, "month", monthPrompt, monthPrompt, IsMonth)
	if err != nil {
		return Selection{}, err
	}

	dayPrompt := `Enter a day (Enter "all" to select all days): `
	day, err := c.askUntil(ctx, "day", dayPrompt, dayPrompt, IsDay)
	if err != nil {
		return Selection{}, err
	}

	sel := Selection{City: city, Month: month, Day: day}
	ctxlog.FromContext(ctx).Debug("Filters collected.", "selection", sel.String())
	return sel, nil
}

// askUntil lowercases every answer before validating it.
func (c *Collector) askUntil(ctx context.Context, field, first, retry string, valid func(string) bool) (string, error) {
	logger := ctxlog.FromContext(ctx)
	question := first
	for {
		answer, err := c.asker.Ask(question)
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", field, err)
		}
		answer = strings.ToLower(answer)
		if valid(answer) {
			return answer, nil
		}
		logger.Debug("Rejected filter value.", "field", field, "value", answer)
		question = retry
	}
}
