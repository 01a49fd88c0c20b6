package tripdata

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

// Source columns.
const (
	ColStartTime    = "Start Time"
	ColTripDuration = "Trip Duration"
	ColStartStation = "Start Station"
	ColEndStation   = "End Station"
	ColUserType     = "User Type"
	ColGender       = "Gender"
	ColBirthYear    = "Birth Year"
)

// Columns derived while loading.
const (
	ColMonth     = "month"
	ColDayOfWeek = "day_of_week"
)

var requiredColumns = []string{ColStartTime, ColTripDuration, ColUserType}

var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	time.RFC3339,
	"1/2/2006 15:04:05",
	"1/2/2006 15:04",
}

// ParseTimestamp parses a Start Time cell.
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.Errorf("unrecognised timestamp %q", s)
}

// IsBlank reports whether a cell holds no value. The CSV reader turns the
// usual missing-value markers into "NaN".
func IsBlank(s string) bool {
	switch strings.TrimSpace(s) {
	case "", "NaN", "NA", "<nil>":
		return true
	}
	return false
}
