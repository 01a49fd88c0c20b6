package stats

import (
	"fmt"
	"math"
)

// FormatHMS renders a number of seconds as HH:MM:SS. Hours are not wrapped
// at a day and grow past two digits as needed; fractional seconds are
// truncated.
func FormatHMS(seconds float64) string {
	total := int64(math.Trunc(seconds))
	sign := ""
	if total < 0 {
		sign = "-"
		total = -total
	}
	h := total / 3600
	m := (total % 3600) / 60
	s := total % 60
	return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, s)
}
