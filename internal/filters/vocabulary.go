package filters

import "strings"

// All disables a month or day filter.
const All = "all"

// The trip logs only cover the first half of the year.
var months = [...]string{"january", "february", "march", "april", "may", "june"}

var weekdays = [...]string{"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday"}

// MonthIndex maps a month name to its 1-based calendar number.
func MonthIndex(name string) (int, bool) {
	name = strings.ToLower(name)
	for i, m := range months {
		if m == name {
			return i + 1, true
		}
	}
	return 0, false
}

// IsMonth reports whether s is "all" or a selectable month, ignoring case.
func IsMonth(s string) bool {
	if strings.EqualFold(s, All) {
		return true
	}
	_, ok := MonthIndex(s)
	return ok
}

// IsDay reports whether s is "all" or a weekday name, ignoring case.
func IsDay(s string) bool {
	s = strings.ToLower(s)
	if s == All {
		return true
	}
	for _, d := range weekdays {
		if d == s {
			return true
		}
	}
	return false
}
