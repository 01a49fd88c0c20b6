// Package filters owns the closed vocabularies a session is filtered by
// (months and weekdays) and the interactive collector that keeps asking
// until it holds a valid city, month and day.
package filters
