// Package tripdata loads a city's trip log into a Table, derives the
// calendar columns the reports group by, and applies a session's month and
// day filters. Tables are read-only views: filtering and slicing return new
// tables over the same underlying frame.
package tripdata
