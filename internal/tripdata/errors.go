package tripdata

import "github.com/pkg/errors"

var (
	// ErrMissingResource means a city's trip log could not be found or opened.
	ErrMissingResource = errors.New("trip data not found")
	// ErrMalformedData means the trip log could not be interpreted.
	ErrMalformedData = errors.New("malformed trip data")
)
