package plate

import (
	"errors"
	"fmt"
)

// ErrStartUnresolved is returned when a computation requires a well's
// artifact start index before one has been chosen for it.
var ErrStartUnresolved = errors.New("artifact start index is unresolved")

// ErrBaseUnresolved is returned when a computation requires a well's base
// before it has been found.
var ErrBaseUnresolved = errors.New("base is unresolved")

// InputShapeError reports a cardinality mismatch between a measurement
// series and the plate's shared time axis. The engine refuses to truncate
// rather than guessing which side is right.
type InputShapeError struct {
	Label string
	Want  int
	Got   int
}

func (e InputShapeError) Error() string {
	if e.Label == "" {
		return fmt.Sprintf("expected %d values, got %d", e.Want, e.Got)
	}

	return fmt.Sprintf("well %s: expected %d values, got %d", e.Label, e.Want, e.Got)
}
