package mat

import (
	"errors"
)

// ErrInvalidDimension is returned when a table does not have N rows of N values.
var ErrInvalidDimension = errors.New("mat: invalid dimension")
