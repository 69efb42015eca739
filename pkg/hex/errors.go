package hex

import (
	"errors"
	"fmt"
)

// ErrPrecondition is the root of every contract violation in the hex packages.
// Callers can test any of them with errors.Is(err, ErrPrecondition).
var ErrPrecondition = errors.New("precondition violation")

// Coordinate and layout errors.
var (
	ErrNonPositiveDivisor = fmt.Errorf("%w: divisor must be positive", ErrPrecondition)
	ErrEmptyGroup         = fmt.Errorf("%w: coordinate group is empty", ErrPrecondition)
	ErrNonPositiveSize    = fmt.Errorf("%w: grid size must be positive", ErrPrecondition)
)
