package curve

import (
	"errors"
	"fmt"
)

var (
	// ErrNoPoints is matched by the PreconditionError returned when
	// evaluating a curve that has no points.
	ErrNoPoints = errors.New("curve has no points")
	// ErrUnknownMode is returned when asked to evaluate with a Mode outside
	// the seven defined schemes.
	ErrUnknownMode = errors.New("unknown interpolation mode")
)

// PreconditionError is returned when a curve does not have enough points to
// be evaluated with a given mode. It describes a problem with the shape of the
// data; retrying will not help.
type PreconditionError struct {
	CurveID   int
	Mode      Mode
	Points    int
	MinPoints int
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf(
		"curve %d has %d point(s), but %s interpolation needs at least %d",
		e.CurveID, e.Points, e.Mode, e.MinPoints,
	)
}

// Is lets errors.Is match any PreconditionError.
func (e *PreconditionError) Is(target error) bool {
	_, ok := target.(*PreconditionError)
	return ok
}

func (e *PreconditionError) Unwrap() error {
	if e.Points == 0 {
		return ErrNoPoints
	}
	return nil
}
