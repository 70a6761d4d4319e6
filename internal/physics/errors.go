package physics

import (
	"errors"
	"fmt"
)

// Domain errors raised at the configuration boundary and by drivers.
// The integrator and resolvers themselves never fail.
var (
	// ErrInvalidBody indicates a non-positive radius or mass.
	ErrInvalidBody = errors.New("physics: invalid body (radius and mass must be positive)")

	// ErrParameterBounds indicates a parameter value is outside valid range.
	ErrParameterBounds = errors.New("physics: parameter out of valid bounds")

	// ErrUnstable indicates a body position or velocity became NaN or Inf.
	ErrUnstable = errors.New("physics: simulation unstable (body diverged)")
)

// StepError wraps an error with the frame it happened in.
type StepError struct {
	Step    int
	Time    float64
	Body    int
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f) body %d: %v", e.Step, e.Time, e.Body, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
