package world

import (
	"errors"
	"fmt"
)

// Domain errors for world operations.
var (
	// ErrInvalidHandle indicates an operation on an unknown or detached
	// particle/generator handle.
	ErrInvalidHandle = errors.New("world: invalid handle")

	// ErrInvalidState indicates particle state with NaN or Inf values.
	ErrInvalidState = errors.New("world: invalid state (NaN or Inf detected)")
)

// StepError wraps a failure with the step index and simulation time at
// which it occurred.
type StepError struct {
	Step    int
	Time    float64
	Wrapped error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %d (t=%.4f): %v", e.Step, e.Time, e.Wrapped)
}

func (e *StepError) Unwrap() error {
	return e.Wrapped
}
