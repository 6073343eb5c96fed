package planner

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("could not parse answer")
	ErrValidation  = errors.New("answer failed validation")
	ErrInvalidDate = errors.New("invalid date")
	ErrBusy        = errors.New("a plan is already being generated")
	ErrGeneration  = errors.New("plan generation failed")
	ErrUnavailable = errors.New("collaborator unavailable")
	ErrNotReady    = errors.New("trip request is not complete")
)

// StepError is returned by Submit when an answer is rejected. The state
// stays on Step and Message is the text to show before re-asking.
type StepError struct {
	Step    Step
	Err     error
	Message string
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s: %v: %s", e.Step, e.Err, e.Message)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepError(step Step, kind error, msg string) *StepError {
	return &StepError{Step: step, Err: kind, Message: msg}
}
