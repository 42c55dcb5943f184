package anim

import (
	"errors"
	"fmt"
)

// Rejections. The request is ignored and nothing changes; callers surface
// these as transient notices.
var (
	ErrBusy      = errors.New("anim: animation in progress")
	ErrFirstStep = errors.New("anim: already at the first step")
	ErrLastStep  = errors.New("anim: already at the last step")
)

// Precondition failures. They mean the instrumentation and the animator
// disagree, and they abort the current run.
var (
	ErrNoRun     = errors.New("anim: no array loaded")
	ErrMalformed = errors.New("anim: malformed operation")
	ErrMapping   = errors.New("anim: slot mapping is not a permutation")
)

// RunError aborts a run. Op is the operation being applied when it failed.
type RunError struct {
	RunID string
	Op    Operation
	Err   error
}

func (e *RunError) Error() string {
	if e.Op.Kind == 0 {
		return fmt.Sprintf("run %s aborted: %v", e.RunID, e.Err)
	}
	return fmt.Sprintf("run %s aborted at %s: %v", e.RunID, e.Op, e.Err)
}

func (e *RunError) Unwrap() error {
	return e.Err
}

// IsRejection reports whether err is a recoverable navigation/playback
// rejection rather than a run failure.
func IsRejection(err error) bool {
	return errors.Is(err, ErrBusy) || errors.Is(err, ErrFirstStep) || errors.Is(err, ErrLastStep)
}
