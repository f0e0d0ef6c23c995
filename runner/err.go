package runner

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Runner errors
	ErrStepBudget = errors.New(f("step budget exhausted"))
)

// ErrNoInputs reports a search that exhausted the grid without a match.
type ErrNoInputs int64

func (err ErrNoInputs) Error() string {
	return f("no noun/verb pair yields %v", int64(err))
}

// ErrRuntime indicates the step at which a run failed.
type ErrRuntime struct {
	Step int
	Err  error
}

func (err *ErrRuntime) Error() string {
	return f("step %d %v", err.Step, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
