// Package budget implements the per-stage wall-clock budgets that every
// pipeline stage is measured against.
//
// Each stage measures its own elapsed time with the monotonic clock and
// fails loudly when it runs over its allotment. This is the stop-the-line
// policy: a late result is a failed result, never a silently returned one.
// The check is post-hoc, not preemptive; a stage always runs to completion
// before its overage is detected.
package budget

import (
	"errors"
	"fmt"
	"time"
)

// Stage identifies a pipeline stage with its own budget.
type Stage string

// Budgeted pipeline stages.
const (
	StageStartup  Stage = "startup"
	StageParser   Stage = "parser"
	StageExecutor Stage = "executor"
	StagePrompt   Stage = "prompt"
)

// Default budgets in milliseconds.
const (
	DefaultStartupMS  uint64 = 10
	DefaultParserMS   uint64 = 2
	DefaultExecutorMS uint64 = 2
	DefaultPromptMS   uint64 = 2
)

// Error reports a stage running past its budget. It carries both the
// configured allotment and the measured duration so callers can log the
// overage precisely.
type Error struct {
	Stage        Stage
	ConfiguredMS uint64
	ActualMS     uint64
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s exceeded %dms budget (took %dms)", e.Stage, e.ConfiguredMS, e.ActualMS)
}

// Check compares the elapsed time since start against the stage's budget.
// It returns nil when the stage finished in time and a *Error otherwise.
func Check(stage Stage, budgetMS uint64, start time.Time) error {
	elapsed := time.Since(start)
	if elapsed <= time.Duration(budgetMS)*time.Millisecond {
		return nil
	}
	return &Error{
		Stage:        stage,
		ConfiguredMS: budgetMS,
		ActualMS:     uint64(elapsed.Milliseconds()),
	}
}

// Exceeded reports whether err is (or wraps) a budget overage.
func Exceeded(err error) bool {
	var be *Error
	return errors.As(err, &be)
}
