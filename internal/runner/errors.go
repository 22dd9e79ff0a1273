package runner

import (
	"fmt"
	"time"
)

// SpawnError indicates the external tool could not be launched at all:
// missing from PATH, no execute permission, or a failed fork/exec.
type SpawnError struct {
	Tool  string
	Cause error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", e.Tool, e.Cause)
}

func (e *SpawnError) Unwrap() error {
	return e.Cause
}

// TimeoutError indicates the tool exceeded its deadline and was terminated.
type TimeoutError struct {
	Tool    string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("%s did not finish within %s", e.Tool, e.Timeout)
}
