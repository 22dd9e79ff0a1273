// Package runner executes external compiler toolchains as subprocesses and
// captures their output.
package runner

import (
	"bytes"
	"context"
	"errors"
	"os/exec"
	"time"
)

// Command describes one external-tool invocation: the executable, its ordered
// argument list, and the working directory it runs in.
type Command struct {
	Path string
	Args []string
	Dir  string
}

// Outcome holds everything observed from a completed subprocess. When Exited
// is false the process was killed or signal-terminated and ExitCode is
// meaningless.
type Outcome struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
	Exited   bool
}

// Runner runs one subprocess to completion. Implementations must never panic
// on spawn failure; a tool that cannot be launched is an error value.
type Runner interface {
	Run(ctx context.Context, cmd Command) (Outcome, error)
}

// ExecRunner is the production Runner backed by os/exec. Each invocation is
// bounded by Timeout; on expiry the process is killed and a *TimeoutError
// returned.
type ExecRunner struct {
	Timeout time.Duration
}

// NewExecRunner creates an ExecRunner with the given per-invocation timeout.
// A zero timeout means no deadline.
func NewExecRunner(timeout time.Duration) *ExecRunner {
	return &ExecRunner{Timeout: timeout}
}

// Run spawns cmd, waits for it synchronously, and returns the captured streams
// plus exit status. Stdout and stderr are captured independently.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) (Outcome, error) {
	if _, err := exec.LookPath(cmd.Path); err != nil {
		return Outcome{}, &SpawnError{Tool: cmd.Path, Cause: err}
	}

	if r.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.Timeout)
		defer cancel()
	}

	proc := exec.CommandContext(ctx, cmd.Path, cmd.Args...)
	proc.Dir = cmd.Dir

	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	runErr := proc.Run()

	outcome := Outcome{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}

	if runErr == nil {
		outcome.ExitCode = 0
		outcome.Exited = true
		return outcome, nil
	}

	// The deadline check comes first: CommandContext kills the process on
	// expiry, which would otherwise look like a signal termination.
	if ctx.Err() == context.DeadlineExceeded {
		return outcome, &TimeoutError{Tool: cmd.Path, Timeout: r.Timeout}
	}

	var exitErr *exec.ExitError
	if errors.As(runErr, &exitErr) {
		outcome.Exited = exitErr.ProcessState.Exited()
		if outcome.Exited {
			outcome.ExitCode = exitErr.ProcessState.ExitCode()
		}
		return outcome, nil
	}

	return outcome, &SpawnError{Tool: cmd.Path, Cause: runErr}
}
