package runner

import (
	"context"
	"errors"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available, skipping subprocess test")
	}
}

func TestRun_CapturesStreamsAndExitCode(t *testing.T) {
	requireShell(t)

	r := NewExecRunner(10 * time.Second)
	out, err := r.Run(context.Background(), Command{
		Path: "sh",
		Args: []string{"-c", "echo out; echo err 1>&2"},
	})
	require.NoError(t, err)

	assert.True(t, out.Exited)
	assert.Equal(t, 0, out.ExitCode)
	assert.Equal(t, "out\n", string(out.Stdout))
	assert.Equal(t, "err\n", string(out.Stderr))
}

func TestRun_NonzeroExit(t *testing.T) {
	requireShell(t)

	r := NewExecRunner(10 * time.Second)

	tests := []struct {
		name string
		arg  string
		code int
	}{
		{name: "exit 1", arg: "exit 1", code: 1},
		{name: "exit 127", arg: "exit 127", code: 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Run(context.Background(), Command{
				Path: "sh",
				Args: []string{"-c", tt.arg},
			})
			require.NoError(t, err)
			assert.True(t, out.Exited)
			assert.Equal(t, tt.code, out.ExitCode)
		})
	}
}

func TestRun_WorkingDirectory(t *testing.T) {
	requireShell(t)

	tmpDir := t.TempDir()
	r := NewExecRunner(10 * time.Second)
	out, err := r.Run(context.Background(), Command{
		Path: "sh",
		Args: []string{"-c", "pwd"},
		Dir:  tmpDir,
	})
	require.NoError(t, err)
	assert.Contains(t, string(out.Stdout), tmpDir)
}

func TestRun_ToolNotFound(t *testing.T) {
	r := NewExecRunner(time.Second)
	_, err := r.Run(context.Background(), Command{Path: "definitely-not-a-real-compiler"})
	require.Error(t, err)

	var spawnErr *SpawnError
	assert.True(t, errors.As(err, &spawnErr))
	assert.Equal(t, "definitely-not-a-real-compiler", spawnErr.Tool)
}

func TestRun_Timeout(t *testing.T) {
	requireShell(t)

	r := NewExecRunner(100 * time.Millisecond)
	_, err := r.Run(context.Background(), Command{
		Path: "sh",
		Args: []string{"-c", "sleep 5"},
	})
	require.Error(t, err)

	var timeoutErr *TimeoutError
	assert.True(t, errors.As(err, &timeoutErr))
}

func TestRun_SignalTermination(t *testing.T) {
	requireShell(t)

	r := NewExecRunner(10 * time.Second)
	out, err := r.Run(context.Background(), Command{
		Path: "sh",
		Args: []string{"-c", "kill -KILL $$"},
	})
	require.NoError(t, err)
	assert.False(t, out.Exited)
}
