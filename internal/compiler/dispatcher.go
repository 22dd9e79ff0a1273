// Package compiler maps compile jobs onto external toolchain invocations and
// assembles their results.
package compiler

import (
	"context"
	"log"
	"os"

	"golang.org/x/sync/singleflight"

	"github.com/davide/cairo-compile-gateway/internal/artifacts"
	"github.com/davide/cairo-compile-gateway/internal/config"
	"github.com/davide/cairo-compile-gateway/internal/paths"
	"github.com/davide/cairo-compile-gateway/internal/runner"
	"github.com/davide/cairo-compile-gateway/internal/sanitize"
	"github.com/davide/cairo-compile-gateway/internal/types"
)

// Dispatcher sequences path resolution, directory preparation, subprocess
// execution, artifact read-back, and output sanitization for each job kind.
// It holds no per-job state; concurrent jobs for the same destination are
// coalesced through a singleflight group so identical in-flight compiles
// share one result instead of racing on the output file.
type Dispatcher struct {
	cfg      *config.Config
	runner   runner.Runner
	projects *paths.Resolver
	sierra   *paths.Resolver
	casm     *paths.Resolver
	group    singleflight.Group
}

// New creates a Dispatcher for the given configuration and runner.
func New(cfg *config.Config, r runner.Runner) *Dispatcher {
	return &Dispatcher{
		cfg:      cfg,
		runner:   r,
		projects: paths.NewResolver(cfg.ProjectRoot),
		sierra:   paths.NewResolver(cfg.SierraRoot),
		casm:     paths.NewResolver(cfg.CasmRoot),
	}
}

// SaveCode writes uploaded source bytes under the project root, creating
// parent directories as needed, and returns the resolved absolute path.
func (d *Dispatcher) SaveCode(relPath string, data []byte) (string, error) {
	absPath, err := d.projects.Resolve(relPath)
	if err != nil {
		return "", err
	}
	if err := artifacts.WriteFile(absPath, data); err != nil {
		return "", err
	}
	log.Printf("[compiler] saved %s (%d bytes)", relPath, len(data))
	return absPath, nil
}

// fileCompileJob describes the parts of a single-file compile that differ
// between the Sierra and CASM paths.
type fileCompileJob struct {
	sourceExt  string
	targetExt  string
	outputs    *paths.Resolver
	failStatus types.Status
	command    func(srcAbs, dstAbs string) runner.Command
}

// compileFile runs one single-file compile job: validate the extension,
// resolve source and destination, ensure the destination directory, invoke
// the tool, read back the artifact, and sanitize the diagnostics.
func (d *Dispatcher) compileFile(ctx context.Context, relPath string, job fileCompileJob) *types.CompileResponse {
	if ext := paths.Ext(relPath); ext != job.sourceExt {
		return &types.CompileResponse{
			Status:  types.StatusFileExtensionNotSupported,
			Message: "file extension not supported: expected ." + job.sourceExt,
		}
	}

	srcAbs, err := d.projects.Resolve(relPath)
	if err != nil {
		return &types.CompileResponse{
			Status:  types.StatusInvalidPath,
			Message: err.Error(),
		}
	}
	if _, err := os.Stat(srcAbs); os.IsNotExist(err) {
		return &types.CompileResponse{
			Status:  types.StatusFileNotFound,
			Message: "source file not found: " + relPath,
		}
	}

	dstRel := paths.ReplaceExt(relPath, job.targetExt)
	dstAbs, err := job.outputs.Resolve(dstRel)
	if err != nil {
		return &types.CompileResponse{
			Status:  types.StatusInvalidPath,
			Message: err.Error(),
		}
	}

	// Coalesce concurrent jobs targeting the same artifact.
	result, _, _ := d.group.Do(dstAbs, func() (interface{}, error) {
		return d.runFileCompile(ctx, relPath, srcAbs, dstRel, dstAbs, job), nil
	})
	return result.(*types.CompileResponse)
}

func (d *Dispatcher) runFileCompile(ctx context.Context, relPath, srcAbs, dstRel, dstAbs string, job fileCompileJob) *types.CompileResponse {
	if err := artifacts.EnsureParentDir(dstAbs); err != nil {
		return &types.CompileResponse{
			Status:  types.StatusDirectoryCreationFailed,
			Message: err.Error(),
		}
	}

	cmd := job.command(srcAbs, dstAbs)
	log.Printf("[compiler] running %s %v", cmd.Path, cmd.Args)

	outcome, err := d.runner.Run(ctx, cmd)
	if err != nil {
		return &types.CompileResponse{
			Status:  runErrorStatus(err),
			Message: err.Error(),
		}
	}

	// Read back whatever the tool produced; a missing artifact is an empty
	// string, not a distinct status.
	content, readErr := artifacts.ReadText(dstAbs)
	if readErr != nil {
		content = ""
	}

	message := sanitize.Rewrite(sanitize.Decode(outcome.Stderr),
		sanitize.Replacement{Absolute: srcAbs, Relative: relPath},
		sanitize.Replacement{Absolute: dstAbs, Relative: dstRel},
	)

	return &types.CompileResponse{
		Status:      statusForOutcome(outcome, job.failStatus),
		Message:     message,
		FileContent: content,
	}
}

// statusForOutcome maps a completed process to a status. The mapping is
// total: exit 0 is success, any nonzero exit is the job's failure status,
// and a process with no observable exit code is an unknown error.
func statusForOutcome(out runner.Outcome, failStatus types.Status) types.Status {
	if !out.Exited {
		return types.StatusUnknownError
	}
	if out.ExitCode == 0 {
		return types.StatusSuccess
	}
	return failStatus
}

// runErrorStatus maps runner errors to statuses. Spawn failures and timeouts
// are ordinary result values, never transport-level failures.
func runErrorStatus(err error) types.Status {
	switch err.(type) {
	case *runner.SpawnError:
		return types.StatusSpawnFailed
	case *runner.TimeoutError:
		return types.StatusTimeout
	default:
		return types.StatusUnknownError
	}
}
