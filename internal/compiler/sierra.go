package compiler

import (
	"context"

	"github.com/davide/cairo-compile-gateway/internal/runner"
	"github.com/davide/cairo-compile-gateway/internal/types"
)

// CompileToSierra compiles a .cairo source file under the project root into
// Sierra, writing the artifact under the Sierra output root at the same
// relative location with a .sierra extension.
func (d *Dispatcher) CompileToSierra(ctx context.Context, relPath string) *types.CompileResponse {
	return d.compileFile(ctx, relPath, fileCompileJob{
		sourceExt:  "cairo",
		targetExt:  "sierra",
		outputs:    d.sierra,
		failStatus: types.StatusCompilationFailed,
		command:    d.sierraCommand,
	})
}

// sierraCommand builds the starknet-compile invocation. The tool runs through
// cargo with the toolchain checkout as working directory, not the project dir.
func (d *Dispatcher) sierraCommand(srcAbs, dstAbs string) runner.Command {
	return runner.Command{
		Path: "cargo",
		Args: []string{"run", "--release", "--bin", "starknet-compile", "--", srcAbs, dstAbs, "--single-file"},
		Dir:  d.cfg.CairoDir,
	}
}
