package compiler

import (
	"context"

	"github.com/davide/cairo-compile-gateway/internal/runner"
	"github.com/davide/cairo-compile-gateway/internal/types"
)

// CompileToCasm compiles a .sierra file under the project root into CASM,
// writing the artifact under the CASM output root at the same relative
// location with a .casm extension.
func (d *Dispatcher) CompileToCasm(ctx context.Context, relPath string) *types.CompileResponse {
	return d.compileFile(ctx, relPath, fileCompileJob{
		sourceExt:  "sierra",
		targetExt:  "casm",
		outputs:    d.casm,
		failStatus: types.StatusSierraCompilationFailed,
		command:    d.casmCommand,
	})
}

// casmCommand builds the starknet-sierra-compile invocation. Unlike the
// Sierra path there is no single-file flag.
func (d *Dispatcher) casmCommand(srcAbs, dstAbs string) runner.Command {
	return runner.Command{
		Path: "cargo",
		Args: []string{"run", "--release", "--bin", "starknet-sierra-compile", "--", srcAbs, dstAbs},
		Dir:  d.cfg.CairoDir,
	}
}
