package compiler

import (
	"context"

	"github.com/davide/cairo-compile-gateway/internal/runner"
	"github.com/davide/cairo-compile-gateway/internal/sanitize"
)

// Version runs the Cairo compiler with --version in the toolchain directory
// and returns its standard output as plain text. A tool that cannot be
// launched or times out surfaces as an error for the caller to report.
func (d *Dispatcher) Version(ctx context.Context) (string, error) {
	outcome, err := d.runner.Run(ctx, runner.Command{
		Path: "cargo",
		Args: []string{"run", "-q", "--release", "--bin", "cairo-compile", "--", "--version"},
		Dir:  d.cfg.CairoDir,
	})
	if err != nil {
		return "", err
	}
	return sanitize.Decode(outcome.Stdout), nil
}
