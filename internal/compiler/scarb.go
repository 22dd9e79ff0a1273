package compiler

import (
	"context"
	"log"
	"os"
	"path/filepath"

	"github.com/davide/cairo-compile-gateway/internal/artifacts"
	"github.com/davide/cairo-compile-gateway/internal/runner"
	"github.com/davide/cairo-compile-gateway/internal/sanitize"
	"github.com/davide/cairo-compile-gateway/internal/types"
)

// scarbOutputDir is Scarb's conventional build output location, relative to
// the project directory.
const scarbOutputDir = "target/dev"

// ScarbBuild runs scarb build with the resolved project directory as working
// directory, then collects every text artifact under target/dev. Artifacts
// are collected whether or not the build succeeded; a never-built project
// yields an empty array.
func (d *Dispatcher) ScarbBuild(ctx context.Context, relPath string) *types.ScarbBuildResponse {
	empty := []types.FileContentMap{}

	projectDir, err := d.projects.Resolve(relPath)
	if err != nil {
		return &types.ScarbBuildResponse{
			Status:              types.StatusInvalidPath,
			Message:             err.Error(),
			FileContentMapArray: empty,
		}
	}
	if info, err := os.Stat(projectDir); err != nil || !info.IsDir() {
		return &types.ScarbBuildResponse{
			Status:              types.StatusFileNotFound,
			Message:             "project directory not found: " + relPath,
			FileContentMapArray: empty,
		}
	}

	result, _, _ := d.group.Do(projectDir, func() (interface{}, error) {
		return d.runScarbBuild(ctx, relPath, projectDir), nil
	})
	return result.(*types.ScarbBuildResponse)
}

func (d *Dispatcher) runScarbBuild(ctx context.Context, relPath, projectDir string) *types.ScarbBuildResponse {
	cmd := runner.Command{
		Path: "scarb",
		Args: []string{"build"},
		Dir:  projectDir,
	}
	log.Printf("[compiler] running %s %v in %s", cmd.Path, cmd.Args, relPath)

	outcome, err := d.runner.Run(ctx, cmd)
	if err != nil {
		return &types.ScarbBuildResponse{
			Status:              runErrorStatus(err),
			Message:             err.Error(),
			FileContentMapArray: []types.FileContentMap{},
		}
	}

	files, listErr := artifacts.ListTextFiles(filepath.Join(projectDir, scarbOutputDir))
	if listErr != nil {
		files = []types.FileContentMap{}
	}

	rewrite := sanitize.Replacement{Absolute: projectDir, Relative: relPath}
	// Stdout first, then stderr; each stream is sanitized independently.
	message := sanitize.Rewrite(sanitize.Decode(outcome.Stdout), rewrite) +
		sanitize.Rewrite(sanitize.Decode(outcome.Stderr), rewrite)

	return &types.ScarbBuildResponse{
		Status:              statusForOutcome(outcome, types.StatusScarbBuildFailed),
		Message:             message,
		FileContentMapArray: files,
	}
}
