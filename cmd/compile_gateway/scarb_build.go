package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davide/cairo-compile-gateway/internal/observability"
	"github.com/davide/cairo-compile-gateway/internal/types"
)

var scarbBuildCmd = &cobra.Command{
	Use:   "scarb-build",
	Short: "Build a Scarb project",
	Long:  "Runs scarb build on a project directory under the project root and collects its artifacts.",
	RunE:  runScarbBuild,
}

var (
	scarbBuildPath    string
	scarbBuildVerbose bool
)

func init() {
	scarbBuildCmd.Flags().StringVarP(&scarbBuildPath, "path", "p", "", "Project-relative path to the Scarb project directory (required)")
	scarbBuildCmd.Flags().BoolVarP(&scarbBuildVerbose, "verbose", "v", false, "Print a human-readable summary instead of JSON")

	if err := scarbBuildCmd.MarkFlagRequired("path"); err != nil {
		panic(fmt.Sprintf("failed to mark path flag as required: %v", err))
	}

	rootCmd.AddCommand(scarbBuildCmd)
}

func runScarbBuild(cmd *cobra.Command, _ []string) error {
	dispatcher, _, err := newDispatcher()
	if err != nil {
		return err
	}

	resp := dispatcher.ScarbBuild(cmd.Context(), scarbBuildPath)

	if scarbBuildVerbose {
		observability.NewPrinter(os.Stdout).PrintScarbResult(scarbBuildPath, resp)
	} else {
		jsonBytes, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result to JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	}

	if resp.Status != types.StatusSuccess {
		return fmt.Errorf("scarb build finished with status %s", resp.Status)
	}
	return nil
}
