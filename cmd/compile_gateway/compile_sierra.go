package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davide/cairo-compile-gateway/internal/observability"
	"github.com/davide/cairo-compile-gateway/internal/types"
)

var compileSierraCmd = &cobra.Command{
	Use:   "compile-sierra",
	Short: "Compile a Cairo file to Sierra",
	Long:  "Compiles a .cairo file under the project root to Sierra without going through the HTTP API.",
	RunE:  runCompileSierra,
}

var (
	compileSierraPath    string
	compileSierraVerbose bool
)

func init() {
	compileSierraCmd.Flags().StringVarP(&compileSierraPath, "path", "p", "", "Project-relative path to the .cairo file (required)")
	compileSierraCmd.Flags().BoolVarP(&compileSierraVerbose, "verbose", "v", false, "Print a human-readable summary instead of JSON")

	if err := compileSierraCmd.MarkFlagRequired("path"); err != nil {
		panic(fmt.Sprintf("failed to mark path flag as required: %v", err))
	}

	rootCmd.AddCommand(compileSierraCmd)
}

func runCompileSierra(cmd *cobra.Command, _ []string) error {
	dispatcher, _, err := newDispatcher()
	if err != nil {
		return err
	}

	resp := dispatcher.CompileToSierra(cmd.Context(), compileSierraPath)
	return reportCompileResult(compileSierraPath, resp, compileSierraVerbose)
}

// reportCompileResult prints a single-file compile result and converts a
// non-success status into a command error.
func reportCompileResult(relPath string, resp *types.CompileResponse, verbose bool) error {
	if verbose {
		observability.NewPrinter(os.Stdout).PrintCompileResult(relPath, resp)
	} else {
		jsonBytes, err := json.MarshalIndent(resp, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result to JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	}

	if resp.Status != types.StatusSuccess {
		return fmt.Errorf("compile finished with status %s", resp.Status)
	}
	return nil
}
