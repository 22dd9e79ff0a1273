package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var compileCasmCmd = &cobra.Command{
	Use:   "compile-casm",
	Short: "Compile a Sierra file to CASM",
	Long:  "Compiles a .sierra file under the project root to CASM without going through the HTTP API.",
	RunE:  runCompileCasm,
}

var (
	compileCasmPath    string
	compileCasmVerbose bool
)

func init() {
	compileCasmCmd.Flags().StringVarP(&compileCasmPath, "path", "p", "", "Project-relative path to the .sierra file (required)")
	compileCasmCmd.Flags().BoolVarP(&compileCasmVerbose, "verbose", "v", false, "Print a human-readable summary instead of JSON")

	if err := compileCasmCmd.MarkFlagRequired("path"); err != nil {
		panic(fmt.Sprintf("failed to mark path flag as required: %v", err))
	}

	rootCmd.AddCommand(compileCasmCmd)
}

func runCompileCasm(cmd *cobra.Command, _ []string) error {
	dispatcher, _, err := newDispatcher()
	if err != nil {
		return err
	}

	resp := dispatcher.CompileToCasm(cmd.Context(), compileCasmPath)
	return reportCompileResult(compileCasmPath, resp, compileCasmVerbose)
}
