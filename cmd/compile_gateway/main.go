// Package main provides the entry point for the Cairo compile gateway.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/davide/cairo-compile-gateway/internal/compiler"
	"github.com/davide/cairo-compile-gateway/internal/config"
	"github.com/davide/cairo-compile-gateway/internal/runner"
)

var rootCmd = &cobra.Command{
	Use:   "compile_gateway",
	Short: "Cairo Remote Compilation Gateway",
	Long:  "Compile gateway accepts Cairo source uploads and compiles them to Sierra and CASM through the Cairo toolchain and Scarb, over REST or directly from the command line.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newDispatcher loads the gateway configuration and builds a dispatcher
// backed by the real toolchain runner. Shared by every subcommand.
func newDispatcher() (*compiler.Dispatcher, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return compiler.New(cfg, runner.NewExecRunner(cfg.CompileTimeout)), cfg, nil
}
