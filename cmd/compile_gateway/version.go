package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the Cairo compiler version",
	Long:  "Runs the configured Cairo toolchain with --version and prints its output.",
	RunE:  runVersion,
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

func runVersion(cmd *cobra.Command, _ []string) error {
	dispatcher, _, err := newDispatcher()
	if err != nil {
		return err
	}

	version, err := dispatcher.Version(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to query compiler version: %w", err)
	}

	fmt.Print(version)
	return nil
}
