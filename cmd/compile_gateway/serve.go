package main

import (
	"github.com/spf13/cobra"

	"github.com/davide/cairo-compile-gateway/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes the save-code, compile-to-sierra, compile-to-casm, scarb-compile, and cairo-version endpoints.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	dispatcher, cfg, err := newDispatcher()
	if err != nil {
		return err
	}

	return server.New(cfg, servePort, dispatcher).Start()
}
