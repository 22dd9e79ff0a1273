package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davide/cairo-compile-gateway/internal/config"
	"github.com/davide/cairo-compile-gateway/internal/server"
)

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue a bearer token for the gateway",
	Long:  "Issues a signed bearer token for a client, using the configured GATEWAY_AUTH_SECRET.",
	RunE:  runToken,
}

var tokenClientID string

func init() {
	tokenCmd.Flags().StringVarP(&tokenClientID, "client", "c", "", "Client identifier to embed in the token (required)")

	if err := tokenCmd.MarkFlagRequired("client"); err != nil {
		panic(fmt.Sprintf("failed to mark client flag as required: %v", err))
	}

	rootCmd.AddCommand(tokenCmd)
}

func runToken(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if !cfg.AuthEnabled() {
		return fmt.Errorf("GATEWAY_AUTH_SECRET is not set; the gateway is running without authentication")
	}

	token, err := server.NewTokenService(cfg).GenerateToken(tokenClientID)
	if err != nil {
		return err
	}

	fmt.Println(token)
	return nil
}
