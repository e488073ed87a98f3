// ABOUTME: Providers subcommand listing registered providers and availability
// ABOUTME: Availability probes run live against each provider

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewProvidersCmd creates the providers command.
func NewProvidersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "providers",
		Short: "List configured icon providers",
		Args:  cobra.NoArgs,
		RunE:  runProvidersCmd,
	}
}

func runProvidersCmd(cmd *cobra.Command, _ []string) error {
	application, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer application.close()

	ctx := cmd.Context()
	reg := application.service.Registry()

	out := cmd.OutOrStdout()
	for _, p := range reg.Providers() {
		status := "unavailable"
		if p.IsAvailable(ctx) {
			status = "available"
		}
		fmt.Fprintf(out, "%s\t%s\n", p.Name(), status)
	}

	return nil
}
