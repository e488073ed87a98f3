// ABOUTME: Root cobra command wiring global flags and subcommands
// ABOUTME: Builds the shared application container used by every subcommand

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for iconsearch.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "iconsearch",
		Short: "Search SVG icon providers and track attributions",
		Long: `iconsearch queries SVG icon providers (Material Symbols, Maki,
Font Awesome Free, the Noun Project, and arbitrary GitHub repositories),
downloads icons, and tracks the license attributions of everything imported.

Provider configuration lives in the settings file; see the settings keys
under the svg_library section.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().String("settings", "", "Path to the settings file (default: XDG config dir)")

	cmd.AddCommand(NewSearchCmd())
	cmd.AddCommand(NewDownloadCmd())
	cmd.AddCommand(NewProvidersCmd())
	cmd.AddCommand(NewAttributionsCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
