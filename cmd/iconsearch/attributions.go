// ABOUTME: Attributions subcommand managing the project attribution records
// ABOUTME: Supports listing, multi-format export and clearing

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"svg-icon-library/core/attribution"
)

// NewAttributionsCmd creates the attributions command group.
func NewAttributionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "attributions",
		Short: "Manage attribution records for downloaded icons",
	}

	cmd.AddCommand(newAttributionsListCmd())
	cmd.AddCommand(newAttributionsExportCmd())
	cmd.AddCommand(newAttributionsClearCmd())

	return cmd
}

func newAttributionsListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List stored attribution records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer application.close()

			records, err := application.service.Attributions().Load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if len(records) == 0 {
				fmt.Fprintln(out, "No attribution records.")
				return nil
			}
			for _, rec := range records {
				fmt.Fprintf(out, "%s\t%s\t%s\n", rec.IconName, rec.Provider, rec.License)
			}
			return nil
		},
	}
}

func newAttributionsExportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export attribution records",
		Long: `Export serializes the stored attribution records.

Formats: text, json, html, markdown.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer application.close()

			format, _ := cmd.Flags().GetString("format")
			outPath, _ := cmd.Flags().GetString("out")

			document, err := application.service.Attributions().Export(format)
			if err != nil {
				return err
			}

			if outPath == "" {
				fmt.Fprint(cmd.OutOrStdout(), document)
				return nil
			}
			return os.WriteFile(outPath, []byte(document), 0o644)
		},
	}

	cmd.Flags().StringP("format", "f", attribution.FormatText, "Export format (text, json, html, markdown)")
	cmd.Flags().StringP("out", "o", "", "Write the export to a file instead of stdout")

	return cmd
}

func newAttributionsClearCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all stored attribution records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			application, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer application.close()

			if err := application.service.Attributions().Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Attribution records cleared.")
			return nil
		},
	}
}
