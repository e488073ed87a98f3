// ABOUTME: Search subcommand querying one or all icon providers
// ABOUTME: Prints paginated results as a table or JSON

package main

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"svg-icon-library/core/domain"
)

// NewSearchCmd creates the search command.
func NewSearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search icon providers",
		Long: `Search queries every available provider, or a single provider when
--provider is given. An empty query browses each provider's catalog.

Examples:
  # Search all providers
  iconsearch search airport

  # Search one provider with a larger page
  iconsearch search airport --provider "Material Symbols" --per-page 50

  # Page through results
  iconsearch search marker --page 2`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSearchCmd,
	}

	cmd.Flags().StringP("provider", "P", "", "Search only the named provider")
	cmd.Flags().Int("page", 1, "Result page (1-based)")
	cmd.Flags().Int("per-page", 0, "Results per page (default: configured page size)")
	cmd.Flags().Bool("json", false, "Emit results as JSON")

	return cmd
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	application, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer application.close()

	query := ""
	if len(args) == 1 {
		query = args[0]
	}

	providerName, _ := cmd.Flags().GetString("provider")
	page, _ := cmd.Flags().GetInt("page")
	perPage, _ := cmd.Flags().GetInt("per-page")
	asJSON, _ := cmd.Flags().GetBool("json")

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = application.service.PerPage()
	}

	ctx := cmd.Context()

	results := make(map[string]domain.SearchResult)
	if providerName != "" {
		result, err := application.service.Search(ctx, providerName, query, page, perPage)
		if err != nil {
			return err
		}
		results[providerName] = result
	} else {
		results = application.service.SearchAll(ctx, query, page, perPage)
	}

	if asJSON {
		data, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	printResults(cmd, results)
	return nil
}

// printResults renders per-provider result tables in provider name order.
func printResults(cmd *cobra.Command, results map[string]domain.SearchResult) {
	names := make([]string, 0, len(results))
	for name := range results {
		names = append(names, name)
	}
	sort.Strings(names)

	out := cmd.OutOrStdout()
	for _, name := range names {
		result := results[name]
		fmt.Fprintf(out, "%s: %d icons (page %d of %d)\n", name, result.TotalCount, result.CurrentPage, result.TotalPages)
		if len(result.Icons) == 0 {
			fmt.Fprintln(out)
			continue
		}

		w := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
		fmt.Fprintln(w, "  NAME\tLICENSE\tTAGS")
		for _, icon := range result.Icons {
			fmt.Fprintf(w, "  %s\t%s\t%s\n", icon.Name, icon.License, strings.Join(icon.Tags, ", "))
		}
		w.Flush()
		fmt.Fprintln(out)
	}
}
