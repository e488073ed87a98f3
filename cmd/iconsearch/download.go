// ABOUTME: Download subcommand fetching an icon SVG to a local file
// ABOUTME: Records the icon's attribution automatically unless disabled in settings

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"svg-icon-library/core/domain"
)

// NewDownloadCmd creates the download command.
func NewDownloadCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "download <provider> <icon-name>",
		Short: "Download an icon from a provider",
		Long: `Download searches the named provider for the icon and writes the SVG
to the output path. The icon's attribution record is merged into the
project metadata unless auto-save is disabled in settings.

Examples:
  iconsearch download "Material Symbols" airport
  iconsearch download Maki marker --out ./icons/marker.svg`,
		Args: cobra.ExactArgs(2),
		RunE: runDownloadCmd,
	}

	cmd.Flags().StringP("out", "o", "", "Output file path (default: <icon-name>.svg)")

	return cmd
}

func runDownloadCmd(cmd *cobra.Command, args []string) error {
	application, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer application.close()

	providerName, iconName := args[0], args[1]
	destPath, _ := cmd.Flags().GetString("out")
	if destPath == "" {
		destPath = iconName + ".svg"
	}

	ctx := cmd.Context()

	result, err := application.service.Search(ctx, providerName, iconName, 1, 50)
	if err != nil {
		return err
	}

	icon, found := pickIcon(result.Icons, iconName)
	if !found {
		return fmt.Errorf("no icon named %q found in %s", iconName, providerName)
	}

	if !application.service.DownloadIcon(ctx, icon, destPath) {
		return fmt.Errorf("failed to download %q from %s", icon.Name, providerName)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Downloaded %s to %s (%s)\n", icon.Name, destPath, icon.License)
	return nil
}

// pickIcon prefers an exact case-insensitive name match and falls back to the
// first result.
func pickIcon(icons []domain.SvgIcon, name string) (domain.SvgIcon, bool) {
	for _, icon := range icons {
		if strings.EqualFold(icon.Name, name) {
			return icon, true
		}
	}
	if len(icons) > 0 {
		return icons[0], true
	}
	return domain.SvgIcon{}, false
}
