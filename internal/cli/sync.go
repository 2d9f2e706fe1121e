package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/fwversion/internal/app"
)

func newSyncCmd(root *rootOptions) *cobra.Command {
	var (
		pkgPath string
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Copy the package.json version into the version file",
		Long: `Copy the "version" field of package.json into the version file.

Examples:
  fwversion sync
  fwversion sync --package firmware-pio/package.json --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			result, err := app.Sync(cmd.Context(), app.SyncOptions{
				Config:      cfg,
				Deps:        root.deps,
				PackagePath: pkgPath,
				DryRun:      dryRun,
			})
			if err != nil {
				return err
			}

			switch {
			case !result.Changed:
				root.out.printInfo(fmt.Sprintf("%s already at %s", result.VersionFile, result.Version))
			case dryRun:
				root.out.printInfo(fmt.Sprintf("Would update %s to %s (from %s)", result.VersionFile, result.Version, result.PackagePath))
			default:
				root.out.printSuccess(fmt.Sprintf("Updated %s to %s (from %s)", result.VersionFile, result.Version, result.PackagePath))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&pkgPath, FlagPackage, "", "package.json to read (default from config)")
	cmd.Flags().BoolVarP(&dryRun, FlagDryRun, "n", false, DescDryRun)
	return cmd
}
