package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/fwversion/internal/app"
)

func newZephyrCmd(root *rootOptions) *cobra.Command {
	var (
		dev    bool
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "zephyr [dir...]",
		Short: "Write Zephyr VERSION files",
		Long: `Write a Zephyr VERSION file into each firmware directory.

Each directory takes its version from its own package.json. Without
arguments every subdirectory of the configured Zephyr root (firmware/ by
default) that has a package.json is processed. Directories given as
arguments fall back to the base version when they have no package.json.

Examples:
  fwversion zephyr
  fwversion zephyr firmware/app --dev`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.loadConfig()
			if err != nil {
				return err
			}

			result, err := app.Zephyr(cmd.Context(), app.ZephyrOptions{
				Config: cfg,
				Deps:   root.deps,
				Dirs:   args,
				Dev:    dev,
				DryRun: dryRun,
			})
			if err != nil {
				return err
			}

			verb := "Wrote"
			if dryRun {
				verb = "Would write"
			}
			for _, f := range result.Files {
				root.out.printSuccess(fmt.Sprintf("%s %s (%s from %s)", verb, f.Path, f.File, f.Source))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dev, FlagDev, false, "Mark as a development build (tweak 255, dev extraversion)")
	cmd.Flags().BoolVarP(&dryRun, FlagDryRun, "n", false, DescDryRun)
	return cmd
}
