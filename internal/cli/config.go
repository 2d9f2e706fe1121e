package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/fwversion/internal/app"
)

func newConfigCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage the fwversion configuration file",
	}
	cmd.AddCommand(newConfigInitCmd(root))
	return cmd
}

func newConfigInitCmd(root *rootOptions) *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the default settings",
		Long: `Write the default configuration to .fwversion.json (or the --config path).

Examples:
  fwversion config init
  fwversion config init --config build/fwversion.json --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := app.ConfigInit(cmd.Context(), app.ConfigInitOptions{
				Path:  root.configPath,
				Deps:  root.deps,
				Force: force,
			}); err != nil {
				return err
			}
			root.out.printSuccess(fmt.Sprintf("Created %s", root.configPath))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, FlagForce, "f", false, DescForce)
	return cmd
}
