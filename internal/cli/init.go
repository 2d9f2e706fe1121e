package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/fwversion/internal/app"
	"github.com/tacogips/fwversion/internal/semver"
)

func newInitCmd(root *rootOptions) *cobra.Command {
	var (
		version string
		force   bool
	)

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the version file",
		Long: `Create the version file with an initial base version.

In a terminal the version is prompted for unless --version is given, and
an existing file is only replaced after confirmation.

Examples:
  fwversion init
  fwversion init --version 1.0.0
  fwversion init --version 2.0.0 --force`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, root, version, force)
		},
	}

	cmd.Flags().StringVar(&version, FlagVersion, "", "Initial base version")
	cmd.Flags().BoolVarP(&force, FlagForce, "f", false, "Overwrite an existing version file")
	return cmd
}

func runInit(cmd *cobra.Command, root *rootOptions, version string, force bool) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}

	interactive := !root.quiet && root.interactive()

	if interactive && !cmd.Flags().Changed(FlagVersion) {
		version, err = root.prompter.Input(
			"Initial firmware version",
			"Semantic version written to "+cfg.Version.File,
			cfg.Version.Default,
			semver.Validate,
		)
		if err != nil {
			return fmt.Errorf("failed to read version: %w", err)
		}
	}

	if interactive && !force && app.VersionFileExists(cfg, root.deps) {
		ok, err := root.prompter.Confirm(fmt.Sprintf("%s already exists. Overwrite?", cfg.Version.File), false)
		if err != nil {
			return fmt.Errorf("failed to confirm overwrite: %w", err)
		}
		if !ok {
			root.out.printInfo("Keeping existing " + cfg.Version.File)
			return nil
		}
		force = true
	}

	result, err := app.Init(cmd.Context(), app.InitOptions{
		Config:  cfg,
		Deps:    root.deps,
		Version: version,
		Force:   force,
	})
	if err != nil {
		return err
	}

	if result.Overwritten {
		root.out.printWarning(fmt.Sprintf("Overwrote %s", result.Path))
	}
	root.out.printSuccess(fmt.Sprintf("Created %s with version %s", result.Path, result.Version))
	root.out.printInfo("")
	root.out.printInfo("Next steps:")
	root.out.printInfo("  1. Run: fwversion generate")
	root.out.printInfo("  2. Include app_version.h in your firmware sources")
	return nil
}
