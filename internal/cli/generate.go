package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tacogips/fwversion/internal/app"
	"github.com/tacogips/fwversion/internal/config"
)

// generateOptions holds flags that override the configuration for one run.
type generateOptions struct {
	output          string
	style           string
	versionFile     string
	noMetadata      bool
	shortHashLength int
	dryRun          bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	gen := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write the firmware version header",
		Long: `Resolve the firmware version and write the version header.

Version resolution order:
  1. GITVERSION_FULLSEMVER or VERSION (used verbatim)
  2. <base>+<branch>.<short-sha>, plus .dogfood outside CI

The base version comes from FWVERSION_BASE_VERSION, the version file, or
0.1.0 when the file does not exist. Branch and commit fall back to
"unknown" and an all-zero hash when git is unavailable.

Examples:
  fwversion generate
  fwversion generate --style extended
  fwversion generate --output include/app_version.h --no-metadata
  fwversion generate --dry-run`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, root, gen)
		},
	}

	addGenerateFlags(cmd, gen)
	return cmd
}

func addGenerateFlags(cmd *cobra.Command, gen *generateOptions) {
	cmd.Flags().StringVarP(&gen.output, FlagOutput, "o", "", DescOutput)
	cmd.Flags().StringVar(&gen.style, FlagStyle, "", DescStyle)
	cmd.Flags().StringVar(&gen.versionFile, FlagVersionFile, "", DescVersionFile)
	cmd.Flags().BoolVar(&gen.noMetadata, FlagNoMetadata, false, DescNoMetadata)
	cmd.Flags().IntVar(&gen.shortHashLength, FlagShortHashLength, 0, DescShortHashLength)
	cmd.Flags().BoolVarP(&gen.dryRun, FlagDryRun, "n", false, DescDryRun)
}

// apply copies explicitly set flags into cfg.
func (g *generateOptions) apply(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed(FlagOutput) {
		cfg.Header.Output = g.output
	}
	if flags.Changed(FlagStyle) {
		cfg.Header.Style = g.style
	}
	if flags.Changed(FlagVersionFile) {
		cfg.Version.File = g.versionFile
	}
	if flags.Changed(FlagNoMetadata) {
		cfg.Version.DisableMetadata = g.noMetadata
	}
	if flags.Changed(FlagShortHashLength) {
		cfg.SCM.ShortHashLength = g.shortHashLength
	}
}

func runGenerate(cmd *cobra.Command, root *rootOptions, gen *generateOptions) error {
	cfg, err := root.loadConfig()
	if err != nil {
		return err
	}
	gen.apply(cmd, cfg)

	result, err := app.Generate(cmd.Context(), app.GenerateOptions{
		Config: cfg,
		Deps:   root.deps,
		DryRun: gen.dryRun,
	})
	if err != nil {
		return err
	}

	if gen.dryRun {
		root.out.printRaw(result.Content)
		root.out.printInfo(fmt.Sprintf("Would generate %s with VERSION=%s and BUILD_TIMESTAMP=%s",
			result.Path, result.Version, result.Timestamp))
		return nil
	}

	root.out.printInfo(fmt.Sprintf("Generated %s with VERSION=%s and BUILD_TIMESTAMP=%s",
		result.Path, result.Version, result.Timestamp))
	return nil
}
