package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tacogips/fwversion/internal/app"
	"github.com/tacogips/fwversion/internal/config"
	"github.com/tacogips/fwversion/internal/debug"
)

// rootOptions holds the global flags and the state shared by subcommands.
type rootOptions struct {
	configPath string
	noColor    bool
	quiet      bool
	debug      bool

	deps        app.Deps
	prompter    Prompter
	interactive func() bool

	settings *config.Settings
	out      *output
}

// NewRootCmd builds the fwversion command tree. deps replaces the
// environment, filesystem, clock and git used by the workflows; the zero
// value uses the real ones.
func NewRootCmd(deps app.Deps) *cobra.Command {
	opts := &rootOptions{
		deps:     deps,
		prompter: surveyPrompter{},
		interactive: func() bool {
			return isTerminal(os.Stdin) && isTerminal(os.Stdout)
		},
	}
	return newRootCmd(opts)
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	gen := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "fwversion",
		Short: "Firmware version header generator",
		Long: `fwversion writes the firmware version header consumed by C/C++ builds.

The base version is read from the version file (firmware-pio/version.txt by
default) and extended with +<branch>.<short-sha> from git. Local builds
outside CI additionally get a .dogfood suffix. CI systems can pin the whole
version with GITVERSION_FULLSEMVER or VERSION.

Running fwversion without a subcommand is the same as "fwversion generate".`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts, gen)
		},
	}

	// Global flags
	cmd.PersistentFlags().StringVarP(&opts.configPath, FlagConfig, "c", "", DescConfig)
	cmd.PersistentFlags().BoolVar(&opts.noColor, FlagNoColor, false, DescNoColor)
	cmd.PersistentFlags().BoolVarP(&opts.quiet, FlagQuiet, "q", false, DescQuiet)
	cmd.PersistentFlags().BoolVar(&opts.debug, FlagDebug, false, DescDebug)

	addGenerateFlags(cmd, gen)

	// Add subcommands
	cmd.AddCommand(newGenerateCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newZephyrCmd(opts))
	cmd.AddCommand(newSyncCmd(opts))
	cmd.AddCommand(newInitCmd(opts))
	cmd.AddCommand(newConfigCmd(opts))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// Execute runs the root command and exits with status 1 on error.
// This is called by main.main().
func Execute() {
	cmd := NewRootCmd(app.Deps{})
	if err := cmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

// setup reads environment settings and applies the global flags.
func (o *rootOptions) setup(cmd *cobra.Command) error {
	settings, err := config.LoadSettings(o.deps.Environ)
	if err != nil {
		return err
	}
	o.settings = settings

	if o.configPath == "" {
		o.configPath = settings.ConfigPath
	}

	noColor := o.noColor || settings.ColorDisabled()
	debug.SetDebug(o.debug || settings.Debug)
	debug.SetNoColor(noColor)
	o.out = newOutput(cmd.OutOrStdout(), o.quiet, noColor)

	debug.DebugValue("[cli] Config path", o.configPath)
	return nil
}

// loadConfig loads the project configuration. A missing file is an error
// only when a path was given explicitly.
func (o *rootOptions) loadConfig() (*config.Config, error) {
	loader := config.NewLoader()
	if o.configPath != config.DefaultConfigFile {
		cfg, err := loader.Load(o.configPath)
		if err != nil {
			return nil, app.NewConfigError("failed to load configuration", err)
		}
		return cfg, nil
	}
	cfg, err := loader.LoadOrDefault(o.configPath)
	if err != nil {
		return nil, app.NewConfigError("failed to load configuration", err)
	}
	return cfg, nil
}

// printError prints an error message to stderr
func printError(err error) {
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
