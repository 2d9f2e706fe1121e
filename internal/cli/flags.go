package cli

// Common flag names and descriptions
const (
	// Flag names
	FlagConfig          = "config"
	FlagDebug           = "debug"
	FlagNoColor         = "no-color"
	FlagQuiet           = "quiet"
	FlagOutput          = "output"
	FlagStyle           = "style"
	FlagVersionFile     = "version-file"
	FlagNoMetadata      = "no-metadata"
	FlagShortHashLength = "short-hash-length"
	FlagDryRun          = "dry-run"
	FlagForce           = "force"
	FlagJSON            = "json"
	FlagDev             = "dev"
	FlagPackage         = "package"
	FlagVersion         = "version"

	// Flag descriptions
	DescConfig          = "Path to config file (default .fwversion.json, or $FWVERSION_CONFIG)"
	DescDebug           = "Enable debug logging"
	DescNoColor         = "Disable colored output"
	DescQuiet           = "Suppress non-error output"
	DescOutput          = "Header output path"
	DescStyle           = "Header style: basic or extended"
	DescVersionFile     = "Base version file"
	DescNoMetadata      = "Do not append +<branch>.<sha> build metadata"
	DescShortHashLength = "Number of commit hash characters"
	DescDryRun          = "Show actions without writing files"
	DescForce           = "Overwrite existing files"
)
