package config

// Config represents the fwversion project configuration.
type Config struct {
	// Version configures where the base version comes from.
	Version VersionConfig `json:"version"`
	// SCM configures source-control lookups.
	SCM SCMConfig `json:"scm"`
	// Header configures the generated C header.
	Header HeaderConfig `json:"header"`
	// Zephyr configures Zephyr VERSION file generation.
	Zephyr ZephyrConfig `json:"zephyr"`
	// CI configures continuous-integration detection.
	CI CIConfig `json:"ci"`
}

// VersionConfig represents base version settings.
type VersionConfig struct {
	// File is the plain-text version file (single line, trimmed).
	File string `json:"file"`
	// Default is used when File does not exist.
	Default string `json:"default"`
	// PackageJSON is the package.json consulted by "fwversion sync".
	PackageJSON string `json:"package_json"`
	// DisableMetadata turns off the +<branch>.<sha>[.dogfood] suffix.
	DisableMetadata bool `json:"disable_metadata"`
	// DogfoodSuffix is appended to local (non-CI) builds.
	DogfoodSuffix string `json:"dogfood_suffix"`
}

// SCMConfig represents source-control settings.
type SCMConfig struct {
	// Command is the git executable.
	Command string `json:"command"`
	// Dir is the working tree to query (empty = current directory).
	Dir string `json:"dir,omitempty"`
	// ShortHashLength is the number of commit hash characters kept.
	ShortHashLength int `json:"short_hash_length"`
	// Timeout is the per-command timeout in seconds. Zero or unset uses the
	// default of 10; a git call always has a bound.
	Timeout int `json:"timeout"`
}

// HeaderConfig represents generated header settings.
type HeaderConfig struct {
	// Output is the header path.
	Output string `json:"output"`
	// Style selects the macro set: "basic" or "extended".
	Style string `json:"style"`
	// Guard is the include guard macro name.
	Guard string `json:"guard"`
}

// ZephyrConfig represents Zephyr VERSION file settings.
type ZephyrConfig struct {
	// Root is scanned for firmware directories when none are given.
	Root string `json:"root"`
	// FileName is the name of the file written in each directory.
	FileName string `json:"file_name"`
}

// CIConfig represents CI detection settings.
type CIConfig struct {
	// Variables are environment variables whose presence marks a CI build.
	Variables []string `json:"variables"`
}
